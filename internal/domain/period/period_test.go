package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func july(d int) time.Time {
	return time.Date(2024, time.July, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		sA, eA, sB, eB time.Time
		want           bool
	}{
		{"disjoint", july(1), july(3), july(5), july(7), false},
		{"touching is free", july(1), july(3), july(3), july(5), false},
		{"partial", july(1), july(5), july(3), july(7), true},
		{"contained", july(1), july(10), july(3), july(4), true},
		{"identical", july(1), july(2), july(1), july(2), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.sA, tc.eA, tc.sB, tc.eB))
			assert.Equal(t, tc.want, Overlaps(tc.sB, tc.eB, tc.sA, tc.eA), "symmetry")
		})
	}
}

func TestNewRejectsEmptyAndInvertedRanges(t *testing.T) {
	_, err := New(july(5), july(5))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = New(july(6), july(5))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = New(time.Time{}, july(5))
	assert.ErrorIs(t, err, ErrInvalidRange)

	r, err := New(july(1), july(8))
	require.NoError(t, err)
	assert.Equal(t, 7.0, r.Days())
}

func TestDaysKeepsFraction(t *testing.T) {
	r := Range{Start: july(1), End: july(2).Add(12 * time.Hour)}
	assert.InDelta(t, 1.5, r.Days(), 1e-9)
}

func TestWithinIsInclusive(t *testing.T) {
	r := Range{Start: july(5), End: july(10)}
	from, to := july(10), july(12)
	assert.True(t, r.Within(&from, &to), "end equal to window start still touches")

	from, to = july(1), july(5)
	assert.True(t, r.Within(&from, &to), "start equal to window end still touches")

	from = july(11)
	assert.False(t, r.Within(&from, nil))
	assert.True(t, r.Within(nil, nil))
}
