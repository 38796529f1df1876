package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	for _, ok := range []string{"rita@example.com", "a.b+c@sub.example.org"} {
		assert.True(t, IsEmail(ok), ok)
	}
	for _, bad := range []string{"", "rita", "rita@localhost", "Rita <rita@example.com>", "@example.com"} {
		assert.False(t, IsEmail(bad), bad)
	}
}

func TestIsPhone(t *testing.T) {
	for _, ok := range []string{"+47 912 34 567", "(555) 123-4567", "555.123.4567"} {
		assert.True(t, IsPhone(ok), ok)
	}
	for _, bad := range []string{"", "12345", "55+51234567", "call me", "1234567890123456"} {
		assert.False(t, IsPhone(bad), bad)
	}
}
