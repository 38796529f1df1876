package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const idPrefix = "BK"

// NewID returns BK<yyyyMMdd>-<8 hex>. Uniqueness is enforced by the primary
// key; callers retry on collision.
func NewID(now time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return idPrefix + now.UTC().Format("20060102") + "-" + suffix
}

func NewPaymentIntentID() string {
	return "pi_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
