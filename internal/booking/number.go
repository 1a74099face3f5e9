package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewBookingNumber generates a human-readable booking reference such as
// "BK-20240501-3F2A9C1D": the creation date plus a short random suffix.
// The suffix comes from a v4 UUID, which is unique enough at hotel scale
// while staying short enough to read over the phone.
func NewBookingNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("BK-%s-%s", now.UTC().Format("20060102"), suffix)
}
