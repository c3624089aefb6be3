// internal/util/ids.go
// Generator ID untuk X-Request-ID

package util

import (
	"strings"

	"github.com/google/uuid"
)

// NewRequestID mengembalikan UUIDv4 tanpa tanda hubung (lebih ringkas di log).
func NewRequestID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
