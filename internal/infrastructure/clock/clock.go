package clock

import (
	"strings"
	"time"

	"supplymind/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// SystemClock is the UTC wall clock.
type SystemClock struct{}

var _ interfaces.IClock = SystemClock{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator issues ids of the form <prefix>-<hex> from random UUIDs.
type UUIDGenerator struct{}

var _ interfaces.IIDGenerator = UUIDGenerator{}

func (UUIDGenerator) NewID(prefix string, hexLen int) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	if hexLen > 0 && hexLen < len(hex) {
		hex = hex[:hexLen]
	}
	if prefix == "" {
		return hex
	}
	return prefix + "-" + hex
}
