package interfaces

//go:generate mockgen -source=clock_interface.go -destination=mocks/clock_mock.go -package=mock_interfaces

import "time"

// IClock is the time source used for created_at/expires_at and expiry checks.
type IClock interface {
	Now() time.Time
}

// IIDGenerator issues unique, prefixed identifiers (neg-, rnd-, ap2-).
type IIDGenerator interface {
	NewID(prefix string, hexLen int) string
}
