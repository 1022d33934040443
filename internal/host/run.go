package host

import "github.com/google/uuid"

// RunTokenGenerator produces the token that identifies one spin.
// Implemented by UUIDv7Generator and, in tests, testutil.FixedRunGenerator.
type RunTokenGenerator interface {
	Generate() string
}

// UUIDv7Generator issues time-ordered UUIDv7 run tokens, so logs from
// consecutive spins sort by start time.
type UUIDv7Generator struct{}

func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
