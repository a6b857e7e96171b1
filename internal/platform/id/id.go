package id

import "github.com/google/uuid"

// Generator creates opaque identifiers, used to correlate the log lines
// belonging to one request.
type Generator interface {
	New() string
}

type UUID struct{}

func (UUID) New() string {
	return uuid.NewString()
}
