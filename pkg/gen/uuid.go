package gen

import (
	"github.com/google/uuid"
)

type UUIDGenerator func() uuid.UUID

// UUID returns a generator of random (version 4) UUIDs.
func UUID() UUIDGenerator {
	return uuid.New
}

// Fixed returns a generator that always yields id. Used by tests.
func Fixed(id uuid.UUID) UUIDGenerator {
	return func() uuid.UUID {
		return id
	}
}

func (g UUIDGenerator) Next() uuid.UUID {
	if g == nil {
		return uuid.New()
	}

	return g()
}
