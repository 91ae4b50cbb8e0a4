package idgen

import "github.com/google/uuid"

// Generator hands out identifiers that are unique for the life of the process.
type Generator interface {
	Generate() string
}

// UUID generates random version 4 UUIDs.
type UUID struct{}

func (UUID) Generate() string {
	return uuid.NewString()
}

// Func adapts a plain function to a Generator.
type Func func() string

func (f Func) Generate() string {
	return f()
}
