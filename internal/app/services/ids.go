package services

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator is the source of new record identifiers
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random UUID v4 strings
type UUIDGenerator struct{}

// NewID returns a fresh UUID
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// freshID draws ids until one is not taken
func freshID(gen IDGenerator, taken func(string) bool) string {
	for {
		id := gen.NewID()
		if id != "" && !taken(id) {
			return id
		}
	}
}

// SequentialGenerator issues prefix1, prefix2, ... and is meant for tests
// and reproducible seeds
type SequentialGenerator struct {
	Prefix string
	n      int
}

// NewID returns the next identifier in sequence
func (g *SequentialGenerator) NewID() string {
	g.n++
	return g.Prefix + strconv.Itoa(g.n)
}
