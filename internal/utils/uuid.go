package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces object identifiers: UUIDv7 in hex without dashes,
// so object names sort by creation time. It falls back to a random v4 when
// the v7 clock source fails.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return strings.ReplaceAll(id.String(), "-", "")
}
