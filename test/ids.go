package test

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/crewplan/backend/internal/models"
)

// SequentialIDs returns an id source that mints deterministic,
// strictly increasing UUIDs so that test fixtures get stable ids.
func SequentialIDs() models.IDSource {
	var counter uint64

	return func() uuid.UUID {
		counter++
		return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", counter))
	}
}
