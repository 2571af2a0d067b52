package models

import "github.com/google/uuid"

// DefaultModel is the base model for all models in Crewplan.
type DefaultModel struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
}

// IDSource mints identifiers for newly created records. Everything that
// creates records takes one explicitly so that id assignment can be made
// deterministic in tests.
type IDSource func() uuid.UUID

// RandomIDs returns the IDSource used outside of tests.
func RandomIDs() IDSource {
	return uuid.New
}
