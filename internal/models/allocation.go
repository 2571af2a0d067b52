package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crewplan/backend/internal/types"
)

// Allocation books a fraction of a resource's capacity on a release for
// one month. Only one allocation can exist for each combination of
// release, resource and month.
type Allocation struct {
	DefaultModel
	ReleaseID  uuid.UUID       `json:"releaseId" example:"9e38f8cf-b611-4172-a5b3-cc92ceb6ae30"`
	ResourceID uuid.UUID       `json:"resourceId" example:"a6e29b34-d90a-4deb-b6b7-dbbc1cd1b489"`
	Month      types.Month     `json:"month" example:"2024-03"`
	Percentage decimal.Decimal `json:"percentage" example:"0.5"` // 1 means fully booked for the month
}
