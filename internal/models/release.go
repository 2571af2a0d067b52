package models

import (
	"github.com/crewplan/backend/internal/types"
)

// Release represents a planned delivery that resources are allocated to.
type Release struct {
	DefaultModel
	Name       string      `json:"name" example:"Atlas 2.0" default:""`
	StartMonth types.Month `json:"startMonth" example:"2024-01"`
	EndMonth   types.Month `json:"endMonth" example:"2024-06"`
}

// Months returns the inclusive span of months between the start and end
// month of the release. The span is empty when either bound is unset or
// the start month is after the end month.
func (r Release) Months() []types.Month {
	return types.MonthsInRange(r.StartMonth, r.EndMonth)
}
