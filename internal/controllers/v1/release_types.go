package v1

import (
	"fmt"

	"github.com/crewplan/backend/internal/costing"
	"github.com/crewplan/backend/internal/models"
	"github.com/crewplan/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReleaseEditable struct {
	Name       string      `json:"name" example:"Atlas Phase 2" default:""` // Name of the release
	StartMonth types.Month `json:"startMonth" example:"2024-01"`            // First month of the planning window
	EndMonth   types.Month `json:"endMonth" example:"2024-06"`              // Last month of the planning window, inclusive
}

// model returns the dataset resource for the editable fields
func (editable ReleaseEditable) model() models.Release {
	return models.Release{
		Name:       editable.Name,
		StartMonth: editable.StartMonth,
		EndMonth:   editable.EndMonth,
	}
}

type ReleaseLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/releases/65392deb-5e92-4268-b114-297faad6cdce"`                   // The release itself
	Months      string `json:"months" example:"https://example.com/api/v1/releases/65392deb-5e92-4268-b114-297faad6cdce/months"`          // Cost breakdown over the planning window
	Summary     string `json:"summary" example:"https://example.com/api/v1/releases/65392deb-5e92-4268-b114-297faad6cdce/summary"`        // Narrative summary of the release plan
	Resources   string `json:"resources" example:"https://example.com/api/v1/releases/65392deb-5e92-4268-b114-297faad6cdce/resources"`    // Book a resource for every month of the window
	Allocations string `json:"allocations" example:"https://example.com/api/v1/allocations?release=65392deb-5e92-4268-b114-297faad6cdce"` // Allocations referencing the release
}

// Release is the API v1 representation of a Release.
type Release struct {
	models.DefaultModel
	ReleaseEditable
	Links ReleaseLinks `json:"links"`
}

func newRelease(c *gin.Context, model models.Release) Release {
	url := c.GetString(string(models.ContextURL))

	return Release{
		DefaultModel: model.DefaultModel,
		ReleaseEditable: ReleaseEditable{
			Name:       model.Name,
			StartMonth: model.StartMonth,
			EndMonth:   model.EndMonth,
		},
		Links: ReleaseLinks{
			Self:        fmt.Sprintf("%s/v1/releases/%s", url, model.ID),
			Months:      fmt.Sprintf("%s/v1/releases/%s/months", url, model.ID),
			Summary:     fmt.Sprintf("%s/v1/releases/%s/summary", url, model.ID),
			Resources:   fmt.Sprintf("%s/v1/releases/%s/resources", url, model.ID),
			Allocations: fmt.Sprintf("%s/v1/allocations?release=%s", url, model.ID),
		},
	}
}

type ReleaseListResponse struct {
	Data       []Release   `json:"data"`                                                          // List of releases
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ReleaseCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ReleaseResponse `json:"data"`                                                          // List of created releases
}

func (r *ReleaseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ReleaseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ReleaseResponse struct {
	Data  *Release `json:"data"`                                                          // Data for the release
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this release
}

type ReleaseQueryFilter struct {
	Name   string `form:"name"`   // Filter by name, * is a wildcard
	Offset uint   `form:"offset"` // The offset of the first Release returned. Defaults to 0.
	Limit  int    `form:"limit"`  // Maximum number of Releases to return. Defaults to 50.
}

// ReleaseMonths is the cost breakdown of a release over its planning window.
type ReleaseMonths struct {
	Months []types.Month `json:"months"` // Every month of the planning window, in order
	costing.Breakdown
}

type ReleaseMonthsResponse struct {
	Data  *ReleaseMonths `json:"data"`                                                          // The cost breakdown for the release
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ReleaseSummary struct {
	Summary string `json:"summary" example:"Atlas Phase 2 runs from 2024-01 to 2024-06. 2 resources are booked over 6 months, the total planned cost is $25,200.00."` // Narrative summary of the release plan
}

type ReleaseSummaryResponse struct {
	Data  *ReleaseSummary `json:"data"`                                                          // The summary for the release
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AssignmentEditable struct {
	ResourceID uuid.UUID `json:"resourceId" example:"f3e93fab-e848-4b04-8d83-8e4356cbd2a0"` // ID of the resource to book for every month of the window
}

type AssignmentResponse struct {
	Data  []Allocation `json:"data"`                                                          // The allocations the assignment created or raised
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
