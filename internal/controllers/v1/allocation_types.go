package v1

import (
	"fmt"

	"github.com/crewplan/backend/internal/models"
	"github.com/crewplan/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AllocationEditable struct {
	ReleaseID  uuid.UUID       `json:"releaseId" example:"9e38f8cf-b611-4172-a5b3-cc92ceb6ae30"`  // ID of the release the booking is for
	ResourceID uuid.UUID       `json:"resourceId" example:"a6e29b34-d90a-4deb-b6b7-dbbc1cd1b489"` // ID of the resource being booked
	Month      types.Month     `json:"month" example:"2024-03"`                                   // The month the booking applies to
	Percentage decimal.Decimal `json:"percentage" example:"0.5"`                                  // Fraction of the month booked, 1 means fully booked
}

// model returns the dataset resource for the editable fields
func (editable AllocationEditable) model() models.Allocation {
	return models.Allocation{
		ReleaseID:  editable.ReleaseID,
		ResourceID: editable.ResourceID,
		Month:      editable.Month,
		Percentage: editable.Percentage,
	}
}

type AllocationLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/allocations/c9e4ee7a-e702-4a46-8f47-08bd71b83a26"`   // The allocation itself
	Release  string `json:"release" example:"https://example.com/api/v1/releases/9e38f8cf-b611-4172-a5b3-cc92ceb6ae30"`   // The release the booking is for
	Resource string `json:"resource" example:"https://example.com/api/v1/resources/a6e29b34-d90a-4deb-b6b7-dbbc1cd1b489"` // The resource being booked
}

// Allocation is the API v1 representation of an Allocation.
type Allocation struct {
	models.DefaultModel
	AllocationEditable
	Links AllocationLinks `json:"links"`
}

func newAllocation(c *gin.Context, model models.Allocation) Allocation {
	url := c.GetString(string(models.ContextURL))

	return Allocation{
		DefaultModel: model.DefaultModel,
		AllocationEditable: AllocationEditable{
			ReleaseID:  model.ReleaseID,
			ResourceID: model.ResourceID,
			Month:      model.Month,
			Percentage: model.Percentage,
		},
		Links: AllocationLinks{
			Self:     fmt.Sprintf("%s/v1/allocations/%s", url, model.ID),
			Release:  fmt.Sprintf("%s/v1/releases/%s", url, model.ReleaseID),
			Resource: fmt.Sprintf("%s/v1/resources/%s", url, model.ResourceID),
		},
	}
}

type AllocationListResponse struct {
	Data       []Allocation `json:"data"`                                                          // List of allocations
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type AllocationCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AllocationResponse `json:"data"`                                                          // List of created or replaced allocations
}

func (r *AllocationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, AllocationResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AllocationResponse struct {
	Data  *Allocation `json:"data"`                                                          // Data for the allocation
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this allocation
}

type AllocationQueryFilter struct {
	Release  string      `form:"release"`  // Filter by release ID
	Resource string      `form:"resource"` // Filter by resource ID
	Month    types.Month `form:"month"`    // Filter by month
	Offset   uint        `form:"offset"`   // The offset of the first Allocation returned. Defaults to 0.
	Limit    int         `form:"limit"`    // Maximum number of Allocations to return. Defaults to 50.
}
