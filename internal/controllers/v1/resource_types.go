package v1

import (
	"fmt"

	"github.com/crewplan/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ResourceEditable struct {
	Name     string          `json:"name" example:"Riley Tanaka" default:""`      // Full name of the person
	Role     string          `json:"role" example:"Backend Developer" default:""` // Role the person fills on releases
	Location models.Location `json:"location" example:"Onsite" default:"Onsite"`  // Determines the working hours per day
	RateCAD  decimal.Decimal `json:"rateCAD" example:"132"`                       // Hourly rate in CAD
}

// model returns the dataset resource for the editable fields
func (editable ResourceEditable) model() models.Resource {
	return models.Resource{
		Name:     editable.Name,
		Role:     editable.Role,
		Location: editable.Location,
		RateCAD:  editable.RateCAD,
	}
}

type ResourceLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/resources/a6e29b34-d90a-4deb-b6b7-dbbc1cd1b489"`                   // The resource itself
	Allocations string `json:"allocations" example:"https://example.com/api/v1/allocations?resource=a6e29b34-d90a-4deb-b6b7-dbbc1cd1b489"` // Allocations booking the resource
}

// Resource is the API v1 representation of a Resource.
type Resource struct {
	models.DefaultModel
	ResourceEditable
	Links ResourceLinks `json:"links"`
}

func newResource(c *gin.Context, model models.Resource) Resource {
	url := c.GetString(string(models.ContextURL))

	return Resource{
		DefaultModel: model.DefaultModel,
		ResourceEditable: ResourceEditable{
			Name:     model.Name,
			Role:     model.Role,
			Location: model.Location,
			RateCAD:  model.RateCAD,
		},
		Links: ResourceLinks{
			Self:        fmt.Sprintf("%s/v1/resources/%s", url, model.ID),
			Allocations: fmt.Sprintf("%s/v1/allocations?resource=%s", url, model.ID),
		},
	}
}

type ResourceListResponse struct {
	Data       []Resource  `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ResourceCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ResourceResponse `json:"data"`                                                          // List of created resources
}

func (r *ResourceCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ResourceResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ResourceResponse struct {
	Data  *Resource `json:"data"`                                                          // Data for the resource
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this resource
}

type ResourceQueryFilter struct {
	Name     string `form:"name"`     // Filter by name, * is a wildcard
	Role     string `form:"role"`     // Filter by role, * is a wildcard
	Location string `form:"location"` // Filter by location, matched exactly
	Offset   uint   `form:"offset"`   // The offset of the first Resource returned. Defaults to 0.
	Limit    int    `form:"limit"`    // Maximum number of Resources to return. Defaults to 50.
}
