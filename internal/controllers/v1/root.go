package v1

import (
	"net/http"

	"github.com/crewplan/backend/internal/httputil"
	"github.com/crewplan/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRootRoutes registers the routes for the v1 API root with
// the RouterGroup that is passed.
func (co Controller) RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", co.GetV1)
	r.DELETE("", co.Cleanup)
	r.OPTIONS("", co.OptionsV1)
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Releases    string `json:"releases" example:"https://example.com/api/v1/releases"`       // URL of Release collection endpoint
	Resources   string `json:"resources" example:"https://example.com/api/v1/resources"`     // URL of Resource collection endpoint
	Allocations string `json:"allocations" example:"https://example.com/api/v1/allocations"` // URL of Allocation collection endpoint
	Import      string `json:"import" example:"https://example.com/api/v1/import"`           // URL of the CSV import endpoint
	Export      string `json:"export" example:"https://example.com/api/v1/export"`           // URL of the CSV export endpoint
	Overview    string `json:"overview" example:"https://example.com/api/v1/overview"`       // URL of the portfolio overview endpoint
}

// GetV1 returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func (co Controller) GetV1(c *gin.Context) {
	url := c.GetString(string(models.ContextURL))

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Releases:    url + "/v1/releases",
			Resources:   url + "/v1/resources",
			Allocations: url + "/v1/allocations",
			Import:      url + "/v1/import",
			Export:      url + "/v1/export",
			Overview:    url + "/v1/overview",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func (co Controller) OptionsV1(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
