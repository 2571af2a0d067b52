package v1

import (
	"net/http"

	"github.com/crewplan/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OverviewRelease struct {
	ID       uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the release
	Name     string          `json:"name" example:"Atlas Phase 2"`                      // Name of the release
	TotalUSD decimal.Decimal `json:"totalUsd" example:"25200"`                          // Planned cost of the release in USD
}

type OverviewData struct {
	Releases    int               `json:"releases" example:"2"`     // Number of releases in the session
	Resources   int               `json:"resources" example:"5"`    // Number of resources in the session
	Allocations int               `json:"allocations" example:"12"` // Number of allocations in the session
	TotalUSD    decimal.Decimal   `json:"totalUsd" example:"31550"` // Planned cost of all releases in USD
	ByRelease   []OverviewRelease `json:"byRelease"`                // Planned cost for each release
}

type OverviewResponse struct {
	Data  *OverviewData `json:"data"`                                                          // The portfolio overview
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// RegisterOverviewRoutes registers the routes for the portfolio
// overview with the RouterGroup that is passed.
func (co Controller) RegisterOverviewRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsOverview)
	r.GET("", co.GetOverview)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Overview
// @Success		204
// @Router			/v1/overview [options]
func (co Controller) OptionsOverview(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Portfolio overview
// @Description	Returns counts and planned costs over all releases of the session
// @Tags			Overview
// @Produce		json
// @Success		200	{object}	OverviewResponse
// @Router			/v1/overview [get]
func (co Controller) GetOverview(c *gin.Context) {
	releases := co.Data.Releases()
	resources := co.Data.Resources()
	allocations := co.Data.Allocations()

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	byRelease := make([]OverviewRelease, 0, len(releases))
	for _, release := range releases {
		byRelease = append(byRelease, OverviewRelease{
			ID:       release.ID,
			Name:     release.Name,
			TotalUSD: co.Costing.ReleaseTotalUSD(release, resources, co.Data.AllocationsForRelease(release.ID)),
		})
	}

	nReleases, nResources, nAllocations := co.Data.Counts()

	c.JSON(http.StatusOK, OverviewResponse{
		Data: &OverviewData{
			Releases:    nReleases,
			Resources:   nResources,
			Allocations: nAllocations,
			TotalUSD:    co.Costing.PortfolioTotalUSD(releases, resources, allocations),
			ByRelease:   byRelease,
		},
	})
}
