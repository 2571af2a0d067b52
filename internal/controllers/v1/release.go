package v1

import (
	"net/http"

	"github.com/crewplan/backend/internal/httputil"
	"github.com/crewplan/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterReleaseRoutes registers the routes for releases with
// the RouterGroup that is passed.
func (co Controller) RegisterReleaseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsReleaseList)
		r.GET("", co.GetReleases)
		r.POST("", co.CreateReleases)
	}

	// Release with ID
	{
		r.OPTIONS("/:id", co.OptionsReleaseDetail)
		r.GET("/:id", co.GetRelease)
		r.PATCH("/:id", co.UpdateRelease)
		r.DELETE("/:id", co.DeleteRelease)
	}

	// Cost breakdown and narrative summary
	{
		r.OPTIONS("/:id/months", co.OptionsReleaseMonths)
		r.GET("/:id/months", co.GetReleaseMonths)
		r.OPTIONS("/:id/summary", co.OptionsReleaseSummary)
		r.GET("/:id/summary", co.GetReleaseSummary)
	}

	// Assignments of resources for the full planning window
	{
		r.OPTIONS("/:id/resources", co.OptionsReleaseResources)
		r.POST("/:id/resources", co.AssignReleaseResource)
		r.OPTIONS("/:id/resources/:resourceId", co.OptionsReleaseResourceDetail)
		r.DELETE("/:id/resources/:resourceId", co.UnassignReleaseResource)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Releases
// @Success		204
// @Router			/v1/releases [options]
func (co Controller) OptionsReleaseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Releases
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/releases/{id} [options]
func (co Controller) OptionsReleaseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.Data.Release(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Releases
// @Success		204
// @Router			/v1/releases/{id}/months [options]
func (co Controller) OptionsReleaseMonths(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Releases
// @Success		204
// @Router			/v1/releases/{id}/summary [options]
func (co Controller) OptionsReleaseSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Releases
// @Success		204
// @Router			/v1/releases/{id}/resources [options]
func (co Controller) OptionsReleaseResources(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Releases
// @Success		204
// @Router			/v1/releases/{id}/resources/{resourceId} [options]
func (co Controller) OptionsReleaseResourceDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Create releases
// @Description	Creates new releases
// @Tags			Releases
// @Produce		json
// @Success		201			{object}	ReleaseCreateResponse
// @Failure		400			{object}	ReleaseCreateResponse
// @Failure		500			{object}	ReleaseCreateResponse
// @Param			releases	body		[]ReleaseEditable	true	"Releases"
// @Router			/v1/releases [post]
func (co Controller) CreateReleases(c *gin.Context) {
	var editables []ReleaseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReleaseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ReleaseCreateResponse{}

	for _, editable := range editables {
		release, err := co.Data.CreateRelease(editable.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newRelease(c, release)
		r.Data = append(r.Data, ReleaseResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List releases
// @Description	Returns a list of releases
// @Tags			Releases
// @Produce		json
// @Success		200	{object}	ReleaseListResponse
// @Failure		400	{object}	ReleaseListResponse
// @Failure		500	{object}	ReleaseListResponse
// @Router			/v1/releases [get]
// @Param			name	query	string	false	"Filter by name, * is a wildcard"
// @Param			offset	query	uint	false	"The offset of the first Release returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Releases to return. Defaults to 50."
func (co Controller) GetReleases(c *gin.Context) {
	var filter ReleaseQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ReleaseListResponse{
			Error: &s,
		})
		return
	}

	// Get the set parameters in the query string
	setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Releases are sorted by name, filtering keeps that order
	var matches []models.Release
	for _, release := range co.Data.Releases() {
		if slices.Contains(setFields, "Name") && !glob.Glob(filter.Name, release.Name) {
			continue
		}

		matches = append(matches, release)
	}

	// Set the offset. Does not need checking since the default is 0
	offset := int(filter.Offset)
	if offset > len(matches) {
		offset = len(matches)
	}

	// Default to 50 Releases and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	end := len(matches)
	if limit >= 0 && offset+limit < end {
		end = offset + limit
	}

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	data := make([]Release, 0)
	for _, release := range matches[offset:end] {
		data = append(data, newRelease(c, release))
	}

	c.JSON(http.StatusOK, ReleaseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  int64(len(matches)),
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get release
// @Description	Returns a specific release
// @Tags			Releases
// @Produce		json
// @Success		200	{object}	ReleaseResponse
// @Failure		400	{object}	ReleaseResponse
// @Failure		404	{object}	ReleaseResponse
// @Failure		500	{object}	ReleaseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/releases/{id} [get]
func (co Controller) GetRelease(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReleaseResponse{
			Error: &s,
		})
		return
	}

	release, err := co.Data.Release(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReleaseResponse{
			Error: &s,
		})
		return
	}

	data := newRelease(c, release)
	c.JSON(http.StatusOK, ReleaseResponse{Data: &data})
}

// @Summary		Update release
// @Description	Updates a release. Only values to be updated need to be specified.
// @Tags			Releases
// @Produce		json
// @Success		200		{object}	ReleaseResponse
// @Failure		400		{object}	ReleaseResponse
// @Failure		404		{object}	ReleaseResponse
// @Failure		500		{object}	ReleaseResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			release	body		ReleaseEditable	true	"Release"
// @Router			/v1/releases/{id} [patch]
func (co Controller) UpdateRelease(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReleaseResponse{
			Error: &s,
		})
		return
	}

	release, err := co.Data.Release(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReleaseResponse{
			Error: &s,
		})
		return
	}

	// Prefill the editable with the current values so that fields
	// the request body does not set keep their values
	data := ReleaseEditable{
		Name:       release.Name,
		StartMonth: release.StartMonth,
		EndMonth:   release.EndMonth,
	}

	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReleaseResponse{
			Error: &s,
		})
		return
	}

	release, err = co.Data.UpdateRelease(uri.ID.UUID, data.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReleaseResponse{
			Error: &s,
		})
		return
	}

	apiResource := newRelease(c, release)
	c.JSON(http.StatusOK, ReleaseResponse{Data: &apiResource})
}

// @Summary		Delete release
// @Description	Deletes a release and all allocations booked under it
// @Tags			Releases
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/releases/{id} [delete]
func (co Controller) DeleteRelease(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.Data.DeleteRelease(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get cost breakdown
// @Description	Returns the cost of a release for every month of its planning window
// @Tags			Releases
// @Produce		json
// @Success		200	{object}	ReleaseMonthsResponse
// @Failure		400	{object}	ReleaseMonthsResponse
// @Failure		404	{object}	ReleaseMonthsResponse
// @Failure		500	{object}	ReleaseMonthsResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/releases/{id}/months [get]
func (co Controller) GetReleaseMonths(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReleaseMonthsResponse{
			Error: &s,
		})
		return
	}

	release, err := co.Data.Release(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReleaseMonthsResponse{
			Error: &s,
		})
		return
	}

	data := ReleaseMonths{
		Months:    release.Months(),
		Breakdown: co.Costing.ReleaseBreakdown(release, co.Data.Resources(), co.Data.AllocationsForRelease(release.ID)),
	}

	c.JSON(http.StatusOK, ReleaseMonthsResponse{Data: &data})
}

// @Summary		Get summary
// @Description	Returns a short narrative summary of the release plan and its costs
// @Tags			Releases
// @Produce		json
// @Success		200	{object}	ReleaseSummaryResponse
// @Failure		400	{object}	ReleaseSummaryResponse
// @Failure		404	{object}	ReleaseSummaryResponse
// @Failure		500	{object}	ReleaseSummaryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/releases/{id}/summary [get]
func (co Controller) GetReleaseSummary(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReleaseSummaryResponse{
			Error: &s,
		})
		return
	}

	release, err := co.Data.Release(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReleaseSummaryResponse{
			Error: &s,
		})
		return
	}

	summary := co.Summaries.Summarize(c.Request.Context(), release, co.Data.Resources(), co.Data.AllocationsForRelease(release.ID))

	c.JSON(http.StatusOK, ReleaseSummaryResponse{Data: &ReleaseSummary{Summary: summary}})
}

// @Summary		Assign resource
// @Description	Books a resource on a release at 100% for every month of the planning window
// @Tags			Releases
// @Produce		json
// @Success		201			{object}	AssignmentResponse
// @Failure		400			{object}	AssignmentResponse
// @Failure		404			{object}	AssignmentResponse
// @Failure		500			{object}	AssignmentResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			assignment	body		AssignmentEditable	true	"Assignment"
// @Router			/v1/releases/{id}/resources [post]
func (co Controller) AssignReleaseResource(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AssignmentResponse{
			Error: &s,
		})
		return
	}

	var editable AssignmentEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AssignmentResponse{
			Error: &s,
		})
		return
	}

	allocations, err := co.Data.AssignResource(uri.ID.UUID, editable.ResourceID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AssignmentResponse{
			Error: &s,
		})
		return
	}

	data := make([]Allocation, 0, len(allocations))
	for _, allocation := range allocations {
		data = append(data, newAllocation(c, allocation))
	}

	c.JSON(http.StatusCreated, AssignmentResponse{Data: data})
}

// @Summary		Unassign resource
// @Description	Removes every allocation booking the resource on the release
// @Tags			Releases
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIAssignment	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/releases/{id}/resources/{resourceId} [delete]
func (co Controller) UnassignReleaseResource(c *gin.Context) {
	var uri URIAssignment
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.Data.RemoveAssignment(uri.ID.UUID, uri.ResourceID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
