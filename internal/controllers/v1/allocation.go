package v1

import (
	"net/http"

	"github.com/crewplan/backend/internal/httputil"
	"github.com/crewplan/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterAllocationRoutes registers the routes for allocations with
// the RouterGroup that is passed.
func (co Controller) RegisterAllocationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsAllocationList)
		r.GET("", co.GetAllocations)
		r.POST("", co.CreateAllocations)
	}

	// Allocation with ID
	{
		r.OPTIONS("/:id", co.OptionsAllocationDetail)
		r.GET("/:id", co.GetAllocation)
		r.PATCH("/:id", co.UpdateAllocation)
		r.DELETE("/:id", co.DeleteAllocation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func (co Controller) OptionsAllocationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [options]
func (co Controller) OptionsAllocationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.Data.Allocation(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create allocations
// @Description	Creates new allocations. An existing booking for the same release, resource and month is replaced.
// @Tags			Allocations
// @Produce		json
// @Success		200			{object}	AllocationCreateResponse
// @Success		201			{object}	AllocationCreateResponse
// @Failure		400			{object}	AllocationCreateResponse
// @Failure		500			{object}	AllocationCreateResponse
// @Param			allocations	body		[]AllocationEditable	true	"Allocations"
// @Router			/v1/allocations [post]
func (co Controller) CreateAllocations(c *gin.Context) {
	var editables []AllocationEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AllocationCreateResponse{}

	created := false
	for _, editable := range editables {
		allocation, isNew, err := co.Data.UpsertAllocation(editable.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		if isNew {
			created = true
		}

		data := newAllocation(c, allocation)
		r.Data = append(r.Data, AllocationResponse{Data: &data})
	}

	// A request that only replaced existing bookings reports 200
	if status == http.StatusCreated && !created && len(editables) > 0 {
		status = http.StatusOK
	}

	c.JSON(status, r)
}

// @Summary		List allocations
// @Description	Returns a list of allocations
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationListResponse
// @Failure		400	{object}	AllocationListResponse
// @Failure		500	{object}	AllocationListResponse
// @Router			/v1/allocations [get]
// @Param			release		query	string	false	"Filter by release ID"
// @Param			resource	query	string	false	"Filter by resource ID"
// @Param			month		query	string	false	"Filter by month (YYYY-MM)"
// @Param			offset		query	uint	false	"The offset of the first Allocation returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Allocations to return. Defaults to 50."
func (co Controller) GetAllocations(c *gin.Context) {
	var filter AllocationQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AllocationListResponse{
			Error: &s,
		})
		return
	}

	// Get the set parameters in the query string
	setFields := httputil.GetURLFields(c.Request.URL, filter)

	releaseID, err := httputil.UUIDFromString(filter.Release)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AllocationListResponse{
			Error: &s,
		})
		return
	}

	resourceID, err := httputil.UUIDFromString(filter.Resource)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AllocationListResponse{
			Error: &s,
		})
		return
	}

	// Allocations are sorted by month, filtering keeps that order
	var matches []models.Allocation
	for _, allocation := range co.Data.Allocations() {
		if slices.Contains(setFields, "Release") && allocation.ReleaseID != releaseID {
			continue
		}

		if slices.Contains(setFields, "Resource") && allocation.ResourceID != resourceID {
			continue
		}

		if slices.Contains(setFields, "Month") && !allocation.Month.Equal(filter.Month) {
			continue
		}

		matches = append(matches, allocation)
	}

	// Set the offset. Does not need checking since the default is 0
	offset := int(filter.Offset)
	if offset > len(matches) {
		offset = len(matches)
	}

	// Default to 50 Allocations and set the limit
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
	data := make([]Allocation, 0)
	for _, allocation := range matches[offset:end] {
		data = append(data, newAllocation(c, allocation))
	}

	c.JSON(http.StatusOK, AllocationListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  int64(len(matches)),
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get allocation
// @Description	Returns a specific allocation
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationResponse
// @Failure		400	{object}	AllocationResponse
// @Failure		404	{object}	AllocationResponse
// @Failure		500	{object}	AllocationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [get]
func (co Controller) GetAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	allocation, err := co.Data.Allocation(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	data := newAllocation(c, allocation)
	c.JSON(http.StatusOK, AllocationResponse{Data: &data})
}

// @Summary		Update allocation
// @Description	Updates an allocation. Only values to be updated need to be specified.
// @Tags			Allocations
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/v1/allocations/{id} [patch]
func (co Controller) UpdateAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	allocation, err := co.Data.Allocation(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	// Prefill the editable with the current values so that fields
	// the request body does not set keep their values
	data := AllocationEditable{
		ReleaseID:  allocation.ReleaseID,
		ResourceID: allocation.ResourceID,
		Month:      allocation.Month,
		Percentage: allocation.Percentage,
	}

	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	allocation, err = co.Data.UpdateAllocation(uri.ID.UUID, data.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	apiResource := newAllocation(c, allocation)
	c.JSON(http.StatusOK, AllocationResponse{Data: &apiResource})
}

// @Summary		Delete allocation
// @Description	Deletes an allocation
// @Tags			Allocations
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [delete]
func (co Controller) DeleteAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.Data.DeleteAllocation(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
