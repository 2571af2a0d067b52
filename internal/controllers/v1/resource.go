package v1

import (
	"net/http"

	"github.com/crewplan/backend/internal/httputil"
	"github.com/crewplan/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterResourceRoutes registers the routes for resources with
// the RouterGroup that is passed.
func (co Controller) RegisterResourceRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsResourceList)
		r.GET("", co.GetResources)
		r.POST("", co.CreateResources)
	}

	// Resource with ID
	{
		r.OPTIONS("/:id", co.OptionsResourceDetail)
		r.GET("/:id", co.GetResource)
		r.PATCH("/:id", co.UpdateResource)
		r.DELETE("/:id", co.DeleteResource)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Resources
// @Success		204
// @Router			/v1/resources [options]
func (co Controller) OptionsResourceList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Resources
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/resources/{id} [options]
func (co Controller) OptionsResourceDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.Data.Resource(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create resources
// @Description	Creates new resources
// @Tags			Resources
// @Produce		json
// @Success		201			{object}	ResourceCreateResponse
// @Failure		400			{object}	ResourceCreateResponse
// @Failure		500			{object}	ResourceCreateResponse
// @Param			resources	body		[]ResourceEditable	true	"Resources"
// @Router			/v1/resources [post]
func (co Controller) CreateResources(c *gin.Context) {
	var editables []ResourceEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ResourceCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ResourceCreateResponse{}

	for _, editable := range editables {
		resource, err := co.Data.CreateResource(editable.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newResource(c, resource)
		r.Data = append(r.Data, ResourceResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List resources
// @Description	Returns a list of resources
// @Tags			Resources
// @Produce		json
// @Success		200	{object}	ResourceListResponse
// @Failure		400	{object}	ResourceListResponse
// @Failure		500	{object}	ResourceListResponse
// @Router			/v1/resources [get]
// @Param			name		query	string	false	"Filter by name, * is a wildcard"
// @Param			role		query	string	false	"Filter by role, * is a wildcard"
// @Param			location	query	string	false	"Filter by location, matched exactly"
// @Param			offset		query	uint	false	"The offset of the first Resource returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Resources to return. Defaults to 50."
func (co Controller) GetResources(c *gin.Context) {
	var filter ResourceQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ResourceListResponse{
			Error: &s,
		})
		return
	}

	// Get the set parameters in the query string
	setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Resources are sorted by name, filtering keeps that order
	var matches []models.Resource
	for _, resource := range co.Data.Resources() {
		if slices.Contains(setFields, "Name") && !glob.Glob(filter.Name, resource.Name) {
			continue
		}

		if slices.Contains(setFields, "Role") && !glob.Glob(filter.Role, resource.Role) {
			continue
		}

		if slices.Contains(setFields, "Location") && string(resource.Location) != filter.Location {
			continue
		}

		matches = append(matches, resource)
	}

	// Set the offset. Does not need checking since the default is 0
	offset := int(filter.Offset)
	if offset > len(matches) {
		offset = len(matches)
	}

	// Default to 50 Resources and set the limit
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
	data := make([]Resource, 0)
	for _, resource := range matches[offset:end] {
		data = append(data, newResource(c, resource))
	}

	c.JSON(http.StatusOK, ResourceListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  int64(len(matches)),
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get resource
// @Description	Returns a specific resource
// @Tags			Resources
// @Produce		json
// @Success		200	{object}	ResourceResponse
// @Failure		400	{object}	ResourceResponse
// @Failure		404	{object}	ResourceResponse
// @Failure		500	{object}	ResourceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/resources/{id} [get]
func (co Controller) GetResource(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ResourceResponse{
			Error: &s,
		})
		return
	}

	resource, err := co.Data.Resource(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ResourceResponse{
			Error: &s,
		})
		return
	}

	data := newResource(c, resource)
	c.JSON(http.StatusOK, ResourceResponse{Data: &data})
}

// @Summary		Update resource
// @Description	Updates a resource. Only values to be updated need to be specified.
// @Tags			Resources
// @Produce		json
// @Success		200			{object}	ResourceResponse
// @Failure		400			{object}	ResourceResponse
// @Failure		404			{object}	ResourceResponse
// @Failure		500			{object}	ResourceResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			resource	body		ResourceEditable	true	"Resource"
// @Router			/v1/resources/{id} [patch]
func (co Controller) UpdateResource(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ResourceResponse{
			Error: &s,
		})
		return
	}

	resource, err := co.Data.Resource(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ResourceResponse{
			Error: &s,
		})
		return
	}

	// Prefill the editable with the current values so that fields
	// the request body does not set keep their values
	data := ResourceEditable{
		Name:     resource.Name,
		Role:     resource.Role,
		Location: resource.Location,
		RateCAD:  resource.RateCAD,
	}

	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ResourceResponse{
			Error: &s,
		})
		return
	}

	resource, err = co.Data.UpdateResource(uri.ID.UUID, data.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ResourceResponse{
			Error: &s,
		})
		return
	}

	apiResource := newResource(c, resource)
	c.JSON(http.StatusOK, ResourceResponse{Data: &apiResource})
}

// @Summary		Delete resource
// @Description	Deletes a resource. Allocations booking it are kept and priced at zero.
// @Tags			Resources
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/resources/{id} [delete]
func (co Controller) DeleteResource(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.Data.DeleteResource(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
