package v1

import (
	cp_uuid "github.com/crewplan/backend/internal/uuid"
)

type URIID struct {
	ID cp_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type URIAssignment struct {
	ID         cp_uuid.UUID `uri:"id" binding:"required"`         // The ID of the release
	ResourceID cp_uuid.UUID `uri:"resourceId" binding:"required"` // The ID of the resource
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
