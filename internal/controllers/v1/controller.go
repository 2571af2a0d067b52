// Package v1 implements the v1 API of the Crewplan backend.
package v1

import (
	"github.com/crewplan/backend/internal/costing"
	"github.com/crewplan/backend/internal/dataset"
	"github.com/crewplan/backend/internal/narrative"
)

// Controller carries the dependencies the request handlers need.
type Controller struct {
	Data      *dataset.Dataset    // The session store all handlers operate on
	Costing   costing.Assumptions // Conversion rate and working hours for cost calculations
	Summaries narrative.Summarizer
}
