// Package narrative produces the plain text summaries for releases.
package narrative

import (
	"context"

	"github.com/crewplan/backend/internal/models"
)

// A Summarizer writes a short text about the staffing and cost of a
// release. Implementations never fail, when no summary can be produced
// they fall back to a fixed text so that the rest of the session keeps
// working.
type Summarizer interface {
	Summarize(ctx context.Context, release models.Release, resources []models.Resource, allocations []models.Allocation) string
}
