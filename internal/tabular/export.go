package tabular

import (
	"encoding/csv"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crewplan/backend/internal/costing"
	"github.com/crewplan/backend/internal/models"
)

// Export writes the planning file for the given collections.
//
// Every release gets one row per associated resource and month of its
// span. Associated means the resource has at least one allocation under
// the release, months the pair does not book are written with a zero
// allocation so that the file renders as a complete grid. Allocations
// that reference an unknown resource are skipped.
func Export(f io.Writer, releases []models.Release, resources []models.Resource, allocations []models.Allocation, assumptions costing.Assumptions) error {
	w := csv.NewWriter(f)

	if err := w.Write(header); err != nil {
		return err
	}

	resourcesByID := make(map[uuid.UUID]models.Resource, len(resources))
	for _, resource := range resources {
		resourcesByID[resource.ID] = resource
	}

	for _, release := range releases {
		// The percentage for every booked cell of the release and the
		// resources holding at least one booking
		percentages := make(map[uuid.UUID]map[string]models.Allocation)
		for _, allocation := range allocations {
			if allocation.ReleaseID != release.ID {
				continue
			}
			if _, ok := resourcesByID[allocation.ResourceID]; !ok {
				continue
			}

			if percentages[allocation.ResourceID] == nil {
				percentages[allocation.ResourceID] = make(map[string]models.Allocation)
			}
			percentages[allocation.ResourceID][allocation.Month.String()] = allocation
		}

		for _, resource := range resources {
			booked, ok := percentages[resource.ID]
			if !ok {
				continue
			}

			for _, month := range release.Months() {
				fraction := decimal.Zero
				if allocation, ok := booked[month.String()]; ok {
					fraction = allocation.Percentage
				}

				cost := assumptions.MonthlyCostUSD(resource, fraction)

				err := w.Write([]string{
					release.Name,
					release.StartMonth.String(),
					release.EndMonth.String(),
					resource.Name,
					resource.Role,
					string(resource.Location),
					resource.RateCAD.String(),
					month.String(),
					fraction.String(),
					cost.StringFixed(2),
				})
				if err != nil {
					return err
				}
			}
		}
	}

	w.Flush()

	return w.Error()
}
