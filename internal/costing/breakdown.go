package costing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crewplan/backend/internal/models"
)

// Breakdown is the cost of one release, summed up overall, per month
// and per resource. ByMonth carries every month of the release span and
// ByResource every known resource, including the ones that cost nothing.
type Breakdown struct {
	TotalUSD   decimal.Decimal               `json:"totalUsd" example:"16800"`
	ByMonth    map[string]decimal.Decimal    `json:"byMonth"`
	ByResource map[uuid.UUID]decimal.Decimal `json:"byResource"`
}

// ReleaseBreakdown calculates the cost of the release.
//
// The release span is the source of truth: allocations booked outside
// of it are ignored. Allocations of resources that are not in the given
// collection are ignored as well, a deleted resource must not make the
// calculation fail.
func (a Assumptions) ReleaseBreakdown(release models.Release, resources []models.Resource, allocations []models.Allocation) Breakdown {
	months := release.Months()

	breakdown := Breakdown{
		TotalUSD:   decimal.Zero,
		ByMonth:    make(map[string]decimal.Decimal, len(months)),
		ByResource: make(map[uuid.UUID]decimal.Decimal, len(resources)),
	}

	inSpan := make(map[string]struct{}, len(months))
	for _, month := range months {
		breakdown.ByMonth[month.String()] = decimal.Zero
		inSpan[month.String()] = struct{}{}
	}

	resourcesByID := make(map[uuid.UUID]models.Resource, len(resources))
	for _, resource := range resources {
		resourcesByID[resource.ID] = resource
		breakdown.ByResource[resource.ID] = decimal.Zero
	}

	for _, allocation := range allocations {
		if allocation.ReleaseID != release.ID {
			continue
		}

		token := allocation.Month.String()
		if _, ok := inSpan[token]; !ok {
			continue
		}

		resource, ok := resourcesByID[allocation.ResourceID]
		if !ok {
			continue
		}

		cost := a.MonthlyCostUSD(resource, allocation.Percentage)
		breakdown.TotalUSD = breakdown.TotalUSD.Add(cost)
		breakdown.ByMonth[token] = breakdown.ByMonth[token].Add(cost)
		breakdown.ByResource[resource.ID] = breakdown.ByResource[resource.ID].Add(cost)
	}

	return breakdown
}

// ReleaseTotalUSD calculates the total cost of the release.
func (a Assumptions) ReleaseTotalUSD(release models.Release, resources []models.Resource, allocations []models.Allocation) decimal.Decimal {
	return a.ReleaseBreakdown(release, resources, allocations).TotalUSD
}

// PortfolioTotalUSD sums the total cost over all releases.
func (a Assumptions) PortfolioTotalUSD(releases []models.Release, resources []models.Resource, allocations []models.Allocation) decimal.Decimal {
	total := decimal.Zero
	for _, release := range releases {
		total = total.Add(a.ReleaseTotalUSD(release, resources, allocations))
	}

	return total
}
