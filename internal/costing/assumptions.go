// Package costing implements the cost model for resource allocations.
//
// All calculations run on decimals and are pure, the collections they
// work on are always passed in explicitly.
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/crewplan/backend/internal/models"
)

// Assumptions are the planning constants the cost model works with.
type Assumptions struct {
	USDToCAD      decimal.Decimal `json:"usdToCad" example:"1.32"`   // Exchange rate used to convert CAD rates to USD
	DaysPerMonth  decimal.Decimal `json:"daysPerMonth" example:"21"` // Working days per month
	HoursOnsite   decimal.Decimal `json:"hoursOnsite" example:"8"`   // Billable hours per day for onsite resources
	HoursOffshore decimal.Decimal `json:"hoursOffshore" example:"9"` // Billable hours per day for offshore resources
}

// DefaultAssumptions returns the planning constants Crewplan ships with.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		USDToCAD:      decimal.NewFromFloat(1.32),
		DaysPerMonth:  decimal.NewFromInt(21),
		HoursOnsite:   decimal.NewFromInt(8),
		HoursOffshore: decimal.NewFromInt(9),
	}
}

// HoursPerDay returns the billable hours per working day at the location.
func (a Assumptions) HoursPerDay(location models.Location) decimal.Decimal {
	if location == models.Offshore {
		return a.HoursOffshore
	}

	return a.HoursOnsite
}

// MonthlyCostUSD calculates what booking the resource at the given
// fraction of its capacity costs for one month. The fraction is used as
// is, a booking beyond full capacity costs proportionally more.
func (a Assumptions) MonthlyCostUSD(resource models.Resource, fraction decimal.Decimal) decimal.Decimal {
	hourlyUSD := resource.RateCAD.Div(a.USDToCAD)

	return hourlyUSD.
		Mul(a.DaysPerMonth).
		Mul(a.HoursPerDay(resource.Location)).
		Mul(fraction)
}
