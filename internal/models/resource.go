package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Location determines how many hours per working day a resource bills.
type Location string

const (
	Onsite   Location = "Onsite"
	Offshore Location = "Offshore"
)

// Valid reports whether the location is one of the known values.
func (l Location) Valid() bool {
	return l == Onsite || l == Offshore
}

// ParseLocation converts user input into a Location. Matching ignores
// case and surrounding whitespace.
func ParseLocation(input string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "onsite":
		return Onsite, nil
	case "offshore":
		return Offshore, nil
	default:
		return "", ErrLocationInvalid
	}
}

// Resource represents a person that can be allocated to releases.
type Resource struct {
	DefaultModel
	Name     string          `json:"name" example:"Riley Tanaka" default:""`
	Role     string          `json:"role" example:"Backend Developer" default:""`
	Location Location        `json:"location" example:"Onsite" default:"Onsite"`
	RateCAD  decimal.Decimal `json:"rateCAD" example:"132"` // Hourly rate in CAD
}
