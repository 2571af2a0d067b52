// Package tabular implements the CSV planning file format.
//
// The format is the only persistence Crewplan has: the whole session
// round-trips through one file with a fixed set of columns. Each data
// row encodes a release, a resource and the booking of that resource
// for one month.
package tabular

// Columns of the planning file, in order.
const (
	colRelease = iota
	colStartMonth
	colEndMonth
	colResource
	colRole
	colLocation
	colRate
	colMonth
	colAllocation
	colCost

	columnCount
)

// header is the first line of every planning file. The cost column is
// derived data, it is written on export and ignored on import.
var header = []string{
	"Release",
	"Start Month",
	"End Month",
	"Resource",
	"Role",
	"Location",
	"Rate (CAD)",
	"Month",
	"Allocation",
	"Cost (USD)",
}
