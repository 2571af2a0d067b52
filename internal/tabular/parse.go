package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crewplan/backend/internal/models"
	"github.com/crewplan/backend/internal/types"
)

// Result holds the collections a parsed planning file produced,
// together with the warnings that accumulated along the way.
type Result struct {
	Releases    []models.Release
	Resources   []models.Resource
	Allocations []models.Allocation
	Warnings    []Warning
}

// Warning records one line of the planning file that could not be
// imported cleanly and why.
type Warning struct {
	Line int
	Err  error
}

// Warnings a line of the planning file can carry.
var (
	ErrLineFields        = errors.New("the line does not have the same number of fields as the header")
	ErrReleaseNameEmpty  = errors.New("the release name is empty, the line is skipped")
	ErrResourceNameEmpty = errors.New("the resource name is empty, the line is skipped")
	ErrMonthInvalid      = errors.New("the month could not be parsed, it must be formatted as YYYY-MM")
	ErrRateInvalid       = errors.New("the rate could not be parsed to a decimal")
	ErrAllocationInvalid = errors.New("the allocation could not be parsed to a decimal")
	ErrBoundsInvalid     = errors.New("the release months could not be parsed, the release is imported without a span")
	ErrReleaseMismatch   = errors.New("the line defines the release differently than an earlier line, the first definition wins")
	ErrResourceMismatch  = errors.New("the line defines the resource differently than an earlier line, the first definition wins")
	ErrBookingReplaced   = errors.New("the line books the same release, resource and month as an earlier line and replaces that booking")
)

type bookingKey struct {
	release  uuid.UUID
	resource uuid.UUID
	month    string
}

// Parse reads a planning file and rebuilds the collections it encodes.
//
// Releases and resources are deduplicated by name: the first line
// mentioning a name mints the record, later lines reuse its id. Every
// accepted line creates exactly one allocation, zero bookings included.
// Lines that cannot be imported are reported as warnings, only a broken
// reader aborts parsing.
func Parse(f io.Reader, ids models.IDSource) (Result, error) {
	reader := csv.NewReader(f)

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	result := Result{
		Releases:    make([]models.Release, 0),
		Resources:   make([]models.Resource, 0),
		Allocations: make([]models.Allocation, 0),
		Warnings:    make([]Warning, 0),
	}

	// Skip the first line. The column count is fixed, the header says
	// nothing we need
	_, err := reader.Read()
	if err == io.EOF {
		return result, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("could not read the header line of the CSV: %w", err)
	}
	reader.FieldsPerRecord = columnCount

	releaseIndex := make(map[string]int)
	resourceIndex := make(map[string]int)
	bookingIndex := make(map[bookingKey]int)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return Result{}, fmt.Errorf("could not read line in CSV: %w", err)
			}

			if errors.Is(parseErr, csv.ErrFieldCount) {
				result.Warnings = append(result.Warnings, Warning{Line: parseErr.Line, Err: ErrLineFields})
			} else {
				result.Warnings = append(result.Warnings, Warning{Line: parseErr.Line, Err: fmt.Errorf("the line is not valid CSV: %w", parseErr.Err)})
			}
			continue
		}

		// always use the first field, we are only interested in the line
		line, _ := reader.FieldPos(1)

		releaseName := strings.TrimSpace(record[colRelease])
		if releaseName == "" {
			result.Warnings = append(result.Warnings, Warning{Line: line, Err: ErrReleaseNameEmpty})
			continue
		}

		resourceName := strings.TrimSpace(record[colResource])
		if resourceName == "" {
			result.Warnings = append(result.Warnings, Warning{Line: line, Err: ErrResourceNameEmpty})
			continue
		}

		month, err := types.ParseMonth(strings.TrimSpace(record[colMonth]))
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{Line: line, Err: ErrMonthInvalid})
			continue
		}

		fraction, err := decimal.NewFromString(strings.TrimSpace(record[colAllocation]))
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{Line: line, Err: ErrAllocationInvalid})
			continue
		}

		rate, err := decimal.NewFromString(strings.TrimSpace(record[colRate]))
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{Line: line, Err: ErrRateInvalid})
			continue
		}

		location, err := models.ParseLocation(record[colLocation])
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{Line: line, Err: err})
			continue
		}

		// The cost column is derived data and ignored on import

		start, startErr := types.ParseMonth(strings.TrimSpace(record[colStartMonth]))
		end, endErr := types.ParseMonth(strings.TrimSpace(record[colEndMonth]))

		index, ok := releaseIndex[releaseName]
		if !ok {
			release := models.Release{
				DefaultModel: models.DefaultModel{ID: ids()},
				Name:         releaseName,
			}

			if startErr != nil || endErr != nil {
				result.Warnings = append(result.Warnings, Warning{Line: line, Err: ErrBoundsInvalid})
			} else {
				release.StartMonth = start
				release.EndMonth = end
			}

			index = len(result.Releases)
			releaseIndex[releaseName] = index
			result.Releases = append(result.Releases, release)
		} else if startErr == nil && endErr == nil {
			release := result.Releases[index]
			if !release.StartMonth.Equal(start) || !release.EndMonth.Equal(end) {
				result.Warnings = append(result.Warnings, Warning{Line: line, Err: ErrReleaseMismatch})
			}
		}
		releaseID := result.Releases[index].ID

		role := strings.TrimSpace(record[colRole])

		index, ok = resourceIndex[resourceName]
		if !ok {
			index = len(result.Resources)
			resourceIndex[resourceName] = index
			result.Resources = append(result.Resources, models.Resource{
				DefaultModel: models.DefaultModel{ID: ids()},
				Name:         resourceName,
				Role:         role,
				Location:     location,
				RateCAD:      rate,
			})
		} else {
			resource := result.Resources[index]
			if resource.Role != role || resource.Location != location || !resource.RateCAD.Equal(rate) {
				result.Warnings = append(result.Warnings, Warning{Line: line, Err: ErrResourceMismatch})
			}
		}
		resourceID := result.Resources[index].ID

		key := bookingKey{release: releaseID, resource: resourceID, month: month.String()}
		if existing, ok := bookingIndex[key]; ok {
			result.Allocations[existing].Percentage = fraction
			result.Warnings = append(result.Warnings, Warning{Line: line, Err: ErrBookingReplaced})
			continue
		}

		bookingIndex[key] = len(result.Allocations)
		result.Allocations = append(result.Allocations, models.Allocation{
			DefaultModel: models.DefaultModel{ID: ids()},
			ReleaseID:    releaseID,
			ResourceID:   resourceID,
			Month:        month,
			Percentage:   fraction,
		})
	}

	return result, nil
}
