package models

import (
	"errors"
	"fmt"
)

var (
	// ErrGeneral is used when the server cannot handle a request correctly.
	ErrGeneral = errors.New("an error occurred on the server during your request")

	// ErrNotFound is the base error for all lookups of records that do not
	// exist. Wrap it with the name of the record type.
	ErrNotFound = errors.New("there is no")
)

var (
	ErrReleaseNotFound    = fmt.Errorf("%w release matching your query", ErrNotFound)
	ErrResourceNotFound   = fmt.Errorf("%w resource matching your query", ErrNotFound)
	ErrAllocationNotFound = fmt.Errorf("%w allocation matching your query", ErrNotFound)
)

var (
	ErrReleaseNameEmpty       = errors.New("the name of the release must not be empty")
	ErrResourceNameEmpty      = errors.New("the name of the resource must not be empty")
	ErrResourceRateNegative   = errors.New("the hourly rate of the resource must not be negative")
	ErrLocationInvalid        = errors.New("the location of the resource must be one of Onsite, Offshore")
	ErrAllocationRelease      = errors.New("there is no release with the specified ID")
	ErrAllocationResource     = errors.New("there is no resource with the specified ID")
	ErrAllocationMonthNotSet  = errors.New("the month of the allocation must be set")
	ErrPercentageOutOfRange   = errors.New("the percentage of an allocation must be between 0 and 1")
	ErrAllocationCellOccupied = errors.New("you can not create multiple allocations for the same release, resource and month")
)
