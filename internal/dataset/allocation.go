package dataset

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crewplan/backend/internal/models"
)

var fullyBooked = decimal.NewFromInt(1)

func validateAllocation(allocation models.Allocation) error {
	if allocation.Month.IsZero() {
		return models.ErrAllocationMonthNotSet
	}

	if allocation.Percentage.IsNegative() || allocation.Percentage.GreaterThan(fullyBooked) {
		return models.ErrPercentageOutOfRange
	}

	return nil
}

// checkReferences verifies that the release and resource the allocation
// points to exist. The caller must hold at least the read lock.
func (d *Dataset) checkReferences(allocation models.Allocation) error {
	if _, ok := d.releases[allocation.ReleaseID]; !ok {
		return models.ErrAllocationRelease
	}

	if _, ok := d.resources[allocation.ResourceID]; !ok {
		return models.ErrAllocationResource
	}

	return nil
}

// UpsertAllocation books the allocation's percentage for its release,
// resource and month. When that combination is already booked, the
// existing allocation keeps its id and only the percentage changes.
// The returned bool reports whether a new record was created.
func (d *Dataset) UpsertAllocation(create models.Allocation) (models.Allocation, bool, error) {
	if err := validateAllocation(create); err != nil {
		return models.Allocation{}, false, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkReferences(create); err != nil {
		return models.Allocation{}, false, err
	}

	if existingID, ok := d.byCell[cellOf(create)]; ok {
		existing := d.allocations[existingID]
		existing.Percentage = create.Percentage
		d.allocations[existingID] = existing

		return existing, false, nil
	}

	create.ID = d.ids()
	d.index(create)

	return create, true, nil
}

// Allocation returns the allocation with the given id.
func (d *Dataset) Allocation(id uuid.UUID) (models.Allocation, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	allocation, ok := d.allocations[id]
	if !ok {
		return models.Allocation{}, models.ErrAllocationNotFound
	}

	return allocation, nil
}

// Allocations returns all allocations, sorted by month.
func (d *Dataset) Allocations() []models.Allocation {
	d.mu.RLock()
	defer d.mu.RUnlock()

	allocations := make([]models.Allocation, 0, len(d.allocations))
	for _, allocation := range d.allocations {
		allocations = append(allocations, allocation)
	}
	sortAllocations(allocations)

	return allocations
}

// AllocationsForRelease returns the allocations booked under the release.
func (d *Dataset) AllocationsForRelease(releaseID uuid.UUID) []models.Allocation {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.collect(d.byRelease[releaseID])
}

// AllocationsForResource returns the allocations booked for the resource.
func (d *Dataset) AllocationsForResource(resourceID uuid.UUID) []models.Allocation {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.collect(d.byResource[resourceID])
}

// UpdateAllocation overwrites the allocation with the given data,
// keeping its id. Moving it onto a combination of release, resource and
// month that another allocation already books is a conflict.
func (d *Dataset) UpdateAllocation(id uuid.UUID, update models.Allocation) (models.Allocation, error) {
	if err := validateAllocation(update); err != nil {
		return models.Allocation{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.allocations[id]
	if !ok {
		return models.Allocation{}, models.ErrAllocationNotFound
	}

	if err := d.checkReferences(update); err != nil {
		return models.Allocation{}, err
	}

	if occupant, ok := d.byCell[cellOf(update)]; ok && occupant != id {
		return models.Allocation{}, models.ErrAllocationCellOccupied
	}

	d.unindex(id)
	update.ID = id
	d.index(update)

	return update, nil
}

// DeleteAllocation removes the allocation. The store is left untouched
// when the id is unknown.
func (d *Dataset) DeleteAllocation(id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.allocations[id]; !ok {
		return models.ErrAllocationNotFound
	}

	d.unindex(id)

	return nil
}

// AssignResource books the resource at 100% for every month of the
// release span. Months the pair already books are raised to 100%, their
// allocations keep their ids. A release without a valid span gets no
// allocations.
func (d *Dataset) AssignResource(releaseID, resourceID uuid.UUID) ([]models.Allocation, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	release, ok := d.releases[releaseID]
	if !ok {
		return nil, models.ErrReleaseNotFound
	}

	if _, ok := d.resources[resourceID]; !ok {
		return nil, models.ErrResourceNotFound
	}

	months := release.Months()
	allocations := make([]models.Allocation, 0, len(months))

	for _, month := range months {
		allocation := models.Allocation{
			ReleaseID:  releaseID,
			ResourceID: resourceID,
			Month:      month,
			Percentage: fullyBooked,
		}

		if existingID, ok := d.byCell[cellOf(allocation)]; ok {
			existing := d.allocations[existingID]
			existing.Percentage = fullyBooked
			d.allocations[existingID] = existing
			allocations = append(allocations, existing)
			continue
		}

		allocation.ID = d.ids()
		d.index(allocation)
		allocations = append(allocations, allocation)
	}

	return allocations, nil
}

// RemoveAssignment deletes every allocation the resource has under the
// release and reports how many were removed. The resource does not have
// to exist anymore.
func (d *Dataset) RemoveAssignment(releaseID, resourceID uuid.UUID) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.releases[releaseID]; !ok {
		return 0, models.ErrReleaseNotFound
	}

	ids := make([]uuid.UUID, 0)
	for allocationID := range d.byRelease[releaseID] {
		if d.allocations[allocationID].ResourceID == resourceID {
			ids = append(ids, allocationID)
		}
	}
	for _, allocationID := range ids {
		d.unindex(allocationID)
	}

	return len(ids), nil
}

// collect resolves a set of allocation ids into a sorted slice. The
// caller must hold at least the read lock.
func (d *Dataset) collect(ids map[uuid.UUID]struct{}) []models.Allocation {
	allocations := make([]models.Allocation, 0, len(ids))
	for id := range ids {
		allocations = append(allocations, d.allocations[id])
	}
	sortAllocations(allocations)

	return allocations
}

func sortAllocations(allocations []models.Allocation) {
	sort.Slice(allocations, func(i, j int) bool {
		a, b := allocations[i], allocations[j]
		if !a.Month.Equal(b.Month) {
			return a.Month.Before(b.Month)
		}
		if a.ReleaseID != b.ReleaseID {
			return a.ReleaseID.String() < b.ReleaseID.String()
		}
		return a.ResourceID.String() < b.ResourceID.String()
	})
}
