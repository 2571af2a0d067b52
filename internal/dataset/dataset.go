// Package dataset implements the in-memory session store for Crewplan.
//
// All data lives for the lifetime of the process. The store keeps
// secondary indexes so that per-release and per-resource lookups do not
// scan the whole allocation table.
package dataset

import (
	"sync"

	"github.com/google/uuid"

	"github.com/crewplan/backend/internal/models"
)

// Dataset holds all releases, resources and allocations of a planning
// session. It is safe for concurrent use.
type Dataset struct {
	mu  sync.RWMutex
	ids models.IDSource

	releases    map[uuid.UUID]models.Release
	resources   map[uuid.UUID]models.Resource
	allocations map[uuid.UUID]models.Allocation

	// Secondary indexes over the allocations
	byRelease  map[uuid.UUID]map[uuid.UUID]struct{}
	byResource map[uuid.UUID]map[uuid.UUID]struct{}
	byCell     map[cellKey]uuid.UUID
}

// cellKey identifies the one slot an allocation can occupy. The month is
// keyed by its string token so that equal months always collide.
type cellKey struct {
	release  uuid.UUID
	resource uuid.UUID
	month    string
}

func cellOf(allocation models.Allocation) cellKey {
	return cellKey{
		release:  allocation.ReleaseID,
		resource: allocation.ResourceID,
		month:    allocation.Month.String(),
	}
}

// New returns an empty dataset that mints record ids with the given
// source.
func New(ids models.IDSource) *Dataset {
	d := &Dataset{ids: ids}
	d.reset()

	return d
}

// IDSource returns the id source the dataset mints record ids with, so
// that imported records get their ids from the same source.
func (d *Dataset) IDSource() models.IDSource {
	return d.ids
}

// reset replaces all maps with empty ones. The caller must hold the
// write lock, except during construction.
func (d *Dataset) reset() {
	d.releases = make(map[uuid.UUID]models.Release)
	d.resources = make(map[uuid.UUID]models.Resource)
	d.allocations = make(map[uuid.UUID]models.Allocation)
	d.byRelease = make(map[uuid.UUID]map[uuid.UUID]struct{})
	d.byResource = make(map[uuid.UUID]map[uuid.UUID]struct{})
	d.byCell = make(map[cellKey]uuid.UUID)
}

// index stores the allocation and registers it in all indexes. The
// caller must hold the write lock.
func (d *Dataset) index(allocation models.Allocation) {
	d.allocations[allocation.ID] = allocation

	if d.byRelease[allocation.ReleaseID] == nil {
		d.byRelease[allocation.ReleaseID] = make(map[uuid.UUID]struct{})
	}
	d.byRelease[allocation.ReleaseID][allocation.ID] = struct{}{}

	if d.byResource[allocation.ResourceID] == nil {
		d.byResource[allocation.ResourceID] = make(map[uuid.UUID]struct{})
	}
	d.byResource[allocation.ResourceID][allocation.ID] = struct{}{}

	d.byCell[cellOf(allocation)] = allocation.ID
}

// unindex removes the allocation from the primary map and all indexes.
// The caller must hold the write lock.
func (d *Dataset) unindex(id uuid.UUID) {
	allocation, ok := d.allocations[id]
	if !ok {
		return
	}

	delete(d.allocations, id)

	if ids := d.byRelease[allocation.ReleaseID]; ids != nil {
		delete(ids, id)
		if len(ids) == 0 {
			delete(d.byRelease, allocation.ReleaseID)
		}
	}

	if ids := d.byResource[allocation.ResourceID]; ids != nil {
		delete(ids, id)
		if len(ids) == 0 {
			delete(d.byResource, allocation.ResourceID)
		}
	}

	delete(d.byCell, cellOf(allocation))
}

// Replace swaps the whole session for the given collections and rebuilds
// all indexes. Records keep the ids they come with, the collections are
// trusted as the importer produced them.
func (d *Dataset) Replace(releases []models.Release, resources []models.Resource, allocations []models.Allocation) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.reset()

	for _, release := range releases {
		d.releases[release.ID] = release
	}

	for _, resource := range resources {
		d.resources[resource.ID] = resource
	}

	for _, allocation := range allocations {
		// Last one wins when the input books the same cell twice
		if existingID, ok := d.byCell[cellOf(allocation)]; ok {
			d.unindex(existingID)
		}
		d.index(allocation)
	}
}

// Clear drops all data from the session.
func (d *Dataset) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.reset()
}

// Counts reports how many releases, resources and allocations are stored.
func (d *Dataset) Counts() (releases, resources, allocations int) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.releases), len(d.resources), len(d.allocations)
}
