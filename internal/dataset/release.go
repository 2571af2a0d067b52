package dataset

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/crewplan/backend/internal/models"
)

// CreateRelease stores a new release and returns it with its assigned id.
func (d *Dataset) CreateRelease(create models.Release) (models.Release, error) {
	create.Name = strings.TrimSpace(create.Name)
	if create.Name == "" {
		return models.Release{}, models.ErrReleaseNameEmpty
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	create.ID = d.ids()
	d.releases[create.ID] = create

	return create, nil
}

// Release returns the release with the given id.
func (d *Dataset) Release(id uuid.UUID) (models.Release, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	release, ok := d.releases[id]
	if !ok {
		return models.Release{}, models.ErrReleaseNotFound
	}

	return release, nil
}

// Releases returns all releases, sorted by name.
func (d *Dataset) Releases() []models.Release {
	d.mu.RLock()
	defer d.mu.RUnlock()

	releases := make([]models.Release, 0, len(d.releases))
	for _, release := range d.releases {
		releases = append(releases, release)
	}

	sort.Slice(releases, func(i, j int) bool {
		if releases[i].Name != releases[j].Name {
			return releases[i].Name < releases[j].Name
		}
		return releases[i].ID.String() < releases[j].ID.String()
	})

	return releases
}

// UpdateRelease overwrites the release with the given data, keeping its id.
func (d *Dataset) UpdateRelease(id uuid.UUID, update models.Release) (models.Release, error) {
	update.Name = strings.TrimSpace(update.Name)
	if update.Name == "" {
		return models.Release{}, models.ErrReleaseNameEmpty
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.releases[id]; !ok {
		return models.Release{}, models.ErrReleaseNotFound
	}

	update.ID = id
	d.releases[id] = update

	return update, nil
}

// DeleteRelease removes the release together with all of its
// allocations. The store is left untouched when the id is unknown.
func (d *Dataset) DeleteRelease(id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.releases[id]; !ok {
		return models.ErrReleaseNotFound
	}

	ids := make([]uuid.UUID, 0, len(d.byRelease[id]))
	for allocationID := range d.byRelease[id] {
		ids = append(ids, allocationID)
	}
	for _, allocationID := range ids {
		d.unindex(allocationID)
	}

	delete(d.releases, id)

	return nil
}
