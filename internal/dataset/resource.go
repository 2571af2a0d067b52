package dataset

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/crewplan/backend/internal/models"
)

func validateResource(resource *models.Resource) error {
	resource.Name = strings.TrimSpace(resource.Name)
	resource.Role = strings.TrimSpace(resource.Role)

	if resource.Name == "" {
		return models.ErrResourceNameEmpty
	}

	if resource.Location == "" {
		resource.Location = models.Onsite
	}
	if !resource.Location.Valid() {
		return models.ErrLocationInvalid
	}

	if resource.RateCAD.IsNegative() {
		return models.ErrResourceRateNegative
	}

	return nil
}

// CreateResource stores a new resource and returns it with its assigned id.
func (d *Dataset) CreateResource(create models.Resource) (models.Resource, error) {
	if err := validateResource(&create); err != nil {
		return models.Resource{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	create.ID = d.ids()
	d.resources[create.ID] = create

	return create, nil
}

// Resource returns the resource with the given id.
func (d *Dataset) Resource(id uuid.UUID) (models.Resource, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	resource, ok := d.resources[id]
	if !ok {
		return models.Resource{}, models.ErrResourceNotFound
	}

	return resource, nil
}

// Resources returns all resources, sorted by name.
func (d *Dataset) Resources() []models.Resource {
	d.mu.RLock()
	defer d.mu.RUnlock()

	resources := make([]models.Resource, 0, len(d.resources))
	for _, resource := range d.resources {
		resources = append(resources, resource)
	}

	sort.Slice(resources, func(i, j int) bool {
		if resources[i].Name != resources[j].Name {
			return resources[i].Name < resources[j].Name
		}
		return resources[i].ID.String() < resources[j].ID.String()
	})

	return resources
}

// UpdateResource overwrites the resource with the given data, keeping its id.
func (d *Dataset) UpdateResource(id uuid.UUID, update models.Resource) (models.Resource, error) {
	if err := validateResource(&update); err != nil {
		return models.Resource{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.resources[id]; !ok {
		return models.Resource{}, models.ErrResourceNotFound
	}

	update.ID = id
	d.resources[id] = update

	return update, nil
}

// DeleteResource removes the resource. Its allocations stay in the
// store, cost calculations treat allocations of unknown resources as
// zero cost.
func (d *Dataset) DeleteResource(id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.resources[id]; !ok {
		return models.ErrResourceNotFound
	}

	delete(d.resources, id)

	return nil
}
