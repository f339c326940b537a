package game

import (
	"github.com/tahcohcat/puravida-web/internal/models"
)

// Filters narrow what the map shows. They never affect progression.
type Filters struct {
	Regions []models.Region       `json:"regions"`
	Types   []models.LocationType `json:"types"`
}

func (f Filters) clone() Filters {
	return Filters{
		Regions: append([]models.Region{}, f.Regions...),
		Types:   append([]models.LocationType{}, f.Types...),
	}
}

// Match reports whether a location passes both selections. An empty selection
// lets everything through.
func (f Filters) Match(l models.Location) bool {
	if len(f.Regions) > 0 && !containsRegion(f.Regions, l.Region) {
		return false
	}
	if len(f.Types) > 0 && !containsType(f.Types, l.Type) {
		return false
	}
	return true
}

func containsRegion(list []models.Region, r models.Region) bool {
	for _, v := range list {
		if v == r {
			return true
		}
	}
	return false
}

func containsType(list []models.LocationType, t models.LocationType) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}

// SetFilters replaces the region and type selections, dropping duplicates.
func (e *Engine) SetFilters(f Filters) Filters {
	var clean Filters
	for _, r := range f.Regions {
		if !containsRegion(clean.Regions, r) {
			clean.Regions = append(clean.Regions, r)
		}
	}
	for _, t := range f.Types {
		if !containsType(clean.Types, t) {
			clean.Types = append(clean.Types, t)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.filters = clean
	return e.filters.clone()
}

func (e *Engine) Filters() Filters {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filters.clone()
}

// FilteredLocations returns the catalog narrowed by the current filters.
func (e *Engine) FilteredLocations() []models.Location {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Location, 0, len(e.locations))
	for _, l := range e.locations {
		if e.filters.Match(l) {
			out = append(out, l.Clone())
		}
	}
	return out
}
