package game

import (
	"strings"

	"github.com/schollz/closestmatch"

	"github.com/tahcohcat/puravida-web/internal/models"
)

const maxSearchResults = 3

// buildMatcher indexes location names for fuzzy search. Callers hold e.mu.
func (e *Engine) buildMatcher() {
	names := make([]string, 0, len(e.locations))
	e.matchByName = make(map[string]int, len(e.locations))
	for i, l := range e.locations {
		key := strings.ToLower(l.Name)
		names = append(names, key)
		e.matchByName[key] = i
	}
	e.matcher = closestmatch.New(names, []int{2})
}

// SearchLocations fuzzy-matches query against location names, best first.
func (e *Engine) SearchLocations(query string) []models.Location {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.Location{}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.Location, 0, maxSearchResults)
	for _, name := range e.matcher.ClosestN(q, maxSearchResults) {
		if idx, ok := e.matchByName[name]; ok {
			out = append(out, e.locations[idx].Clone())
		}
	}
	return out
}
