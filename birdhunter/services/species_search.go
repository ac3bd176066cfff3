package services

import (
	"strings"

	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/sahilm/fuzzy"
)

// speciesSource implements fuzzy.Source over display names.
type speciesSource []catalog.Species

func (s speciesSource) String(i int) string { return strings.ToLower(s[i].Name) }

func (s speciesSource) Len() int { return len(s) }

// SpeciesSearch resolves free-text bird names against the catalog.
type SpeciesSearch struct {
	species speciesSource
}

func NewSpeciesSearch() *SpeciesSearch {
	return &SpeciesSearch{species: catalog.AllSpecies()}
}

// Search returns up to limit species ordered by match quality. An empty
// query lists the catalog in order.
func (s *SpeciesSearch) Search(query string, limit int) []catalog.Species {
	query = normalizeQuery(query)
	if query == "" {
		return head(s.species, limit)
	}

	matches := fuzzy.FindFrom(query, s.species)
	out := make([]catalog.Species, 0, min(len(matches), limit))
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, s.species[m.Index])
	}
	return out
}

// Resolve matches an exact id or name first and falls back to the best fuzzy hit.
func (s *SpeciesSearch) Resolve(query string) (catalog.Species, bool) {
	if sp, ok := catalog.FindSpecies(query); ok {
		return sp, true
	}
	if hits := s.Search(query, 1); len(hits) == 1 {
		return hits[0], true
	}
	return catalog.Species{}, false
}

func normalizeQuery(q string) string {
	q = strings.ToLower(strings.TrimSpace(q))
	return strings.ReplaceAll(q, "_", " ")
}

func head(list []catalog.Species, limit int) []catalog.Species {
	if limit > len(list) {
		limit = len(list)
	}
	out := make([]catalog.Species, limit)
	copy(out, list[:limit])
	return out
}
