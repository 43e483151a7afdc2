package highlight

import (
	"fmt"
	"slices"

	"github.com/aretw0/wayfinder/pkg/domain"
)

// Map assigns each state the set of region ids it emphasizes.
type Map struct {
	sets map[domain.State][]string
}

// NewMap copies sets into an immutable map. Ids are sorted and de-duplicated; states not
// present map to the empty set.
func NewMap(sets map[domain.State][]string) (Map, error) {
	m := Map{sets: make(map[domain.State][]string, len(sets))}
	for state, ids := range sets {
		if !state.Valid() {
			return Map{}, fmt.Errorf("highlight map: %w: %q", domain.ErrUnknownState, state)
		}
		cp := slices.Clone(ids)
		slices.Sort(cp)
		m.sets[state] = slices.Compact(cp)
	}
	return m, nil
}

// DefaultMap returns the built-in emphasis table: the amygdalae for Anxious, the frontal
// lobes for Flow, nothing for Sad and Shutdown.
func DefaultMap() Map {
	m, _ := NewMap(map[domain.State][]string{
		domain.StateAnxious:  {"leftAmygdala", "rightAmygdala"},
		domain.StateFlow:     {"leftFrontalLobe", "rightFrontalLobe"},
		domain.StateSad:      {},
		domain.StateShutdown: {},
	})
	return m
}

// Regions returns a sorted copy of the ids emphasized by state.
func (m Map) Regions(state domain.State) []string {
	return slices.Clone(m.sets[state])
}

// Contains reports whether state emphasizes id.
func (m Map) Contains(state domain.State, id string) bool {
	_, found := slices.BinarySearch(m.sets[state], id)
	return found
}

// AllRegions returns every id referenced by any state, sorted.
func (m Map) AllRegions() []string {
	var all []string
	for _, ids := range m.sets {
		all = append(all, ids...)
	}
	slices.Sort(all)
	return slices.Compact(all)
}
