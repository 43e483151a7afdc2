package anatomy

import (
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/aretw0/wayfinder/pkg/scene"
)

// RegionID converts a structural node name into its region id by lowering the first rune
// ("LeftAmygdala" → "leftAmygdala").
func RegionID(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}

// NodeName is the inverse of RegionID.
func NodeName(id string) string {
	r, size := utf8.DecodeRuneInString(id)
	if r == utf8.RuneError {
		return id
	}
	return string(unicode.ToUpper(r)) + id[size:]
}

// ExtractRegions walks the direct children of brain in order and emits a region for every
// child that has a catalog entry. Children without an entry are skipped.
func ExtractRegions(brain *scene.Node, catalog *Catalog) domain.RegionIndex {
	regions := []domain.Region{}
	if brain == nil {
		return domain.NewRegionIndex(regions...)
	}
	for _, child := range brain.Children {
		entry, ok := catalog.Lookup(child.Name)
		if !ok {
			continue
		}
		regions = append(regions, domain.Region{
			ID:       RegionID(child.Name),
			Name:     entry.Name,
			Role:     entry.Role,
			Color:    entry.Color,
			Position: child.Transform.Position,
			Tooltip:  entry.Tooltip,
		})
	}
	return domain.NewRegionIndex(regions...)
}

// UnmatchedEntries returns catalog nodes that have no direct child under brain.
func UnmatchedEntries(brain *scene.Node, catalog *Catalog) []string {
	present := make(map[string]bool)
	if brain != nil {
		for _, child := range brain.Children {
			present[child.Name] = true
		}
	}
	var missing []string
	for _, e := range catalog.Entries() {
		if !present[e.Node] {
			missing = append(missing, e.Node)
		}
	}
	return missing
}
