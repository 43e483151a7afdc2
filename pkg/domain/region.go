package domain

// Region is one entry of the region index.
type Region struct {
	ID       string     `json:"id" yaml:"id"`
	Name     string     `json:"name" yaml:"name"`
	Role     string     `json:"role" yaml:"role"`
	Color    string     `json:"color" yaml:"color"`
	Position [3]float64 `json:"position" yaml:"position"`
	Tooltip  string     `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
}

// RegionIndex is the document written to brain-map.json.
type RegionIndex struct {
	Regions []Region `json:"regions" yaml:"regions"`
}

// NewRegionIndex returns an index over regions. A nil slice becomes empty so the
// document always encodes as `{"regions": []}`.
func NewRegionIndex(regions ...Region) RegionIndex {
	if regions == nil {
		regions = []Region{}
	}
	return RegionIndex{Regions: regions}
}

// Find returns the region with the given id.
func (ri RegionIndex) Find(id string) (Region, bool) {
	for _, r := range ri.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// IDs returns region ids in index order.
func (ri RegionIndex) IDs() []string {
	ids := make([]string, len(ri.Regions))
	for i, r := range ri.Regions {
		ids[i] = r.ID
	}
	return ids
}

// Len returns the number of regions.
func (ri RegionIndex) Len() int {
	return len(ri.Regions)
}
