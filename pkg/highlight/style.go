package highlight

import (
	"math"

	"github.com/aretw0/wayfinder/pkg/anatomy"
	"github.com/aretw0/wayfinder/pkg/domain"
)

// Style constants.
const (
	BaseOpacity        = 0.25
	ActiveOpacity      = 0.6
	BaseEmissive       = 0.1
	ActiveEmissive     = 0.4
	AnxiousEmissive    = 0.8
	FlowEmissive       = 0.6
	FlowPulseAmplitude = 0.3
	FlowPulseFrequency = 4.0
	MeshGlowIntensity  = 0.8
	MeshDimmedOpacity  = 0.5
)

// Point cloud sizing. Only Flow pulses the points.
const (
	PointSize              = 0.02
	FlowPointSizeAmplitude = 0.005
	FlowPointSizeFrequency = 2.0
)

// Styler derives region styles from a Map and a Palette.
type Styler struct {
	regions Map
	palette Palette
}

// NewStyler creates a Styler over the given tables.
func NewStyler(m Map, p Palette) *Styler {
	return &Styler{regions: m, palette: p}
}

// Default returns a Styler over DefaultMap and DefaultPalette.
func Default() *Styler {
	return NewStyler(DefaultMap(), DefaultPalette())
}

// Map returns the emphasis table in use.
func (s *Styler) Map() Map {
	return s.regions
}

// Derive returns the style of region under state, given the currently hovered and selected
// ids (empty when none).
func (s *Styler) Derive(state domain.State, region domain.Region, hoverID, selectedID string) domain.Style {
	active := region.ID != "" && (region.ID == hoverID || region.ID == selectedID)
	highlighted := s.regions.Contains(state, region.ID)

	color := region.Color
	opacity := BaseOpacity
	emissive := BaseEmissive
	if active {
		opacity = ActiveOpacity
		emissive = ActiveEmissive
	}
	pulsing := false

	switch state {
	case domain.StateAnxious:
		if highlighted {
			color = s.palette.AnxiousHighlight
			emissive = AnxiousEmissive
		} else {
			color = s.palette.AnxiousDim
			emissive *= 0.3
			opacity *= 0.8
		}
	case domain.StateFlow:
		if highlighted {
			color = s.palette.FlowHighlight
			emissive = FlowEmissive
			pulsing = true
		}
	case domain.StateSad:
		color = s.palette.Sad
		emissive *= 0.2
		opacity *= 0.7
	case domain.StateShutdown:
		color = s.palette.Shutdown
		emissive *= 0.05
		opacity *= 0.4
	}

	return domain.Style{
		RegionID:          region.ID,
		Color:             color,
		Emissive:          color,
		Opacity:           opacity,
		EmissiveIntensity: emissive,
		Highlighted:       highlighted,
		Pulsing:           pulsing,
		TooltipVisible:    active,
	}
}

// DeriveAll derives the style of every region of index, in index order.
func (s *Styler) DeriveAll(state domain.State, index domain.RegionIndex, hoverID, selectedID string) []domain.Style {
	out := make([]domain.Style, len(index.Regions))
	for i, r := range index.Regions {
		out[i] = s.Derive(state, r, hoverID, selectedID)
	}
	return out
}

// Derive uses the default tables.
func Derive(state domain.State, region domain.Region, hoverID, selectedID string) domain.Style {
	return Default().Derive(state, region, hoverID, selectedID)
}

// EmissiveAt returns the emissive intensity of style at time t, in seconds.
func EmissiveAt(style domain.Style, t float64) float64 {
	if !style.Pulsing {
		return style.EmissiveIntensity
	}
	return FlowEmissive + math.Sin(t*FlowPulseFrequency)*FlowPulseAmplitude
}

// PointSizeAt returns the point cloud point size for state at time t, in seconds.
func PointSizeAt(state domain.State, t float64) float64 {
	if state != domain.StateFlow {
		return PointSize
	}
	return PointSize + math.Sin(t*FlowPointSizeFrequency)*FlowPointSizeAmplitude
}

// MeshStyle is the whole-mesh highlight applied to a model mesh.
type MeshStyle struct {
	Mesh              string  `json:"mesh"`
	Emissive          string  `json:"emissive,omitempty"`
	EmissiveIntensity float64 `json:"emissive_intensity"`
	Opacity           float64 `json:"opacity"`
}

// MeshHighlight styles a model mesh by name against a set of emphasized region ids. A mesh
// matches when its name or its region id is in the set. With an empty set every mesh is
// fully opaque; otherwise unmatched meshes are dimmed.
func (s *Styler) MeshHighlight(set []string, meshName string) MeshStyle {
	id := anatomy.RegionID(meshName)
	for _, v := range set {
		if v == meshName || v == id {
			return MeshStyle{
				Mesh:              meshName,
				Emissive:          s.palette.MeshGlow,
				EmissiveIntensity: MeshGlowIntensity,
				Opacity:           1,
			}
		}
	}
	opacity := 1.0
	if len(set) > 0 {
		opacity = MeshDimmedOpacity
	}
	return MeshStyle{Mesh: meshName, Opacity: opacity}
}

// MeshHighlight uses the default palette.
func MeshHighlight(set []string, meshName string) MeshStyle {
	return Default().MeshHighlight(set, meshName)
}
