package highlight

// Palette holds the colors a Styler substitutes for region colors.
type Palette struct {
	AnxiousHighlight string
	AnxiousDim       string
	FlowHighlight    string
	Sad              string
	Shutdown         string
	// MeshGlow is the emissive color of whole-mesh highlighting.
	MeshGlow string
}

// DefaultPalette returns the built-in colors.
func DefaultPalette() Palette {
	return Palette{
		AnxiousHighlight: "#ff6666",
		AnxiousDim:       "#884444",
		FlowHighlight:    "#66ffb2",
		Sad:              "#6a7bd1",
		Shutdown:         "#333333",
		MeshGlow:         "#ffd54f",
	}
}
