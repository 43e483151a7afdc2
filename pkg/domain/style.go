package domain

// Style is the derived appearance of one region for a given state and pointer situation.
type Style struct {
	RegionID          string  `json:"region_id"`
	Color             string  `json:"color"`
	Emissive          string  `json:"emissive"`
	Opacity           float64 `json:"opacity"`
	EmissiveIntensity float64 `json:"emissive_intensity"`
	Highlighted       bool    `json:"highlighted"`
	// Pulsing styles animate their emissive intensity over time.
	Pulsing        bool `json:"pulsing,omitempty"`
	TooltipVisible bool `json:"tooltip_visible"`
}
