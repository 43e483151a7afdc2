package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is a 24-bit sRGB color stored as 0xRRGGBB.
type Color uint32

// ParseColor parses "#rrggbb" (the leading '#' is optional).
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color(v), nil
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// RGB returns the sRGB channels in [0,1].
func (c Color) RGB() (r, g, b float64) {
	return float64((c>>16)&0xff) / 255, float64((c>>8)&0xff) / 255, float64(c&0xff) / 255
}

// Linear returns the color converted to linear RGBA, as expected by glTF factors.
func (c Color) Linear() [4]float64 {
	r, g, b := c.RGB()
	return [4]float64{SRGBToLinear(r), SRGBToLinear(g), SRGBToLinear(b), 1}
}

// SRGBToLinear converts one sRGB channel in [0,1] to linear light.
func SRGBToLinear(v float64) float64 {
	if v < 0.04045 {
		return v * 0.0773993808
	}
	return math.Pow(v*0.9478672986+0.0521327014, 2.4)
}

// Material describes a physically based surface. Meshes that share a *Material share it on export.
type Material struct {
	Name      string
	Color     Color
	Roughness float64
	Metalness float64
}

// NewMaterial returns a material with the given name, color, roughness and metalness.
func NewMaterial(name string, color Color, roughness, metalness float64) *Material {
	return &Material{
		Name:      name,
		Color:     color,
		Roughness: roughness,
		Metalness: metalness,
	}
}

// Light is the payload of light nodes.
type Light struct {
	Color     Color
	Intensity float64
}
