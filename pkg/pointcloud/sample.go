// Package pointcloud turns mesh surfaces into colored point clouds, the viewer's "points"
// rendering mode.
package pointcloud

import (
	"math/rand"
	"sort"

	"cogentcore.org/core/math32"
	"github.com/aretw0/wayfinder/pkg/scene"
)

// Hue and saturation of every point; lightness varies per point in [MinLightness, MinLightness+LightnessSpread).
const (
	Hue             = 0.6
	Saturation      = 1.0
	MinLightness    = 0.5
	LightnessSpread = 0.2
)

// DefaultCount is the number of points sampled when no count is configured.
const DefaultCount = 5000

// Cloud is a set of points with per-point linear RGB colors.
type Cloud struct {
	Positions []math32.Vector3
	Colors    [][3]float32
}

// Len returns the number of points.
func (c Cloud) Len() int {
	return len(c.Positions)
}

// Bounds returns the axis-aligned box around every point.
func (c Cloud) Bounds() math32.Box3 {
	box := math32.B3Empty()
	for _, p := range c.Positions {
		box.ExpandByPoint(p)
	}
	return box
}

type triangle struct {
	a, b, c math32.Vector3
}

// Sample draws count points uniformly over the world-space surface of meshes: triangles
// are picked with probability proportional to their area, then a point is drawn uniformly
// inside the triangle. A non-positive count or a surface with no area yields an empty cloud.
func Sample(meshes []scene.MeshInstance, count int, rng *rand.Rand) Cloud {
	if count <= 0 {
		return Cloud{}
	}

	var tris []triangle
	var cumulative []float64
	total := 0.0
	for _, mi := range meshes {
		data := mi.WorldData()
		for i := 0; i+2 < len(data.Indices); i += 3 {
			t := triangle{
				a: data.Positions[data.Indices[i]],
				b: data.Positions[data.Indices[i+1]],
				c: data.Positions[data.Indices[i+2]],
			}
			area := float64(t.b.Sub(t.a).Cross(t.c.Sub(t.a)).Length()) / 2
			if area <= 0 {
				continue
			}
			total += area
			tris = append(tris, t)
			cumulative = append(cumulative, total)
		}
	}
	if len(tris) == 0 {
		return Cloud{}
	}

	cloud := Cloud{
		Positions: make([]math32.Vector3, count),
		Colors:    make([][3]float32, count),
	}
	for i := 0; i < count; i++ {
		idx := sort.SearchFloat64s(cumulative, rng.Float64()*total)
		if idx >= len(tris) {
			idx = len(tris) - 1
		}
		cloud.Positions[i] = tris[idx].point(float32(rng.Float64()), float32(rng.Float64()))
		cloud.Colors[i] = Color(MinLightness + rng.Float64()*LightnessSpread)
	}
	return cloud
}

// point maps (u, v) in the unit square to a uniform point inside the triangle.
func (t triangle) point(u, v float32) math32.Vector3 {
	if u+v > 1 {
		u, v = 1-u, 1-v
	}
	ab := t.b.Sub(t.a).MulScalar(u)
	ac := t.c.Sub(t.a).MulScalar(v)
	return t.a.Add(ab).Add(ac)
}

// Color returns the linear RGB color of a point with the given lightness.
func Color(lightness float64) [3]float32 {
	r, g, b := hslToRGB(Hue, Saturation, lightness)
	return [3]float32{
		float32(scene.SRGBToLinear(r)),
		float32(scene.SRGBToLinear(g)),
		float32(scene.SRGBToLinear(b)),
	}
}

func hslToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var q float64
	if l <= 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return hueToRGB(p, q, h+1.0/3), hueToRGB(p, q, h), hueToRGB(p, q, h-1.0/3)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*6*(2.0/3-t)
	}
	return p
}
