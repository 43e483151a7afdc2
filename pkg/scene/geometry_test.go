package scene_test

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/aretw0/wayfinder/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometry_Counts(t *testing.T) {
	tests := []struct {
		name          string
		geometry      scene.Geometry
		wantVertices  int
		wantTriangles int
	}{
		{
			name:          "Full Sphere",
			geometry:      scene.NewSphere(1, 8, 6),
			wantVertices:  9 * 7,
			wantTriangles: 2 * 8 * 5,
		},
		{
			name:          "Half Sphere",
			geometry:      &scene.Sphere{Radius: 1, WidthSegments: 32, HeightSegments: 16, PhiLength: math32.Pi},
			wantVertices:  33 * 17,
			wantTriangles: 2 * 32 * 15,
		},
		{
			name:          "Capped Cylinder",
			geometry:      scene.NewCylinder(0.15, 0.2, 0.8),
			wantVertices:  2*33 + 2*(32+33),
			wantTriangles: 2*32 + 2*32,
		},
		{
			name:          "Box",
			geometry:      scene.NewBox(0.15, 0.05, 0.6),
			wantVertices:  24,
			wantTriangles: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := tt.geometry.Tessellate()
			assert.Len(t, md.Positions, tt.wantVertices)
			assert.Len(t, md.Normals, tt.wantVertices)
			assert.Equal(t, tt.wantTriangles, md.NumTriangles())
			for _, idx := range md.Indices {
				require.Less(t, int(idx), len(md.Positions), "index out of range")
			}
			for _, n := range md.Normals {
				assert.InDelta(t, 1, n.Length(), 1e-4)
			}
		})
	}
}

func TestGeometry_Bounds(t *testing.T) {
	b := scene.NewBox(2, 4, 6).Tessellate().Bounds()
	assert.InDelta(t, -1, b.Min.X, 1e-6)
	assert.InDelta(t, 2, b.Max.Y, 1e-6)
	assert.InDelta(t, -3, b.Min.Z, 1e-6)

	s := scene.NewSphere(0.5, 16, 8).Tessellate().Bounds()
	assert.InDelta(t, 0.5, s.Max.Y, 1e-5)
	assert.InDelta(t, -0.5, s.Min.Y, 1e-5)

	half := (&scene.Sphere{Radius: 1, WidthSegments: 32, HeightSegments: 16, PhiLength: math32.Pi}).Tessellate().Bounds()
	assert.GreaterOrEqual(t, half.Min.Z, float32(-1e-5), "a φ∈[0,π] sector lies on the +Z side")
}

func TestGeometry_Key(t *testing.T) {
	assert.Equal(t, scene.NewSphere(0.12, 12, 8).Key(), scene.NewSphere(0.12, 12, 8).Key())
	assert.NotEqual(t, scene.NewSphere(0.12, 12, 8).Key(), scene.NewSphere(0.12, 12, 6).Key())
	assert.Equal(t, scene.NewSphere(1, 8, 4).Key(), (&scene.Sphere{Radius: 1, WidthSegments: 8, HeightSegments: 4, PhiLength: 2 * math32.Pi}).Key())
	assert.NotEqual(t, scene.NewCylinder(0.1, 0.2, 1).Key(), scene.NewCylinder(0.2, 0.1, 1).Key())
}

func TestBoxWinding(t *testing.T) {
	md := scene.NewBox(1, 1, 1).Tessellate()
	for tri := 0; tri < md.NumTriangles(); tri++ {
		a := md.Positions[md.Indices[tri*3]]
		b := md.Positions[md.Indices[tri*3+1]]
		c := md.Positions[md.Indices[tri*3+2]]
		faceNormal := b.Sub(a).Cross(c.Sub(a))
		assert.Greater(t, faceNormal.Dot(md.Normals[md.Indices[tri*3]]), float32(0), "triangle %d winds inward", tri)
	}
}
