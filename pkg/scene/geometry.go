package scene

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Geometry is a parametric primitive that can be tessellated into triangles.
type Geometry interface {
	// Tessellate returns indexed triangle data in the primitive's local space.
	Tessellate() MeshData

	// Key identifies the geometry parameters. Equal keys tessellate identically.
	Key() string
}

// MeshData is indexed triangle data. Normals has one entry per position.
type MeshData struct {
	Positions []math32.Vector3
	Normals   []math32.Vector3
	Indices   []uint32
}

// NumTriangles returns the number of triangles described by Indices.
func (md MeshData) NumTriangles() int {
	return len(md.Indices) / 3
}

// Bounds returns the local axis-aligned bounding box.
func (md MeshData) Bounds() math32.Box3 {
	b := math32.B3Empty()
	for _, p := range md.Positions {
		b.ExpandByPoint(p)
	}
	return b
}

// PositionArray returns positions in the layout glTF writers expect.
func (md MeshData) PositionArray() [][3]float32 {
	return toArray(md.Positions)
}

// NormalArray returns normals in the layout glTF writers expect.
func (md MeshData) NormalArray() [][3]float32 {
	return toArray(md.Normals)
}

func toArray(vs []math32.Vector3) [][3]float32 {
	out := make([][3]float32, len(vs))
	for i, v := range vs {
		out[i] = [3]float32{v.X, v.Y, v.Z}
	}
	return out
}

// Sphere is a UV sphere, optionally restricted to a sector.
// PhiStart/PhiLength sweep horizontally; ThetaStart/ThetaLength sweep vertically.
// A zero PhiLength means 2π and a zero ThetaLength means π.
type Sphere struct {
	Radius         float32
	WidthSegments  int
	HeightSegments int
	PhiStart       float32
	PhiLength      float32
	ThetaStart     float32
	ThetaLength    float32
}

// NewSphere returns a full sphere.
func NewSphere(radius float32, widthSegments, heightSegments int) *Sphere {
	return &Sphere{Radius: radius, WidthSegments: widthSegments, HeightSegments: heightSegments}
}

func (s *Sphere) defaults() (ws, hs int, phiLen, thetaLen float32) {
	ws, hs = max(3, s.WidthSegments), max(2, s.HeightSegments)
	phiLen, thetaLen = s.PhiLength, s.ThetaLength
	if phiLen == 0 {
		phiLen = 2 * math32.Pi
	}
	if thetaLen == 0 {
		thetaLen = math32.Pi
	}
	return
}

func (s *Sphere) Key() string {
	ws, hs, phiLen, thetaLen := s.defaults()
	return fmt.Sprintf("sphere:%g:%d:%d:%g:%g:%g:%g", s.Radius, ws, hs, s.PhiStart, phiLen, s.ThetaStart, thetaLen)
}

func (s *Sphere) Tessellate() MeshData {
	ws, hs, phiLen, thetaLen := s.defaults()
	thetaEnd := min(s.ThetaStart+thetaLen, math32.Pi)

	var md MeshData
	grid := make([][]uint32, hs+1)
	var index uint32
	for iy := 0; iy <= hs; iy++ {
		v := float32(iy) / float32(hs)
		row := make([]uint32, ws+1)
		for ix := 0; ix <= ws; ix++ {
			u := float32(ix) / float32(ws)
			phi := s.PhiStart + u*phiLen
			theta := s.ThetaStart + v*thetaLen
			p := math32.Vec3(
				-s.Radius*math32.Cos(phi)*math32.Sin(theta),
				s.Radius*math32.Cos(theta),
				s.Radius*math32.Sin(phi)*math32.Sin(theta),
			)
			md.Positions = append(md.Positions, p)
			md.Normals = append(md.Normals, p.Normal())
			row[ix] = index
			index++
		}
		grid[iy] = row
	}

	for iy := 0; iy < hs; iy++ {
		for ix := 0; ix < ws; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			// poles collapse to a single triangle per quad
			if iy != 0 || s.ThetaStart > 0 {
				md.Indices = append(md.Indices, a, b, d)
			}
			if iy != hs-1 || thetaEnd < math32.Pi {
				md.Indices = append(md.Indices, b, c, d)
			}
		}
	}
	return md
}

// Cylinder is a capped frustum along the Y axis centered on the origin.
type Cylinder struct {
	RadiusTop      float32
	RadiusBottom   float32
	Height         float32
	RadialSegments int
	HeightSegments int
}

// NewCylinder returns a cylinder with 32 radial segments and one height segment.
func NewCylinder(radiusTop, radiusBottom, height float32) *Cylinder {
	return &Cylinder{
		RadiusTop:      radiusTop,
		RadiusBottom:   radiusBottom,
		Height:         height,
		RadialSegments: 32,
		HeightSegments: 1,
	}
}

func (c *Cylinder) segments() (radial, height int) {
	return max(3, c.RadialSegments), max(1, c.HeightSegments)
}

func (c *Cylinder) Key() string {
	rs, hs := c.segments()
	return fmt.Sprintf("cylinder:%g:%g:%g:%d:%d", c.RadiusTop, c.RadiusBottom, c.Height, rs, hs)
}

func (c *Cylinder) Tessellate() MeshData {
	rs, hs := c.segments()
	half := c.Height / 2
	slope := float32(0)
	if c.Height != 0 {
		slope = (c.RadiusBottom - c.RadiusTop) / c.Height
	}

	var md MeshData
	var index uint32

	// torso
	grid := make([][]uint32, hs+1)
	for y := 0; y <= hs; y++ {
		v := float32(y) / float32(hs)
		radius := v*(c.RadiusBottom-c.RadiusTop) + c.RadiusTop
		row := make([]uint32, rs+1)
		for x := 0; x <= rs; x++ {
			theta := float32(x) / float32(rs) * 2 * math32.Pi
			sin, cos := math32.Sincos(theta)
			md.Positions = append(md.Positions, math32.Vec3(radius*sin, -v*c.Height+half, radius*cos))
			md.Normals = append(md.Normals, math32.Vec3(sin, slope, cos).Normal())
			row[x] = index
			index++
		}
		grid[y] = row
	}
	for x := 0; x < rs; x++ {
		for y := 0; y < hs; y++ {
			a := grid[y][x]
			b := grid[y+1][x]
			cc := grid[y+1][x+1]
			d := grid[y][x+1]
			md.Indices = append(md.Indices, a, b, d, b, cc, d)
		}
	}

	addCap := func(top bool) {
		radius, sign := c.RadiusBottom, float32(-1)
		if top {
			radius, sign = c.RadiusTop, 1
		}
		if radius <= 0 {
			return
		}
		normal := math32.Vec3(0, sign, 0)
		centerStart := index
		for x := 0; x < rs; x++ {
			md.Positions = append(md.Positions, math32.Vec3(0, half*sign, 0))
			md.Normals = append(md.Normals, normal)
			index++
		}
		ringStart := index
		for x := 0; x <= rs; x++ {
			theta := float32(x) / float32(rs) * 2 * math32.Pi
			sin, cos := math32.Sincos(theta)
			md.Positions = append(md.Positions, math32.Vec3(radius*sin, half*sign, radius*cos))
			md.Normals = append(md.Normals, normal)
			index++
		}
		for x := uint32(0); x < uint32(rs); x++ {
			center := centerStart + x
			i := ringStart + x
			if top {
				md.Indices = append(md.Indices, i, i+1, center)
			} else {
				md.Indices = append(md.Indices, i+1, i, center)
			}
		}
	}
	addCap(true)
	addCap(false)
	return md
}

// Box is an axis-aligned cuboid centered on the origin.
type Box struct {
	Width  float32
	Height float32
	Depth  float32
}

// NewBox returns a box with the given size.
func NewBox(width, height, depth float32) *Box {
	return &Box{Width: width, Height: height, Depth: depth}
}

func (b *Box) Key() string {
	return fmt.Sprintf("box:%g:%g:%g", b.Width, b.Height, b.Depth)
}

// boxFaces lists each face's normal and in-plane axes with u × v = normal,
// so corners emitted in (u,v) order wind counter-clockwise from outside.
var boxFaces = [6][3]math32.Vector3{
	{math32.Vec3(1, 0, 0), math32.Vec3(0, 0, -1), math32.Vec3(0, 1, 0)},
	{math32.Vec3(-1, 0, 0), math32.Vec3(0, 0, 1), math32.Vec3(0, 1, 0)},
	{math32.Vec3(0, 1, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 0, -1)},
	{math32.Vec3(0, -1, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 0, 1)},
	{math32.Vec3(0, 0, 1), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0)},
	{math32.Vec3(0, 0, -1), math32.Vec3(-1, 0, 0), math32.Vec3(0, 1, 0)},
}

func (b *Box) Tessellate() MeshData {
	half := math32.Vec3(b.Width/2, b.Height/2, b.Depth/2)

	var md MeshData
	for _, face := range boxFaces {
		n, u, v := face[0], face[1].Mul(half), face[2].Mul(half)
		center := n.Mul(half)
		base := uint32(len(md.Positions))
		md.Positions = append(md.Positions,
			center.Sub(u).Sub(v),
			center.Add(u).Sub(v),
			center.Add(u).Add(v),
			center.Sub(u).Add(v),
		)
		md.Normals = append(md.Normals, n, n, n, n)
		md.Indices = append(md.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return md
}
