package pointcloud_test

import (
	"bytes"
	"math/rand"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/aretw0/wayfinder/pkg/export"
	"github.com/aretw0/wayfinder/pkg/pointcloud"
	"github.com/aretw0/wayfinder/pkg/scene"
	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boxMeshes() []scene.MeshInstance {
	mat := scene.NewMaterial("m", 0xffffff, 1, 0)
	root := scene.NewGroup("root").Add(
		scene.NewMesh("Box", scene.NewBox(2, 2, 2), mat).At(10, 0, 0),
	)
	return scene.Meshes(root)
}

func TestSample_Count(t *testing.T) {
	for _, n := range []int{1, 10, 500} {
		cloud := pointcloud.Sample(boxMeshes(), n, rand.New(rand.NewSource(1)))
		assert.Equal(t, n, cloud.Len())
		assert.Len(t, cloud.Colors, n)
	}
}

func TestSample_Empty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Zero(t, pointcloud.Sample(boxMeshes(), 0, rng).Len())
	assert.Zero(t, pointcloud.Sample(boxMeshes(), -3, rng).Len())
	assert.Zero(t, pointcloud.Sample(nil, 100, rng).Len())
}

func TestSample_PointsLieOnSurface(t *testing.T) {
	cloud := pointcloud.Sample(boxMeshes(), 200, rand.New(rand.NewSource(3)))
	for _, p := range cloud.Positions {
		local := p.Sub(math32.Vec3(10, 0, 0))
		onFace := math32.Abs(math32.Abs(local.X)-1) < 1e-4 ||
			math32.Abs(math32.Abs(local.Y)-1) < 1e-4 ||
			math32.Abs(math32.Abs(local.Z)-1) < 1e-4
		assert.True(t, onFace, "point %v is not on the box surface", p)
	}

	box := cloud.Bounds()
	assert.GreaterOrEqual(t, box.Min.X, float32(9-1e-4))
	assert.LessOrEqual(t, box.Max.X, float32(11+1e-4))
}

func TestSample_Deterministic(t *testing.T) {
	a := pointcloud.Sample(boxMeshes(), 50, rand.New(rand.NewSource(11)))
	b := pointcloud.Sample(boxMeshes(), 50, rand.New(rand.NewSource(11)))
	assert.Equal(t, a, b)
}

func TestColor_Range(t *testing.T) {
	dark := pointcloud.Color(pointcloud.MinLightness)
	light := pointcloud.Color(pointcloud.MinLightness + pointcloud.LightnessSpread)

	// hue 0.6 is a blue: blue dominates, red is weakest
	assert.Greater(t, dark[2], dark[1])
	assert.Greater(t, dark[1], dark[0])
	assert.InDelta(t, 1.0, dark[2], 1e-6, "full saturation at lightness 0.5")
	assert.Greater(t, light[0], dark[0])
}

func TestEncodeGLB(t *testing.T) {
	cloud := pointcloud.Sample(boxMeshes(), 25, rand.New(rand.NewSource(5)))

	var buf bytes.Buffer
	require.NoError(t, pointcloud.EncodeGLB(&buf, cloud))

	doc, err := export.DecodeGLB(&buf)
	require.NoError(t, err)
	require.Len(t, doc.Meshes, 1)
	prim := doc.Meshes[0].Primitives[0]
	assert.Equal(t, gltf.PrimitivePoints, prim.Mode)
	require.Contains(t, prim.Attributes, gltf.COLOR_0)
	assert.Equal(t, 25, int(doc.Accessors[prim.Attributes[gltf.POSITION]].Count))
}

func TestDocument_EmptyCloud(t *testing.T) {
	doc := pointcloud.Document(pointcloud.Cloud{})
	require.Len(t, doc.Nodes, 1)
	assert.Nil(t, doc.Nodes[0].Mesh)
	assert.Empty(t, doc.Meshes)
}
