package pointcloud

import (
	"fmt"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// NodeName names the single node holding the cloud.
const NodeName = "BrainPoints"

// Document builds a glTF document with one POINTS primitive carrying POSITION and COLOR_0.
// An empty cloud produces a node without a mesh, since glTF accessors cannot be empty.
func Document(c Cloud) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "wayfinder"
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: NodeName})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	if c.Len() == 0 {
		return doc
	}

	positions := make([][3]float32, c.Len())
	for i, p := range c.Positions {
		positions[i] = [3]float32{p.X, p.Y, p.Z}
	}

	doc.Materials = append(doc.Materials, &gltf.Material{
		Name: NodeName,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{1, 1, 1, 1},
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
	})
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: NodeName,
		Primitives: []*gltf.Primitive{{
			Mode: gltf.PrimitivePoints,
			Attributes: map[string]int{
				gltf.POSITION: modeler.WritePosition(doc, positions),
				gltf.COLOR_0:  modeler.WriteColor(doc, c.Colors),
			},
			Material: gltf.Index(0),
		}},
	})
	doc.Nodes[0].Mesh = gltf.Index(0)
	return doc
}

// EncodeGLB writes the cloud as binary glTF.
func EncodeGLB(w io.Writer, c Cloud) error {
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	if err := enc.Encode(Document(c)); err != nil {
		return fmt.Errorf("failed to encode point cloud: %w", err)
	}
	return nil
}
