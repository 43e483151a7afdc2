package export

import (
	"fmt"
	"io"
	"math"

	"github.com/aretw0/wayfinder/pkg/scene"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/ext/lightspunctual"
	"github.com/qmuntal/gltf/modeler"
)

// Generator is recorded in the glTF asset header.
const assetGenerator = "wayfinder"

type meshKey struct {
	geometry string
	material *scene.Material
}

type documentBuilder struct {
	doc       *gltf.Document
	meshes    map[meshKey]int
	materials map[*scene.Material]int
	lights    lightspunctual.Lights
}

// Document converts a scene into a glTF document. The root node itself becomes the glTF
// scene; its children become the scene's top-level nodes. Meshes with identical geometry
// and material are written once and shared. Ambient lights have no glTF form and are skipped.
func Document(root *scene.Node) (*gltf.Document, error) {
	if root == nil {
		return nil, fmt.Errorf("export: nil scene")
	}
	b := &documentBuilder{
		doc:       gltf.NewDocument(),
		meshes:    make(map[meshKey]int),
		materials: make(map[*scene.Material]int),
	}
	b.doc.Asset.Generator = assetGenerator
	b.doc.Scenes[0].Name = root.Name

	for _, child := range root.Children {
		idx, ok, err := b.node(child)
		if err != nil {
			return nil, err
		}
		if ok {
			b.doc.Scenes[0].Nodes = append(b.doc.Scenes[0].Nodes, idx)
		}
	}

	if len(b.lights) > 0 {
		if b.doc.Extensions == nil {
			b.doc.Extensions = gltf.Extensions{}
		}
		b.doc.Extensions[lightspunctual.ExtensionName] = b.lights
		b.doc.ExtensionsUsed = append(b.doc.ExtensionsUsed, lightspunctual.ExtensionName)
	}
	return b.doc, nil
}

func (b *documentBuilder) node(n *scene.Node) (int, bool, error) {
	if n.Kind == scene.KindAmbientLight {
		return 0, false, nil
	}

	gn := &gltf.Node{
		Name:        n.Name,
		Translation: n.Transform.Position,
		Rotation:    n.Transform.QuatArray(),
		Scale:       n.Transform.Scale,
	}
	idx := len(b.doc.Nodes)
	b.doc.Nodes = append(b.doc.Nodes, gn)

	switch n.Kind {
	case scene.KindMesh:
		if n.Geometry == nil || n.Material == nil {
			return 0, false, fmt.Errorf("export: mesh node %q has no geometry or material", n.Name)
		}
		gn.Mesh = gltf.Index(b.mesh(n))
	case scene.KindDirectionalLight:
		gn.Extensions = gltf.Extensions{
			lightspunctual.ExtensionName: lightspunctual.LightIndex(b.light(n)),
		}
	}

	for _, child := range n.Children {
		ci, ok, err := b.node(child)
		if err != nil {
			return 0, false, err
		}
		if ok {
			gn.Children = append(gn.Children, ci)
		}
	}
	return idx, true, nil
}

func (b *documentBuilder) mesh(n *scene.Node) int {
	key := meshKey{geometry: n.Geometry.Key(), material: n.Material}
	if idx, ok := b.meshes[key]; ok {
		return idx
	}

	data := n.Geometry.Tessellate()
	prim := &gltf.Primitive{
		Indices: gltf.Index(writeIndices(b.doc, data)),
		Attributes: map[string]int{
			gltf.POSITION: modeler.WritePosition(b.doc, data.PositionArray()),
			gltf.NORMAL:   modeler.WriteNormal(b.doc, data.NormalArray()),
		},
		Material: gltf.Index(b.material(n.Material)),
	}

	idx := len(b.doc.Meshes)
	b.doc.Meshes = append(b.doc.Meshes, &gltf.Mesh{
		Name:       n.Name,
		Primitives: []*gltf.Primitive{prim},
	})
	b.meshes[key] = idx
	return idx
}

func writeIndices(doc *gltf.Document, data scene.MeshData) int {
	if len(data.Positions) <= math.MaxUint16 {
		small := make([]uint16, len(data.Indices))
		for i, v := range data.Indices {
			small[i] = uint16(v)
		}
		return modeler.WriteIndices(doc, small)
	}
	return modeler.WriteIndices(doc, data.Indices)
}

func (b *documentBuilder) material(m *scene.Material) int {
	if idx, ok := b.materials[m]; ok {
		return idx
	}
	color := m.Color.Linear()
	idx := len(b.doc.Materials)
	b.doc.Materials = append(b.doc.Materials, &gltf.Material{
		Name: m.Name,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &color,
			MetallicFactor:  gltf.Float(m.Metalness),
			RoughnessFactor: gltf.Float(m.Roughness),
		},
	})
	b.materials[m] = idx
	return idx
}

func (b *documentBuilder) light(n *scene.Node) int {
	lin := n.Light.Color.Linear()
	color := [3]float64{lin[0], lin[1], lin[2]}
	b.lights = append(b.lights, &lightspunctual.Light{
		Name:      n.Name,
		Type:      lightspunctual.TypeDirectional,
		Color:     &color,
		Intensity: gltf.Float(n.Light.Intensity),
	})
	return len(b.lights) - 1
}

// EncodeGLB writes the scene as binary glTF.
func EncodeGLB(w io.Writer, root *scene.Node) error {
	doc, err := Document(root)
	if err != nil {
		return err
	}
	return WriteGLB(w, doc)
}

// WriteGLB writes an already built document as binary glTF.
func WriteGLB(w io.Writer, doc *gltf.Document) error {
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode glb: %w", err)
	}
	return nil
}
