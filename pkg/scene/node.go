package scene

import "fmt"

// Kind discriminates scene node payloads.
type Kind int

const (
	KindGroup Kind = iota
	KindMesh
	KindAmbientLight
	KindDirectionalLight
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindMesh:
		return "mesh"
	case KindAmbientLight:
		return "ambient_light"
	case KindDirectionalLight:
		return "directional_light"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Node is a named element of the scene graph.
type Node struct {
	Name      string
	Kind      Kind
	Transform Transform

	// Geometry and Material are set for mesh nodes only.
	Geometry Geometry
	Material *Material

	// Light is set for light nodes only.
	Light *Light

	Children []*Node
}

// NewGroup creates an empty group node.
func NewGroup(name string) *Node {
	return &Node{Name: name, Kind: KindGroup, Transform: Identity()}
}

// NewMesh creates a mesh node with an identity transform.
func NewMesh(name string, geometry Geometry, material *Material) *Node {
	return &Node{
		Name:      name,
		Kind:      KindMesh,
		Transform: Identity(),
		Geometry:  geometry,
		Material:  material,
	}
}

// NewAmbientLight creates an ambient light node.
func NewAmbientLight(name string, color Color, intensity float64) *Node {
	return &Node{
		Name:      name,
		Kind:      KindAmbientLight,
		Transform: Identity(),
		Light:     &Light{Color: color, Intensity: intensity},
	}
}

// NewDirectionalLight creates a directional light node.
func NewDirectionalLight(name string, color Color, intensity float64) *Node {
	return &Node{
		Name:      name,
		Kind:      KindDirectionalLight,
		Transform: Identity(),
		Light:     &Light{Color: color, Intensity: intensity},
	}
}

// Add appends children and returns n for chaining.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// At sets the local position and returns n.
func (n *Node) At(x, y, z float64) *Node {
	n.Transform.Position = [3]float64{x, y, z}
	return n
}

// Rotated sets the local Euler rotation (radians, XYZ order) and returns n.
func (n *Node) Rotated(x, y, z float64) *Node {
	n.Transform.Rotation = [3]float64{x, y, z}
	return n
}

// Scaled sets the local scale and returns n.
func (n *Node) Scaled(x, y, z float64) *Node {
	n.Transform.Scale = [3]float64{x, y, z}
	return n
}

// IsMesh reports whether the node carries renderable geometry.
func (n *Node) IsMesh() bool {
	return n.Kind == KindMesh && n.Geometry != nil
}

// IsLight reports whether the node is a light.
func (n *Node) IsLight() bool {
	return n.Kind == KindAmbientLight || n.Kind == KindDirectionalLight
}
