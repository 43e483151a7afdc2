package scene

import (
	"errors"

	"cogentcore.org/core/math32"
)

// ErrStopWalk can be returned from a WalkFunc to end traversal early without reporting an error.
var ErrStopWalk = errors.New("stop walk")

// WalkFunc is called for each node with the chain of transforms that maps the node's local
// space into the root's space (the node's own transform first).
type WalkFunc func(n *Node, toRoot Chain) error

// Walk visits root and its descendants depth-first in child order.
func Walk(root *Node, fn WalkFunc) error {
	if root == nil {
		return nil
	}
	err := walk(root, nil, fn)
	if errors.Is(err, ErrStopWalk) {
		return nil
	}
	return err
}

func walk(n *Node, parent Chain, fn WalkFunc) error {
	chain := make(Chain, 0, len(parent)+1)
	chain = append(chain, n.Transform)
	chain = append(chain, parent...)
	if err := fn(n, chain); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := walk(child, chain, fn); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the first node named name, or nil.
func Find(root *Node, name string) *Node {
	var found *Node
	_ = Walk(root, func(n *Node, _ Chain) error {
		if n.Name == name {
			found = n
			return ErrStopWalk
		}
		return nil
	})
	return found
}

// Names returns every node name in traversal order.
func Names(root *Node) []string {
	var names []string
	_ = Walk(root, func(n *Node, _ Chain) error {
		names = append(names, n.Name)
		return nil
	})
	return names
}

// MeshInstance is a mesh node together with its transform chain to the root.
type MeshInstance struct {
	Node   *Node
	ToRoot Chain
}

// Meshes returns every mesh node under root in traversal order.
func Meshes(root *Node) []MeshInstance {
	var out []MeshInstance
	_ = Walk(root, func(n *Node, toRoot Chain) error {
		if n.IsMesh() {
			out = append(out, MeshInstance{Node: n, ToRoot: toRoot})
		}
		return nil
	})
	return out
}

// WorldData tessellates the instance and maps it into root space.
func (mi MeshInstance) WorldData() MeshData {
	local := mi.Node.Geometry.Tessellate()
	world := MeshData{
		Positions: make([]math32.Vector3, len(local.Positions)),
		Normals:   make([]math32.Vector3, len(local.Normals)),
		Indices:   local.Indices,
	}
	for i, p := range local.Positions {
		world.Positions[i] = mi.ToRoot.Apply(p)
	}
	for i, n := range local.Normals {
		world.Normals[i] = mi.ToRoot.ApplyNormal(n)
	}
	return world
}

// Bounds returns the root-space bounding box of every mesh under root.
// The box is empty when root holds no meshes.
func Bounds(root *Node) math32.Box3 {
	b := math32.B3Empty()
	for _, mi := range Meshes(root) {
		b.ExpandByBox(mi.WorldData().Bounds())
	}
	return b
}
