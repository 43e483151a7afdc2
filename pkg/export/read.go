package export

import (
	"fmt"
	"io"

	"github.com/qmuntal/gltf"
)

// DecodeGLB reads a binary or JSON glTF document.
func DecodeGLB(r io.Reader) (*gltf.Document, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to decode gltf: %w", err)
	}
	return doc, nil
}

// ReadModelNames opens a model file and returns the name of every node it contains.
func ReadModelNames(path string) ([]string, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model %s: %w", path, err)
	}
	return NodeNames(doc), nil
}

// NodeNames returns node names in document order, skipping unnamed nodes.
func NodeNames(doc *gltf.Document) []string {
	names := make([]string, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if n.Name != "" {
			names = append(names, n.Name)
		}
	}
	return names
}

// ChildNames returns the names of the direct children of the first node named parent.
func ChildNames(doc *gltf.Document, parent string) []string {
	for _, n := range doc.Nodes {
		if n.Name != parent {
			continue
		}
		names := make([]string, 0, len(n.Children))
		for _, ci := range n.Children {
			if ci >= 0 && ci < len(doc.Nodes) {
				names = append(names, doc.Nodes[ci].Name)
			}
		}
		return names
	}
	return nil
}
