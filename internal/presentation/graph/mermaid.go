package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/wayfinder/pkg/anatomy"
	"github.com/aretw0/wayfinder/pkg/scene"
)

// GraphOverlay contains viewer state to visualize on the graph. Names are scene node names.
type GraphOverlay struct {
	Highlighted []string
	Hovered     string
	Selected    string
}

// GenerateMermaid produces a Mermaid flowchart of the scene graph rooted at root.
// It applies semantic styling:
// - Group: [[Subroutine]]
// - Light: ((Circle))
// - Mesh: [Rectangle], labelled with its geometry
// Cortical folds are collapsed into a single node. Overlay styles are applied if provided.
func GenerateMermaid(root *scene.Node, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	if root != nil {
		writeNode(&sb, root)
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef highlighted fill:#ffd54f,stroke:#f57f17,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef hovered fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef selected fill:#66ffb2,stroke:#1b5e20,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, name := range overlay.Highlighted {
			safeID := sanitizeMermaidID(name)
			if safeID != "" && !seen[safeID] {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s highlighted;\n", safeID))
			}
		}
		if overlay.Hovered != "" {
			sb.WriteString(fmt.Sprintf("    class %s hovered;\n", sanitizeMermaidID(overlay.Hovered)))
		}
		if overlay.Selected != "" {
			sb.WriteString(fmt.Sprintf("    class %s selected;\n", sanitizeMermaidID(overlay.Selected)))
		}
	}

	return sb.String()
}

func writeNode(sb *strings.Builder, n *scene.Node) {
	safeID := sanitizeMermaidID(n.Name)
	opener, closer := "[", "]"
	label := n.Name
	switch n.Kind {
	case scene.KindGroup:
		opener, closer = "[[", "]]"
	case scene.KindAmbientLight, scene.KindDirectionalLight:
		opener, closer = "((", "))"
		label = fmt.Sprintf("%s <br/> %s", n.Name, n.Kind)
	case scene.KindMesh:
		if n.Geometry != nil {
			label = fmt.Sprintf("%s <br/> %s", n.Name, n.Geometry.Key())
		}
	}
	sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))

	folds := 0
	for _, child := range n.Children {
		if strings.HasPrefix(child.Name, anatomy.FoldPrefix) && len(child.Children) == 0 {
			folds++
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeID, sanitizeMermaidID(child.Name)))
		writeNode(sb, child)
	}
	if folds > 0 {
		foldID := safeID + "_folds"
		sb.WriteString(fmt.Sprintf("    %s -.-> %s\n", safeID, foldID))
		sb.WriteString(fmt.Sprintf("    %s[/\"%s* × %d\"/]\n", foldID, anatomy.FoldPrefix, folds))
	}
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
