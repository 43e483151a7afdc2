package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/wayfinder/pkg/domain"
)

// RegionsMarkdown renders the index as a markdown table, optionally with derived styles
// keyed by region id.
func RegionsMarkdown(index domain.RegionIndex, styles map[string]domain.Style) string {
	var sb strings.Builder
	if index.Len() == 0 {
		sb.WriteString("_No regions._\n")
		return sb.String()
	}

	if styles == nil {
		sb.WriteString("| ID | Name | Role | Color | Position |\n")
		sb.WriteString("|---|---|---|---|---|\n")
	} else {
		sb.WriteString("| ID | Name | Role | Display | Opacity | Emissive | Highlighted |\n")
		sb.WriteString("|---|---|---|---|---|---|---|\n")
	}

	for _, r := range index.Regions {
		if styles == nil {
			sb.WriteString(fmt.Sprintf("| `%s` | %s | %s | %s | (%g, %g, %g) |\n",
				r.ID, escape(r.Name), escape(r.Role), r.Color, r.Position[0], r.Position[1], r.Position[2]))
			continue
		}
		s := styles[r.ID]
		mark := ""
		if s.Highlighted {
			mark = "✓"
		}
		if s.Pulsing {
			mark += " (pulse)"
		}
		sb.WriteString(fmt.Sprintf("| `%s` | %s | %s | %s | %.3g | %.3g | %s |\n",
			r.ID, escape(r.Name), escape(r.Role), s.Color, s.Opacity, s.EmissiveIntensity, mark))
	}
	return sb.String()
}

// RegionMarkdown renders one region as a short document, the way a tooltip panel shows it.
func RegionMarkdown(r domain.Region) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", r.Name))
	sb.WriteString(fmt.Sprintf("**%s**\n\n", r.Role))
	if r.Tooltip != "" {
		sb.WriteString(r.Tooltip + "\n\n")
	}
	sb.WriteString(fmt.Sprintf("- id: `%s`\n- color: `%s`\n- position: (%g, %g, %g)\n",
		r.ID, r.Color, r.Position[0], r.Position[1], r.Position[2]))
	return sb.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
