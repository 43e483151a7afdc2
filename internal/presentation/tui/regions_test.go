package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/wayfinder/internal/presentation/tui"
	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/aretw0/wayfinder/pkg/highlight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var index = domain.NewRegionIndex(
	domain.Region{ID: "leftAmygdala", Name: "Left Amygdala", Role: "Threat | fear", Color: "#ff99bb", Position: [3]float64{-0.35, -0.3, 0.4}},
	domain.Region{ID: "pons", Name: "Pons", Role: "Relay", Color: "#ff77aa", Tooltip: "Bridges the cerebellum."},
)

func TestRegionsMarkdown(t *testing.T) {
	md := tui.RegionsMarkdown(index, nil)
	assert.Contains(t, md, "| ID | Name | Role | Color | Position |")
	assert.Contains(t, md, "| `leftAmygdala` | Left Amygdala | Threat \\| fear | #ff99bb | (-0.35, -0.3, 0.4) |")
	assert.Equal(t, 4, strings.Count(md, "\n"))
}

func TestRegionsMarkdown_Styles(t *testing.T) {
	styles := map[string]domain.Style{}
	for _, s := range highlight.Default().DeriveAll(domain.StateAnxious, index, "", "") {
		styles[s.RegionID] = s
	}
	md := tui.RegionsMarkdown(index, styles)
	assert.Contains(t, md, "| `leftAmygdala` | Left Amygdala | Threat \\| fear | #ff6666 | 0.25 | 0.8 | ✓ |")
	assert.Contains(t, md, "| `pons` | Pons | Relay | #884444 | 0.2 | 0.03 |  |")
}

func TestRegionsMarkdown_Empty(t *testing.T) {
	assert.Equal(t, "_No regions._\n", tui.RegionsMarkdown(domain.NewRegionIndex(), nil))
}

func TestRegionMarkdown(t *testing.T) {
	md := tui.RegionMarkdown(index.Regions[1])
	assert.True(t, strings.HasPrefix(md, "# Pons\n"))
	assert.Contains(t, md, "Bridges the cerebellum.")
}

func TestPlainRenderer(t *testing.T) {
	out, err := tui.PlainRenderer("# x")
	require.NoError(t, err)
	assert.Equal(t, "# x", out)
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "0.1.0\n")
	assert.Contains(t, buf.String(), "v0.1.0")
}
