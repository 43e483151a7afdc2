package anatomy_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/wayfinder/pkg/anatomy"
	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionID(t *testing.T) {
	tests := map[string]string{
		"LeftAmygdala":     "leftAmygdala",
		"Pons":             "pons",
		"MedullaOblongata": "medullaOblongata",
		"alreadyLower":     "alreadyLower",
		"":                 "",
		"Élan":             "élan",
	}
	for in, want := range tests {
		assert.Equal(t, want, anatomy.RegionID(in), in)
		if in != "" && in != "alreadyLower" {
			assert.Equal(t, in, anatomy.NodeName(want))
		}
	}
}

func TestExtractRegions_Default(t *testing.T) {
	idx := anatomy.ExtractRegions(anatomy.Build(anatomy.WithSeed(3)), anatomy.DefaultCatalog())
	require.Equal(t, 19, idx.Len())

	for i, name := range anatomy.StructureNames() {
		assert.Equal(t, anatomy.RegionID(name), idx.Regions[i].ID)
	}

	amygdala, ok := idx.Find("leftAmygdala")
	require.True(t, ok)
	assert.Equal(t, "Left Amygdala", amygdala.Name)
	assert.Equal(t, "Emotional Regulation, Fear", amygdala.Role)
	assert.Equal(t, "#ff99bb", amygdala.Color)
	assert.Equal(t, [3]float64{-0.35, -0.3, 0.4}, amygdala.Position)
	assert.NotEmpty(t, amygdala.Tooltip)

	for _, r := range idx.Regions {
		assert.NotContains(t, r.ID, "brainFold", "folds never reach the index")
	}
}

func TestExtractRegions_IndependentOfFolds(t *testing.T) {
	a := anatomy.ExtractRegions(anatomy.Build(anatomy.WithSeed(1)), anatomy.DefaultCatalog())
	b := anatomy.ExtractRegions(anatomy.Build(anatomy.WithSeed(99), anatomy.WithFoldCount(5)), anatomy.DefaultCatalog())
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("region index depends on the fold pass (-a +b):\n%s", diff)
	}
}

func TestExtractRegions_EmptyCatalog(t *testing.T) {
	empty, err := anatomy.NewCatalog()
	require.NoError(t, err)

	idx := anatomy.ExtractRegions(anatomy.Build(anatomy.WithSeed(1)), empty)
	data, err := json.Marshal(idx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"regions":[]}`, string(data))

	assert.Equal(t, domain.NewRegionIndex(), anatomy.ExtractRegions(nil, empty))
}

func TestUnmatchedEntries(t *testing.T) {
	brain := anatomy.Build(anatomy.WithSeed(1), anatomy.WithFoldCount(0))
	assert.Empty(t, anatomy.UnmatchedEntries(brain, anatomy.DefaultCatalog()))

	brain.Children[0].Name = "LeftCortex"
	assert.Equal(t, []string{"LeftHemisphere"}, anatomy.UnmatchedEntries(brain, anatomy.DefaultCatalog()))

	idx := anatomy.ExtractRegions(brain, anatomy.DefaultCatalog())
	_, ok := idx.Find("leftHemisphere")
	assert.False(t, ok, "renamed node drops out of the index")
}

func TestCatalog_Load(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"regions":[{"node":"Pons","name":"Pons","role":"Sleep","color":"#ff77aa"}]}`), 0o644))
	c, err := anatomy.LoadCatalog(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	e, ok := c.Lookup("Pons")
	require.True(t, ok)
	assert.Equal(t, "Sleep", e.Role)

	yamlPath := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("regions:\n  - node: Pons\n    name: Pons\n  - node: Pons\n    name: Again\n"), 0o644))
	_, err = anatomy.LoadCatalog(yamlPath)
	assert.ErrorContains(t, err, "duplicate")

	_, err = anatomy.LoadCatalog(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	def, err := anatomy.LoadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, 19, def.Len())
}
