package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	for _, st := range domain.States() {
		got, err := domain.ParseState(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	got, err := domain.ParseState(" anxious ")
	require.NoError(t, err)
	assert.Equal(t, domain.StateAnxious, got)

	_, err = domain.ParseState("Calm")
	assert.ErrorIs(t, err, domain.ErrUnknownState)
	assert.False(t, domain.State("Calm").Valid())
}

func TestRegionIndex_EmptyEncodesAsArray(t *testing.T) {
	data, err := json.Marshal(domain.NewRegionIndex())
	require.NoError(t, err)
	assert.JSONEq(t, `{"regions":[]}`, string(data))
}

func TestRegion_TooltipOmittedWhenEmpty(t *testing.T) {
	data, err := json.Marshal(domain.Region{ID: "pons", Name: "Pons", Role: "Sleep", Color: "#ff77aa", Position: [3]float64{0, -0.7, 0}})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "tooltip")
	assert.Contains(t, string(data), `"position":[0,-0.7,0]`)
}

func TestRegionIndex_Find(t *testing.T) {
	idx := domain.NewRegionIndex(domain.Region{ID: "pons"}, domain.Region{ID: "midbrain"})
	r, ok := idx.Find("midbrain")
	assert.True(t, ok)
	assert.Equal(t, "midbrain", r.ID)
	_, ok = idx.Find("cortex")
	assert.False(t, ok)
	assert.Equal(t, []string{"pons", "midbrain"}, idx.IDs())
}
