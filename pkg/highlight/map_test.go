package highlight_test

import (
	"testing"

	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/aretw0/wayfinder/pkg/highlight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMap_Sets(t *testing.T) {
	m := highlight.DefaultMap()
	tests := []struct {
		state domain.State
		want  []string
	}{
		{domain.StateAnxious, []string{"leftAmygdala", "rightAmygdala"}},
		{domain.StateFlow, []string{"leftFrontalLobe", "rightFrontalLobe"}},
		{domain.StateSad, []string{}},
		{domain.StateShutdown, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			got := m.Regions(tt.state)
			assert.ElementsMatch(t, tt.want, got)
			for _, id := range tt.want {
				assert.True(t, m.Contains(tt.state, id))
			}
		})
	}
	assert.False(t, m.Contains(domain.StateAnxious, "leftFrontalLobe"))
}

func TestMap_Immutable(t *testing.T) {
	src := map[domain.State][]string{domain.StateFlow: {"b", "a", "a"}}
	m, err := highlight.NewMap(src)
	require.NoError(t, err)

	src[domain.StateFlow][0] = "zzz"
	assert.Equal(t, []string{"a", "b"}, m.Regions(domain.StateFlow))

	got := m.Regions(domain.StateFlow)
	got[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, m.Regions(domain.StateFlow))
}

func TestNewMap_UnknownState(t *testing.T) {
	_, err := highlight.NewMap(map[domain.State][]string{"Bored": {"x"}})
	assert.ErrorIs(t, err, domain.ErrUnknownState)
}

func TestMap_AllRegions(t *testing.T) {
	assert.Equal(t,
		[]string{"leftAmygdala", "leftFrontalLobe", "rightAmygdala", "rightFrontalLobe"},
		highlight.DefaultMap().AllRegions())
}
