package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/wayfinder/pkg/anatomy"
	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	index := anatomy.ExtractRegions(anatomy.Build(anatomy.WithSeed(1)), anatomy.DefaultCatalog())
	return NewServer(index)
}

func TestListRegions(t *testing.T) {
	s := newTestServer()
	res, err := s.handleListRegions(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var regions []domain.Region
	require.NoError(t, json.Unmarshal([]byte(text.Text), &regions))
	assert.Equal(t, s.index.Len(), len(regions))
}

func TestDescribeRegion(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleDescribeRegion(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"id": "leftAmygdala"})
	require.NoError(t, err)
	assert.Equal(t, "leftAmygdala", resp.Region.ID)
	assert.Equal(t, []domain.State{domain.StateAnxious}, resp.EmphasizedBy)

	resp, err = s.handleDescribeRegion(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"id": "pons"})
	require.NoError(t, err)
	assert.Empty(t, resp.EmphasizedBy)

	_, err = s.handleDescribeRegion(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"id": "cortex"})
	assert.ErrorIs(t, err, domain.ErrRegionNotFound)
}

func TestHighlightState(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleHighlightState(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"state":    "flow",
		"selected": "leftFrontalLobe",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StateFlow, resp.State)
	assert.Equal(t, []string{"leftFrontalLobe", "rightFrontalLobe"}, resp.Highlighted)
	require.Len(t, resp.Styles, s.index.Len())

	for _, st := range resp.Styles {
		if st.RegionID == "leftFrontalLobe" {
			assert.True(t, st.Pulsing)
			assert.True(t, st.TooltipVisible)
		}
	}

	_, err = s.handleHighlightState(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"state": "Calm"})
	assert.ErrorIs(t, err, domain.ErrUnknownState)
}

func TestBrainMapResource(t *testing.T) {
	s := newTestServer()
	contents, err := s.handleBrainMap(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, BrainMapURI, text.URI)

	var index domain.RegionIndex
	require.NoError(t, json.Unmarshal([]byte(text.Text), &index))
	assert.Equal(t, s.index.IDs(), index.IDs())
}
