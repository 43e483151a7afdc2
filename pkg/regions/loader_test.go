package regions_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/aretw0/wayfinder/pkg/regions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "regions": [
    {"id": "pons", "name": "Pons", "role": "Relay", "color": "#ff77aa", "position": [0, -0.5, -0.1]}
  ]
}`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brain-map.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	idx := regions.Load(context.Background(), writeFile(t, sample))
	require.Equal(t, 1, idx.Len())
	r, ok := idx.Find("pons")
	require.True(t, ok)
	assert.Equal(t, [3]float64{0, -0.5, -0.1}, r.Position)
}

func TestLoad_DegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	tests := []struct {
		name   string
		source string
	}{
		{"MissingFile", filepath.Join(t.TempDir(), "absent.json")},
		{"Malformed", writeFile(t, `{"regions": [`)},
		{"NotFound", srv.URL + "/brain-map.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))

			idx := regions.NewLoader(regions.WithLogger(logger)).Load(context.Background(), tt.source)
			assert.NotNil(t, idx.Regions)
			assert.Zero(t, idx.Len())
			assert.Contains(t, logs.String(), "region index unavailable")

			_, err := regions.LoadStrict(context.Background(), tt.source)
			assert.Error(t, err)
		})
	}
}

func TestLoad_ZeroRegions(t *testing.T) {
	for _, doc := range []string{`{"regions": []}`, `{"regions": null}`, `{}`} {
		idx, err := regions.LoadStrict(context.Background(), writeFile(t, doc))
		require.NoError(t, err, doc)
		assert.Equal(t, domain.NewRegionIndex(), idx, doc)
	}
}

func TestLoad_URLSingleAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if calls.Load() == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(sample))
	}))
	defer srv.Close()

	idx := regions.NewLoader(regions.WithHTTPClient(srv.Client())).Load(context.Background(), srv.URL)
	assert.Zero(t, idx.Len())
	assert.Equal(t, int32(1), calls.Load(), "no retry")

	idx = regions.NewLoader(regions.WithHTTPClient(srv.Client())).Load(context.Background(), srv.URL)
	assert.Equal(t, 1, idx.Len())
}

func TestLoad_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sample))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := regions.LoadStrict(ctx, srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsURL(t *testing.T) {
	assert.True(t, regions.IsURL("http://localhost/brain-map.json"))
	assert.True(t, regions.IsURL("https://example.com/x"))
	assert.False(t, regions.IsURL("public/brain-map.json"))
}
