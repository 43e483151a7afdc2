package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	wayhttp "github.com/aretw0/wayfinder/pkg/adapters/http"
	"github.com/aretw0/wayfinder/pkg/adapters/memory"
	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/aretw0/wayfinder/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testIndex() domain.RegionIndex {
	return domain.NewRegionIndex(
		domain.Region{ID: "leftAmygdala", Name: "Left Amygdala", Role: "Fear", Color: "#ff5577", Position: [3]float64{-0.35, -0.3, 0.4}},
		domain.Region{ID: "leftFrontalLobe", Name: "Left Frontal Lobe", Role: "Planning", Color: "#88aaff", Position: [3]float64{-0.4, 0.3, 0.7}},
		domain.Region{ID: "pons", Name: "Pons", Role: "Sleep", Color: "#ff77aa", Position: [3]float64{0, -0.7, 0}},
	)
}

func newServer(t *testing.T, opts ...wayhttp.Option) (*wayhttp.Server, http.Handler) {
	t.Helper()
	index := testIndex()
	mgr := session.NewManager(memory.NewStore(), session.WithIndex(index))
	srv := wayhttp.NewServer(index, mgr, opts...)
	return srv, srv.Handler()
}

func do(t *testing.T, h http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestBrainMap(t *testing.T) {
	_, h := newServer(t)
	w := do(t, h, http.MethodGet, "/brain-map.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	index := decode[domain.RegionIndex](t, w)
	assert.Equal(t, testIndex().IDs(), index.IDs())
}

func TestBrainMap_EmptyIndex(t *testing.T) {
	mgr := session.NewManager(memory.NewStore())
	h := wayhttp.NewServer(domain.RegionIndex{}, mgr).Handler()

	w := do(t, h, http.MethodGet, "/brain-map.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"regions":[]}`, w.Body.String())
}

func TestPreflight(t *testing.T) {
	_, h := newServer(t)
	w := do(t, h, http.MethodOptions, "/api/sessions", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestRegions(t *testing.T) {
	_, h := newServer(t)

	w := do(t, h, http.MethodGet, "/api/regions", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Region](t, w), 3)

	w = do(t, h, http.MethodGet, "/api/regions/pons", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Pons", decode[domain.Region](t, w).Name)

	w = do(t, h, http.MethodGet, "/api/regions/cortex", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestStates(t *testing.T) {
	_, h := newServer(t)
	w := do(t, h, http.MethodGet, "/api/states", "")
	require.Equal(t, http.StatusOK, w.Code)

	states := decode[[]wayhttp.StateInfo](t, w)
	require.Len(t, states, 4)
	assert.Equal(t, domain.StateFlow, states[0].Name)
	assert.Equal(t, []string{"leftFrontalLobe", "rightFrontalLobe"}, states[0].Highlighted)
	assert.Empty(t, states[2].Highlighted)
}

func TestStateStyles(t *testing.T) {
	srv, h := newServer(t)

	w := do(t, h, http.MethodGet, "/api/states/anxious/styles?hover=pons", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[wayhttp.StateStyles](t, w)
	assert.Equal(t, domain.StateAnxious, resp.State)
	require.Len(t, resp.Styles, 3)

	byID := map[string]domain.Style{}
	for _, st := range resp.Styles {
		byID[st.RegionID] = st
	}
	assert.Equal(t, "#ff6666", byID["leftAmygdala"].Color)
	assert.True(t, byID["leftAmygdala"].Highlighted)
	assert.Equal(t, "#884444", byID["pons"].Color)
	assert.True(t, byID["pons"].TooltipVisible)
	assert.InDelta(t, 0.48, byID["pons"].Opacity, 1e-9)

	count, err := testutil.GatherAndCount(srv.Registry(), "wayfinder_state_selections_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	w = do(t, h, http.MethodGet, "/api/states/calm/styles", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionLifecycle(t *testing.T) {
	_, h := newServer(t)

	w := do(t, h, http.MethodPost, "/api/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[domain.ViewSession](t, w)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, domain.DefaultState, created.State)
	base := "/api/sessions/" + created.ID

	w = do(t, h, http.MethodPost, base+"/state", `{"value":"Sad"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.StateSad, decode[domain.ViewSession](t, w).State)

	w = do(t, h, http.MethodPost, base+"/select", `{"value":"pons"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodPost, base+"/hover", `{"value":"leftAmygdala"}`)
	require.Equal(t, http.StatusOK, w.Code)
	sess := decode[domain.ViewSession](t, w)
	assert.Equal(t, "leftAmygdala", sess.Hovered)
	assert.Equal(t, "pons", sess.Selected, "hover never clears the selection")

	w = do(t, h, http.MethodPost, base+"/unhover", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[domain.ViewSession](t, w).Hovered)

	w = do(t, h, http.MethodGet, base+"/styles", "")
	require.Equal(t, http.StatusOK, w.Code)
	styles := decode[wayhttp.SessionStyles](t, w)
	assert.Equal(t, created.ID, styles.Session.ID)
	for _, st := range styles.Styles {
		assert.Equal(t, "#6a7bd1", st.Color)
		assert.Equal(t, st.RegionID == "pons", st.TooltipVisible)
	}

	w = do(t, h, http.MethodGet, "/api/sessions", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{created.ID}, decode[[]string](t, w))

	w = do(t, h, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplyAction_Errors(t *testing.T) {
	_, h := newServer(t)
	created := decode[domain.ViewSession](t, do(t, h, http.MethodPost, "/api/sessions", ""))
	base := "/api/sessions/" + created.ID

	tests := []struct {
		name   string
		target string
		body   string
		want   int
	}{
		{"unknown action", base + "/dance", "", http.StatusBadRequest},
		{"malformed body", base + "/state", `{"value":`, http.StatusBadRequest},
		{"unknown state", base + "/state", `{"value":"Calm"}`, http.StatusBadRequest},
		{"unknown region", base + "/select", `{"value":"cortex"}`, http.StatusNotFound},
		{"unknown session", "/api/sessions/missing/deselect", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestModels(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("glTF\x02\x00\x00\x00")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brain.glb"), payload, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	_, h := newServer(t, wayhttp.WithModelsDir(dir))

	w := do(t, h, http.MethodGet, "/models/brain.glb", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, wayhttp.GLBContentType, w.Header().Get("Content-Type"))
	assert.True(t, bytes.Equal(payload, w.Body.Bytes()))

	for _, target := range []string{"/models/missing.glb", "/models/notes.txt", "/models/.glb"} {
		assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, target, "").Code, target)
	}
}

func TestModels_Disabled(t *testing.T) {
	_, h := newServer(t)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/models/brain.glb", "").Code)
}

func TestHealthAndMetrics(t *testing.T) {
	srv, h := newServer(t, wayhttp.WithVersion("0.1.0"))

	w := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	health := decode[map[string]any](t, w)
	assert.Equal(t, "0.1.0", health["version"])
	assert.EqualValues(t, 3, health["regions"])

	do(t, h, http.MethodGet, "/api/regions/pons", "")
	do(t, h, http.MethodGet, "/api/regions/cortex", "")

	w = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `wayfinder_regions 3`)
	assert.Contains(t, body, `wayfinder_http_requests_total{code="200",route="/api/regions/{id}"} 1`)
	assert.Contains(t, body, `wayfinder_http_requests_total{code="404",route="/api/regions/{id}"} 1`)

	expected := `
# HELP wayfinder_regions Regions in the loaded index
# TYPE wayfinder_regions gauge
wayfinder_regions 3
`
	assert.NoError(t, testutil.GatherAndCompare(srv.Registry(), strings.NewReader(expected), "wayfinder_regions"))
}

func TestOpenAPI_DocumentsEveryRoute(t *testing.T) {
	doc, err := wayhttp.Spec(context.Background())
	require.NoError(t, err)

	srv, h := newServer(t)
	w := do(t, h, http.MethodGet, "/openapi.yaml", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi: 3.0.3")

	err = chi.Walk(srv.Router(), func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		item := doc.Paths.Value(route)
		if assert.NotNil(t, item, "route %s is not documented", route) {
			assert.NotNil(t, item.GetOperation(method), "%s %s is not documented", method, route)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestRouter_MalformedPathParam(t *testing.T) {
	_, h := newServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/regions/pons", nil)
	req.URL.Path = "/api/regions/%zz"
	req.URL.RawPath = ""
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, decode[wayhttp.Error](t, w).Error, "parameter id")
}

func TestServer_ImplementsGeneratedInterface(t *testing.T) {
	srv, _ := newServer(t)
	h := wayhttp.HandlerFromMux(srv, chi.NewRouter())

	w := do(t, h, http.MethodGet, "/api/regions/pons", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Pons", decode[domain.Region](t, w).Name)
}
