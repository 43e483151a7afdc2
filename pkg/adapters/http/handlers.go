package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/aretw0/wayfinder/pkg/export"
	"github.com/aretw0/wayfinder/pkg/session"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// GLBContentType is the media type of binary glTF.
const GLBContentType = "model/gltf-binary"

func (s *Server) GetBrainMap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := export.EncodeRegionIndex(w, s.index); err != nil {
		s.logger.Error("brain map encode failed", "error", err)
	}
}

func (s *Server) GetModel(w http.ResponseWriter, r *http.Request, name File) {
	if s.modelsDir == "" || name != path.Base(name) || strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), ".glb") {
		s.writeError(w, http.StatusNotFound, errors.New("model not found"))
		return
	}
	file := filepath.Join(s.modelsDir, name)
	if _, err := os.Stat(file); err != nil {
		s.writeError(w, http.StatusNotFound, errors.New("model not found"))
		return
	}
	w.Header().Set("Content-Type", GLBContentType)
	http.ServeFile(w, r, file)
}

func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/yaml")
	if _, err := w.Write(rawSpec); err != nil {
		s.logger.Error("openapi write failed", "error", err)
	}
}

func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, Health{
		Status:  "ok",
		Version: s.version,
		Regions: s.index.Len(),
	})
}

func (s *Server) GetMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
}

func (s *Server) ListStates(w http.ResponseWriter, r *http.Request) {
	states := domain.States()
	out := make([]StateInfo, len(states))
	for i, st := range states {
		out[i] = StateInfo{Name: st, Highlighted: s.styler.Map().Regions(st)}
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) GetStateStyles(w http.ResponseWriter, r *http.Request, name StateName, params GetStateStylesParams) {
	state, err := domain.ParseState(name)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	s.metrics.selected(state)

	s.writeJSON(w, http.StatusOK, StateStyles{
		State:       state,
		Highlighted: s.styler.Map().Regions(state),
		Styles:      s.styler.DeriveAll(state, s.index, deref(params.Hover), deref(params.Selected)),
	})
}

func (s *Server) ListRegions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.index.Regions)
}

func (s *Server) GetRegion(w http.ResponseWriter, r *http.Request, id RegionID) {
	region, ok := s.index.Find(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, domain.ErrRegionNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, region)
}

func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.sessions.List(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, ids)
}

func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Create(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, sess)
}

func (s *Server) GetSession(w http.ResponseWriter, r *http.Request, id SessionID) {
	sess, err := s.sessions.Load(r.Context(), id)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, sess)
}

func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request, id SessionID) {
	if err := s.sessions.Delete(r.Context(), id); err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) GetSessionStyles(w http.ResponseWriter, r *http.Request, id SessionID) {
	sess, err := s.sessions.Load(r.Context(), id)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, SessionStyles{
		Session: *sess,
		Styles:  s.styler.DeriveAll(sess.State, s.index, sess.Hovered, sess.Selected),
	})
}

// ApplyAction accepts any action segment the router binds; ParseAction rejects the rest.
func (s *Server) ApplyAction(w http.ResponseWriter, r *http.Request, id SessionID, name ApplyActionParamsAction) {
	action, err := session.ParseAction(string(name))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	var body ApplyActionJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		s.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		s.logger.Warn("applyAction: invalid request body", "error", err)
		return
	}

	sess, err := s.sessions.Apply(r.Context(), id, action, deref(body.Value))
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	if action == session.ActionState {
		s.metrics.selected(sess.State)
	}
	s.writeJSON(w, http.StatusOK, sess)
}

// statusFor maps session errors onto status codes. An unknown state in a request body is
// bad input; unknown ids in the path or body are not found.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrRegionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownState), errors.Is(err, session.ErrUnknownAction):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	s.writeJSON(w, status, Error{Error: err.Error()})
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
