package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/wayfinder/internal/logging"
	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/aretw0/wayfinder/pkg/highlight"
	"github.com/aretw0/wayfinder/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server -o api.gen.go openapi.yaml

var _ ServerInterface = (*Server)(nil)

// Server implements the generated ServerInterface. The region index is fixed for the
// server's lifetime.
type Server struct {
	index     domain.RegionIndex
	sessions  *session.Manager
	styler    *highlight.Styler
	modelsDir string
	version   string
	logger    *slog.Logger
	registry  *prometheus.Registry
	metrics   *metrics
}

// Option configures the Server.
type Option func(*Server)

// WithStyler overrides highlight.Default.
func WithStyler(styler *highlight.Styler) Option {
	return func(s *Server) {
		s.styler = styler
	}
}

// WithModelsDir enables GET /models/{file} from dir.
func WithModelsDir(dir string) Option {
	return func(s *Server) {
		s.modelsDir = dir
	}
}

// WithVersion sets the version reported by /health.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a viewer service over index. Each server owns its metrics registry.
func NewServer(index domain.RegionIndex, sessions *session.Manager, opts ...Option) *Server {
	s := &Server{
		index:    index,
		sessions: sessions,
		styler:   highlight.Default(),
		logger:   logging.NewNop(),
		registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.index.Regions == nil {
		s.index = domain.NewRegionIndex()
	}
	s.metrics = newMetrics(s.registry)
	s.metrics.regions.Set(float64(s.index.Len()))
	return s
}

// Registry returns the server's Prometheus registry.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	return enableCORS(s.Router())
}

// Router returns the chi router without CORS. Routes come from the generated
// ServerInterface wiring; parameter binding failures answer 400 with an Error body.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	HandlerWithOptions(s, ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			s.writeError(w, http.StatusBadRequest, err)
		},
	})
	return r
}

// instrument records request count and latency by route pattern.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		s.metrics.observe(route, status, time.Since(start).Seconds())
		s.logger.Debug("request served",
			"method", r.Method,
			"route", route,
			"status", status,
			"duration", time.Since(start),
		)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Custom-Header")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
