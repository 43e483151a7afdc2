package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/wayfinder"
	"github.com/aretw0/wayfinder/internal/logging"
	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/aretw0/wayfinder/pkg/export"
	"github.com/aretw0/wayfinder/pkg/highlight"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// BrainMapURI identifies the region index resource.
const BrainMapURI = "wayfinder://brain-map"

// StateResponse is the result of highlight_state.
type StateResponse struct {
	State       domain.State   `json:"state" jsonschema_description:"The state that was applied"`
	Highlighted []string       `json:"highlighted" jsonschema_description:"Region ids emphasized by the state"`
	Styles      []domain.Style `json:"styles" jsonschema_description:"Derived style of every region"`
}

// RegionResponse is the result of describe_region.
type RegionResponse struct {
	Region       domain.Region  `json:"region" jsonschema_description:"The region metadata"`
	EmphasizedBy []domain.State `json:"emphasized_by" jsonschema_description:"States that highlight this region"`
}

// Server exposes the region index and highlight logic as MCP tools.
type Server struct {
	index     domain.RegionIndex
	styler    *highlight.Styler
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithStyler overrides highlight.Default.
func WithStyler(styler *highlight.Styler) Option {
	return func(s *Server) {
		s.styler = styler
	}
}

// NewServer creates a new MCP Server instance over a loaded region index.
func NewServer(index domain.RegionIndex, opts ...Option) *Server {
	s := &Server{
		index:     index,
		styler:    highlight.Default(),
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("wayfinder-mcp", strings.TrimSpace(wayfinder.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves over Server-Sent Events until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: list_regions
	s.mcpServer.AddTool(mcp.NewTool("list_regions",
		mcp.WithDescription("List every anatomical region of the brain model with its role and anchor position."),
	), s.handleListRegions)

	// TOOL: describe_region
	describeTool := mcp.NewTool("describe_region",
		mcp.WithDescription("Describe one region and the states that emphasize it."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Region id, e.g. leftAmygdala")),
		mcp.WithOutputSchema[RegionResponse](),
	)
	s.mcpServer.AddTool(describeTool, mcp.NewStructuredToolHandler(s.handleDescribeRegion))

	// TOOL: highlight_state
	stateTool := mcp.NewTool("highlight_state",
		mcp.WithDescription("Derive the display style of every region for a state (Flow, Anxious, Sad, Shutdown)."),
		mcp.WithString("state", mcp.Required(), mcp.Description("State name, case-insensitive")),
		mcp.WithString("hovered", mcp.Description("Region id under the pointer (optional)")),
		mcp.WithString("selected", mcp.Description("Selected region id (optional)")),
		mcp.WithOutputSchema[StateResponse](),
	)
	s.mcpServer.AddTool(stateTool, mcp.NewStructuredToolHandler(s.handleHighlightState))
}

func (s *Server) handleListRegions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(s.index.Regions)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleDescribeRegion(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RegionResponse, error) {
	id, _ := args["id"].(string)
	region, ok := s.index.Find(id)
	if !ok {
		return RegionResponse{}, fmt.Errorf("%w: %q", domain.ErrRegionNotFound, id)
	}

	resp := RegionResponse{Region: region, EmphasizedBy: []domain.State{}}
	for _, st := range domain.States() {
		if s.styler.Map().Contains(st, id) {
			resp.EmphasizedBy = append(resp.EmphasizedBy, st)
		}
	}
	return resp, nil
}

func (s *Server) handleHighlightState(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (StateResponse, error) {
	name, _ := args["state"].(string)
	hovered, _ := args["hovered"].(string)
	selected, _ := args["selected"].(string)

	state, err := domain.ParseState(name)
	if err != nil {
		s.logger.Warn("MCP highlight_state: rejected", "state", name, "error", err)
		return StateResponse{}, err
	}
	return StateResponse{
		State:       state,
		Highlighted: s.styler.Map().Regions(state),
		Styles:      s.styler.DeriveAll(state, s.index, hovered, selected),
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: wayfinder://brain-map
	s.mcpServer.AddResource(mcp.NewResource(BrainMapURI, "Brain Region Index",
		mcp.WithResourceDescription("The region index served to viewers as brain-map.json"),
		mcp.WithMIMEType("application/json"),
	), s.handleBrainMap)
}

func (s *Server) handleBrainMap(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	var buf bytes.Buffer
	if err := export.EncodeRegionIndex(&buf, s.index); err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      BrainMapURI,
			MIMEType: "application/json",
			Text:     buf.String(),
		},
	}, nil
}
