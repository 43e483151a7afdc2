package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/wayfinder/internal/logging"
	"github.com/aretw0/wayfinder/pkg/anatomy"
	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/aretw0/wayfinder/pkg/pointcloud"
	"github.com/aretw0/wayfinder/pkg/scene"
)

// Default artifact locations, relative to the working directory.
const (
	DefaultModelPath  = "public/models/brain.glb"
	DefaultIndexPath  = "public/brain-map.json"
	DefaultPointsPath = "public/models/brain-points.glb"
)

// PointSurfaces are the structures sampled into the point cloud.
var PointSurfaces = []string{"LeftHemisphere", "RightHemisphere"}

// Config describes one generation run.
type Config struct {
	ModelPath string
	IndexPath string
	// PointsPath enables the point cloud artifact when non-empty.
	PointsPath string
	PointCount int
	FoldCount  int
	// Seed drives the fold pass and the point sampler. Zero picks a time-based seed.
	Seed    int64
	Catalog *anatomy.Catalog
}

// DefaultConfig returns the paths and counts used by the wayfinder command.
func DefaultConfig() Config {
	return Config{
		ModelPath: DefaultModelPath,
		IndexPath: DefaultIndexPath,
		FoldCount: anatomy.DefaultFoldCount,
	}
}

// Result reports what a run produced.
type Result struct {
	Seed      int64
	Scene     *scene.Node
	Index     domain.RegionIndex
	Unmatched []string
	Points    int
	Written   []string
}

// Generator builds the brain model and writes its artifacts.
type Generator struct {
	cfg    Config
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used to report progress and warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a generator. A nil catalog falls back to the embedded default.
func NewGenerator(cfg Config, opts ...Option) *Generator {
	if cfg.Catalog == nil {
		cfg.Catalog = anatomy.DefaultCatalog()
	}
	g := &Generator{
		cfg:    cfg,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run builds the scene, then writes the model followed by the region index and, when
// configured, the point cloud. The first write failure aborts the run; artifacts already
// written stay on disk.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	brain := anatomy.Build(
		anatomy.WithSeed(seed),
		anatomy.WithFoldCount(g.cfg.FoldCount),
		anatomy.WithLogger(g.logger),
	)
	res := &Result{
		Seed:      seed,
		Scene:     anatomy.Scene(brain),
		Index:     anatomy.ExtractRegions(brain, g.cfg.Catalog),
		Unmatched: anatomy.UnmatchedEntries(brain, g.cfg.Catalog),
	}
	for _, node := range res.Unmatched {
		g.logger.Warn("catalog entry has no matching node", "node", node)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.write(g.cfg.ModelPath, func(w io.Writer) error {
		return EncodeGLB(w, res.Scene)
	}); err != nil {
		return nil, fmt.Errorf("failed to write model: %w", err)
	}
	res.Written = append(res.Written, g.cfg.ModelPath)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.write(g.cfg.IndexPath, func(w io.Writer) error {
		return EncodeRegionIndex(w, res.Index)
	}); err != nil {
		return nil, fmt.Errorf("failed to write region index: %w", err)
	}
	res.Written = append(res.Written, g.cfg.IndexPath)

	if g.cfg.PointsPath == "" {
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cloud := pointcloud.Sample(surfaces(brain), g.cfg.PointCount, rand.New(rand.NewSource(seed)))
	if err := g.write(g.cfg.PointsPath, func(w io.Writer) error {
		return pointcloud.EncodeGLB(w, cloud)
	}); err != nil {
		return nil, fmt.Errorf("failed to write point cloud: %w", err)
	}
	res.Points = cloud.Len()
	res.Written = append(res.Written, g.cfg.PointsPath)
	return res, nil
}

func surfaces(brain *scene.Node) []scene.MeshInstance {
	var out []scene.MeshInstance
	for _, mi := range scene.Meshes(brain) {
		for _, name := range PointSurfaces {
			if mi.Node.Name == name {
				out = append(out, mi)
			}
		}
	}
	return out
}

func (g *Generator) write(path string, encode func(io.Writer) error) error {
	if path == "" {
		return fmt.Errorf("empty output path")
	}
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	g.logger.Info("artifact written", "path", path, "bytes", buf.Len())
	return nil
}
