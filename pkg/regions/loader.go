// Package regions loads the region index a viewer fetches at startup.
//
// A source is either a local path or an http(s) URL. Each load makes exactly one attempt.
// Load degrades to an empty index on any failure; LoadStrict reports the failure instead.
package regions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/aretw0/wayfinder/internal/logging"
	"github.com/aretw0/wayfinder/pkg/domain"
)

// Loader fetches region indexes.
type Loader struct {
	client *http.Client
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient sets the client used for URL sources.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		l.client = c
	}
}

// WithLogger sets the logger that receives degradation warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a loader. Without options it uses http.DefaultClient and discards logs.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		client: http.DefaultClient,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// IsURL reports whether source is fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Load returns the index at source, or an empty index if it cannot be read or parsed.
func (l *Loader) Load(ctx context.Context, source string) domain.RegionIndex {
	index, err := l.LoadStrict(ctx, source)
	if err != nil {
		l.logger.Warn("region index unavailable, continuing without overlays",
			"source", source, "error", err)
		return domain.NewRegionIndex()
	}
	return index
}

// LoadStrict returns the index at source or the reason it could not be loaded.
func (l *Loader) LoadStrict(ctx context.Context, source string) (domain.RegionIndex, error) {
	data, err := l.read(ctx, source)
	if err != nil {
		return domain.RegionIndex{}, err
	}
	return Decode(bytes.NewReader(data))
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	if !IsURL(source) {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read region index: %w", err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch region index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("failed to fetch region index: %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}

// Decode parses a region index document. A missing or null regions list decodes as empty.
func Decode(r io.Reader) (domain.RegionIndex, error) {
	var index domain.RegionIndex
	if err := json.NewDecoder(r).Decode(&index); err != nil {
		return domain.RegionIndex{}, fmt.Errorf("malformed region index: %w", err)
	}
	return domain.NewRegionIndex(index.Regions...), nil
}

// Load uses a default Loader.
func Load(ctx context.Context, source string) domain.RegionIndex {
	return NewLoader().Load(ctx, source)
}

// LoadStrict uses a default Loader.
func LoadStrict(ctx context.Context, source string) (domain.RegionIndex, error) {
	return NewLoader().LoadStrict(ctx, source)
}
