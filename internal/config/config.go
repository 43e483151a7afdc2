// Package config loads wayfinder.yaml. Values are layered: built-in defaults, then the
// file, then command-line flags applied by the caller.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/wayfinder/internal/logging"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "wayfinder.yaml"

// Store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config is the full configuration of the wayfinder command.
type Config struct {
	// Dir is the base for every relative path below.
	Dir      string   `mapstructure:"dir"`
	Generate Generate `mapstructure:"generate"`
	Serve    Serve    `mapstructure:"serve"`
	Log      Log      `mapstructure:"log"`
}

// Generate configures artifact generation.
type Generate struct {
	Model      string `mapstructure:"model"`
	Index      string `mapstructure:"index"`
	Points     string `mapstructure:"points"`
	PointCount int    `mapstructure:"point_count"`
	Folds      int    `mapstructure:"folds"`
	Seed       int64  `mapstructure:"seed"`
	Catalog    string `mapstructure:"catalog"`
}

// Serve configures the viewer service.
type Serve struct {
	Addr string `mapstructure:"addr"`
	// Index is a path or URL; empty means generate.index.
	Index string        `mapstructure:"index"`
	Store string        `mapstructure:"store"`
	TTL   time.Duration `mapstructure:"ttl"`
	Redis Redis         `mapstructure:"redis"`
}

// Redis configures the Redis session store.
type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// Log configures the application logger.
type Log struct {
	Level string `mapstructure:"level"`
	// Format is text or json.
	Format string `mapstructure:"format"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Dir: ".",
		Generate: Generate{
			Model:      "public/models/brain.glb",
			Index:      "public/brain-map.json",
			PointCount: 5000,
			Folds:      20,
		},
		Serve: Serve{
			Addr:  ":8080",
			Store: StoreMemory,
			TTL:   24 * time.Hour,
			Redis: Redis{
				Addr:   "localhost:6379",
				Prefix: "wayfinder:session:",
			},
		},
		Log: Log{Level: "info", Format: string(logging.FormatText)},
	}
}

// Load reads path over the defaults. An empty path tries DefaultFile and silently keeps the
// defaults if it does not exist; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := Decode(data, filepath.Ext(path), &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML (or JSON for a ".json" ext) into cfg. Keys absent from data keep the
// values already in cfg; unknown keys are an error.
func Decode(data []byte, ext string, cfg *Config) error {
	raw := map[string]any{}
	if strings.EqualFold(ext, ".json") {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []string
	if c.Generate.Folds < 0 {
		errs = append(errs, "generate.folds must not be negative")
	}
	if c.Generate.PointCount < 0 {
		errs = append(errs, "generate.point_count must not be negative")
	}
	if c.Serve.Store != StoreMemory && c.Serve.Store != StoreRedis {
		errs = append(errs, fmt.Sprintf("serve.store must be %q or %q, got %q", StoreMemory, StoreRedis, c.Serve.Store))
	}
	if c.Serve.TTL < 0 {
		errs = append(errs, "serve.ttl must not be negative")
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err.Error())
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		errs = append(errs, "log.format: "+err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errs), strings.Join(errs, "\n- "))
	}
	return nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Logger builds the configured application logger.
func (c Config) Logger() (*slog.Logger, error) {
	level, err := c.LogLevel()
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(c.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("log.format: %w", err)
	}
	return logging.New(level, logging.WithFormat(format)), nil
}

// Path resolves p against Dir. Absolute paths and URLs are returned unchanged.
func (c Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) || strings.Contains(p, "://") {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// IndexSource is where the viewer service reads the region index from.
func (c Config) IndexSource() string {
	if c.Serve.Index != "" {
		return c.Path(c.Serve.Index)
	}
	return c.Path(c.Generate.Index)
}

// ModelsDir is the directory served under /models.
func (c Config) ModelsDir() string {
	return filepath.Dir(c.Path(c.Generate.Model))
}
