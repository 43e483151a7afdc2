package anatomy

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Entry is the hand-authored description of one structure.
type Entry struct {
	Node    string `yaml:"node" json:"node"`
	Name    string `yaml:"name" json:"name"`
	Role    string `yaml:"role" json:"role"`
	Color   string `yaml:"color" json:"color"`
	Tooltip string `yaml:"tooltip,omitempty" json:"tooltip,omitempty"`
}

// catalogFile is the on-disk layout of a catalog.
type catalogFile struct {
	Regions []Entry `yaml:"regions" json:"regions"`
}

// Catalog maps node names to their descriptions. It is read-only after construction.
type Catalog struct {
	entries map[string]Entry
	order   []string
}

// NewCatalog builds a catalog from entries. Entries without a node name or with a
// duplicate node name are rejected.
func NewCatalog(entries ...Entry) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]Entry, len(entries))}
	for i, e := range entries {
		if e.Node == "" {
			return nil, fmt.Errorf("catalog entry %d has no node name", i)
		}
		if _, dup := c.entries[e.Node]; dup {
			return nil, fmt.Errorf("duplicate catalog entry for node %q", e.Node)
		}
		c.entries[e.Node] = e
		c.order = append(c.order, e.Node)
	}
	return c, nil
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalog, ".yaml")
	if err != nil {
		panic(fmt.Sprintf("anatomy: embedded catalog is invalid: %v", err))
	}
	return c
}

// LoadCatalog reads a catalog from a YAML or JSON file. An empty path selects the default catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data, filepath.Ext(path))
}

// ParseCatalog decodes catalog data. ext selects JSON for ".json" and YAML otherwise.
func ParseCatalog(data []byte, ext string) (*Catalog, error) {
	var file catalogFile
	if strings.EqualFold(ext, ".json") {
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse catalog json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse catalog yaml: %w", err)
		}
	}
	return NewCatalog(file.Regions...)
}

// Lookup returns the entry for a node name.
func (c *Catalog) Lookup(node string) (Entry, bool) {
	e, ok := c.entries[node]
	return e, ok
}

// Entries returns entries in authoring order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.order))
	for i, node := range c.order {
		out[i] = c.entries[node]
	}
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.order)
}
