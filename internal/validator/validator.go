package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/wayfinder/pkg/anatomy"
	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/aretw0/wayfinder/pkg/export"
	"github.com/aretw0/wayfinder/pkg/highlight"
	"github.com/aretw0/wayfinder/pkg/regions"
	"github.com/aretw0/wayfinder/pkg/scene"
)

// Kinds of problems reported by Check.
const (
	KindCatalogWithoutNode = "catalog-without-node"
	KindRegionWithoutNode  = "region-without-node"
	KindHighlightMissing   = "highlight-without-region"
	KindDuplicateRegion    = "duplicate-region"
	KindNonCanonicalID     = "non-canonical-id"
	KindDecorationRegion   = "decoration-region"
	KindBadColor           = "bad-color"
)

// Problem is one inconsistency between the model, the region index and the tables that
// reference them.
type Problem struct {
	Kind    string `json:"kind"`
	Subject string `json:"subject"`
	Detail  string `json:"detail"`
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s (%s)", p.Kind, p.Subject, p.Detail)
}

// Input gathers everything Check cross-references. A nil Catalog skips the catalog checks.
type Input struct {
	ModelNames []string
	Index      domain.RegionIndex
	Catalog    *anatomy.Catalog
	Highlights highlight.Map
}

// Report lists every problem found.
type Report struct {
	Problems []Problem `json:"problems"`
}

// OK reports whether no problem was found.
func (r Report) OK() bool {
	return len(r.Problems) == 0
}

// Filter returns the problems of the given kind.
func (r Report) Filter(kind string) []Problem {
	var out []Problem
	for _, p := range r.Problems {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// Err returns nil for a clean report, or an error wrapping domain.ErrInconsistent that lists
// every problem.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	lines := make([]string, len(r.Problems))
	for i, p := range r.Problems {
		lines[i] = p.String()
	}
	return fmt.Errorf("%w: found %d errors:\n- %s", domain.ErrInconsistent, len(lines), strings.Join(lines, "\n- "))
}

// Check collects every problem instead of stopping at the first one.
func Check(in Input) Report {
	var r Report
	add := func(kind, subject, format string, args ...any) {
		r.Problems = append(r.Problems, Problem{Kind: kind, Subject: subject, Detail: fmt.Sprintf(format, args...)})
	}

	nodes := make(map[string]bool, len(in.ModelNames))
	for _, n := range in.ModelNames {
		nodes[n] = true
	}

	if in.Catalog != nil {
		for _, e := range in.Catalog.Entries() {
			if !nodes[e.Node] {
				add(KindCatalogWithoutNode, e.Node, "catalog entry %q matches no model node", e.Name)
			}
			if _, err := scene.ParseColor(e.Color); err != nil {
				add(KindBadColor, e.Node, "catalog color: %v", err)
			}
		}
	}

	seen := make(map[string]bool, in.Index.Len())
	for _, reg := range in.Index.Regions {
		if seen[reg.ID] {
			add(KindDuplicateRegion, reg.ID, "region id appears more than once")
		}
		seen[reg.ID] = true

		node := anatomy.NodeName(reg.ID)
		if anatomy.RegionID(node) != reg.ID {
			add(KindNonCanonicalID, reg.ID, "want %q", anatomy.RegionID(reg.ID))
		}
		if !nodes[node] {
			add(KindRegionWithoutNode, reg.ID, "no model node named %q", node)
		}
		if strings.HasPrefix(node, anatomy.FoldPrefix) {
			add(KindDecorationRegion, reg.ID, "decoration nodes carry no metadata")
		}
		if _, err := scene.ParseColor(reg.Color); err != nil {
			add(KindBadColor, reg.ID, "region color: %v", err)
		}
	}

	for _, id := range in.Highlights.AllRegions() {
		if !seen[id] {
			add(KindHighlightMissing, id, "highlighted id has no region")
		}
	}
	return r
}

// Files gathers the inputs for Check from a model file and a region index source.
// Unreadable artifacts are returned as errors, not as problems.
func Files(ctx context.Context, modelPath, indexSource string, catalog *anatomy.Catalog, m highlight.Map) (Report, error) {
	names, err := export.ReadModelNames(modelPath)
	if err != nil {
		return Report{}, err
	}
	index, err := regions.LoadStrict(ctx, indexSource)
	if err != nil {
		return Report{}, err
	}
	return Check(Input{
		ModelNames: names,
		Index:      index,
		Catalog:    catalog,
		Highlights: m,
	}), nil
}
