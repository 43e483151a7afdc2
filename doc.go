/*
Package wayfinder generates an anatomical brain model and the metadata a viewer needs to
emphasize its regions according to an emotional or cognitive state.

# Concept

Generation is an offline step. The anatomy package builds a scene graph of named primitives
(hemispheres, brainstem parts, limbic structures and a set of randomized cortical folds), the
export package writes it as binary glTF and joins node names against a hand-authored catalog
to produce a JSON region index. Viewers consume these two artifacts and never talk to the
generator directly.

The presentation side is pure logic. The highlight package maps a state (Flow, Anxious, Sad,
Shutdown) to a set of region ids and derives a display style for each region; the interaction
package tracks which region is hovered and which one is selected.

# Usage

	cfg := export.DefaultConfig()
	cfg.Seed = 42

	result, err := export.NewGenerator(cfg, export.WithLogger(logger)).Run(ctx)
	if err != nil {
		log.Fatal(err)
	}

	styles := highlight.Default().DeriveAll(domain.StateAnxious, result.Index, "", "")

# Surfaces

The wayfinder command wraps generation, validation and inspection, and can serve the artifacts
together with derived styles and per-viewer sessions over HTTP or MCP.
*/
package wayfinder
