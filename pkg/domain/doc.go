/*
Package domain contains the core types shared by the Wayfinder generator and viewer.

It defines the region metadata contract produced by the generator, the enumerated highlight
states, derived display styles and per-viewer interaction sessions. This package is kept pure
and free of I/O so that producers and consumers of the region index depend only on it.

# Key Entities

  - Region: a named anatomical structure with display metadata and a 3D anchor position.
  - RegionIndex: the `{ "regions": [...] }` document exchanged through brain-map.json.
  - State: one of Flow, Anxious, Sad or Shutdown.
  - Style: the color, opacity and glow a viewer applies to a region.
  - ViewSession: hover/selection state of one viewer.
*/
package domain
