/*
Package anatomy builds the procedural brain model and derives its region index.

Build assembles a fixed hierarchy of named primitives (hemispheres, brainstem parts, limbic
structures, lobe markers) and then runs a randomized decoration pass that scatters cortical
folds over the surface. The structural part is identical on every run; only the folds move.

ExtractRegions joins the direct children of the Brain group against a hand-authored Catalog by
node name. Nodes without a catalog entry (folds, for instance) are left out of the index.
*/
package anatomy
