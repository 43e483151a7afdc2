/*
Package scene holds the in-memory scene graph the generator builds before export.

A scene is a tree of named Nodes. Mesh nodes pair a Geometry (sphere, cylinder or box) with a
Material; group nodes only carry a transform; light nodes carry a Light. Geometries are
parametric descriptions that tessellate on demand into indexed triangle data, so two nodes with
the same parameters can share one exported mesh.

The graph is owned by a single goroutine during generation and is discarded after export.
*/
package scene
