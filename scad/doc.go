// Package scad serializes composite polygons for downstream
// consumption: OpenSCAD source text (flat polygon or a fixed-height
// extruded prism) and tabular CSV/HTML feature reports built from
// sorted identity keys.
//
// The writers hold no state; each renders one artifact to an io.Writer
// and wraps any write failure with context.
package scad
