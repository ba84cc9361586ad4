package romi

import "github.com/chassiskit/romibase/geom"

// Options contains the tessellation tuning for a generation pass.
//
// Fields:
//   - ArcSegments  — point count of each exterior outline arc.
//   - HoleSegments — perimeter point count of every hole and of each
//     rounded slot corner.
//
// The defaults match the resolution the downstream extrusion was tuned
// against; change them only when a coarser preview or finer export is
// wanted.
type Options struct {
	ArcSegments  int
	HoleSegments int
}

// DefaultOptions returns the standard tessellation:
// ArcSegments=21, HoleSegments=8.
func DefaultOptions() Options {
	return Options{
		ArcSegments:  21,
		HoleSegments: 8,
	}
}

// AnchorTable maps a single pattern character to its position in the
// chassis frame. A table is built fresh by each HexPattern call and
// its keys are exactly the non-blank characters of the input pattern;
// other feature groups index it to reference named anchors.
type AnchorTable map[rune]geom.Point2D
