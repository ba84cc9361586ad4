package romi

import "github.com/chassiskit/romibase/geom"

// The vendor `.dxf` drawing is in inches with its origin off to the
// lower right of the part. The calibration frame converts a raw
// drawing measurement into the chassis-centered millimeter frame by
// scaling and then subtracting a fixed origin offset.
const (
	// InchesToMM is the fixed drawing-to-millimeter unit scale.
	InchesToMM = 25.4

	// Top and bottom of the motor axle read off the drawing, in
	// inches. The axles run through the chassis center, so their
	// midpoint fixes the frame's Y origin.
	axleYAboveIn = 2.967165
	axleYBelowIn = 2.908110

	// Left and right edges of the upper castor hole, in inches. The
	// castor sits on the vertical center axis, so their midpoint fixes
	// the frame's X origin.
	castorXLeftIn  = -3.930756
	castorXRightIn = -3.805256
)

// Frame is the fixed offset/scale mapping from raw drawing
// measurements to the chassis-centered working coordinate system. It
// is derived once per chassis instance and never recomputed.
type Frame struct {
	// Offset is the drawing-frame origin offset in millimeters;
	// every located feature subtracts it.
	Offset geom.Point2D
	// Scale converts drawing inches to millimeters.
	Scale float64
}

// NewFrame derives the calibration frame from the fixed axle-height
// and castor-hole reference measurements.
func NewFrame() Frame {
	return Frame{
		Offset: geom.Point2D{
			X: (castorXLeftIn + castorXRightIn) / 2.0 * InchesToMM,
			Y: (axleYAboveIn + axleYBelowIn) / 2.0 * InchesToMM,
		},
		Scale: InchesToMM,
	}
}

// Point converts one drawing-frame measurement (inches) into the
// chassis frame (millimeters).
func (f Frame) Point(xIn, yIn float64) geom.Point2D {
	return geom.Point2D{X: xIn * f.Scale, Y: yIn * f.Scale}.Sub(f.Offset)
}
