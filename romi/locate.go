package romi

import (
	"math"

	"github.com/chassiskit/romibase/geom"
)

// HoleLocate turns a diagonal pair of drawing-frame corner
// measurements (inches) bounding a circular hole into a calibrated
// circle. The diameter is the average of the box's width and height:
// the calibration box is assumed near-square around the hole, and the
// downstream constants were tuned against exactly this formula, so it
// is kept even for the few holes whose extracted box is visibly
// rectangular. A degenerate pair (x1==x2 or y1==y2) silently yields a
// zero-size hole; supplying valid calibration pairs is the caller's
// responsibility.
func (f Frame) HoleLocate(base string, side geom.Side, x1, y1, x2, y2 float64, segments int) *geom.Circle {
	x1 *= f.Scale
	y1 *= f.Scale
	x2 *= f.Scale
	y2 *= f.Scale
	dx := math.Abs(x2 - x1)
	dy := math.Abs(y2 - y1)
	center := geom.Point2D{X: (x1 + x2) / 2.0, Y: (y1 + y2) / 2.0}.Sub(f.Offset)
	return geom.NewCircle(base, side, (dx+dy)/2.0, segments, center)
}

// RectangleLocate turns a diagonal pair of drawing-frame corner
// measurements (inches) into a calibrated axis-aligned rectangle of
// width |x2-x1| and height |y2-y1|.
func (f Frame) RectangleLocate(base string, side geom.Side, x1, y1, x2, y2 float64) *geom.Square {
	x1 *= f.Scale
	y1 *= f.Scale
	x2 *= f.Scale
	y2 *= f.Scale
	dx := math.Abs(x2 - x1)
	dy := math.Abs(y2 - y1)
	center := geom.Point2D{X: (x1 + x2) / 2.0, Y: (y1 + y2) / 2.0}.Sub(f.Offset)
	return geom.NewSquare(base, side, dx, dy, center)
}
