package romi

import "github.com/chassiskit/romibase/geom"

// verticalRectangleBoxes lists the calibration boxes (inches) of the
// four vertical rectangles along the upper right wheel well. The lower
// four are their reflections across the axle line.
var verticalRectangleBoxes = []struct {
	base           string
	x1, y1, x2, y2 float64
}{
	{"UPPER: Rectangle 0", -1.511965, 3.569984, -1.460783, 3.683232},
	{"UPPER: Rectangle 1", -1.511965, 3.749122, -1.460783, 3.897803},
	{"UPPER: Rectangle 2", -1.511965, 3.963677, -1.460783, 4.076929},
	{"UPPER: Rectangle 3", -1.511965, 4.142815, -1.460783, 4.291496},
}

// VerticalRectangleFeatures returns the eight wheel-well rectangles:
// the four measured upper ones and their horizontal-axis mirrors.
func (b *Base) VerticalRectangleFeatures() []geom.Shape {
	shapes := make([]geom.Shape, 0, 2*len(verticalRectangleBoxes))
	for _, box := range verticalRectangleBoxes {
		upper := b.frame.RectangleLocate(box.base, geom.SideRight,
			box.x1, box.y1, box.x2, box.y2)
		shapes = append(shapes, upper)
		shapes = append(shapes, upper.MirrorAcrossX("UPPER:", "LOWER:"))
	}
	return shapes
}
