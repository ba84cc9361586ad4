package romi

import "github.com/chassiskit/romibase/geom"

// miscHoleBoxes lists the calibration boxes (inches) of the seven
// miscellaneous holes scattered around the periphery of the lower hex
// pattern; each is picked off the drawing individually.
var miscHoleBoxes = []struct {
	base           string
	x1, y1, x2, y2 float64
}{
	{"Misc Small Lower Left", -3.119047, 0.658110, -3.041756, 0.748650},
	{"Misc Small Upper Left", -3.028492, 1.642358, -3.119047, 1.732913},
	{"Misc Small Upper Right -30deg", -1.755228, 1.642358, -1.664673, 1.732913},
	{"Misc Small Upper Right 30deg", -1.755228, 1.839205, -1.664673, 1.929760},
	{"Misc Small Upper Right 90deg", -1.925717, 1.937638, -1.835161, 2.028177},
	{"Misc Small Upper Right 120deg", -2.096189, 1.839205, -2.005634, 1.929760},
	{"Misc Large Upper Right", -1.844020, 2.252594, -1.718480, 2.127469},
}

// MiscHoleFeatures returns the seven measured miscellaneous holes.
func (b *Base) MiscHoleFeatures() []geom.Shape {
	shapes := make([]geom.Shape, 0, len(miscHoleBoxes))
	for _, box := range miscHoleBoxes {
		shapes = append(shapes, b.frame.HoleLocate(box.base, geom.SideRight,
			box.x1, box.y1, box.x2, box.y2, b.opts.HoleSegments))
	}
	return shapes
}
