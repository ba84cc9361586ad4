package romi

import "github.com/chassiskit/romibase/geom"

// Base generates the complete feature geometry of the Romi base plate.
// Construct it once with NewBase; every generation method is
// deterministic and leaves the Base unchanged.
type Base struct {
	frame Frame
	opts  Options
}

// NewBase returns a Base with its calibration frame derived from the
// fixed reference measurements.
func NewBase(opts Options) *Base {
	return &Base{frame: NewFrame(), opts: opts}
}

// Frame returns the calibration frame the Base was built with.
func (b *Base) Frame() Frame { return b.frame }

// Assemble produces the locked composite polygon of the whole base
// plate. Element 0 is always the exterior outline; the battery
// compartment features follow, then every right-side feature group
// (upper hex, lower hex, line holes, lower arc, upper arc,
// miscellaneous holes, vertical rectangles), then the vertical-axis
// mirror of each of those same groups. Downstream extrusion and
// reporting rely on that ordering.
func (b *Base) Assemble() (*geom.Polygon, error) {
	outline, err := Outline(b.opts)
	if err != nil {
		return nil, err
	}

	upperHex, err := b.UpperHexFeatures()
	if err != nil {
		return nil, err
	}
	lowerHex, lowerHexAnchors, err := b.LowerHexFeatures()
	if err != nil {
		return nil, err
	}
	lineHoles, err := b.LineHoleFeatures(lowerHexAnchors)
	if err != nil {
		return nil, err
	}

	var mirrorable []geom.Shape
	mirrorable = append(mirrorable, upperHex...)
	mirrorable = append(mirrorable, lowerHex...)
	mirrorable = append(mirrorable, lineHoles...)
	mirrorable = append(mirrorable, b.LowerArcFeatures()...)
	mirrorable = append(mirrorable, b.UpperArcFeatures()...)
	mirrorable = append(mirrorable, b.MiscHoleFeatures()...)
	mirrorable = append(mirrorable, b.VerticalRectangleFeatures()...)

	shapes := make([]geom.Shape, 0, 1+len(mirrorable)*2+72)
	shapes = append(shapes, outline)
	shapes = append(shapes, b.BatteryFeatures()...)
	shapes = append(shapes, mirrorable...)
	for _, shape := range mirrorable {
		shapes = append(shapes, shape.Mirror())
	}

	return geom.NewPolygon("Romi Base", shapes, true), nil
}
