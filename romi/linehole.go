package romi

import (
	"fmt"

	"github.com/chassiskit/romibase/geom"
)

// Calibration box (inches) of the smallest hole at the end of the line
// of holes along the bottom rim; it fixes the diameter for the whole
// line.
const (
	lineHoleX1In, lineHoleY1In = -3.289535, 0.256524
	lineHoleX2In, lineHoleY2In = -3.198980, 0.165984
)

// lineHoleCandidates is the number of candidate positions along the
// line; every third one (index%3 == 1) is blocked by a large arc hole
// on the physical part.
const lineHoleCandidates = 9

// LineHoleFeatures generates the line of small holes along the bottom.
// The line direction comes from the 'S' and 'Q' anchors of the lower
// hex pattern, so the caller passes that pattern's anchor table.
func (b *Base) LineHoleFeatures(lowerHexAnchors AnchorTable) ([]geom.Shape, error) {
	small := b.frame.HoleLocate("Small Hole", geom.SideRight,
		lineHoleX1In, lineHoleY1In, lineHoleX2In, lineHoleY2In, b.opts.HoleSegments)

	sAnchor, ok := lowerHexAnchors['S']
	if !ok {
		return nil, fmt.Errorf("%w: %q for line holes", ErrUnknownAnchor, "S")
	}
	qAnchor, ok := lowerHexAnchors['Q']
	if !ok {
		return nil, fmt.Errorf("%w: %q for line holes", ErrUnknownAnchor, "Q")
	}

	// Step a third of the S->Q vector per hole, starting one step
	// before S.
	step := qAnchor.Sub(sAnchor).Scale(1.0 / 3.0)
	shapes := make([]geom.Shape, 0, lineHoleCandidates)
	for index := 0; index < lineHoleCandidates; index++ {
		if index%3 == 1 {
			continue
		}
		center := sAnchor.Add(step.Scale(float64(index - 1)))
		shapes = append(shapes, geom.NewCircle(
			fmt.Sprintf("Line Hole %d", index),
			geom.SideRight, small.Diameter(), b.opts.HoleSegments, center))
	}
	return shapes, nil
}
