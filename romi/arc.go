package romi

import (
	"fmt"
	"math"

	"github.com/chassiskit/romibase/geom"
)

// Along the upper and lower rims run concentric arcs of holes and
// rectangular vent slots. Holes sit on the radius through the two
// measured reference holes; rectangles sit on an independently
// measured second radius at the same angles. Every third position
// (index 0, 3, 6, ...) carries the large fastener hole and the long
// rectangle; the rest are small. The counts and skip rules below are
// irregularities of the physical part, measured, not derived.
const arcHoleCount = 12

// upperArcHoleSkips lists the angular position indices along the upper
// arc where the physical part has a rectangle but no hole (the chassis
// rib lands there). Measured off the part; only indices that fall
// inside the generated range apply.
var upperArcHoleSkips = map[int]bool{2: true, 3: true, 12: true, 13: true}

// Diagonal calibration boxes of the arc reference holes (inches).
// "Start" is the hole closest to the wheel well, "end" the one
// farthest from it; the end hole is also the small-size reference.
const (
	lowerStartX1In, lowerStartY1In = -1.483063, 1.348929
	lowerStartX2In, lowerStartY2In = -1.357508, 1.223803
	lowerEndX1In, lowerEndY1In     = -3.144020, 0.125287
	lowerEndX2In, lowerEndY2In     = -3.053465, 0.034732

	upperStartX1In, upperStartY1In = -1.483063, 4.651469
	upperStartX2In, upperStartY2In = -1.357508, 4.526346
	upperEndX1In, upperEndY1In     = -3.144020, 5.840524
	upperEndX2In, upperEndY2In     = -3.053465, 5.749969
)

// Measured rectangle corners (inches) fixing the rectangle width, the
// large and small rectangle lengths, and the rectangle arc radius.
var (
	lowerLargeUpperLeftIn  = geom.Point2D{X: -1.248201, Y: 1.259484}
	lowerLargeLowerLeftIn  = geom.Point2D{X: -1.331370, Y: 1.136248}
	lowerLargeUpperRightIn = geom.Point2D{X: -1.205772, Y: 1.230858}
	lowerSmallUpperLeftIn  = geom.Point2D{X: -1.368228, Y: 1.081638}
	lowerSmallLowerLeftIn  = geom.Point2D{X: -1.431575, Y: 0.987760}

	upperLargeUpperInnerIn = geom.Point2D{X: -1.331370, Y: 4.739012}
	upperLargeLowerInnerIn = geom.Point2D{X: -1.248201, Y: 4.615776}
	upperLargeLowerOuterIn = geom.Point2D{X: -1.205772, Y: 4.644402}
	upperSmallUpperInnerIn = geom.Point2D{X: -1.431575, Y: 4.887512}
	upperSmallLowerInnerIn = geom.Point2D{X: -1.368228, Y: 4.793638}
)

// arcSizes holds the large/small alternation references for one arc.
type arcSizes struct {
	largeHoleDiameter float64
	smallHoleDiameter float64
	largeRectLength   float64
	smallRectLength   float64
	rectWidth         float64
	holeRadius        float64
	rectRadius        float64
	startAngle        float64
	endAngle          float64
}

// lowerArcSizes derives the lower-arc layout from the measured
// references.
func (b *Base) lowerArcSizes() arcSizes {
	start := b.frame.HoleLocate("Lower Start Hole", geom.SideRight,
		lowerStartX1In, lowerStartY1In, lowerStartX2In, lowerStartY2In, b.opts.HoleSegments)
	end := b.frame.HoleLocate("Lower End Hole", geom.SideRight,
		lowerEndX1In, lowerEndY1In, lowerEndX2In, lowerEndY2In, b.opts.HoleSegments)

	largeUpperLeft := b.frame.Point(lowerLargeUpperLeftIn.X, lowerLargeUpperLeftIn.Y)
	largeLowerLeft := b.frame.Point(lowerLargeLowerLeftIn.X, lowerLargeLowerLeftIn.Y)
	largeUpperRight := b.frame.Point(lowerLargeUpperRightIn.X, lowerLargeUpperRightIn.Y)
	smallUpperLeft := b.frame.Point(lowerSmallUpperLeftIn.X, lowerSmallUpperLeftIn.Y)
	smallLowerLeft := b.frame.Point(lowerSmallLowerLeftIn.X, lowerSmallLowerLeftIn.Y)
	rectCenter := largeUpperRight.Add(largeLowerLeft).Scale(0.5)

	return arcSizes{
		largeHoleDiameter: start.Diameter(),
		smallHoleDiameter: end.Diameter(),
		largeRectLength:   largeUpperLeft.Distance(largeLowerLeft),
		smallRectLength:   smallUpperLeft.Distance(smallLowerLeft),
		rectWidth:         largeUpperLeft.Distance(largeUpperRight),
		holeRadius:        start.Center().Length(),
		rectRadius:        rectCenter.Length(),
		startAngle:        start.Center().Angle(),
		endAngle:          end.Center().Angle(),
	}
}

// upperArcSizes derives the upper-arc layout from the measured
// references.
func (b *Base) upperArcSizes() arcSizes {
	start := b.frame.HoleLocate("Upper Start Hole", geom.SideRight,
		upperStartX1In, upperStartY1In, upperStartX2In, upperStartY2In, b.opts.HoleSegments)
	end := b.frame.HoleLocate("Upper End Hole", geom.SideRight,
		upperEndX1In, upperEndY1In, upperEndX2In, upperEndY2In, b.opts.HoleSegments)

	largeUpperInner := b.frame.Point(upperLargeUpperInnerIn.X, upperLargeUpperInnerIn.Y)
	largeLowerInner := b.frame.Point(upperLargeLowerInnerIn.X, upperLargeLowerInnerIn.Y)
	largeLowerOuter := b.frame.Point(upperLargeLowerOuterIn.X, upperLargeLowerOuterIn.Y)
	smallUpperInner := b.frame.Point(upperSmallUpperInnerIn.X, upperSmallUpperInnerIn.Y)
	smallLowerInner := b.frame.Point(upperSmallLowerInnerIn.X, upperSmallLowerInnerIn.Y)
	rectCenter := largeUpperInner.Add(largeLowerOuter).Scale(0.5)

	return arcSizes{
		largeHoleDiameter: start.Diameter(),
		smallHoleDiameter: end.Diameter(),
		largeRectLength:   largeUpperInner.Distance(largeLowerInner),
		smallRectLength:   smallUpperInner.Distance(smallLowerInner),
		rectWidth:         largeLowerInner.Distance(largeLowerOuter),
		holeRadius:        start.Center().Length(),
		rectRadius:        rectCenter.Length(),
		startAngle:        start.Center().Angle(),
		endAngle:          end.Center().Angle(),
	}
}

// LowerArcFeatures generates the lower rim ring. The physical part has
// rectangles at all arcHoleCount+3 angular positions but holes only at
// the first arcHoleCount+1 of them.
func (b *Base) LowerArcFeatures() []geom.Shape {
	sizes := b.lowerArcSizes()
	shapes := make([]geom.Shape, 0, 2*(arcHoleCount+3))
	deltaAngle := (sizes.endAngle - sizes.startAngle) / float64(arcHoleCount-1)
	for index := 0; index < arcHoleCount+3; index++ {
		angle := sizes.startAngle + float64(index)*deltaAngle

		if index < arcHoleCount+1 {
			diameter := sizes.smallHoleDiameter
			if index%3 == 0 {
				diameter = sizes.largeHoleDiameter
			}
			center := geom.Point2D{
				X: sizes.holeRadius * math.Cos(angle),
				Y: sizes.holeRadius * math.Sin(angle),
			}
			shapes = append(shapes, geom.NewCircle(
				fmt.Sprintf("Lower Arc Hole %d", index),
				geom.SideRight, diameter, b.opts.HoleSegments, center))
		}

		length := sizes.smallRectLength
		if index%3 == 0 {
			length = sizes.largeRectLength
		}
		center := geom.Point2D{
			X: sizes.rectRadius * math.Cos(angle),
			Y: sizes.rectRadius * math.Sin(angle),
		}
		shapes = append(shapes, geom.NewSlot(
			fmt.Sprintf("Lower Arc Rectangle %d", index),
			geom.SideRight, sizes.rectWidth, length, center, angle, 0.0, 0))
	}
	return shapes
}

// UpperArcFeatures generates the upper rim ring. The part has
// arcHoleCount+1 angular positions with a rectangle at each, but the
// positions listed in upperArcHoleSkips carry no hole.
func (b *Base) UpperArcFeatures() []geom.Shape {
	sizes := b.upperArcSizes()
	shapes := make([]geom.Shape, 0, 2*(arcHoleCount+1))
	deltaAngle := (sizes.endAngle - sizes.startAngle) / float64(arcHoleCount-1)
	for index := 0; index < arcHoleCount+1; index++ {
		angle := sizes.startAngle + float64(index)*deltaAngle

		if !upperArcHoleSkips[index] {
			diameter := sizes.smallHoleDiameter
			if index%3 == 0 {
				diameter = sizes.largeHoleDiameter
			}
			center := geom.Point2D{
				X: sizes.holeRadius * math.Cos(angle),
				Y: sizes.holeRadius * math.Sin(angle),
			}
			shapes = append(shapes, geom.NewCircle(
				fmt.Sprintf("Upper Arc Hole %d", index),
				geom.SideRight, diameter, b.opts.HoleSegments, center))
		}

		length := sizes.smallRectLength
		if index%3 == 0 {
			length = sizes.largeRectLength
		}
		center := geom.Point2D{
			X: sizes.rectRadius * math.Cos(angle),
			Y: sizes.rectRadius * math.Sin(angle),
		}
		shapes = append(shapes, geom.NewSlot(
			fmt.Sprintf("Upper Arc Rectangle %d", index),
			geom.SideRight, sizes.rectWidth, length, center, angle, 0.0, 0))
	}
	return shapes
}
