package romi

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/chassiskit/romibase/geom"
)

// Overall base plate dimensions read off the vendor drawing, in
// millimeters.
const (
	baseDiameter = 163.0
	wheelWellDX  = 125.0
	wheelWellDY  = 72.0

	// outlineRadiusTol is the tolerance, in millimeters, within which
	// every outline arc endpoint must sit on the nominal radius.
	outlineRadiusTol = 1e-5
)

// Outline builds the exterior contour of the base plate: an upper arc
// between the wheel-well corners, the two straight segments of the
// left wheel well, the matching lower arc, and the two straight
// segments of the right wheel well. The contour is locked before it is
// returned.
//
// Structural invariants are verified before returning: the point count
// must be exactly 2*ArcSegments+4 and the endpoint of every arc must
// lie on the nominal radius within outlineRadiusTol.
func Outline(opts Options) (*geom.SimplePolygon, error) {
	radius := baseDiameter / 2.0
	halfWellDX := wheelWellDX / 2.0
	halfWellDY := wheelWellDY / 2.0

	// The wheel-well corners sit on the outline circle, so the half
	// angle subtended by a well follows from asin(y/r).
	wellAngle := math.Asin(halfWellDY / radius)
	origin := geom.Point2D{}

	outline := geom.NewSimplePolygon("Base Exterior", geom.SideCenter)

	// Upper arc, then the left wheel well straight edge.
	if err := outline.ArcAppend(origin, radius, wellAngle, math.Pi-wellAngle, opts.ArcSegments); err != nil {
		return nil, err
	}
	if err := outline.PointAppend(geom.Point2D{X: -halfWellDX, Y: halfWellDY}); err != nil {
		return nil, err
	}
	if err := outline.PointAppend(geom.Point2D{X: -halfWellDX, Y: -halfWellDY}); err != nil {
		return nil, err
	}

	// Lower arc (the upper one rotated by pi), then the right well.
	if err := outline.ArcAppend(origin, radius, wellAngle+math.Pi, 2.0*math.Pi-wellAngle, opts.ArcSegments); err != nil {
		return nil, err
	}
	if err := outline.PointAppend(geom.Point2D{X: halfWellDX, Y: -halfWellDY}); err != nil {
		return nil, err
	}
	if err := outline.PointAppend(geom.Point2D{X: halfWellDX, Y: halfWellDY}); err != nil {
		return nil, err
	}

	want := 2*opts.ArcSegments + 4
	if outline.Len() != want {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrOutlinePointCount, outline.Len(), want)
	}
	arcEndpoints := []int{
		0, opts.ArcSegments - 1, // upper arc
		opts.ArcSegments + 2, 2*opts.ArcSegments + 1, // lower arc
	}
	for _, index := range arcEndpoints {
		distance := outline.Point(index).Distance(origin)
		if !scalar.EqualWithinAbs(distance, radius, outlineRadiusTol) {
			return nil, fmt.Errorf("%w: point %d at %.6fmm, want %.6fmm",
				ErrOutlineRadius, index, distance, radius)
		}
	}

	outline.Lock()
	return outline, nil
}
