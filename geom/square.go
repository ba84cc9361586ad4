package geom

import (
	"math"
	"strings"
)

// Square is an axis-measured rectangle, optionally rotated and
// optionally with rounded corners. A slot is a Square whose corner
// radius is half of its short dimension. A Square is immutable after
// construction.
type Square struct {
	base         string
	side         Side
	center       Point2D
	dx, dy       float64
	angle        float64
	cornerRadius float64
	cornerCount  int
}

// NewSquare constructs a plain (unrotated, sharp-cornered) rectangle
// of dx by dy millimeters centered at center.
func NewSquare(base string, side Side, dx, dy float64, center Point2D) *Square {
	return NewSlot(base, side, dx, dy, center, 0.0, 0.0, 0)
}

// NewSlot constructs a rotated rectangle with rounded corners. angle is
// the rotation in radians; cornerRadius and cornerCount control the
// corner arcs (cornerRadius 0 yields sharp corners).
func NewSlot(base string, side Side, dx, dy float64, center Point2D,
	angle, cornerRadius float64, cornerCount int) *Square {
	return &Square{
		base:         base,
		side:         side,
		center:       center,
		dx:           dx,
		dy:           dy,
		angle:        angle,
		cornerRadius: cornerRadius,
		cornerCount:  cornerCount,
	}
}

// Name returns the display name, side marker included.
func (s *Square) Name() string { return displayName(s.side, s.base) }

// Side returns the explicit side tag.
func (s *Square) Side() Side { return s.side }

// Center returns the rectangle center.
func (s *Square) Center() Point2D { return s.center }

// DX returns the width before rotation.
func (s *Square) DX() float64 { return s.dx }

// DY returns the height before rotation.
func (s *Square) DY() float64 { return s.dy }

// Angle returns the rotation in radians.
func (s *Square) Angle() float64 { return s.angle }

// CornerRadius returns the corner rounding radius.
func (s *Square) CornerRadius() float64 { return s.cornerRadius }

// CornerCount returns the point count of each corner arc.
func (s *Square) CornerCount() int { return s.cornerCount }

// Points returns the tessellated perimeter, counter-clockwise. With a
// zero corner radius the result is the 4 corners; otherwise each
// corner contributes a quarter-circle arc of cornerCount points.
func (s *Square) Points() []Point2D {
	halfDX := s.dx / 2.0
	halfDY := s.dy / 2.0

	var local []Point2D
	if s.cornerRadius <= 0.0 || s.cornerCount < 2 {
		local = []Point2D{
			{X: halfDX, Y: -halfDY},
			{X: halfDX, Y: halfDY},
			{X: -halfDX, Y: halfDY},
			{X: -halfDX, Y: -halfDY},
		}
	} else {
		r := s.cornerRadius
		corners := []struct {
			center Point2D
			start  float64
		}{
			{Point2D{X: halfDX - r, Y: -halfDY + r}, -math.Pi / 2.0},
			{Point2D{X: halfDX - r, Y: halfDY - r}, 0.0},
			{Point2D{X: -halfDX + r, Y: halfDY - r}, math.Pi / 2.0},
			{Point2D{X: -halfDX + r, Y: -halfDY + r}, math.Pi},
		}
		for _, corner := range corners {
			for i := 0; i < s.cornerCount; i++ {
				angle := corner.start + (math.Pi/2.0)*float64(i)/float64(s.cornerCount-1)
				local = append(local, Point2D{
					X: corner.center.X + r*math.Cos(angle),
					Y: corner.center.Y + r*math.Sin(angle),
				})
			}
		}
	}

	sin := math.Sin(s.angle)
	cos := math.Cos(s.angle)
	points := make([]Point2D, len(local))
	for i, p := range local {
		points[i] = Point2D{
			X: s.center.X + p.X*cos - p.Y*sin,
			Y: s.center.Y + p.X*sin + p.Y*cos,
		}
	}
	return points
}

// Mirror reflects the rectangle across the vertical center axis: the
// center X is negated, the rotation angle becomes pi-angle, and the
// Right/Left tag is swapped. The receiver is not modified.
func (s *Square) Mirror() Shape {
	return &Square{
		base:         s.base,
		side:         s.side.Mirrored(),
		center:       Point2D{X: -s.center.X, Y: s.center.Y},
		dx:           s.dx,
		dy:           s.dy,
		angle:        math.Pi - s.angle,
		cornerRadius: s.cornerRadius,
		cornerCount:  s.cornerCount,
	}
}

// MirrorAcrossX reflects the rectangle across the horizontal axis: the
// center Y is negated and the rotation angle is negated. The side tag
// is unchanged; the first occurrence of oldMarker in the base name is
// rewritten to newMarker. The receiver is not modified.
func (s *Square) MirrorAcrossX(oldMarker, newMarker string) *Square {
	return &Square{
		base:         strings.Replace(s.base, oldMarker, newMarker, 1),
		side:         s.side,
		center:       Point2D{X: s.center.X, Y: -s.center.Y},
		dx:           s.dx,
		dy:           s.dy,
		angle:        -s.angle,
		cornerRadius: s.cornerRadius,
		cornerCount:  s.cornerCount,
	}
}

// Key returns the stable identity tuple for reporting.
func (s *Square) Key() Key {
	return Key{
		Kind:  "Square",
		Name:  s.Name(),
		X:     s.center.X,
		Y:     s.center.Y,
		DX:    s.dx,
		DY:    s.dy,
		Angle: s.angle,
	}
}
