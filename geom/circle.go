package geom

import "math"

// Circle is a round hole tessellated with a fixed segment count.
// A Circle is immutable after construction.
type Circle struct {
	base     string
	side     Side
	center   Point2D
	diameter float64
	segments int
}

// NewCircle constructs a circle from its base name (no side marker),
// side tag, diameter in millimeters, tessellation segment count, and
// center.
func NewCircle(base string, side Side, diameter float64, segments int, center Point2D) *Circle {
	return &Circle{
		base:     base,
		side:     side,
		center:   center,
		diameter: diameter,
		segments: segments,
	}
}

// Name returns the display name, side marker included.
func (c *Circle) Name() string { return displayName(c.side, c.base) }

// Side returns the explicit side tag.
func (c *Circle) Side() Side { return c.side }

// Center returns the circle center.
func (c *Circle) Center() Point2D { return c.center }

// Diameter returns the circle diameter in millimeters.
func (c *Circle) Diameter() float64 { return c.diameter }

// Segments returns the tessellation segment count.
func (c *Circle) Segments() int { return c.segments }

// Points returns the tessellated perimeter, counter-clockwise starting
// at angle 0.
func (c *Circle) Points() []Point2D {
	radius := c.diameter / 2.0
	points := make([]Point2D, c.segments)
	for i := 0; i < c.segments; i++ {
		angle := 2.0 * math.Pi * float64(i) / float64(c.segments)
		points[i] = Point2D{
			X: c.center.X + radius*math.Cos(angle),
			Y: c.center.Y + radius*math.Sin(angle),
		}
	}
	return points
}

// Copy returns a new circle with the same diameter and segment count
// but a new base name and center. Used to stamp out repeated holes
// from a single measured reference hole.
func (c *Circle) Copy(base string, center Point2D) *Circle {
	return &Circle{
		base:     base,
		side:     c.side,
		center:   center,
		diameter: c.diameter,
		segments: c.segments,
	}
}

// Mirror reflects the circle across the vertical center axis and swaps
// the Right/Left tag. The receiver is not modified.
func (c *Circle) Mirror() Shape {
	return &Circle{
		base:     c.base,
		side:     c.side.Mirrored(),
		center:   Point2D{X: -c.center.X, Y: c.center.Y},
		diameter: c.diameter,
		segments: c.segments,
	}
}

// Key returns the stable identity tuple for reporting.
func (c *Circle) Key() Key {
	return Key{
		Kind: "Circle",
		Name: c.Name(),
		X:    c.center.X,
		Y:    c.center.Y,
		DX:   c.diameter,
		DY:   c.diameter,
	}
}
