package geom

import (
	"fmt"
	"math"
	"strconv"
)

// Point2D is a 2D point or vector in millimeters.
type Point2D struct {
	X, Y float64
}

// Add returns the component-wise sum p + other.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the component-wise difference p - other.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns p scaled by factor.
func (p Point2D) Scale(factor float64) Point2D {
	return Point2D{X: p.X * factor, Y: p.Y * factor}
}

// Distance returns the Euclidean distance to other.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Length returns the distance from the origin.
func (p Point2D) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Angle returns the angle of the vector from the origin to p, in
// radians, per math.Atan2.
func (p Point2D) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// String renders the point as "(x, y)" with millimeter precision.
func (p Point2D) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}

// Side tags a feature as belonging to the right half of the part
// (authored directly from measurements), the left half (produced by
// mirroring), or the center (whole features that are never mirrored).
// The tag is control data for mirroring; the human-readable marker it
// contributes to display names is derived from it, not the other way
// around.
type Side int

const (
	// SideCenter marks a whole feature that is never mirrored.
	SideCenter Side = iota
	// SideRight marks a feature on the right half of the part.
	SideRight
	// SideLeft marks a feature produced by mirroring a right-side one.
	SideLeft
)

// Marker returns the display-name prefix for the side, or "" for
// center features.
func (s Side) Marker() string {
	switch s {
	case SideRight:
		return "RIGHT:"
	case SideLeft:
		return "LEFT:"
	default:
		return ""
	}
}

// Mirrored returns the opposite side tag; SideCenter mirrors to itself.
func (s Side) Mirrored() Side {
	switch s {
	case SideRight:
		return SideLeft
	case SideLeft:
		return SideRight
	default:
		return SideCenter
	}
}

// displayName joins a side marker and a base name.
func displayName(side Side, base string) string {
	marker := side.Marker()
	if marker == "" {
		return base
	}
	return marker + " " + base
}

// Key is the stable ordered identity of a feature, used for tabular
// reporting. Kind is the shape type name; DX/DY are the overall
// dimensions (diameter twice for circles); Angle is in radians.
type Key struct {
	Kind  string
	Name  string
	X, Y  float64
	DX    float64
	DY    float64
	Angle float64
}

// Less orders keys by (Kind, Name, X, Y), the order used by reports.
func (k Key) Less(other Key) bool {
	if k.Kind != other.Kind {
		return k.Kind < other.Kind
	}
	if k.Name != other.Name {
		return k.Name < other.Name
	}
	if k.X != other.X {
		return k.X < other.X
	}
	return k.Y < other.Y
}

// Record returns the key as CSV fields, in KeyHeader order.
func (k Key) Record() []string {
	return []string{
		k.Kind,
		k.Name,
		strconv.FormatFloat(k.X, 'f', 3, 64),
		strconv.FormatFloat(k.Y, 'f', 3, 64),
		strconv.FormatFloat(k.DX, 'f', 3, 64),
		strconv.FormatFloat(k.DY, 'f', 3, 64),
		strconv.FormatFloat(k.Angle*180.0/math.Pi, 'f', 3, 64),
	}
}

// KeyHeader returns the CSV/HTML column headers matching Key.Record.
func KeyHeader() []string {
	return []string{"Kind", "Name", "X (mm)", "Y (mm)", "DX (mm)", "DY (mm)", "Angle (deg)"}
}

// Shape is implemented by every feature primitive. Shapes are
// immutable values once constructed (SimplePolygon once locked);
// Mirror returns a new shape reflected across the vertical center
// axis with the Right/Left tag and name marker swapped.
type Shape interface {
	// Name returns the display name, side marker included.
	Name() string
	// Side returns the explicit side tag.
	Side() Side
	// Points returns the tessellated perimeter, counter-clockwise.
	Points() []Point2D
	// Key returns the stable identity tuple for reporting.
	Key() Key
	// Mirror reflects the shape across the vertical center axis.
	Mirror() Shape
}
