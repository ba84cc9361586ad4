package geom

import "math"

// SimplePolygon is a single closed contour built incrementally from
// explicit points and tessellated arcs. Construction happens through
// PointAppend and ArcAppend; Lock seals the contour, after which every
// mutating operation fails with ErrLocked.
type SimplePolygon struct {
	base   string
	side   Side
	points []Point2D
	locked bool
}

// NewSimplePolygon constructs an empty, unlocked contour.
func NewSimplePolygon(base string, side Side) *SimplePolygon {
	return &SimplePolygon{base: base, side: side}
}

// Name returns the display name, side marker included.
func (p *SimplePolygon) Name() string { return displayName(p.side, p.base) }

// Side returns the explicit side tag.
func (p *SimplePolygon) Side() Side { return p.side }

// Len returns the number of appended points.
func (p *SimplePolygon) Len() int { return len(p.points) }

// Point returns the i-th appended point.
func (p *SimplePolygon) Point(i int) Point2D { return p.points[i] }

// Points returns a copy of the contour points in append order.
func (p *SimplePolygon) Points() []Point2D {
	points := make([]Point2D, len(p.points))
	copy(points, p.points)
	return points
}

// Locked reports whether the contour has been sealed.
func (p *SimplePolygon) Locked() bool { return p.locked }

// Lock seals the contour against further mutation.
func (p *SimplePolygon) Lock() { p.locked = true }

// PointAppend appends one explicit point to the contour.
func (p *SimplePolygon) PointAppend(point Point2D) error {
	if p.locked {
		return ErrLocked
	}
	p.points = append(p.points, point)
	return nil
}

// ArcAppend appends count points evenly spaced along the circular arc
// of the given radius around center, from startAngle to endAngle
// inclusive of both endpoints. Angles are in radians.
func (p *SimplePolygon) ArcAppend(center Point2D, radius, startAngle, endAngle float64, count int) error {
	if p.locked {
		return ErrLocked
	}
	if count < 2 {
		return ErrArcCount
	}
	delta := (endAngle - startAngle) / float64(count-1)
	for i := 0; i < count; i++ {
		angle := startAngle + float64(i)*delta
		p.points = append(p.points, Point2D{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	return nil
}

// Mirror reflects the contour across the vertical center axis and
// swaps the Right/Left tag. The mirrored contour is locked. The
// receiver is not modified.
func (p *SimplePolygon) Mirror() Shape {
	points := make([]Point2D, len(p.points))
	for i, point := range p.points {
		points[i] = Point2D{X: -point.X, Y: point.Y}
	}
	return &SimplePolygon{
		base:   p.base,
		side:   p.side.Mirrored(),
		points: points,
		locked: true,
	}
}

// Key returns the stable identity tuple for reporting. The position is
// the centroid of the contour points; DX/DY are the bounding-box
// dimensions.
func (p *SimplePolygon) Key() Key {
	key := Key{Kind: "SimplePolygon", Name: p.Name()}
	if len(p.points) == 0 {
		return key
	}
	minX, minY := p.points[0].X, p.points[0].Y
	maxX, maxY := minX, minY
	var sumX, sumY float64
	for _, point := range p.points {
		sumX += point.X
		sumY += point.Y
		minX = math.Min(minX, point.X)
		maxX = math.Max(maxX, point.X)
		minY = math.Min(minY, point.Y)
		maxY = math.Max(maxY, point.Y)
	}
	n := float64(len(p.points))
	key.X = sumX / n
	key.Y = sumY / n
	key.DX = maxX - minX
	key.DY = maxY - minY
	return key
}
