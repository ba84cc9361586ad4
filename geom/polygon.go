package geom

import "sort"

// Polygon is an ordered composite of shapes. By contract element 0 is
// the exterior outline and every following element is an interior
// hole or slot; downstream extrusion and reporting rely on that
// ordering. A locked Polygon rejects further appends.
type Polygon struct {
	name   string
	shapes []Shape
	locked bool
}

// NewPolygon constructs a composite from an ordered shape list. The
// slice is copied. When lock is true the composite is sealed
// immediately.
func NewPolygon(name string, shapes []Shape, lock bool) *Polygon {
	copied := make([]Shape, len(shapes))
	copy(copied, shapes)
	return &Polygon{name: name, shapes: copied, locked: lock}
}

// Name returns the composite name.
func (p *Polygon) Name() string { return p.name }

// Len returns the number of shapes, outline included.
func (p *Polygon) Len() int { return len(p.shapes) }

// Shape returns the i-th shape; index 0 is the exterior outline.
func (p *Polygon) Shape(i int) Shape { return p.shapes[i] }

// Shapes returns a copy of the ordered shape list.
func (p *Polygon) Shapes() []Shape {
	shapes := make([]Shape, len(p.shapes))
	copy(shapes, p.shapes)
	return shapes
}

// Locked reports whether the composite has been sealed.
func (p *Polygon) Locked() bool { return p.locked }

// Lock seals the composite against further appends.
func (p *Polygon) Lock() { p.locked = true }

// Append adds one interior shape. It fails with ErrLocked on a sealed
// composite.
func (p *Polygon) Append(shape Shape) error {
	if p.locked {
		return ErrLocked
	}
	p.shapes = append(p.shapes, shape)
	return nil
}

// Keys returns the sorted identity keys of every interior shape. The
// exterior outline at element 0 is excluded.
func (p *Polygon) Keys() []Key {
	if len(p.shapes) < 2 {
		return nil
	}
	keys := make([]Key, 0, len(p.shapes)-1)
	for _, shape := range p.shapes[1:] {
		keys = append(keys, shape.Key())
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}
