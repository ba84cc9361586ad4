package geom

import "errors"

var (
	// ErrLocked indicates a mutating operation on a locked polygon.
	ErrLocked = errors.New("geom: polygon is locked")
	// ErrArcCount indicates an arc tessellation with fewer than 2 points.
	ErrArcCount = errors.New("geom: arc point count must be at least 2")
)
