package geom_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chassiskit/romibase/geom"
)

func outlineAndHoles(t *testing.T) []geom.Shape {
	t.Helper()
	outline := geom.NewSimplePolygon("Exterior", geom.SideCenter)
	require.NoError(t, outline.PointAppend(geom.Point2D{X: 1.0}))
	outline.Lock()
	return []geom.Shape{
		outline,
		geom.NewCircle("B Hole", geom.SideRight, 2.0, 8, geom.Point2D{X: 5.0}),
		geom.NewCircle("A Hole", geom.SideRight, 2.0, 8, geom.Point2D{X: 3.0}),
	}
}

// TestPolygon_Ordering verifies element 0 stays the exterior and the
// input order is preserved.
func TestPolygon_Ordering(t *testing.T) {
	shapes := outlineAndHoles(t)
	composite := geom.NewPolygon("Part", shapes, true)

	require.Equal(t, 3, composite.Len())
	assert.Equal(t, "Exterior", composite.Shape(0).Name())
	assert.Equal(t, "RIGHT: B Hole", composite.Shape(1).Name())
	assert.Equal(t, "RIGHT: A Hole", composite.Shape(2).Name())
}

// TestPolygon_Lock verifies a sealed composite rejects appends while
// an unsealed one accepts them until Lock.
func TestPolygon_Lock(t *testing.T) {
	shapes := outlineAndHoles(t)

	sealed := geom.NewPolygon("Part", shapes, true)
	assert.ErrorIs(t, sealed.Append(shapes[1]), geom.ErrLocked)

	open := geom.NewPolygon("Part", shapes, false)
	require.NoError(t, open.Append(geom.NewCircle("C Hole", geom.SideRight, 1.0, 8, geom.Point2D{})))
	open.Lock()
	assert.ErrorIs(t, open.Append(shapes[1]), geom.ErrLocked)
	assert.Equal(t, 4, open.Len())
}

// TestPolygon_Keys verifies the report keys exclude the exterior and
// come back sorted.
func TestPolygon_Keys(t *testing.T) {
	composite := geom.NewPolygon("Part", outlineAndHoles(t), true)

	keys := composite.Keys()
	require.Len(t, keys, 2)
	assert.Equal(t, "RIGHT: A Hole", keys[0].Name)
	assert.Equal(t, "RIGHT: B Hole", keys[1].Name)
	assert.True(t, sort.SliceIsSorted(keys, func(i, j int) bool { return keys[i].Less(keys[j]) }))
}

// TestPolygon_ShapesCopy verifies the shape list is copied on both
// construction and access.
func TestPolygon_ShapesCopy(t *testing.T) {
	shapes := outlineAndHoles(t)
	composite := geom.NewPolygon("Part", shapes, true)

	shapes[1] = nil
	assert.NotNil(t, composite.Shape(1))

	listed := composite.Shapes()
	listed[0] = nil
	assert.NotNil(t, composite.Shape(0))
}
