package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chassiskit/romibase/geom"
)

// TestCircle_Points verifies the tessellated perimeter: point count,
// distance from center, and the first point at angle 0.
func TestCircle_Points(t *testing.T) {
	center := geom.Point2D{X: 3.0, Y: -2.0}
	circle := geom.NewCircle("Hole", geom.SideRight, 8.0, 8, center)

	points := circle.Points()
	require.Len(t, points, 8)
	for i, point := range points {
		assert.InDelta(t, 4.0, point.Distance(center), 1e-12, "point %d off radius", i)
	}
	assert.InDelta(t, 7.0, points[0].X, 1e-12)
	assert.InDelta(t, -2.0, points[0].Y, 1e-12)
}

// TestCircle_Name verifies that the display name carries the side
// marker and center features carry none.
func TestCircle_Name(t *testing.T) {
	right := geom.NewCircle("Hex Hole (1, 2)", geom.SideRight, 2.0, 8, geom.Point2D{})
	assert.Equal(t, "RIGHT: Hex Hole (1, 2)", right.Name())

	center := geom.NewCircle("BATTERY: Hole", geom.SideCenter, 2.0, 8, geom.Point2D{})
	assert.Equal(t, "BATTERY: Hole", center.Name())
}

// TestCircle_MirrorRoundTrip verifies double-reflection idempotence:
// mirroring twice restores both the geometry and the name marker.
func TestCircle_MirrorRoundTrip(t *testing.T) {
	original := geom.NewCircle("Hole 3", geom.SideRight, 2.4, 8, geom.Point2D{X: 10.0, Y: 5.0})

	mirrored, ok := original.Mirror().(*geom.Circle)
	require.True(t, ok)
	assert.Equal(t, "LEFT: Hole 3", mirrored.Name())
	assert.Equal(t, geom.SideLeft, mirrored.Side())
	assert.Equal(t, geom.Point2D{X: -10.0, Y: 5.0}, mirrored.Center())
	// The source must be untouched.
	assert.Equal(t, geom.Point2D{X: 10.0, Y: 5.0}, original.Center())

	restored, ok := mirrored.Mirror().(*geom.Circle)
	require.True(t, ok)
	assert.Equal(t, original.Name(), restored.Name())
	assert.Equal(t, original.Center(), restored.Center())
	assert.Equal(t, original.Points(), restored.Points())
}

// TestCircle_Copy verifies that Copy keeps diameter and tessellation
// but takes the new name and center.
func TestCircle_Copy(t *testing.T) {
	reference := geom.NewCircle("BATTERY: Reference Hole", geom.SideCenter, 3.2, 8, geom.Point2D{X: 1.0, Y: 2.0})
	stamped := reference.Copy("BATTERY: Lower Hole (4, 0)", geom.Point2D{X: -7.0, Y: 0.5})

	assert.Equal(t, "BATTERY: Lower Hole (4, 0)", stamped.Name())
	assert.Equal(t, geom.Point2D{X: -7.0, Y: 0.5}, stamped.Center())
	assert.Equal(t, reference.Diameter(), stamped.Diameter())
	assert.Equal(t, reference.Segments(), stamped.Segments())
}

// TestCircle_Key verifies the identity tuple fields.
func TestCircle_Key(t *testing.T) {
	circle := geom.NewCircle("Hole", geom.SideRight, 5.0, 8, geom.Point2D{X: 1.5, Y: -4.0})
	key := circle.Key()
	assert.Equal(t, "Circle", key.Kind)
	assert.Equal(t, "RIGHT: Hole", key.Name)
	assert.Equal(t, 1.5, key.X)
	assert.Equal(t, -4.0, key.Y)
	assert.Equal(t, 5.0, key.DX)
	assert.Equal(t, 5.0, key.DY)
	assert.Equal(t, 0.0, key.Angle)
}

// TestPoint2D_Angle spot-checks the Angle helper used by the arc
// generators.
func TestPoint2D_Angle(t *testing.T) {
	assert.InDelta(t, math.Pi/2.0, geom.Point2D{X: 0, Y: 3}.Angle(), 1e-12)
	assert.InDelta(t, 3.0*math.Pi/4.0, geom.Point2D{X: -1, Y: 1}.Angle(), 1e-12)
}
