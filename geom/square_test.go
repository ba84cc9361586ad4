package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chassiskit/romibase/geom"
)

// TestSquare_PointsSharp verifies a sharp-cornered rectangle
// tessellates to its 4 corners.
func TestSquare_PointsSharp(t *testing.T) {
	square := geom.NewSquare("Cutout", geom.SideCenter, 4.0, 2.0, geom.Point2D{X: 1.0, Y: 1.0})
	points := square.Points()
	require.Len(t, points, 4)
	assert.Contains(t, points, geom.Point2D{X: 3.0, Y: 2.0})
	assert.Contains(t, points, geom.Point2D{X: -1.0, Y: 0.0})
}

// TestSquare_PointsRotated verifies rotation: a square rotated by 90
// degrees swaps its extents.
func TestSquare_PointsRotated(t *testing.T) {
	square := geom.NewSlot("Rect", geom.SideRight, 6.0, 2.0, geom.Point2D{}, math.Pi/2.0, 0.0, 0)
	for _, point := range square.Points() {
		assert.InDelta(t, 1.0, math.Abs(point.X), 1e-12)
		assert.InDelta(t, 3.0, math.Abs(point.Y), 1e-12)
	}
}

// TestSlot_PointsRounded verifies each rounded corner contributes its
// own arc and all arc points stay within the slot's bounding box.
func TestSlot_PointsRounded(t *testing.T) {
	slot := geom.NewSlot("Slot 'AO'", geom.SideRight, 7.0, 2.0, geom.Point2D{}, 0.0, 1.0, 8)
	points := slot.Points()
	require.Len(t, points, 4*8)
	for i, point := range points {
		assert.LessOrEqual(t, math.Abs(point.X), 3.5+1e-12, "point %d outside dx", i)
		assert.LessOrEqual(t, math.Abs(point.Y), 1.0+1e-12, "point %d outside dy", i)
	}
}

// TestSquare_MirrorRoundTrip verifies the vertical-axis reflection:
// negated center X, reflected angle, swapped marker, and idempotence
// of the double mirror.
func TestSquare_MirrorRoundTrip(t *testing.T) {
	original := geom.NewSlot("Lower Arc Rectangle 4", geom.SideRight,
		2.0, 6.0, geom.Point2D{X: 30.0, Y: -40.0}, 0.7, 0.0, 0)

	mirrored, ok := original.Mirror().(*geom.Square)
	require.True(t, ok)
	assert.Equal(t, "LEFT: Lower Arc Rectangle 4", mirrored.Name())
	assert.Equal(t, geom.Point2D{X: -30.0, Y: -40.0}, mirrored.Center())
	assert.InDelta(t, math.Pi-0.7, mirrored.Angle(), 1e-12)

	restored, ok := mirrored.Mirror().(*geom.Square)
	require.True(t, ok)
	assert.Equal(t, original.Name(), restored.Name())
	assert.Equal(t, original.Center(), restored.Center())
	assert.InDelta(t, original.Angle(), restored.Angle(), 1e-12)
}

// TestSquare_MirrorAcrossX verifies the horizontal-axis reflection
// used by the wheel-well rectangles: negated center Y, rewritten base
// name, unchanged side tag.
func TestSquare_MirrorAcrossX(t *testing.T) {
	upper := geom.NewSquare("UPPER: Rectangle 2", geom.SideRight, 1.3, 2.9,
		geom.Point2D{X: -37.0, Y: 27.5})
	lower := upper.MirrorAcrossX("UPPER:", "LOWER:")

	assert.Equal(t, "RIGHT: LOWER: Rectangle 2", lower.Name())
	assert.Equal(t, geom.SideRight, lower.Side())
	assert.Equal(t, geom.Point2D{X: -37.0, Y: -27.5}, lower.Center())
	assert.Equal(t, upper.DX(), lower.DX())
	assert.Equal(t, upper.DY(), lower.DY())
	// Source untouched.
	assert.Equal(t, "RIGHT: UPPER: Rectangle 2", upper.Name())
}

// TestKey_Ordering verifies the (Kind, Name, X, Y) report order.
func TestKey_Ordering(t *testing.T) {
	a := geom.Key{Kind: "Circle", Name: "A"}
	b := geom.Key{Kind: "Circle", Name: "B"}
	c := geom.Key{Kind: "Square", Name: "A"}
	d := geom.Key{Kind: "Circle", Name: "A", X: 2.0}

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.True(t, a.Less(d))
	assert.False(t, d.Less(a))
}
