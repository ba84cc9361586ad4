package romi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chassiskit/romibase/geom"
	"github.com/chassiskit/romibase/romi"
)

// splitArc separates one arc feature group into its holes and
// rectangles in generated order.
func splitArc(shapes []geom.Shape) (holes []*geom.Circle, rects []*geom.Square) {
	for _, shape := range shapes {
		switch s := shape.(type) {
		case *geom.Circle:
			holes = append(holes, s)
		case *geom.Square:
			rects = append(rects, s)
		}
	}
	return holes, rects
}

func TestLowerArcFeatures(t *testing.T) {
	base := romi.NewBase(romi.DefaultOptions())
	shapes := base.LowerArcFeatures()
	holes, rects := splitArc(shapes)

	// 13 holes and 15 rectangles; the two extra rectangle positions
	// run past the last hole.
	require.Len(t, holes, 13)
	require.Len(t, rects, 15)
	assert.Len(t, shapes, 28)

	// Every hole sits on the common arc radius.
	radius := holes[0].Center().Length()
	for _, hole := range holes[1:] {
		assert.InDelta(t, radius, hole.Center().Length(), 1e-9, hole.Name())
	}
	rectRadius := rects[0].Center().Length()
	for _, rect := range rects[1:] {
		assert.InDelta(t, rectRadius, rect.Center().Length(), 1e-9, rect.Name())
	}

	// Every third position carries the large hole and long rectangle.
	large := holes[0].Diameter()
	small := holes[1].Diameter()
	require.Greater(t, large, small)
	for index, hole := range holes {
		want := small
		if index%3 == 0 {
			want = large
		}
		assert.InDelta(t, want, hole.Diameter(), 1e-12, hole.Name())
	}
	longLen := rects[0].DY()
	shortLen := rects[1].DY()
	require.Greater(t, longLen, shortLen)
	for index, rect := range rects {
		want := shortLen
		if index%3 == 0 {
			want = longLen
		}
		assert.InDelta(t, want, rect.DY(), 1e-12, rect.Name())
	}
}

func TestUpperArcFeatures(t *testing.T) {
	base := romi.NewBase(romi.DefaultOptions())
	shapes := base.UpperArcFeatures()
	holes, rects := splitArc(shapes)

	// 13 rectangle positions, with the holes at positions 2, 3 and 12
	// omitted where the chassis rib lands.
	require.Len(t, rects, 13)
	require.Len(t, holes, 10)
	assert.Len(t, shapes, 23)

	skipped := map[string]bool{
		"RIGHT: Upper Arc Hole 2":  true,
		"RIGHT: Upper Arc Hole 3":  true,
		"RIGHT: Upper Arc Hole 12": true,
	}
	for _, hole := range holes {
		assert.False(t, skipped[hole.Name()], hole.Name())
	}

	radius := holes[0].Center().Length()
	for _, hole := range holes[1:] {
		assert.InDelta(t, radius, hole.Center().Length(), 1e-9, hole.Name())
	}
}

// TestArcFeatures_RectanglesRotated verifies each vent rectangle is
// rotated to point along its own radius.
func TestArcFeatures_RectanglesRotated(t *testing.T) {
	base := romi.NewBase(romi.DefaultOptions())
	_, rects := splitArc(base.LowerArcFeatures())
	require.NotEmpty(t, rects)
	for _, rect := range rects {
		assert.InDelta(t, rect.Center().Angle(), rect.Angle(), 1e-9, rect.Name())
	}
}
