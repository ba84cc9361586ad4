package romi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chassiskit/romibase/geom"
	"github.com/chassiskit/romibase/romi"
)

func TestOutline(t *testing.T) {
	opts := romi.DefaultOptions()
	outline, err := romi.Outline(opts)
	require.NoError(t, err)

	assert.Equal(t, 2*opts.ArcSegments+4, outline.Len())
	assert.Equal(t, geom.SideCenter, outline.Side())

	// The contour is sealed.
	assert.ErrorIs(t, outline.PointAppend(geom.Point2D{}), geom.ErrLocked)

	// Arc points sit on the outline circle; well corners sit inside it.
	radius := 163.0 / 2.0
	origin := geom.Point2D{}
	for index := 0; index < opts.ArcSegments; index++ {
		assert.InDelta(t, radius, outline.Point(index).Distance(origin), 1e-9)
	}
	corner := outline.Point(opts.ArcSegments)
	assert.InDelta(t, -62.5, corner.X, 1e-9)
	assert.InDelta(t, 36.0, corner.Y, 1e-9)
	assert.Less(t, corner.Distance(origin), radius)

	// The two wells are symmetric across both axes.
	left := outline.Point(opts.ArcSegments + 1)
	right := outline.Point(2*opts.ArcSegments + 2)
	assert.InDelta(t, -right.X, left.X, 1e-9)
	assert.InDelta(t, right.Y, left.Y, 1e-9)
}

func TestOutline_ArcSegmentsOption(t *testing.T) {
	opts := romi.DefaultOptions()
	opts.ArcSegments = 9
	outline, err := romi.Outline(opts)
	require.NoError(t, err)
	assert.Equal(t, 22, outline.Len())
}

func TestOutline_RejectsTinyArcs(t *testing.T) {
	opts := romi.DefaultOptions()
	opts.ArcSegments = 1
	_, err := romi.Outline(opts)
	assert.ErrorIs(t, err, geom.ErrArcCount)
}
