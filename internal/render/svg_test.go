package render

import (
	"testing"

	"github.com/woozymasta/polymap/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVG(t *testing.T) {
	square := geo.Polygon{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}}

	out, err := SVG(square, 100)
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "<polygon")
	assert.Contains(t, out, "<circle")
}

func TestSVGErrors(t *testing.T) {
	square := geo.Polygon{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}}

	_, err := SVG(square, 0)
	assert.Error(t, err)

	_, err = SVG(geo.Polygon{}, 100)
	assert.ErrorIs(t, err, geo.ErrEmptyPolygon)

	_, err = SVG(geo.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}, 100)
	var aerr *geo.ArithmeticError
	assert.ErrorAs(t, err, &aerr)
}

func TestProjection(t *testing.T) {
	pr := newProjection(geo.BoundingBox{MinX: 0, MaxX: 4, MinY: 0, MaxY: 4}, 100)

	x, y := pr.apply(0, 0)
	assert.InDelta(t, 5, x, 1e-9)
	assert.InDelta(t, 95, y, 1e-9)

	x, y = pr.apply(4, 4)
	assert.InDelta(t, 95, x, 1e-9)
	assert.InDelta(t, 5, y, 1e-9)

	x, y = pr.apply(2, 2)
	assert.InDelta(t, 50, x, 1e-9)
	assert.InDelta(t, 50, y, 1e-9)
}

func TestProjectionKeepsAspect(t *testing.T) {
	pr := newProjection(geo.BoundingBox{MinX: 0, MaxX: 8, MinY: 0, MaxY: 2}, 100)

	x0, y0 := pr.apply(0, 0)
	x1, y1 := pr.apply(8, 2)
	assert.InDelta(t, 90, x1-x0, 1e-9)
	assert.InDelta(t, 22.5, y0-y1, 1e-9)
}
