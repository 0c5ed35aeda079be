package geo

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square = Polygon{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}

func TestParsePolygon(t *testing.T) {
	t.Run("canonical form", func(t *testing.T) {
		poly, err := ParsePolygon("POLYGON ((1 2, 3 4, 1 2))")
		require.NoError(t, err)
		assert.Equal(t, Polygon{{1, 2}, {3, 4}, {1, 2}}, poly)
	})

	t.Run("compact form without spaces after commas", func(t *testing.T) {
		poly, err := ParsePolygon("POLYGON ((37.61 55.75,37.62 55.75,37.62 55.76,37.61 55.75))")
		require.NoError(t, err)
		require.Len(t, poly, 4)
		assert.Equal(t, Point{X: 37.62, Y: 55.76}, poly[2])
	})

	t.Run("negative and exponent values", func(t *testing.T) {
		poly, err := ParsePolygon("POLYGON ((-1.5 2e1, 3 -4, -1.5 2e1))")
		require.NoError(t, err)
		assert.Equal(t, Point{X: -1.5, Y: 20}, poly[0])
		assert.Equal(t, Point{X: 3, Y: -4}, poly[1])
	})

	cases := []struct {
		name  string
		input string
		index int
	}{
		{name: "three tokens", input: "POLYGON ((1 2 3, 4 5, 1 2))", index: 0},
		{name: "single token", input: "POLYGON ((1 2, 45, 1 2))", index: 1},
		{name: "not a number", input: "POLYGON ((1 2, 3 x, 1 2))", index: 1},
		{name: "double space", input: "POLYGON ((1  2, 3 4, 1 2))", index: 0},
		{name: "lower case keyword", input: "polygon ((1 2, 3 4, 1 2))", index: 0},
		{name: "missing space before parens", input: "POLYGON((1 2, 3 4, 1 2))", index: 0},
		{name: "not finite", input: "POLYGON ((1 2, NaN 4, 1 2))", index: 1},
		{name: "empty point", input: "POLYGON ((1 2,, 1 2))", index: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePolygon(tc.input)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tc.index, perr.Index)
		})
	}

	t.Run("no coordinates", func(t *testing.T) {
		_, err := ParsePolygon("POLYGON (())")
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, -1, perr.Index)
	})
}

func TestPolygonString(t *testing.T) {
	assert.Equal(t, "POLYGON ((0 0, 4 0, 4 4, 0 4, 0 0))", square.String())

	poly := Polygon{{37.6173, 55.7558}, {-0.1, 1e-7}, {37.6173, 55.7558}}
	back, err := ParsePolygon(poly.String())
	require.NoError(t, err)
	assert.Equal(t, poly, back)
}

func TestClosed(t *testing.T) {
	open := Polygon{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	assert.False(t, open.IsClosed())

	closed := open.Closed()
	assert.True(t, closed.IsClosed())
	assert.Equal(t, square, closed)
	assert.Len(t, open, 4, "input must not be modified")

	assert.Equal(t, square, square.Closed())
	assert.Empty(t, Polygon{}.Closed())
}

func TestGravityCenter(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		c, err := square.GravityCenter()
		require.NoError(t, err)
		assert.Equal(t, Centroid{X: 2, Y: 2}, c)

		lon, lat := c.LonLat()
		assert.Equal(t, 2.0, lon)
		assert.Equal(t, 2.0, lat)
		assert.Equal(t, "2.0, 2.0", c.Coordinate())
	})

	t.Run("triangle keeps legacy lon lat order", func(t *testing.T) {
		tri := Polygon{{0, 0}, {6, 0}, {0, 3}, {0, 0}}
		c, err := tri.GravityCenter()
		require.NoError(t, err)
		assert.InDelta(t, 2.0, c.X, 1e-12)
		assert.InDelta(t, 1.0, c.Y, 1e-12)

		lon, lat := c.LonLat()
		assert.Equal(t, c.Y, lon)
		assert.Equal(t, c.X, lat)
		assert.Equal(t, "1.0, 2.0", c.Coordinate())
	})

	t.Run("winding order does not move the centroid", func(t *testing.T) {
		cw := Polygon{{0, 0}, {0, 3}, {6, 0}, {0, 0}}
		assert.Less(t, cw.SignedArea(), 0.0)

		c, err := cw.GravityCenter()
		require.NoError(t, err)
		assert.InDelta(t, 2.0, c.X, 1e-12)
		assert.InDelta(t, 1.0, c.Y, 1e-12)
	})

	t.Run("collinear points", func(t *testing.T) {
		line := Polygon{{0, 0}, {1, 1}, {2, 2}, {0, 0}}
		_, err := line.GravityCenter()
		var aerr *ArithmeticError
		require.ErrorAs(t, err, &aerr)
	})

	t.Run("single point", func(t *testing.T) {
		_, err := Polygon{{1, 1}}.GravityCenter()
		var aerr *ArithmeticError
		require.ErrorAs(t, err, &aerr)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Polygon{}.GravityCenter()
		assert.True(t, errors.Is(err, ErrEmptyPolygon))
	})
}

func TestGravityCenterMatchesOrb(t *testing.T) {
	polys := []Polygon{
		{{0, 0}, {6, 0}, {6, 2}, {2, 2}, {2, 6}, {0, 6}, {0, 0}},
		{{37.61, 55.75}, {37.64, 55.751}, {37.655, 55.77}, {37.62, 55.78}, {37.605, 55.76}, {37.61, 55.75}},
		{{-3, -1}, {5, -2}, {7, 4}, {1, 9}, {-4, 3}, {-3, -1}},
	}

	for _, p := range polys {
		ring := make(orb.Ring, 0, len(p))
		for _, pt := range p {
			ring = append(ring, orb.Point{pt.X, pt.Y})
		}
		want, _ := planar.CentroidArea(orb.Polygon{ring})

		got, err := p.GravityCenter()
		require.NoError(t, err)
		assert.InDelta(t, want.X(), got.X, 1e-6)
		assert.InDelta(t, want.Y(), got.Y, 1e-6)
	}
}

func TestBoundingBox(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		bb, err := square.BoundingBox(false)
		require.NoError(t, err)

		latMin, latMax, lonMin, lonMax := bb.Legacy()
		assert.Equal(t, []float64{0, 4, 0, 4}, []float64{latMin, latMax, lonMin, lonMax})
		assert.Equal(t, Point{X: 2, Y: 2}, bb.Center())
	})

	t.Run("axes are independent", func(t *testing.T) {
		p := Polygon{{10, -5}, {12, 3}, {11, 7}, {10, -5}}
		bb, err := p.BoundingBox(false)
		require.NoError(t, err)
		assert.Equal(t, BoundingBox{MinX: 10, MaxX: 12, MinY: -5, MaxY: 7}, bb)
	})

	t.Run("offset is not supported", func(t *testing.T) {
		for _, p := range []Polygon{square, {}, nil} {
			_, err := p.BoundingBox(true)
			var nerr *NotSupportedError
			require.ErrorAs(t, err, &nerr)
		}
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Polygon{}.BoundingBox(false)
		assert.ErrorIs(t, err, ErrEmptyPolygon)
	})
}

func TestNewFeatureCollection(t *testing.T) {
	c, err := square.GravityCenter()
	require.NoError(t, err)
	bb, err := square.BoundingBox(false)
	require.NoError(t, err)

	fc := NewFeatureCollection(square, c, bb)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, "FeatureCollection", fc.Type)

	poly := fc.Features[0]
	assert.Equal(t, "Polygon", poly.Geometry.Type)
	rings, ok := poly.Geometry.Coordinates.([][][]float64)
	require.True(t, ok)
	assert.Len(t, rings[0], len(square))
	assert.Equal(t, 16.0, poly.Properties["area"])

	center := fc.Features[1]
	assert.Equal(t, "Point", center.Geometry.Type)
	assert.Equal(t, []float64{2, 2}, center.Geometry.Coordinates)
	assert.Equal(t, "2.0, 2.0", center.Properties["center"])
}
