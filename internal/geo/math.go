package geo

import "math"

// Centroid is the area-weighted center of a polygon.
// X and Y are computed from the X and Y columns of the input points.
type Centroid struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// LonLat returns the centroid as the (lon, lat) pair callers of the
// map service expect: lon is the Y mean and lat is the X mean.
func (c Centroid) LonLat() (lon, lat float64) {
	return c.Y, c.X
}

// Coordinate formats LonLat as "lon, lat" for the map service center parameter.
func (c Centroid) Coordinate() string {
	lon, lat := c.LonLat()
	return formatDecimal(lon) + ", " + formatDecimal(lat)
}

// BoundingBox is the axis-aligned extent of a point set.
type BoundingBox struct {
	MinX float64 `json:"min_x" yaml:"min_x"`
	MaxX float64 `json:"max_x" yaml:"max_x"`
	MinY float64 `json:"min_y" yaml:"min_y"`
	MaxY float64 `json:"max_y" yaml:"max_y"`
}

// Legacy returns the box as (lat_min, lat_max, lon_min, lon_max),
// where the "lat" pair is the X axis and the "lon" pair is the Y axis.
func (b BoundingBox) Legacy() (latMin, latMax, lonMin, lonMax float64) {
	return b.MinX, b.MaxX, b.MinY, b.MaxY
}

// Center returns the middle of the box.
func (b BoundingBox) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// SignedArea returns the shoelace area over consecutive point pairs.
// The sum does not wrap from the last point to the first, so the ring
// must already be closed for the value to be the polygon area.
func (p Polygon) SignedArea() float64 {
	var a float64
	for i := 0; i+1 < len(p); i++ {
		a += cross(p[i], p[i+1])
	}
	return a / 2
}

// GravityCenter returns the area-weighted centroid of a closed ring.
// A ring with zero signed area (collinear or self-cancelling) has no
// centroid and yields an *ArithmeticError.
func (p Polygon) GravityCenter() (Centroid, error) {
	if len(p) == 0 {
		return Centroid{}, ErrEmptyPolygon
	}

	a := p.SignedArea()
	if a == 0 || math.IsNaN(a) {
		return Centroid{}, &ArithmeticError{Op: "gravity center", Message: "polygon has zero signed area"}
	}

	var cx, cy float64
	for i := 0; i+1 < len(p); i++ {
		c := cross(p[i], p[i+1])
		cx += (p[i].X + p[i+1].X) * c
		cy += (p[i].Y + p[i+1].Y) * c
	}
	cx /= 6 * a
	cy /= 6 * a

	if math.IsInf(cx, 0) || math.IsInf(cy, 0) || math.IsNaN(cx) || math.IsNaN(cy) {
		return Centroid{}, &ArithmeticError{Op: "gravity center", Message: "centroid is not finite"}
	}

	return Centroid{X: cx, Y: cy}, nil
}

// BoundingBox returns the min/max of each axis.
// addOffset is reserved for a padded frame and always fails for now.
func (p Polygon) BoundingBox(addOffset bool) (BoundingBox, error) {
	if addOffset {
		return BoundingBox{}, &NotSupportedError{Feature: "bounding box offset"}
	}
	if len(p) == 0 {
		return BoundingBox{}, ErrEmptyPolygon
	}

	bb := BoundingBox{MinX: p[0].X, MaxX: p[0].X, MinY: p[0].Y, MaxY: p[0].Y}
	for _, pt := range p[1:] {
		bb.MinX = math.Min(bb.MinX, pt.X)
		bb.MaxX = math.Max(bb.MaxX, pt.X)
		bb.MinY = math.Min(bb.MinY, pt.Y)
		bb.MaxY = math.Max(bb.MaxY, pt.Y)
	}

	return bb, nil
}

func cross(a, b Point) float64 {
	return a.X*b.Y - b.X*a.Y
}
