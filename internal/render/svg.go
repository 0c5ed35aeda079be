// Package render draws polygon outlines as SVG.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/woozymasta/polymap/internal/geo"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
)

const svgMime = "image/svg+xml"

var svgTemplate = template.Must(template.New("outline").Parse(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="{{.Size}}" height="{{.Size}}" viewBox="0 0 {{.Size}} {{.Size}}">
  <polygon points="{{.Points}}" fill="{{.Fill}}" fill-opacity="0.3" stroke="{{.Stroke}}" stroke-width="2"/>
  <circle cx="{{.CX}}" cy="{{.CY}}" r="4" fill="{{.Stroke}}"/>
</svg>
`))

type outline struct {
	Points string
	Fill   string
	Stroke string
	Size   int
	CX     string
	CY     string
}

// SVG renders p scaled into a size x size canvas with the Y axis pointing up,
// and marks the centroid. The result is minified.
func SVG(p geo.Polygon, size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("invalid svg size %d", size)
	}

	bb, err := p.BoundingBox(false)
	if err != nil {
		return "", err
	}
	c, err := p.GravityCenter()
	if err != nil {
		return "", err
	}

	pr := newProjection(bb, float64(size))

	pts := make([]string, 0, len(p))
	for _, pt := range p {
		x, y := pr.apply(pt.X, pt.Y)
		pts = append(pts, coord(x)+","+coord(y))
	}
	cx, cy := pr.apply(c.X, c.Y)

	var buf bytes.Buffer
	err = svgTemplate.Execute(&buf, outline{
		Points: strings.Join(pts, " "),
		Fill:   "#ffcc00",
		Stroke: "#ff3b30",
		Size:   size,
		CX:     coord(cx),
		CY:     coord(cy),
	})
	if err != nil {
		return "", err
	}

	m := minify.New()
	m.AddFunc(svgMime, svg.Minify)

	return m.String(svgMime, buf.String())
}

// projection maps the bounding box into the canvas keeping the aspect ratio,
// with a 5% margin on every side.
type projection struct {
	minX, maxY float64
	scale      float64
	offX, offY float64
}

func newProjection(bb geo.BoundingBox, size float64) projection {
	const margin = 0.05

	inner := size * (1 - 2*margin)
	w := bb.MaxX - bb.MinX
	h := bb.MaxY - bb.MinY

	span := w
	if h > span {
		span = h
	}
	scale := 1.0
	if span > 0 {
		scale = inner / span
	}

	return projection{
		minX:  bb.MinX,
		maxY:  bb.MaxY,
		scale: scale,
		offX:  size*margin + (inner-w*scale)/2,
		offY:  size*margin + (inner-h*scale)/2,
	}
}

func (p projection) apply(x, y float64) (float64, float64) {
	return p.offX + (x-p.minX)*p.scale, p.offY + (p.maxY-y)*p.scale
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
