// Package geo handles polygon parsing, WKT output and planar geometry.
package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	wktPrefix = "POLYGON (("
	wktSuffix = "))"
)

// Point is a planar coordinate pair in the order it appears in WKT.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Polygon is an ordered ring of points.
// A well-formed ring repeats its first point at the end.
type Polygon []Point

// ParsePolygon parses a single-ring WKT polygon
// such as "POLYGON ((30 10, 40 40, 20 40, 30 10))".
//
// The POLYGON (( and )) tokens are matched literally. Any other spelling
// leaves residue in the coordinates and fails number parsing.
func ParsePolygon(text string) (Polygon, error) {
	body := strings.ReplaceAll(text, wktPrefix, "")
	body = strings.ReplaceAll(body, wktSuffix, "")

	if strings.TrimSpace(body) == "" {
		return nil, &ParseError{Index: -1, Token: text, Err: errors.New("no coordinates")}
	}

	parts := strings.Split(body, ",")
	poly := make(Polygon, 0, len(parts))

	for i, part := range parts {
		part = strings.TrimSpace(part)

		xy := strings.Split(part, " ")
		if len(xy) != 2 {
			return nil, &ParseError{
				Index: i,
				Token: part,
				Err:   fmt.Errorf("expected 2 coordinates, got %d", len(xy)),
			}
		}

		x, err := parseCoord(xy[0])
		if err != nil {
			return nil, &ParseError{Index: i, Token: part, Err: err}
		}
		y, err := parseCoord(xy[1])
		if err != nil {
			return nil, &ParseError{Index: i, Token: part, Err: err}
		}

		poly = append(poly, Point{X: x, Y: y})
	}

	return poly, nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("coordinate %q is not finite", s)
	}
	return v, nil
}

// String returns the WKT representation accepted by ParsePolygon.
func (p Polygon) String() string {
	var b strings.Builder
	b.WriteString(wktPrefix)
	for i, pt := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(pt.X, 'f', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(pt.Y, 'f', -1, 64))
	}
	b.WriteString(wktSuffix)
	return b.String()
}

// IsClosed reports whether the last point repeats the first one.
func (p Polygon) IsClosed() bool {
	return len(p) > 0 && p[0] == p[len(p)-1]
}

// Closed returns a copy of the ring with the first point appended
// when the ring is open. Closed rings are copied as is.
func (p Polygon) Closed() Polygon {
	out := make(Polygon, len(p), len(p)+1)
	copy(out, p)
	if len(p) > 0 && !p.IsClosed() {
		out = append(out, p[0])
	}
	return out
}

// formatDecimal prints v with the shortest exact digits and
// keeps a trailing ".0" on integral values (2 -> "2.0").
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
