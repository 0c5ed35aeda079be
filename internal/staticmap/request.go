// Package staticmap fetches rendered map images from a static map HTTP API.
package staticmap

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultEndpoint is the Google Static Maps API.
const DefaultEndpoint = "https://maps.googleapis.com/maps/api/staticmap"

// MapTypeSatellite is the map type requested unless overridden.
const MapTypeSatellite = "satellite"

// Request describes one static map image.
//
// Zoom levels give approximately:
// 1 world, 5 landmass, 10 city, 15 streets, 20 buildings.
type Request struct {
	Center  string `validate:"required"`
	Size    string `validate:"required,mapsize"`
	MapType string `validate:"omitempty,oneof=roadmap satellite terrain hybrid"`
	APIKey  string `validate:"required"`
	Zoom    int    `validate:"min=1,max=20"`
}

var sizeRegex = regexp.MustCompile(`^[1-9][0-9]{0,3}x[1-9][0-9]{0,3}$`)

func newValidator() *validator.Validate {
	v := validator.New()
	// "mapsize" accepts WIDTHxHEIGHT, e.g. 600x600
	_ = v.RegisterValidation("mapsize", func(fl validator.FieldLevel) bool {
		return sizeRegex.MatchString(fl.Field().String())
	})
	return v
}

func (r Request) mapType() string {
	if r.MapType == "" {
		return MapTypeSatellite
	}
	return r.MapType
}

func (r Request) query() url.Values {
	q := url.Values{}
	q.Set("center", r.Center)
	q.Set("zoom", strconv.Itoa(r.Zoom))
	q.Set("size", r.Size)
	q.Set("maptype", r.mapType())
	q.Set("key", r.APIKey)
	return q
}

// RedactedURL hides the key query parameter of a request URL for logging.
func RedactedURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return strings.TrimSpace(u.String())
}
