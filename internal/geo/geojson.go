package geo

// GeoJSONFeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// GeoJSONFeature represents a single geographic feature with geometry and properties.
type GeoJSONFeature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry        `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry represents the geometry of a feature.
// Coordinates is []float64 for a Point and [][][]float64 for a Polygon.
type GeoJSONGeometry struct {
	Type        string      `json:"type" yaml:"type"`
	Coordinates interface{} `json:"coordinates" yaml:"coordinates"`
}

// NewFeatureCollection describes a polygon and its centroid as GeoJSON.
// Points are emitted in their WKT order.
func NewFeatureCollection(p Polygon, c Centroid, bb BoundingBox) GeoJSONFeatureCollection {
	ring := make([][]float64, 0, len(p))
	for _, pt := range p {
		ring = append(ring, []float64{pt.X, pt.Y})
	}

	lon, lat := c.LonLat()

	return GeoJSONFeatureCollection{
		Type: "FeatureCollection",
		Features: []GeoJSONFeature{
			{
				Type: "Feature",
				Geometry: GeoJSONGeometry{
					Type:        "Polygon",
					Coordinates: [][][]float64{ring},
				},
				Properties: map[string]interface{}{
					"type":   "polygon",
					"area":   p.SignedArea(),
					"closed": p.IsClosed(),
					"bbox":   []float64{bb.MinX, bb.MaxX, bb.MinY, bb.MaxY},
				},
			},
			{
				Type: "Feature",
				Geometry: GeoJSONGeometry{
					Type:        "Point",
					Coordinates: []float64{c.X, c.Y},
				},
				Properties: map[string]interface{}{
					"type":   "centroid",
					"center": c.Coordinate(),
					"lon":    lon,
					"lat":    lat,
				},
			},
		},
	}
}
