package geo

import (
	"fmt"
	"strconv"
	"strings"

	geojson "github.com/paulmach/go.geojson"

	"github.com/NatLabRockies/routee-compass-go/network"
)

// ToGeoJSONFeature renders ls as a GeoJSON LineString Feature with the
// given properties attached, ready for json.Marshal or direct encoding.
func ToGeoJSONFeature(ls network.LineString, properties map[string]interface{}) (*geojson.Feature, error) {
	if len(ls) == 0 {
		return nil, ErrEmptyLineString
	}
	coords := make([][]float64, len(ls))
	for i, p := range ls {
		coords[i] = []float64{p.X, p.Y}
	}
	f := geojson.NewFeature(geojson.NewLineStringGeometry(coords))
	for k, v := range properties {
		f.SetProperty(k, v)
	}
	return f, nil
}

// ToWKT renders ls as a WKT LINESTRING. WKT has no ecosystem library in the
// corpus's dependency set (go.geojson covers GeoJSON only), so this is
// built on stdlib string formatting, matching WKT's simple textual grammar.
func ToWKT(ls network.LineString) (string, error) {
	if len(ls) == 0 {
		return "", ErrEmptyLineString
	}
	parts := make([]string, len(ls))
	for i, p := range ls {
		parts[i] = strconv.FormatFloat(p.X, 'f', -1, 64) + " " + strconv.FormatFloat(p.Y, 'f', -1, 64)
	}
	return fmt.Sprintf("LINESTRING (%s)", strings.Join(parts, ", ")), nil
}
