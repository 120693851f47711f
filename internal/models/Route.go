// internal/models/Route.go
package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
)

// Stop is an ordered intermediate point along a route. Coordinates are
// optional; a stop with a zero lat/lng pair is named only.
type Stop struct {
	Name string  `json:"name"`
	Seq  int     `json:"seq"`
	Lat  float64 `json:"lat,omitempty"`
	Lng  float64 `json:"lng,omitempty"`
}

// Located reports whether the stop carries coordinates.
func (s Stop) Located() bool {
	return s.Lat != 0 || s.Lng != 0
}

type Route struct {
	ID                string  `json:"_id"`
	Name              string  `json:"name"`
	StartLocation     string  `json:"startLocation"`
	EndLocation       string  `json:"endLocation"`
	Distance          float64 `json:"distance"`          // km
	EstimatedDuration float64 `json:"estimatedDuration"` // hours
	Stops             []Stop  `json:"stops,omitempty"`
}

// LineString builds the route's preview geometry (SRID-less lng/lat order)
// from the located stops, in sequence order as delivered by the backend.
// Returns nil unless at least two stops carry coordinates.
func (r Route) LineString() *geom.LineString {
	var coords []geom.Coord
	for _, stop := range r.Stops {
		if stop.Located() {
			coords = append(coords, geom.Coord{stop.Lng, stop.Lat})
		}
	}
	if len(coords) < 2 {
		return nil
	}
	ls, err := geom.NewLineString(geom.XY).SetCoords(coords)
	if err != nil {
		return nil
	}
	return ls
}

// GeoJSON renders the stop preview as a GeoJSON LineString string, or ""
// when the route has fewer than two located stops.
func (r Route) GeoJSON() string {
	ls := r.LineString()
	if ls == nil {
		return ""
	}
	b, err := gjson.Marshal(ls)
	if err != nil {
		return ""
	}
	return string(b)
}

type RouteDraft struct {
	Name              string  `json:"name"`
	StartLocation     string  `json:"startLocation"`
	EndLocation       string  `json:"endLocation"`
	Distance          float64 `json:"distance"`
	EstimatedDuration float64 `json:"estimatedDuration"`
	Stops             []Stop  `json:"stops,omitempty"`
}

// StopsText renders the draft's stops back into the textarea format the form
// is submitted in: one "Name @ lat,lng" (or bare name) per line.
func (d RouteDraft) StopsText() string {
	lines := make([]string, 0, len(d.Stops))
	for _, s := range d.Stops {
		if s.Located() {
			lines = append(lines, fmt.Sprintf("%s @ %s,%s",
				s.Name,
				strconv.FormatFloat(s.Lat, 'f', -1, 64),
				strconv.FormatFloat(s.Lng, 'f', -1, 64)))
			continue
		}
		lines = append(lines, s.Name)
	}
	return strings.Join(lines, "\n")
}
