package dto

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/midpoint-service/internal/domain"
)

// Feature roles in the exported collection
const (
	RoleInput  = "input"
	RoleCenter = "center"
	RoleEdge   = "edge"
)

func toPoint(c domain.Coordinate) orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// NewFeatureCollection exports a result as GeoJSON: one Point per input,
// one Point for the center and one LineString per input-to-center edge.
func NewFeatureCollection(record *domain.ResultRecord) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	coords := make(map[string]domain.Coordinate, len(record.Inputs)+1)
	coords[domain.CenterNodeID] = record.Center.Coordinate

	for _, in := range record.Inputs {
		coords[in.ID] = in.Coordinate

		f := geojson.NewFeature(toPoint(in.Coordinate))
		f.ID = in.ID
		f.Properties["role"] = RoleInput
		f.Properties["node"] = in.ID
		f.Properties["input"] = in.Name
		fc.Append(f)
	}

	center := geojson.NewFeature(toPoint(record.Center.Coordinate))
	center.ID = domain.CenterNodeID
	center.Properties["role"] = RoleCenter
	center.Properties["node"] = domain.CenterNodeID
	center.Properties["result_id"] = record.ID.String()
	if record.Center.Element != nil {
		center.Properties["reverse"] = map[string]interface{}(record.Center.Element)
	}
	fc.Append(center)

	for _, e := range record.Edges() {
		from, okFrom := coords[e.From]
		to, okTo := coords[e.To]
		if !okFrom || !okTo {
			continue
		}

		f := geojson.NewFeature(orb.LineString{toPoint(from), toPoint(to)})
		f.ID = e.From + "_" + e.To
		f.Properties["role"] = RoleEdge
		f.Properties["from"] = e.From
		f.Properties["to"] = e.To
		f.Properties["distance_km"] = e.WeightKm
		fc.Append(f)
	}

	return fc
}
