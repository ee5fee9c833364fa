package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// CenterNodeID identifies the computed center in the routing graph
	CenterNodeID = "M"

	MinInputPoints = 2
	MaxInputPoints = 3
)

// InputNodeID returns the graph identifier of the i-th input: A, B, C.
func InputNodeID(i int) string {
	return string(rune('A' + i))
}

// InputPoint - a user supplied place name after resolution
type InputPoint struct {
	ID         string       `json:"id"`
	Name       string       `json:"input"`
	Coordinate Coordinate   `json:"coordinate"`
	Element    PlaceElement `json:"raw"`
}

// CenterPoint - midpoint (2 inputs) or centroid (3 inputs) with its reverse geocoded record
type CenterPoint struct {
	Coordinate Coordinate   `json:"coordinate"`
	Element    PlaceElement `json:"reverse"`
}

// DistanceEdge connects an input to the center, weighted by great-circle distance in km
type DistanceEdge struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	WeightKm float64 `json:"weight_km"`
}

// ResultRecord aggregates one pipeline run.
type ResultRecord struct {
	ID        uuid.UUID     `json:"id"`
	Inputs    []InputPoint  `json:"inputs"`
	Center    CenterPoint   `json:"center"`
	Graph     *RoutingGraph `json:"graph"`
	Paths     []Path        `json:"paths"`
	CreatedAt time.Time     `json:"created_at"`
}

// Edges returns the input-to-center distance edges in input order.
func (r *ResultRecord) Edges() []DistanceEdge {
	if r.Graph == nil {
		return nil
	}
	return r.Graph.Edges
}

// DistanceKm returns the distance from the given input node to the center.
func (r *ResultRecord) DistanceKm(inputID string) (float64, bool) {
	if r.Graph == nil {
		return 0, false
	}
	return r.Graph.Weight(inputID, CenterNodeID)
}
