package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNodeNotFound  = errors.New("graph node not found")
	ErrWeightsLength = errors.New("number of weights does not match number of leaves")
)

type GraphNode struct {
	ID         string     `json:"id"`
	Coordinate Coordinate `json:"coordinate"`
}

// Path is a route between two graph nodes with its accumulated weight
type Path struct {
	From       string   `json:"from"`
	To         string   `json:"to"`
	Nodes      []string `json:"nodes"`
	DistanceKm float64  `json:"distance_km"`
}

// Key names an input pair route, e.g. "A_B".
func (p Path) Key() string {
	return p.From + "_" + p.To
}

// RoutingGraph is a star: every leaf is connected only to the hub.
// Because the hub is the only connector, shortest paths are closed-form and
// no search is needed.
type RoutingGraph struct {
	Hub    GraphNode      `json:"hub"`
	Leaves []GraphNode    `json:"leaves"`
	Edges  []DistanceEdge `json:"edges"`
}

// NewStarGraph builds a star with one edge leaf[i] -> hub weighted by weights[i].
func NewStarGraph(hub GraphNode, leaves []GraphNode, weights []float64) (*RoutingGraph, error) {
	if len(leaves) != len(weights) {
		return nil, fmt.Errorf("%w: %d leaves, %d weights", ErrWeightsLength, len(leaves), len(weights))
	}

	g := &RoutingGraph{
		Hub:    hub,
		Leaves: make([]GraphNode, len(leaves)),
		Edges:  make([]DistanceEdge, len(leaves)),
	}
	copy(g.Leaves, leaves)

	for i, leaf := range leaves {
		g.Edges[i] = DistanceEdge{
			From:     leaf.ID,
			To:       hub.ID,
			WeightKm: weights[i],
		}
	}

	return g, nil
}

// HasNode reports whether id is the hub or one of the leaves
func (g *RoutingGraph) HasNode(id string) bool {
	if id == g.Hub.ID {
		return true
	}
	for _, leaf := range g.Leaves {
		if leaf.ID == id {
			return true
		}
	}
	return false
}

// Weight returns the weight of the undirected edge between a and b.
func (g *RoutingGraph) Weight(a, b string) (float64, bool) {
	for _, e := range g.Edges {
		if (e.From == a && e.To == b) || (e.From == b && e.To == a) {
			return e.WeightKm, true
		}
	}
	return 0, false
}

// ShortestPath returns the route between two nodes of the star.
func (g *RoutingGraph) ShortestPath(from, to string) (Path, error) {
	for _, id := range []string{from, to} {
		if !g.HasNode(id) {
			return Path{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}

	switch {
	case from == to:
		return Path{From: from, To: to, Nodes: []string{from}}, nil
	case from == g.Hub.ID || to == g.Hub.ID:
		w, _ := g.Weight(from, to)
		return Path{From: from, To: to, Nodes: []string{from, to}, DistanceKm: w}, nil
	default:
		w1, _ := g.Weight(from, g.Hub.ID)
		w2, _ := g.Weight(g.Hub.ID, to)
		return Path{
			From:       from,
			To:         to,
			Nodes:      []string{from, g.Hub.ID, to},
			DistanceKm: w1 + w2,
		}, nil
	}
}

// PairwisePaths returns the route for every unordered pair of leaves, in leaf order:
// (A,B) for two leaves, (A,B) (A,C) (B,C) for three.
func (g *RoutingGraph) PairwisePaths() []Path {
	paths := make([]Path, 0, len(g.Leaves)*(len(g.Leaves)-1)/2)
	for i := 0; i < len(g.Leaves); i++ {
		for j := i + 1; j < len(g.Leaves); j++ {
			// leaves always exist, so the error is impossible here
			p, _ := g.ShortestPath(g.Leaves[i].ID, g.Leaves[j].ID)
			paths = append(paths, p)
		}
	}
	return paths
}
