package dto

import (
	"time"

	"github.com/midpoint-service/internal/domain"
)

// InputView - разрешённый входной город
type InputView struct {
	Input string              `json:"input"`
	Lat   float64             `json:"lat"`
	Lon   float64             `json:"lon"`
	Raw   domain.PlaceElement `json:"raw"`
}

// MidpointView - центр с результатом обратного геокодирования
type MidpointView struct {
	Lat     float64             `json:"lat"`
	Lon     float64             `json:"lon"`
	Reverse domain.PlaceElement `json:"reverse"`
}

// GraphView carries shortest_path/total_distance_km for two inputs and
// paths/path_distances_km for three.
type GraphView struct {
	ShortestPath    []string            `json:"shortest_path,omitempty"`
	TotalDistanceKm *float64            `json:"total_distance_km,omitempty"`
	Paths           map[string][]string `json:"paths,omitempty"`
	PathDistancesKm map[string]float64  `json:"path_distances_km,omitempty"`
}

// MidpointResponse - ответ совместимый с исходным /api/midpoint
type MidpointResponse struct {
	CityA       *InputView         `json:"cityA"`
	CityB       *InputView         `json:"cityB"`
	CityC       *InputView         `json:"cityC,omitempty"`
	Midpoint    MidpointView       `json:"midpoint"`
	DistancesKm map[string]float64 `json:"distances_km"`
	Graph       GraphView          `json:"graph"`
}

// HistoryEntry - сохранённый результат с идентификатором
type HistoryEntry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	*MidpointResponse
}

// HistoryResponse - список истории
type HistoryResponse struct {
	Results []HistoryEntry `json:"results"`
	Total   int            `json:"total"`
}

// NewMidpointResponse converts a result record to the response shape.
func NewMidpointResponse(record *domain.ResultRecord) *MidpointResponse {
	resp := &MidpointResponse{
		Midpoint: MidpointView{
			Lat:     record.Center.Coordinate.Lat,
			Lon:     record.Center.Coordinate.Lon,
			Reverse: record.Center.Element,
		},
		DistancesKm: make(map[string]float64, len(record.Inputs)),
	}

	slots := []**InputView{&resp.CityA, &resp.CityB, &resp.CityC}
	for i, in := range record.Inputs {
		if i >= len(slots) {
			break
		}
		*slots[i] = &InputView{
			Input: in.Name,
			Lat:   in.Coordinate.Lat,
			Lon:   in.Coordinate.Lon,
			Raw:   in.Element,
		}
	}

	if len(record.Inputs) == domain.MinInputPoints {
		// two inputs keep the A -> M -> B reading
		a, b := record.Inputs[0].ID, record.Inputs[1].ID
		distA, _ := record.DistanceKm(a)
		distB, _ := record.DistanceKm(b)
		resp.DistancesKm[a+"_to_"+domain.CenterNodeID] = distA
		resp.DistancesKm[domain.CenterNodeID+"_to_"+b] = distB

		if len(record.Paths) > 0 {
			total := record.Paths[0].DistanceKm
			resp.Graph.ShortestPath = record.Paths[0].Nodes
			resp.Graph.TotalDistanceKm = &total
		}
		return resp
	}

	for _, e := range record.Edges() {
		resp.DistancesKm[e.From+"_to_"+e.To] = e.WeightKm
	}
	resp.Graph.Paths = make(map[string][]string, len(record.Paths))
	resp.Graph.PathDistancesKm = make(map[string]float64, len(record.Paths))
	for _, p := range record.Paths {
		resp.Graph.Paths[p.Key()] = p.Nodes
		resp.Graph.PathDistancesKm[p.Key()] = p.DistanceKm
	}

	return resp
}

func NewHistoryEntry(record *domain.ResultRecord) HistoryEntry {
	return HistoryEntry{
		ID:               record.ID.String(),
		CreatedAt:        record.CreatedAt,
		MidpointResponse: NewMidpointResponse(record),
	}
}

func NewHistoryResponse(records []*domain.ResultRecord) *HistoryResponse {
	resp := &HistoryResponse{
		Results: make([]HistoryEntry, 0, len(records)),
		Total:   len(records),
	}
	for _, r := range records {
		resp.Results = append(resp.Results, NewHistoryEntry(r))
	}
	return resp
}
