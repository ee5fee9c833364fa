package dto

// MidpointRequest - запрос на вычисление точки встречи для 2 или 3 городов
type MidpointRequest struct {
	CityA string `json:"cityA" validate:"required,placename,max=200" example:"Roma"`
	CityB string `json:"cityB" validate:"required,placename,max=200" example:"Milano"`
	CityC string `json:"cityC,omitempty" validate:"omitempty,placename,max=200" example:"Napoli"`
}

// Names returns the requested place names in A, B, C order.
func (r MidpointRequest) Names() []string {
	names := []string{r.CityA, r.CityB}
	if r.CityC != "" {
		names = append(names, r.CityC)
	}
	return names
}

// HistoryQuery - параметры списка истории
type HistoryQuery struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=1000"`
}
