package models

// DayPlan is one day's ordered visiting route.
type DayPlan struct {
	Day   int               `json:"day"` // 1-based
	Free  bool              `json:"free"`
	Route []PointOfInterest `json:"route,omitempty"`
}

// ItineraryPlan is a day-by-day visiting plan. Omitted counts the POIs
// dropped for exceeding the trip's total capacity.
type ItineraryPlan struct {
	Days    []DayPlan `json:"days"`
	Omitted int       `json:"omitted"`
}

// TotalPOIs returns the number of POIs referenced across all days.
func (p *ItineraryPlan) TotalPOIs() int {
	total := 0
	for _, d := range p.Days {
		total += len(d.Route)
	}
	return total
}
