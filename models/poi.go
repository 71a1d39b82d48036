package models

// POI categories.
const (
	POIAttraction = "attraction"
	POIRestaurant = "restaurant"
	POIActivity   = "activity"
)

// PointOfInterest is a candidate stop supplied by a POI provider. Read-only
// to the itinerary optimizer.
type PointOfInterest struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Category  string  `json:"category"`
	Rating    float64 `json:"rating"`
}
