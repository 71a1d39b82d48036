package models

// Intent is the classified high-level goal of a user's query.
type Intent string

const (
	IntentFlights   Intent = "flights"
	IntentHotels    Intent = "hotels"
	IntentItinerary Intent = "itinerary"
	IntentFullTrip  Intent = "full-trip"
)

// Valid reports whether the intent belongs to the closed set.
func (i Intent) Valid() bool {
	switch i {
	case IntentFlights, IntentHotels, IntentItinerary, IntentFullTrip:
		return true
	}
	return false
}

// ToolID identifies a booking/planning tool.
type ToolID string

const (
	ToolFlight    ToolID = "flight"
	ToolHotel     ToolID = "hotel"
	ToolItinerary ToolID = "itinerary"
)
