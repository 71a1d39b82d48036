package models

import "time"

// Trip record kinds.
const (
	RecordFlightOrder = "flight-order"
	RecordHotelOrder  = "hotel-order"
	RecordItinerary   = "itinerary"
)

// TripRecord is a persisted confirmation or generated plan, written when a
// tool completes.
type TripRecord struct {
	ID        string     `bson:"id" json:"id"`
	SessionID string     `bson:"sessionId" json:"sessionId"`
	Kind      string     `bson:"kind" json:"kind"`
	Summary   string     `bson:"summary" json:"summary"`
	Params    TripParams `bson:"params" json:"params"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
}
