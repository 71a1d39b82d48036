package models

// FlightOffer is a single candidate offer returned by a flight provider.
type FlightOffer struct {
	ID          string  `json:"id"`
	Carrier     string  `json:"carrier"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Departure   string  `json:"departure"` // ISO 8601 timestamp
	Arrival     string  `json:"arrival"`
	Stops       int     `json:"stops"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
}

// FlightOrder is the confirmation returned after booking a flight offer.
type FlightOrder struct {
	OrderID     string  `json:"orderId"`
	OfferID     string  `json:"offerId"`
	Carrier     string  `json:"carrier"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Departure   string  `json:"departure"`
	Adults      int     `json:"adults"`
	TotalPrice  float64 `json:"totalPrice"`
	Currency    string  `json:"currency"`
}
