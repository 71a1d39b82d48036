package models

// HotelOption is a single candidate hotel offer returned by a hotel provider.
type HotelOption struct {
	HotelID  string  `json:"hotelId"`
	OfferID  string  `json:"offerId"`
	Name     string  `json:"name"`
	CityCode string  `json:"cityCode"`
	CheckIn  string  `json:"checkIn"`  // YYYY-MM-DD
	CheckOut string  `json:"checkOut"` // YYYY-MM-DD
	Rating   float64 `json:"rating"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

// HotelOrder is the confirmation returned after booking a hotel offer.
type HotelOrder struct {
	OrderID    string  `json:"orderId"`
	OfferID    string  `json:"offerId"`
	HotelName  string  `json:"hotelName"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	Guests     int     `json:"guests"`
	TotalPrice float64 `json:"totalPrice"`
	Currency   string  `json:"currency"`
}
