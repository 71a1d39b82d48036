package models

import (
	"fmt"
	"strconv"
	"time"
)

// Slot-filled trip parameter field names, in prompt priority order.
const (
	FieldOrigin        = "origin"
	FieldDestination   = "destination"
	FieldDepartureDate = "departureDate"
	FieldReturnDate    = "returnDate"
	FieldAdults        = "adults"
)

// TripParams holds the parameters collected across a conversation. They are
// shared between tools so a later tool never re-asks what an earlier one
// already collected.
type TripParams struct {
	Origin        string `json:"origin,omitempty"`        // IATA code, e.g. JFK
	Destination   string `json:"destination,omitempty"`   // IATA code, e.g. DEL
	DepartureDate string `json:"departureDate,omitempty"` // YYYY-MM-DD
	ReturnDate    string `json:"returnDate,omitempty"`    // YYYY-MM-DD
	Adults        int    `json:"adults,omitempty"`
	Preference    string `json:"preference,omitempty"` // itinerary preference, e.g. "tourism"
}

// Has reports whether the given field has been filled.
func (p *TripParams) Has(field string) bool {
	switch field {
	case FieldOrigin:
		return p.Origin != ""
	case FieldDestination:
		return p.Destination != ""
	case FieldDepartureDate:
		return p.DepartureDate != ""
	case FieldReturnDate:
		return p.ReturnDate != ""
	case FieldAdults:
		return p.Adults > 0
	}
	return false
}

// Apply sets the given field from its string form.
func (p *TripParams) Apply(field, value string) error {
	if value == "" {
		return fmt.Errorf("empty value for %s", field)
	}
	switch field {
	case FieldOrigin:
		p.Origin = value
	case FieldDestination:
		p.Destination = value
	case FieldDepartureDate:
		p.DepartureDate = value
	case FieldReturnDate:
		p.ReturnDate = value
	case FieldAdults:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid traveler count %q", value)
		}
		p.Adults = n
	default:
		return fmt.Errorf("unknown field %s", field)
	}
	return nil
}

// TripDays returns the trip length in days derived from the travel dates.
// A same-day return counts as one day. Returns 0 when dates are missing or
// malformed.
func (p *TripParams) TripDays() int {
	dep, err := time.Parse("2006-01-02", p.DepartureDate)
	if err != nil {
		return 0
	}
	ret, err := time.Parse("2006-01-02", p.ReturnDate)
	if err != nil {
		return 0
	}
	days := int(ret.Sub(dep).Hours()/24) + 1
	if days < 1 {
		return 0
	}
	return days
}
