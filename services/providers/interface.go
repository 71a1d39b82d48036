// File: services/providers/interface.go
package providers

import (
	"context"
	"fmt"

	"tripgenius/models"
)

// FlightProvider searches and books flights.
type FlightProvider interface {
	SearchFlights(ctx context.Context, params models.TripParams) ([]models.FlightOffer, error)
	BookFlight(ctx context.Context, offer models.FlightOffer, adults int) (models.FlightOrder, error)
}

// HotelProvider searches and books hotel stays.
type HotelProvider interface {
	SearchHotels(ctx context.Context, params models.TripParams) ([]models.HotelOption, error)
	BookHotel(ctx context.Context, option models.HotelOption, guests int) (models.HotelOrder, error)
}

// POIProvider fetches points of interest for a destination.
type POIProvider interface {
	FetchPOIs(ctx context.Context, cityCode, preference string) ([]models.PointOfInterest, error)
}

// Cache stores successful provider responses so a later outage can fall back
// to slightly stale data instead of failing the conversation.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
}

// ProviderError is returned by the gateway when every fallback step for an
// operation has been exhausted.
type ProviderError struct {
	Category string // "flight", "hotel" or "poi"
	Op       string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider %s failed: %v", e.Category, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
