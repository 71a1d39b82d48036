// File: services/providers/gateway.go
package providers

import (
	"context"
	"fmt"

	"tripgenius/models"
	"tripgenius/utils"

	"go.uber.org/zap"
)

// Gateway fronts every provider call with the degradation chain:
//
//	primary -> retry once -> cache -> alternate provider -> ProviderError
//
// Booking calls stop after the retry. A cached or alternate-sourced booking
// confirmation would be a fabrication, so bookings fail honestly instead.
type Gateway struct {
	flight    FlightProvider
	flightAlt FlightProvider
	hotel     HotelProvider
	hotelAlt  HotelProvider
	poi       POIProvider
	poiAlt    POIProvider
	cache     Cache
}

// NewGateway wires the fallback chain. Alternate providers and the cache may
// be nil; the chain simply skips those steps.
func NewGateway(flight, flightAlt FlightProvider, hotel, hotelAlt HotelProvider, poi, poiAlt POIProvider, cache Cache) *Gateway {
	return &Gateway{
		flight:    flight,
		flightAlt: flightAlt,
		hotel:     hotel,
		hotelAlt:  hotelAlt,
		poi:       poi,
		poiAlt:    poiAlt,
		cache:     cache,
	}
}

// withRetry runs fn and retries exactly once on failure.
func withRetry(fn func() error) error {
	if err := fn(); err != nil {
		utils.GetLogger().Warn("provider call failed, retrying once", zap.Error(err))
		return fn()
	}
	return nil
}

// searchChain runs the full degradation chain for an idempotent fetch.
// fetch/fetchAlt load into dest; the cache round-trips dest as JSON.
func (g *Gateway) searchChain(ctx context.Context, category, op, cacheKey string,
	dest interface{}, fetch func() error, fetchAlt func() error) error {

	primaryErr := withRetry(fetch)
	if primaryErr == nil {
		if g.cache != nil {
			if err := g.cache.Set(ctx, cacheKey, dest); err != nil {
				utils.GetLogger().Warn("provider cache write failed", zap.Error(err))
			}
		}
		return nil
	}

	if g.cache != nil {
		hit, err := g.cache.Get(ctx, cacheKey, dest)
		if err != nil {
			utils.GetLogger().Warn("provider cache read failed", zap.Error(err))
		}
		if hit {
			utils.GetLogger().Info("serving cached provider response",
				zap.String("category", category), zap.String("key", cacheKey))
			return nil
		}
	}

	if fetchAlt != nil {
		if altErr := withRetry(fetchAlt); altErr == nil {
			utils.GetLogger().Info("served by alternate provider",
				zap.String("category", category), zap.String("op", op))
			return nil
		} else {
			primaryErr = fmt.Errorf("%v; alternate: %w", primaryErr, altErr)
		}
	}

	return &ProviderError{Category: category, Op: op, Err: primaryErr}
}

// SearchFlights finds round-trip flight offers, degrading through cache and
// the alternate provider.
func (g *Gateway) SearchFlights(ctx context.Context, params models.TripParams) ([]models.FlightOffer, error) {
	var offers []models.FlightOffer
	key := fmt.Sprintf("flights:%s:%s:%s:%s:%d",
		params.Origin, params.Destination, params.DepartureDate, params.ReturnDate, params.Adults)

	var fetchAlt func() error
	if g.flightAlt != nil {
		fetchAlt = func() (err error) {
			offers, err = g.flightAlt.SearchFlights(ctx, params)
			return
		}
	}
	err := g.searchChain(ctx, "flight", "search", key, &offers,
		func() (err error) {
			offers, err = g.flight.SearchFlights(ctx, params)
			return
		}, fetchAlt)
	return offers, err
}

// BookFlight books the chosen offer. Retry once, then fail.
func (g *Gateway) BookFlight(ctx context.Context, offer models.FlightOffer, adults int) (models.FlightOrder, error) {
	var order models.FlightOrder
	err := withRetry(func() (err error) {
		order, err = g.flight.BookFlight(ctx, offer, adults)
		return
	})
	if err != nil {
		return models.FlightOrder{}, &ProviderError{Category: "flight", Op: "book", Err: err}
	}
	return order, nil
}

// SearchHotels finds hotel options, degrading through cache and the
// alternate provider.
func (g *Gateway) SearchHotels(ctx context.Context, params models.TripParams) ([]models.HotelOption, error) {
	var options []models.HotelOption
	key := fmt.Sprintf("hotels:%s:%s:%s:%d",
		params.Destination, params.DepartureDate, params.ReturnDate, params.Adults)

	var fetchAlt func() error
	if g.hotelAlt != nil {
		fetchAlt = func() (err error) {
			options, err = g.hotelAlt.SearchHotels(ctx, params)
			return
		}
	}
	err := g.searchChain(ctx, "hotel", "search", key, &options,
		func() (err error) {
			options, err = g.hotel.SearchHotels(ctx, params)
			return
		}, fetchAlt)
	return options, err
}

// BookHotel books the chosen option. Retry once, then fail.
func (g *Gateway) BookHotel(ctx context.Context, option models.HotelOption, guests int) (models.HotelOrder, error) {
	var order models.HotelOrder
	err := withRetry(func() (err error) {
		order, err = g.hotel.BookHotel(ctx, option, guests)
		return
	})
	if err != nil {
		return models.HotelOrder{}, &ProviderError{Category: "hotel", Op: "book", Err: err}
	}
	return order, nil
}

// FetchPOIs lists points of interest, degrading through cache and the
// alternate provider.
func (g *Gateway) FetchPOIs(ctx context.Context, cityCode, preference string) ([]models.PointOfInterest, error) {
	var pois []models.PointOfInterest
	key := fmt.Sprintf("pois:%s:%s", cityCode, preference)

	var fetchAlt func() error
	if g.poiAlt != nil {
		fetchAlt = func() (err error) {
			pois, err = g.poiAlt.FetchPOIs(ctx, cityCode, preference)
			return
		}
	}
	err := g.searchChain(ctx, "poi", "fetch", key, &pois,
		func() (err error) {
			pois, err = g.poi.FetchPOIs(ctx, cityCode, preference)
			return
		}, fetchAlt)
	return pois, err
}
