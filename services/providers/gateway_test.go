package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"tripgenius/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDown = errors.New("provider unreachable")

// scriptedFlights fails its first failUntil calls, then serves offers.
type scriptedFlights struct {
	searchCalls int
	bookCalls   int
	failSearch  int // fail the first n search calls
	failBook    int // fail the first n book calls
	offers      []models.FlightOffer
}

func (s *scriptedFlights) SearchFlights(ctx context.Context, params models.TripParams) ([]models.FlightOffer, error) {
	s.searchCalls++
	if s.searchCalls <= s.failSearch {
		return nil, errDown
	}
	return s.offers, nil
}

func (s *scriptedFlights) BookFlight(ctx context.Context, offer models.FlightOffer, adults int) (models.FlightOrder, error) {
	s.bookCalls++
	if s.bookCalls <= s.failBook {
		return models.FlightOrder{}, errDown
	}
	return models.FlightOrder{OrderID: "FO-9", OfferID: offer.ID, Adults: adults}, nil
}

func sampleOffers(id string) []models.FlightOffer {
	return []models.FlightOffer{{ID: id, Carrier: "AF", Origin: "JFK", Destination: "CDG", Price: 500, Currency: "USD"}}
}

func sampleParams() models.TripParams {
	return models.TripParams{
		Origin: "JFK", Destination: "CDG",
		DepartureDate: "2026-09-12", ReturnDate: "2026-09-19", Adults: 2,
	}
}

func flightGateway(primary, alternate FlightProvider, cache Cache) *Gateway {
	return NewGateway(primary, alternate, nil, nil, nil, nil, cache)
}

func TestSearchRetriesOnceThenSucceeds(t *testing.T) {
	primary := &scriptedFlights{failSearch: 1, offers: sampleOffers("f1")}
	g := flightGateway(primary, nil, nil)

	offers, err := g.SearchFlights(context.Background(), sampleParams())
	require.NoError(t, err)
	assert.Equal(t, "f1", offers[0].ID)
	assert.Equal(t, 2, primary.searchCalls)
}

func TestSearchFallsBackToCache(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	primary := &scriptedFlights{offers: sampleOffers("f1")}
	g := flightGateway(primary, nil, cache)
	ctx := context.Background()

	// First call succeeds and warms the cache.
	_, err := g.SearchFlights(ctx, sampleParams())
	require.NoError(t, err)

	// Primary goes dark; the same query is served from cache.
	primary.failSearch = 1000
	offers, err := g.SearchFlights(ctx, sampleParams())
	require.NoError(t, err)
	assert.Equal(t, "f1", offers[0].ID)
	assert.Equal(t, 3, primary.searchCalls) // initial + retry pair
}

func TestSearchFallsBackToAlternateProvider(t *testing.T) {
	primary := &scriptedFlights{failSearch: 1000}
	alternate := &scriptedFlights{offers: sampleOffers("alt-1")}
	g := flightGateway(primary, alternate, NewMemoryCache(time.Minute))

	offers, err := g.SearchFlights(context.Background(), sampleParams())
	require.NoError(t, err)
	assert.Equal(t, "alt-1", offers[0].ID)
	assert.Equal(t, 2, primary.searchCalls)
	assert.Equal(t, 1, alternate.searchCalls)
}

func TestSearchExhaustedReturnsProviderError(t *testing.T) {
	primary := &scriptedFlights{failSearch: 1000}
	alternate := &scriptedFlights{failSearch: 1000}
	g := flightGateway(primary, alternate, NewMemoryCache(time.Minute))

	_, err := g.SearchFlights(context.Background(), sampleParams())
	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "flight", provErr.Category)
	assert.Equal(t, "search", provErr.Op)
	assert.Equal(t, 2, primary.searchCalls)
	assert.Equal(t, 2, alternate.searchCalls)
}

func TestBookRetriesOnceThenSucceeds(t *testing.T) {
	primary := &scriptedFlights{failBook: 1, offers: sampleOffers("f1")}
	g := flightGateway(primary, nil, nil)

	order, err := g.BookFlight(context.Background(), sampleOffers("f1")[0], 2)
	require.NoError(t, err)
	assert.Equal(t, "FO-9", order.OrderID)
	assert.Equal(t, 2, primary.bookCalls)
}

func TestBookNeverUsesCacheOrAlternate(t *testing.T) {
	primary := &scriptedFlights{failBook: 1000}
	alternate := &scriptedFlights{}
	g := flightGateway(primary, alternate, NewMemoryCache(time.Minute))

	_, err := g.BookFlight(context.Background(), sampleOffers("f1")[0], 2)
	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "book", provErr.Op)
	assert.Equal(t, 2, primary.bookCalls)
	assert.Equal(t, 0, alternate.bookCalls)
}

func TestMemoryCacheExpires(t *testing.T) {
	cache := NewMemoryCache(10 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", sampleOffers("f1")))

	var out []models.FlightOffer
	hit, err := cache.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.True(t, hit)

	time.Sleep(30 * time.Millisecond)
	hit, err = cache.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}
