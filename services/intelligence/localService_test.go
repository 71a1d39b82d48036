package intelligence

import (
	"context"
	"testing"

	"tripgenius/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	svc := NewLocalService()
	ctx := context.Background()

	cases := []struct {
		query string
		want  models.Intent
	}{
		{"Book me a flight from New York to New Delhi", models.IntentFlights},
		{"I need a hotel in Paris for next week", models.IntentHotels},
		{"Plan an itinerary in Rome", models.IntentItinerary},
		{"What are the top attractions in Tokyo?", models.IntentItinerary},
		{"Plan a trip from New York to Paris", models.IntentFullTrip},
		{"I need a flight and a hotel in Barcelona", models.IntentFullTrip},
		{"Organize my summer vacation", models.IntentFullTrip},
	}
	for _, tc := range cases {
		intent, err := svc.Classify(ctx, tc.query)
		require.NoErrorf(t, err, "query %q", tc.query)
		assert.Equalf(t, tc.want, intent, "query %q", tc.query)
	}
}

func TestClassifyAmbiguous(t *testing.T) {
	svc := NewLocalService()

	_, err := svc.Classify(context.Background(), "hey, what's up?")
	assert.ErrorIs(t, err, ErrAmbiguousIntent)
}

func TestExtractFullQuery(t *testing.T) {
	svc := NewLocalService()

	params, err := svc.Extract(context.Background(),
		"Plan a trip from New York to Paris, departing 2026-09-12, returning 2026-09-15, 2 adults")
	require.NoError(t, err)

	assert.Equal(t, "JFK", params[models.FieldOrigin])
	assert.Equal(t, "CDG", params[models.FieldDestination])
	assert.Equal(t, "2026-09-12", params[models.FieldDepartureDate])
	assert.Equal(t, "2026-09-15", params[models.FieldReturnDate])
	assert.Equal(t, "2", params[models.FieldAdults])
}

func TestExtractPartialQuery(t *testing.T) {
	svc := NewLocalService()

	params, err := svc.Extract(context.Background(), "Book me a flight from London to Dubai")
	require.NoError(t, err)

	assert.Equal(t, "LHR", params[models.FieldOrigin])
	assert.Equal(t, "DXB", params[models.FieldDestination])
	assert.NotContains(t, params, models.FieldDepartureDate)
	assert.NotContains(t, params, models.FieldAdults)
}

func TestExtractSpelledOutDates(t *testing.T) {
	svc := NewLocalService()

	params, err := svc.Extract(context.Background(),
		"Flights from Boston to Rome departing Dec 20 2026, returning Jan 3, 2027")
	require.NoError(t, err)

	assert.Equal(t, "2026-12-20", params[models.FieldDepartureDate])
	assert.Equal(t, "2027-01-03", params[models.FieldReturnDate])
}

func TestExtractField(t *testing.T) {
	svc := NewLocalService()
	ctx := context.Background()

	got, err := svc.ExtractField(ctx, models.FieldOrigin, "New York")
	require.NoError(t, err)
	assert.Equal(t, "JFK", got)

	got, err = svc.ExtractField(ctx, models.FieldDestination, "cdg")
	require.NoError(t, err)
	assert.Equal(t, "CDG", got)

	got, err = svc.ExtractField(ctx, models.FieldDepartureDate, "Dec 20th, 2026")
	require.NoError(t, err)
	assert.Equal(t, "2026-12-20", got)

	got, err = svc.ExtractField(ctx, models.FieldAdults, "2 adults")
	require.NoError(t, err)
	assert.Equal(t, "2", got)

	got, err = svc.ExtractField(ctx, models.FieldAdults, "3")
	require.NoError(t, err)
	assert.Equal(t, "3", got)
}

func TestExtractFieldRejectsGarbage(t *testing.T) {
	svc := NewLocalService()
	ctx := context.Background()

	_, err := svc.ExtractField(ctx, models.FieldDepartureDate, "whenever works")
	assert.Error(t, err)

	_, err = svc.ExtractField(ctx, models.FieldOrigin, "the moon base")
	assert.Error(t, err)

	_, err = svc.ExtractField(ctx, models.FieldAdults, "a few")
	assert.Error(t, err)
}
