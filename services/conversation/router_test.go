package conversation

import (
	"testing"

	"tripgenius/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteSingleToolIntents(t *testing.T) {
	cases := []struct {
		intent models.Intent
		want   []models.ToolID
	}{
		{models.IntentFlights, []models.ToolID{models.ToolFlight}},
		{models.IntentHotels, []models.ToolID{models.ToolHotel}},
		{models.IntentItinerary, []models.ToolID{models.ToolItinerary}},
	}
	for _, tc := range cases {
		queue, err := Route(tc.intent)
		require.NoError(t, err)
		assert.Equal(t, tc.want, queue)
	}
}

func TestRouteFullTripOrdering(t *testing.T) {
	queue, err := Route(models.IntentFullTrip)
	require.NoError(t, err)
	assert.Equal(t, []models.ToolID{models.ToolFlight, models.ToolHotel, models.ToolItinerary}, queue)
}

func TestRouteRejectsUnknownIntent(t *testing.T) {
	_, err := Route(models.Intent("cruise"))
	require.Error(t, err)
	var unknown *UnknownIntentError
	assert.ErrorAs(t, err, &unknown)
}
