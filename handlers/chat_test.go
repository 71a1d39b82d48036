package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripgenius/models"
	"tripgenius/services/conversation"
	"tripgenius/services/intelligence"
	"tripgenius/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGateway serves one canned flight offer and never fails.
type stubGateway struct{}

func (stubGateway) SearchFlights(ctx context.Context, params models.TripParams) ([]models.FlightOffer, error) {
	return []models.FlightOffer{{ID: "f1", Carrier: "AF", Origin: params.Origin,
		Destination: params.Destination, Price: 500, Currency: "USD"}}, nil
}

func (stubGateway) BookFlight(ctx context.Context, offer models.FlightOffer, adults int) (models.FlightOrder, error) {
	return models.FlightOrder{OrderID: "FO-1", OfferID: offer.ID, Adults: adults}, nil
}

func (stubGateway) SearchHotels(ctx context.Context, params models.TripParams) ([]models.HotelOption, error) {
	return nil, nil
}

func (stubGateway) BookHotel(ctx context.Context, option models.HotelOption, guests int) (models.HotelOrder, error) {
	return models.HotelOrder{}, nil
}

func (stubGateway) FetchPOIs(ctx context.Context, cityCode, preference string) ([]models.PointOfInterest, error) {
	return nil, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	intel := intelligence.NewLocalService()
	store := conversation.NewMemoryStore(time.Minute)
	orchestrator := conversation.NewOrchestrator(store, intel,
		conversation.NewFlightTool(stubGateway{}, intel, nil),
		conversation.NewHotelTool(stubGateway{}, intel, nil),
		conversation.NewItineraryTool(stubGateway{}, intel, nil),
	)

	r := gin.New()
	chat := NewChatHandler(orchestrator)
	r.POST("/api/chat/initiate", chat.InitiateHandler)
	r.POST("/api/chat/continue", chat.ContinueHandler)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInitiateRejectsEmptyQuery(t *testing.T) {
	r := newTestRouter()

	w := postJSON(t, r, "/api/chat/initiate", models.ChatRequest{Query: "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContinueUnknownSessionReturns404(t *testing.T) {
	r := newTestRouter()

	w := postJSON(t, r, "/api/chat/continue", models.ContinueRequest{
		SessionID: "nope", UserInput: "hello",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "session not found or expired", body.Message)
}

func TestInitiateAndContinueRoundTrip(t *testing.T) {
	r := newTestRouter()

	w := postJSON(t, r, "/api/chat/initiate", models.ChatRequest{
		Query: "Book me a flight from New York to Paris",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.ResponseTypePrompt, resp.Type)
	assert.NotEmpty(t, resp.SessionID)
	assert.False(t, resp.Done)

	w = postJSON(t, r, "/api/chat/continue", models.ContinueRequest{
		SessionID: resp.SessionID, UserInput: "2026-09-12",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var next models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &next))
	assert.Equal(t, resp.SessionID, next.SessionID)
	assert.False(t, next.Done)
}
