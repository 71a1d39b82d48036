// File: services/conversation/router.go
package conversation

import "tripgenius/models"

// Route maps an intent onto the ordered tool queue that serves it.
func Route(intent models.Intent) ([]models.ToolID, error) {
	switch intent {
	case models.IntentFlights:
		return []models.ToolID{models.ToolFlight}, nil
	case models.IntentHotels:
		return []models.ToolID{models.ToolHotel}, nil
	case models.IntentItinerary:
		return []models.ToolID{models.ToolItinerary}, nil
	case models.IntentFullTrip:
		return []models.ToolID{models.ToolFlight, models.ToolHotel, models.ToolItinerary}, nil
	}
	return nil, &UnknownIntentError{Intent: string(intent)}
}
