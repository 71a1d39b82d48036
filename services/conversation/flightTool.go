// File: services/conversation/flightTool.go
package conversation

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	recordsRepo "tripgenius/database/repository/records"
	"tripgenius/models"
	"tripgenius/services/intelligence"
)

var flightFields = []string{
	models.FieldOrigin,
	models.FieldDestination,
	models.FieldDepartureDate,
	models.FieldReturnDate,
	models.FieldAdults,
}

// FlightTool collects route and dates, searches round-trip offers, and books
// the user's pick.
type FlightTool struct {
	gateway ProviderGateway
	intel   intelligence.Service
	records recordsRepo.TripRecordRepository
}

func NewFlightTool(gateway ProviderGateway, intel intelligence.Service, records recordsRepo.TripRecordRepository) *FlightTool {
	return &FlightTool{gateway: gateway, intel: intel, records: records}
}

func (t *FlightTool) Name() models.ToolID { return models.ToolFlight }

func (t *FlightTool) Step(ctx context.Context, sess *models.Session, input string) StepOutcome {
	st := &sess.Tool

	if st.Stage == stageSelect {
		return t.stepSelect(ctx, sess, input)
	}

	if out, pending := collectParams(ctx, t.intel, sess, flightFields, input); pending {
		return out
	}

	offers, err := t.gateway.SearchFlights(ctx, sess.Params)
	if err != nil {
		return Failed(err)
	}
	if len(offers) == 0 {
		return Done(fmt.Sprintf("I couldn't find any flights from %s to %s for those dates.",
			sess.Params.Origin, sess.Params.Destination))
	}

	st.FlightOffers = offers
	st.Stage = stageSelect
	return Progress(formatFlightOffers(offers))
}

func (t *FlightTool) stepSelect(ctx context.Context, sess *models.Session, input string) StepOutcome {
	st := &sess.Tool
	prompt := fmt.Sprintf("Reply with the number of the flight you'd like to book (1-%d).", len(st.FlightOffers))

	if input == "" {
		return NeedsInput(prompt)
	}
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || choice < 1 || choice > len(st.FlightOffers) {
		return NeedsInput(prompt)
	}

	offer := st.FlightOffers[choice-1]
	order, err := t.gateway.BookFlight(ctx, offer, sess.Params.Adults)
	if err != nil {
		return Failed(err)
	}

	summary := fmt.Sprintf("Flight booked: %s %s → %s departing %s for %d traveler(s), total %s %.2f (order %s).",
		order.Carrier, order.Origin, order.Destination, order.Departure,
		order.Adults, order.Currency, order.TotalPrice, order.OrderID)
	writeRecord(ctx, t.records, sess, models.RecordFlightOrder, summary)
	return Done(summary)
}

func formatFlightOffers(offers []models.FlightOffer) string {
	var sb strings.Builder
	sb.WriteString("Here are the flights I found:\n")
	for i, offer := range offers {
		stops := "non-stop"
		if offer.Stops == 1 {
			stops = "1 stop"
		} else if offer.Stops > 1 {
			stops = fmt.Sprintf("%d stops", offer.Stops)
		}
		fmt.Fprintf(&sb, "%d. %s %s → %s, departs %s, %s, %s %.2f\n",
			i+1, offer.Carrier, offer.Origin, offer.Destination,
			offer.Departure, stops, offer.Currency, offer.Price)
	}
	return strings.TrimRight(sb.String(), "\n")
}
