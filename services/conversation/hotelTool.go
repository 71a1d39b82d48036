// File: services/conversation/hotelTool.go
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

var hotelFields = []string{
	models.FieldDestination,
	models.FieldDepartureDate,
	models.FieldReturnDate,
	models.FieldAdults,
}

// HotelTool collects the stay details, searches hotel offers for the
// destination, and books the user's pick.
type HotelTool struct {
	gateway ProviderGateway
	intel   intelligence.Service
	records recordsRepo.TripRecordRepository
}

func NewHotelTool(gateway ProviderGateway, intel intelligence.Service, records recordsRepo.TripRecordRepository) *HotelTool {
	return &HotelTool{gateway: gateway, intel: intel, records: records}
}

func (t *HotelTool) Name() models.ToolID { return models.ToolHotel }

func (t *HotelTool) Step(ctx context.Context, sess *models.Session, input string) StepOutcome {
	st := &sess.Tool

	if st.Stage == stageSelect {
		return t.stepSelect(ctx, sess, input)
	}

	if out, pending := collectParams(ctx, t.intel, sess, hotelFields, input); pending {
		return out
	}

	options, err := t.gateway.SearchHotels(ctx, sess.Params)
	if err != nil {
		return Failed(err)
	}
	if len(options) == 0 {
		return Done(fmt.Sprintf("I couldn't find any available hotels in %s for those dates.",
			sess.Params.Destination))
	}

	st.HotelOptions = options
	st.Stage = stageSelect
	return Progress(formatHotelOptions(options))
}

func (t *HotelTool) stepSelect(ctx context.Context, sess *models.Session, input string) StepOutcome {
	st := &sess.Tool
	prompt := fmt.Sprintf("Reply with the number of the hotel you'd like to book (1-%d).", len(st.HotelOptions))

	if input == "" {
		return NeedsInput(prompt)
	}
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || choice < 1 || choice > len(st.HotelOptions) {
		return NeedsInput(prompt)
	}

	option := st.HotelOptions[choice-1]
	order, err := t.gateway.BookHotel(ctx, option, sess.Params.Adults)
	if err != nil {
		return Failed(err)
	}

	summary := fmt.Sprintf("Hotel booked: %s, %s to %s for %d guest(s), total %s %.2f (order %s).",
		order.HotelName, order.CheckIn, order.CheckOut,
		order.Guests, order.Currency, order.TotalPrice, order.OrderID)
	writeRecord(ctx, t.records, sess, models.RecordHotelOrder, summary)
	return Done(summary)
}

func formatHotelOptions(options []models.HotelOption) string {
	var sb strings.Builder
	sb.WriteString("Here are the hotels I found:\n")
	for i, option := range options {
		fmt.Fprintf(&sb, "%d. %s", i+1, option.Name)
		if option.Rating > 0 {
			fmt.Fprintf(&sb, " (%.1f★)", option.Rating)
		}
		fmt.Fprintf(&sb, ", %s to %s, %s %.2f\n",
			option.CheckIn, option.CheckOut, option.Currency, option.Price)
	}
	return strings.TrimRight(sb.String(), "\n")
}
