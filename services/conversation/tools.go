// File: services/conversation/tools.go
package conversation

import (
	"context"

	recordsRepo "tripgenius/database/repository/records"
	"tripgenius/models"
	"tripgenius/services/intelligence"
	"tripgenius/utils"

	"go.uber.org/zap"
)

// ProviderGateway is the fallback-wrapped provider surface the tools call.
// *providers.Gateway satisfies it; tests substitute fakes.
type ProviderGateway interface {
	SearchFlights(ctx context.Context, params models.TripParams) ([]models.FlightOffer, error)
	BookFlight(ctx context.Context, offer models.FlightOffer, adults int) (models.FlightOrder, error)
	SearchHotels(ctx context.Context, params models.TripParams) ([]models.HotelOption, error)
	BookHotel(ctx context.Context, option models.HotelOption, guests int) (models.HotelOrder, error)
	FetchPOIs(ctx context.Context, cityCode, preference string) ([]models.PointOfInterest, error)
}

// Tool stages beyond parameter collection (the empty stage).
const stageSelect = "select"

var fieldPrompts = map[string]string{
	models.FieldOrigin:        "Which city will you be departing from?",
	models.FieldDestination:   "Where are you headed?",
	models.FieldDepartureDate: "What date do you want to depart? (e.g. 2026-09-12)",
	models.FieldReturnDate:    "What date will you return? (e.g. 2026-09-19)",
	models.FieldAdults:        "How many travelers?",
}

func promptForField(field string) string {
	if p, ok := fieldPrompts[field]; ok {
		return p
	}
	return "Could you provide your " + field + "?"
}

func retryPromptForField(field string) string {
	return "Sorry, I didn't catch that. " + promptForField(field)
}

// collectParams fills the tool's required fields one NeedsInput at a time,
// in the given priority order. Fields collected by earlier tools are never
// re-requested. A malformed answer re-issues the same prompt. The second
// return value is false once every field is filled.
func collectParams(ctx context.Context, intel intelligence.Service, sess *models.Session, fields []string, input string) (StepOutcome, bool) {
	st := &sess.Tool

	if st.AwaitingField != "" {
		if input == "" {
			return NeedsInput(promptForField(st.AwaitingField)), true
		}
		value, err := intel.ExtractField(ctx, st.AwaitingField, input)
		if err != nil {
			return rejectField(st.AwaitingField, err), true
		}
		if err := sess.Params.Apply(st.AwaitingField, value); err != nil {
			return rejectField(st.AwaitingField, err), true
		}
		st.AwaitingField = ""
	}

	for _, field := range fields {
		if !sess.Params.Has(field) {
			st.AwaitingField = field
			return NeedsInput(promptForField(field)), true
		}
	}
	return StepOutcome{}, false
}

// rejectField re-issues the prompt for a malformed answer. The outcome
// carries the ValidationError so callers and logs can see what was rejected;
// the conversation itself recovers by re-prompting.
func rejectField(field string, cause error) StepOutcome {
	verr := &ValidationError{Field: field, Reason: cause.Error()}
	utils.GetLogger().Debug("rejected field input", zap.Error(verr))
	out := NeedsInput(retryPromptForField(field))
	out.Err = verr
	return out
}

// writeRecord persists a trip record best-effort; a storage failure never
// affects the conversation.
func writeRecord(ctx context.Context, repo recordsRepo.TripRecordRepository, sess *models.Session, kind, summary string) {
	if repo == nil {
		return
	}
	record := models.TripRecord{
		SessionID: sess.SessionID,
		Kind:      kind,
		Summary:   summary,
		Params:    sess.Params,
	}
	if _, err := repo.Create(ctx, record); err != nil {
		utils.GetLogger().Warn("failed to persist trip record",
			zap.String("sessionId", sess.SessionID),
			zap.String("kind", kind),
			zap.Error(err))
	}
}
