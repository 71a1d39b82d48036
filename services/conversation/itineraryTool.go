// File: services/conversation/itineraryTool.go
package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	recordsRepo "tripgenius/database/repository/records"
	"tripgenius/models"
	"tripgenius/services/intelligence"
	"tripgenius/services/itinerary"
)

var itineraryFields = []string{
	models.FieldDestination,
	models.FieldDepartureDate,
	models.FieldReturnDate,
}

// ItineraryTool fetches points of interest for the destination and turns
// them into a day-by-day visiting plan. It needs no candidate selection;
// once the trip details are known it completes in a single pass.
type ItineraryTool struct {
	gateway ProviderGateway
	intel   intelligence.Service
	records recordsRepo.TripRecordRepository
}

func NewItineraryTool(gateway ProviderGateway, intel intelligence.Service, records recordsRepo.TripRecordRepository) *ItineraryTool {
	return &ItineraryTool{gateway: gateway, intel: intel, records: records}
}

func (t *ItineraryTool) Name() models.ToolID { return models.ToolItinerary }

func (t *ItineraryTool) Step(ctx context.Context, sess *models.Session, input string) StepOutcome {
	if out, pending := collectParams(ctx, t.intel, sess, itineraryFields, input); pending {
		return out
	}

	pois, err := t.gateway.FetchPOIs(ctx, sess.Params.Destination, sess.Params.Preference)
	if err != nil {
		return Failed(err)
	}

	days := sess.Params.TripDays()
	plan, err := itinerary.BuildPlan(pois, itinerary.FromConfig(days))
	if err != nil {
		if errors.Is(err, itinerary.ErrDegenerateInput) {
			// No POIs or no days is a degenerate request, not a failure.
			return Done(fmt.Sprintf("I couldn't put together an itinerary for %s: "+
				"no points of interest were available for your travel dates.",
				sess.Params.Destination))
		}
		return Failed(err)
	}

	summary := formatPlan(sess.Params.Destination, plan)
	writeRecord(ctx, t.records, sess, models.RecordItinerary, summary)
	return Done(summary)
}

func formatPlan(destination string, plan models.ItineraryPlan) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Here's your %d-day itinerary for %s:\n", len(plan.Days), destination)
	for _, day := range plan.Days {
		if day.Free {
			fmt.Fprintf(&sb, "Day %d: free day, explore at your own pace.\n", day.Day)
			continue
		}
		names := make([]string, 0, len(day.Route))
		for _, poi := range day.Route {
			names = append(names, poi.Name)
		}
		fmt.Fprintf(&sb, "Day %d: %s\n", day.Day, strings.Join(names, " → "))
	}
	if plan.Omitted > 0 {
		fmt.Fprintf(&sb, "(%d lower-rated spots didn't fit the schedule and were left out.)\n", plan.Omitted)
	}
	return strings.TrimRight(sb.String(), "\n")
}
