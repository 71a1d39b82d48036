// File: services/intelligence/localService.go
package intelligence

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tripgenius/models"
)

// LocalService is a deterministic, dependency-free implementation of Service.
// It mirrors the keyword routing of the hosted classifier and serves as the
// fallback when no Gemini key is configured.
type LocalService struct{}

func NewLocalService() *LocalService {
	return &LocalService{}
}

// cityIATA maps well-known city names to their main airport code.
var cityIATA = map[string]string{
	"new york":      "JFK",
	"new york city": "JFK",
	"nyc":           "JFK",
	"new delhi":     "DEL",
	"delhi":         "DEL",
	"bengaluru":     "BLR",
	"bangalore":     "BLR",
	"mumbai":        "BOM",
	"london":        "LHR",
	"paris":         "CDG",
	"frankfurt":     "FRA",
	"amsterdam":     "AMS",
	"madrid":        "MAD",
	"barcelona":     "BCN",
	"rome":          "FCO",
	"istanbul":      "IST",
	"dubai":         "DXB",
	"singapore":     "SIN",
	"tokyo":         "HND",
	"sydney":        "SYD",
	"san francisco": "SFO",
	"los angeles":   "LAX",
	"chicago":       "ORD",
	"boston":        "BOS",
	"seattle":       "SEA",
}

var (
	originRe      = regexp.MustCompile(`(?i)\bfrom\s+([a-z ]+?)(?:\s+to\s|\s*,|\s+departing|\s+on\s|\s+leaving|$)`)
	destinationRe = regexp.MustCompile(`(?i)\bto\s+([a-z ]+?)(?:\s+from\s|\s*,|\s+departing|\s+returning|\s+on\s|\s+for\s|$)`)
	inCityRe      = regexp.MustCompile(`(?i)\bin\s+([a-z ]+?)(?:\s*,|\s+from\s|\s+starting|\s+for\s|$)`)
	dateRe        = regexp.MustCompile(`(?i)\b(\d{4}-\d{2}-\d{2}|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`)
	returningRe   = regexp.MustCompile(`(?i)\breturn(?:ing)?\b[^\d]{0,20}(\d{4}-\d{2}-\d{2}|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`)
	adultsRe      = regexp.MustCompile(`(?i)\b(\d+)\s+(?:adult|traveller|traveler|passenger|person|people|guest)`)
	iataRe        = regexp.MustCompile(`(?i)^[a-z]{3}$`)
)

// Classify maps the query onto the closed intent set with keyword matching,
// the same way the booking assistant routes "book"/"recommend"/"chat".
func (s *LocalService) Classify(ctx context.Context, text string) (models.Intent, error) {
	lower := strings.ToLower(text)

	hasFlight := strings.Contains(lower, "flight") || strings.Contains(lower, "fly")
	hasHotel := strings.Contains(lower, "hotel") || strings.Contains(lower, "stay") ||
		strings.Contains(lower, "accommodation")
	hasItinerary := strings.Contains(lower, "itinerary") || strings.Contains(lower, "sightsee") ||
		strings.Contains(lower, "attraction") || strings.Contains(lower, "things to do")
	hasTrip := strings.Contains(lower, "trip") || strings.Contains(lower, "vacation") ||
		strings.Contains(lower, "holiday") || strings.Contains(lower, "getaway")

	switch {
	case hasFlight && hasHotel:
		return models.IntentFullTrip, nil
	case hasItinerary:
		return models.IntentItinerary, nil
	case hasTrip:
		return models.IntentFullTrip, nil
	case hasFlight:
		return models.IntentFlights, nil
	case hasHotel:
		return models.IntentHotels, nil
	case strings.Contains(lower, "plan") && !strings.Contains(lower, "plane"):
		return models.IntentItinerary, nil
	}
	return "", ErrAmbiguousIntent
}

// Extract pulls origin, destination, dates and traveler count out of the
// query. Fields it cannot find are left absent.
func (s *LocalService) Extract(ctx context.Context, text string) (map[string]string, error) {
	params := make(map[string]string)

	if m := originRe.FindStringSubmatch(text); m != nil {
		if code, ok := toIATA(m[1]); ok {
			params[models.FieldOrigin] = code
		}
	}
	if m := destinationRe.FindStringSubmatch(text); m != nil {
		if code, ok := toIATA(m[1]); ok {
			params[models.FieldDestination] = code
		}
	}
	if _, ok := params[models.FieldDestination]; !ok {
		if m := inCityRe.FindStringSubmatch(text); m != nil {
			if code, ok := toIATA(m[1]); ok {
				params[models.FieldDestination] = code
			}
		}
	}

	var returnDate string
	if m := returningRe.FindStringSubmatch(text); m != nil {
		if d, err := parseDate(m[1]); err == nil {
			returnDate = d
			params[models.FieldReturnDate] = d
		}
	}
	for _, m := range dateRe.FindAllStringSubmatch(text, -1) {
		d, err := parseDate(m[1])
		if err != nil || d == returnDate {
			continue
		}
		params[models.FieldDepartureDate] = d
		break
	}

	if m := adultsRe.FindStringSubmatch(text); m != nil {
		params[models.FieldAdults] = m[1]
	}

	return params, nil
}

// ExtractField normalizes a single-field answer.
func (s *LocalService) ExtractField(ctx context.Context, field, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("empty input for %s", field)
	}

	switch field {
	case models.FieldOrigin, models.FieldDestination:
		if code, ok := toIATA(input); ok {
			return code, nil
		}
		return "", fmt.Errorf("unrecognized city %q", input)
	case models.FieldDepartureDate, models.FieldReturnDate:
		return parseDate(input)
	case models.FieldAdults:
		if m := adultsRe.FindStringSubmatch(input); m != nil {
			return m[1], nil
		}
		if n, err := strconv.Atoi(input); err == nil && n >= 1 {
			return strconv.Itoa(n), nil
		}
		return "", fmt.Errorf("invalid traveler count %q", input)
	}
	return input, nil
}

// toIATA resolves a city name or bare airport code to an IATA code.
func toIATA(raw string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if code, ok := cityIATA[name]; ok {
		return code, true
	}
	if iataRe.MatchString(name) {
		return strings.ToUpper(name), true
	}
	return "", false
}

var dateLayouts = []string{
	"2006-01-02",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// parseDate normalizes a date string to YYYY-MM-DD.
func parseDate(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = regexp.MustCompile(`(?i)(\d{1,2})(st|nd|rd|th)`).ReplaceAllString(cleaned, "$1")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unparsable date %q", raw)
}
