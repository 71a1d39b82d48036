// File: services/providers/tripadvisor.go
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tripgenius/models"
)

var poiHTTPClient = &http.Client{Timeout: 10 * time.Second}

const tripAdvisorBaseURL = "https://api.content.tripadvisor.com/api/v1"

// TripAdvisorClient is the primary POI provider, backed by the TripAdvisor
// Content API.
type TripAdvisorClient struct {
	apiKey string
}

func NewTripAdvisorClient(apiKey string) *TripAdvisorClient {
	return &TripAdvisorClient{apiKey: apiKey}
}

// FetchPOIs searches locations near the destination's city center and
// resolves each hit's coordinates and rating.
func (t *TripAdvisorClient) FetchPOIs(ctx context.Context, cityCode, preference string) ([]models.PointOfInterest, error) {
	city := CityForCode(cityCode)

	query := url.Values{
		"key":      {t.apiKey},
		"latLong":  {fmt.Sprintf("%f,%f", city.Lat, city.Lon)},
		"category": {"attractions"},
		"language": {"en"},
	}
	if preference != "" {
		query.Set("searchQuery", preference)
	} else {
		query.Set("searchQuery", city.Name)
	}

	var search struct {
		Data []struct {
			LocationID string `json:"location_id"`
			Name       string `json:"name"`
		} `json:"data"`
	}
	if err := t.getJSON(ctx, "/location/search", query, &search); err != nil {
		return nil, err
	}

	pois := make([]models.PointOfInterest, 0, len(search.Data))
	for _, loc := range search.Data {
		if len(pois) == 15 {
			break
		}
		detail, err := t.details(ctx, loc.LocationID)
		if err != nil {
			continue // skip locations whose details are unavailable
		}
		pois = append(pois, detail)
	}
	return pois, nil
}

func (t *TripAdvisorClient) details(ctx context.Context, locationID string) (models.PointOfInterest, error) {
	query := url.Values{"key": {t.apiKey}, "language": {"en"}}

	var out struct {
		LocationID string `json:"location_id"`
		Name       string `json:"name"`
		Latitude   string `json:"latitude"`
		Longitude  string `json:"longitude"`
		Rating     string `json:"rating"`
		Category   struct {
			Name string `json:"name"`
		} `json:"category"`
	}
	if err := t.getJSON(ctx, "/location/"+locationID+"/details", query, &out); err != nil {
		return models.PointOfInterest{}, err
	}

	lat, err := strconv.ParseFloat(out.Latitude, 64)
	if err != nil {
		return models.PointOfInterest{}, fmt.Errorf("location %s has no coordinates", locationID)
	}
	lon, err := strconv.ParseFloat(out.Longitude, 64)
	if err != nil {
		return models.PointOfInterest{}, fmt.Errorf("location %s has no coordinates", locationID)
	}
	rating, _ := strconv.ParseFloat(out.Rating, 64)

	category := models.POIAttraction
	switch out.Category.Name {
	case "restaurant":
		category = models.POIRestaurant
	case "activity", "attraction_activity":
		category = models.POIActivity
	}

	return models.PointOfInterest{
		ID:        out.LocationID,
		Name:      out.Name,
		Latitude:  lat,
		Longitude: lon,
		Category:  category,
		Rating:    rating,
	}, nil
}

func (t *TripAdvisorClient) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		tripAdvisorBaseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := poiHTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("tripadvisor %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("tripadvisor %s: status %d: %s", path, resp.StatusCode, raw)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
