// File: services/providers/amadeus.go
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"tripgenius/models"
	"tripgenius/utils"

	"go.uber.org/zap"
)

// amadeusHTTPClient is shared by all Amadeus clients. Self-service API calls
// are quick; anything slower than this is treated as an outage.
var amadeusHTTPClient = &http.Client{Timeout: 12 * time.Second}

// AmadeusClient talks to the Amadeus self-service APIs. It implements both
// FlightProvider and HotelProvider. A second instance pointed at a different
// base URL serves as the alternate provider behind the gateway.
type AmadeusClient struct {
	baseURL      string
	clientID     string
	clientSecret string

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewAmadeusClient(baseURL, clientID, clientSecret string) *AmadeusClient {
	return &AmadeusClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// token returns a valid OAuth access token, refreshing it when within a
// minute of expiry.
func (a *AmadeusClient) token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.accessToken != "" && time.Now().Add(time.Minute).Before(a.tokenExpiry) {
		return a.accessToken, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {a.clientID},
		"client_secret": {a.clientSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := amadeusHTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("amadeus token request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("amadeus token request: status %d: %s", resp.StatusCode, body)
	}

	var tok struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("amadeus token decode: %w", err)
	}
	a.accessToken = tok.AccessToken
	a.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	return a.accessToken, nil
}

func (a *AmadeusClient) doJSON(ctx context.Context, method, path string, query url.Values, body io.Reader, out interface{}) error {
	tok, err := a.token(ctx)
	if err != nil {
		return err
	}

	endpoint := a.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := amadeusHTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("amadeus %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("amadeus %s %s: status %d: %s", method, path, resp.StatusCode, raw)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// SearchFlights runs a round-trip flight-offers search and maps the results
// into candidate offers.
func (a *AmadeusClient) SearchFlights(ctx context.Context, params models.TripParams) ([]models.FlightOffer, error) {
	query := url.Values{
		"originLocationCode":      {params.Origin},
		"destinationLocationCode": {params.Destination},
		"departureDate":           {params.DepartureDate},
		"returnDate":              {params.ReturnDate},
		"adults":                  {strconv.Itoa(params.Adults)},
		"max":                     {"5"},
	}

	var out struct {
		Data []struct {
			ID          string `json:"id"`
			Itineraries []struct {
				Segments []struct {
					CarrierCode string `json:"carrierCode"`
					Departure   struct {
						IataCode string `json:"iataCode"`
						At       string `json:"at"`
					} `json:"departure"`
					Arrival struct {
						IataCode string `json:"iataCode"`
						At       string `json:"at"`
					} `json:"arrival"`
				} `json:"segments"`
			} `json:"itineraries"`
			Price struct {
				GrandTotal string `json:"grandTotal"`
				Currency   string `json:"currency"`
			} `json:"price"`
		} `json:"data"`
	}
	if err := a.doJSON(ctx, http.MethodGet, "/v2/shopping/flight-offers", query, nil, &out); err != nil {
		return nil, err
	}

	offers := make([]models.FlightOffer, 0, len(out.Data))
	for _, d := range out.Data {
		if len(d.Itineraries) == 0 || len(d.Itineraries[0].Segments) == 0 {
			continue
		}
		segs := d.Itineraries[0].Segments
		first, last := segs[0], segs[len(segs)-1]
		price, _ := strconv.ParseFloat(d.Price.GrandTotal, 64)
		offers = append(offers, models.FlightOffer{
			ID:          d.ID,
			Carrier:     first.CarrierCode,
			Origin:      first.Departure.IataCode,
			Destination: last.Arrival.IataCode,
			Departure:   first.Departure.At,
			Arrival:     last.Arrival.At,
			Stops:       len(segs) - 1,
			Price:       price,
			Currency:    d.Price.Currency,
		})
	}
	utils.GetLogger().Debug("Amadeus flight search",
		zap.String("origin", params.Origin),
		zap.String("destination", params.Destination),
		zap.Int("offers", len(offers)))
	return offers, nil
}

// BookFlight confirms pricing for the chosen offer and places the order.
func (a *AmadeusClient) BookFlight(ctx context.Context, offer models.FlightOffer, adults int) (models.FlightOrder, error) {
	pricing := map[string]interface{}{
		"data": map[string]interface{}{
			"type":         "flight-offers-pricing",
			"flightOffers": []map[string]string{{"id": offer.ID}},
		},
	}
	payload, _ := json.Marshal(pricing)

	var priced struct {
		Data struct {
			FlightOffers []struct {
				Price struct {
					GrandTotal string `json:"grandTotal"`
					Currency   string `json:"currency"`
				} `json:"price"`
			} `json:"flightOffers"`
		} `json:"data"`
	}
	if err := a.doJSON(ctx, http.MethodPost, "/v1/shopping/flight-offers/pricing", nil,
		strings.NewReader(string(payload)), &priced); err != nil {
		return models.FlightOrder{}, err
	}

	total := offer.Price
	currency := offer.Currency
	if len(priced.Data.FlightOffers) > 0 {
		if p, err := strconv.ParseFloat(priced.Data.FlightOffers[0].Price.GrandTotal, 64); err == nil {
			total = p
		}
		if c := priced.Data.FlightOffers[0].Price.Currency; c != "" {
			currency = c
		}
	}

	order := map[string]interface{}{
		"data": map[string]interface{}{
			"type":         "flight-order",
			"flightOffers": []map[string]string{{"id": offer.ID}},
		},
	}
	payload, _ = json.Marshal(order)

	var booked struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := a.doJSON(ctx, http.MethodPost, "/v1/booking/flight-orders", nil,
		strings.NewReader(string(payload)), &booked); err != nil {
		return models.FlightOrder{}, err
	}

	return models.FlightOrder{
		OrderID:     booked.Data.ID,
		OfferID:     offer.ID,
		Carrier:     offer.Carrier,
		Origin:      offer.Origin,
		Destination: offer.Destination,
		Departure:   offer.Departure,
		Adults:      adults,
		TotalPrice:  total * float64(adults),
		Currency:    currency,
	}, nil
}

// SearchHotels lists hotels for the destination city, then fetches bookable
// offers for the stay.
func (a *AmadeusClient) SearchHotels(ctx context.Context, params models.TripParams) ([]models.HotelOption, error) {
	var hotels struct {
		Data []struct {
			HotelID string `json:"hotelId"`
			Name    string `json:"name"`
			Rating  string `json:"rating"`
		} `json:"data"`
	}
	listQuery := url.Values{"cityCode": {params.Destination}}
	if err := a.doJSON(ctx, http.MethodGet, "/v1/reference-data/locations/hotels/by-city",
		listQuery, nil, &hotels); err != nil {
		return nil, err
	}
	if len(hotels.Data) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, 5)
	ratings := make(map[string]float64, 5)
	for _, h := range hotels.Data {
		if len(ids) == 5 {
			break
		}
		ids = append(ids, h.HotelID)
		if r, err := strconv.ParseFloat(h.Rating, 64); err == nil {
			ratings[h.HotelID] = r
		}
	}

	offerQuery := url.Values{
		"hotelIds":     {strings.Join(ids, ",")},
		"checkInDate":  {params.DepartureDate},
		"checkOutDate": {params.ReturnDate},
		"adults":       {strconv.Itoa(params.Adults)},
	}
	var out struct {
		Data []struct {
			Hotel struct {
				HotelID string `json:"hotelId"`
				Name    string `json:"name"`
			} `json:"hotel"`
			Offers []struct {
				ID    string `json:"id"`
				Price struct {
					Total    string `json:"total"`
					Currency string `json:"currency"`
				} `json:"price"`
			} `json:"offers"`
		} `json:"data"`
	}
	if err := a.doJSON(ctx, http.MethodGet, "/v3/shopping/hotel-offers", offerQuery, nil, &out); err != nil {
		return nil, err
	}

	options := make([]models.HotelOption, 0, len(out.Data))
	for _, d := range out.Data {
		if len(d.Offers) == 0 {
			continue
		}
		best := d.Offers[0]
		price, _ := strconv.ParseFloat(best.Price.Total, 64)
		options = append(options, models.HotelOption{
			HotelID:  d.Hotel.HotelID,
			OfferID:  best.ID,
			Name:     d.Hotel.Name,
			CityCode: params.Destination,
			CheckIn:  params.DepartureDate,
			CheckOut: params.ReturnDate,
			Rating:   ratings[d.Hotel.HotelID],
			Price:    price,
			Currency: best.Price.Currency,
		})
	}
	return options, nil
}

// BookHotel places a hotel order for the chosen offer.
func (a *AmadeusClient) BookHotel(ctx context.Context, option models.HotelOption, guests int) (models.HotelOrder, error) {
	order := map[string]interface{}{
		"data": map[string]interface{}{
			"type": "hotel-order",
			"roomAssociations": []map[string]string{
				{"hotelOfferId": option.OfferID},
			},
		},
	}
	payload, _ := json.Marshal(order)

	var booked struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := a.doJSON(ctx, http.MethodPost, "/v1/booking/hotel-orders", nil,
		strings.NewReader(string(payload)), &booked); err != nil {
		return models.HotelOrder{}, err
	}

	return models.HotelOrder{
		OrderID:    booked.Data.ID,
		OfferID:    option.OfferID,
		HotelName:  option.Name,
		CheckIn:    option.CheckIn,
		CheckOut:   option.CheckOut,
		Guests:     guests,
		TotalPrice: option.Price,
		Currency:   option.Currency,
	}, nil
}
