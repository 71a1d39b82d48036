// File: services/providers/geo.go
package providers

import "strings"

// City carries the display name and center coordinates for a destination,
// keyed by its main airport's IATA code.
type City struct {
	Name string
	Lat  float64
	Lon  float64
}

var cities = map[string]City{
	"JFK": {"New York", 40.7128, -74.0060},
	"DEL": {"New Delhi", 28.6139, 77.2090},
	"BLR": {"Bengaluru", 12.9716, 77.5946},
	"BOM": {"Mumbai", 19.0760, 72.8777},
	"LHR": {"London", 51.5074, -0.1278},
	"CDG": {"Paris", 48.8566, 2.3522},
	"FRA": {"Frankfurt", 50.1109, 8.6821},
	"AMS": {"Amsterdam", 52.3676, 4.9041},
	"MAD": {"Madrid", 40.4168, -3.7038},
	"BCN": {"Barcelona", 41.3874, 2.1686},
	"FCO": {"Rome", 41.9028, 12.4964},
	"IST": {"Istanbul", 41.0082, 28.9784},
	"DXB": {"Dubai", 25.2048, 55.2708},
	"SIN": {"Singapore", 1.3521, 103.8198},
	"HND": {"Tokyo", 35.6762, 139.6503},
	"SYD": {"Sydney", -33.8688, 151.2093},
	"SFO": {"San Francisco", 37.7749, -122.4194},
	"LAX": {"Los Angeles", 34.0522, -118.2437},
	"ORD": {"Chicago", 41.8781, -87.6298},
	"BOS": {"Boston", 42.3601, -71.0589},
	"SEA": {"Seattle", 47.6062, -122.3321},
}

// CityForCode resolves an IATA code to its city. Unknown codes fall back to
// the code itself as a search term with zeroed coordinates.
func CityForCode(code string) City {
	if c, ok := cities[strings.ToUpper(code)]; ok {
		return c
	}
	return City{Name: strings.ToUpper(code)}
}
