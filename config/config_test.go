package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every key must have a default registered: viper.Unmarshal only sees keys
// it already knows about, so an env-only deployment would otherwise read
// credentials as empty strings.
func TestLoadConfigPicksUpEnvOnlyValues(t *testing.T) {
	t.Setenv("AMADEUS_CLIENT_ID", "env-client-id")
	t.Setenv("AMADEUS_CLIENT_SECRET", "env-client-secret")
	t.Setenv("TRIPADVISOR_API_KEY", "env-ta-key")
	t.Setenv("OPENTRIPMAP_API_KEY", "env-otm-key")
	t.Setenv("GEMINI_API_KEY", "env-gemini-key")

	LoadConfig()

	assert.Equal(t, "env-client-id", AppConfig.AmadeusClientID)
	assert.Equal(t, "env-client-secret", AppConfig.AmadeusClientSecret)
	assert.Equal(t, "env-ta-key", AppConfig.TripAdvisorAPIKey)
	assert.Equal(t, "env-otm-key", AppConfig.OpenTripMapAPIKey)
	assert.Equal(t, "env-gemini-key", AppConfig.GeminiAPIKey)
}

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "memory", AppConfig.SessionStore)
	assert.Equal(t, "local", AppConfig.IntelligenceMode)
	assert.Equal(t, "https://test.api.amadeus.com", AppConfig.AmadeusBaseURL)
	assert.Equal(t, 3, AppConfig.ItineraryDailyCapacity)
}
