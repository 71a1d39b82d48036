package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`

	// Session handling.
	SessionStore      string `mapstructure:"SESSION_STORE"` // "memory" or "redis"
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`

	// Intelligence (intent classification + slot extraction).
	IntelligenceMode string `mapstructure:"INTELLIGENCE_MODE"` // "local" or "gemini"
	GeminiAPIKey     string `mapstructure:"GEMINI_API_KEY"`

	// Travel providers.
	AmadeusClientID        string `mapstructure:"AMADEUS_CLIENT_ID"`
	AmadeusClientSecret    string `mapstructure:"AMADEUS_CLIENT_SECRET"`
	AmadeusBaseURL         string `mapstructure:"AMADEUS_BASE_URL"`
	AmadeusFallbackBaseURL string `mapstructure:"AMADEUS_FALLBACK_BASE_URL"`
	TripAdvisorAPIKey      string `mapstructure:"TRIPADVISOR_API_KEY"`
	OpenTripMapAPIKey      string `mapstructure:"OPENTRIPMAP_API_KEY"`

	ProviderCacheTTLMinutes int `mapstructure:"PROVIDER_CACHE_TTL_MINUTES"`

	// Itinerary optimizer tuning.
	ItineraryDailyCapacity     int   `mapstructure:"ITINERARY_DAILY_CAPACITY"`
	ItineraryClusterIterations int   `mapstructure:"ITINERARY_CLUSTER_ITERATIONS"`
	ItinerarySwapIterations    int   `mapstructure:"ITINERARY_SWAP_ITERATIONS"`
	ItinerarySeed              int64 `mapstructure:"ITINERARY_SEED"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_CACHE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("SESSION_STORE", "memory")
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("INTELLIGENCE_MODE", "local")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("AMADEUS_CLIENT_ID", "")
	viper.SetDefault("AMADEUS_CLIENT_SECRET", "")
	viper.SetDefault("AMADEUS_BASE_URL", "https://test.api.amadeus.com")
	viper.SetDefault("AMADEUS_FALLBACK_BASE_URL", "")
	viper.SetDefault("TRIPADVISOR_API_KEY", "")
	viper.SetDefault("OPENTRIPMAP_API_KEY", "")
	viper.SetDefault("PROVIDER_CACHE_TTL_MINUTES", 15)
	viper.SetDefault("ITINERARY_DAILY_CAPACITY", 3)
	viper.SetDefault("ITINERARY_CLUSTER_ITERATIONS", 25)
	viper.SetDefault("ITINERARY_SWAP_ITERATIONS", 50)
	viper.SetDefault("ITINERARY_SEED", 1)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
