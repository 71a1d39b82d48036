package utils

import "github.com/spf13/viper"

// IsProduction checks if the environment is production.
func IsProduction() bool {
	return viper.GetString("ENV") == "production"
}
