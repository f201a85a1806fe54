package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string
	Environment    string
	LogLevel       string
	CurrencySymbol string
	MinPurchaseAge int
	TracingEnabled bool
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CURRENCY_SYMBOL", "£")
	viper.SetDefault("MIN_PURCHASE_AGE", 18)
	viper.SetDefault("TRACING_ENABLED", false)

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:           getEnvOrViper("PORT", "8080"),
		Environment:    getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:       getEnvOrViper("LOG_LEVEL", "info"),
		CurrencySymbol: getEnvOrViper("CURRENCY_SYMBOL", "£"),
		MinPurchaseAge: viper.GetInt("MIN_PURCHASE_AGE"),
		TracingEnabled: viper.GetBool("TRACING_ENABLED"),
	}

	if cfg.MinPurchaseAge <= 0 {
		return nil, fmt.Errorf("MIN_PURCHASE_AGE must be positive, got %d", cfg.MinPurchaseAge)
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
