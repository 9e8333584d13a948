package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the application's configuration
type Config struct {
	WebPort                 int           `mapstructure:"WEB_PORT"`
	LogLevel                string        `mapstructure:"LOG_LEVEL"`
	CatalogPath             string        `mapstructure:"CATALOG_PATH"`
	GeolocateURL            string        `mapstructure:"GEOLOCATE_URL"`
	OfficeSearchURL         string        `mapstructure:"OFFICE_SEARCH_URL"`
	LookupTimeout           time.Duration `mapstructure:"LOOKUP_TIMEOUT_SECONDS"`
	FuzzyThreshold          float64       `mapstructure:"FUZZY_THRESHOLD"`
	MaxRecommendations      int           `mapstructure:"MAX_RECOMMENDATIONS"`
	OfficeCacheSize         int           `mapstructure:"OFFICE_CACHE_SIZE"`
	RateLimitMessagesPerMin int           `mapstructure:"RATE_LIMIT_MESSAGES_PER_MIN"`
	RateLimitBurstSize      int           `mapstructure:"RATE_LIMIT_BURST_SIZE"`
	SessionRetentionAge     time.Duration `mapstructure:"SESSION_RETENTION_AGE"`
	CleanupInterval         time.Duration `mapstructure:"CLEANUP_INTERVAL"`
}

func Load(logger *zap.Logger) *Config {
	var config Config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")        // For running locally
	viper.AddConfigPath("./config") // Common config folder
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("WEB_PORT", 8090)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CATALOG_PATH", "data/catalog.json")
	viper.SetDefault("GEOLOCATE_URL", "https://ipapi.co/json/")
	viper.SetDefault("OFFICE_SEARCH_URL", "https://nominatim.openstreetmap.org/search")
	viper.SetDefault("LOOKUP_TIMEOUT_SECONDS", 5)
	viper.SetDefault("FUZZY_THRESHOLD", 0.7)
	viper.SetDefault("MAX_RECOMMENDATIONS", 3)
	viper.SetDefault("OFFICE_CACHE_SIZE", 128)
	viper.SetDefault("RATE_LIMIT_MESSAGES_PER_MIN", 20)
	viper.SetDefault("RATE_LIMIT_BURST_SIZE", 5)
	viper.SetDefault("SESSION_RETENTION_AGE", 24)
	viper.SetDefault("CLEANUP_INTERVAL", 1)

	if err := viper.ReadInConfig(); err != nil {
		if logger != nil {
			logger.Warn("Could not read config file, using defaults/env vars", zap.Error(err))
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		// Config unmarshaling is critical - fail fast during bootstrap
		if logger != nil {
			logger.Fatal("Unable to decode config into struct", zap.Error(err))
		} else {
			fmt.Fprintf(os.Stderr, "FATAL: Unable to decode config into struct: %v\n", err)
			os.Exit(1)
		}
	}

	// Convert seconds/hours to proper time.Duration
	config.LookupTimeout = config.LookupTimeout * time.Second
	config.SessionRetentionAge = config.SessionRetentionAge * time.Hour
	config.CleanupInterval = config.CleanupInterval * time.Hour

	return &config
}
