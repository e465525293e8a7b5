package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Upstream HobyHub API.
	UpstreamAPIURL      string `mapstructure:"UPSTREAM_API_URL"`
	UpstreamTimeoutSecs int    `mapstructure:"UPSTREAM_TIMEOUT_SECS"`

	// Discovery defaults.
	DefaultLocation   string `mapstructure:"DEFAULT_LOCATION"`
	FeedPageSize      int    `mapstructure:"FEED_PAGE_SIZE"`
	DefaultDistanceKm int    `mapstructure:"DEFAULT_DISTANCE_KM"`
	SessionTTLMins    int    `mapstructure:"SESSION_TTL_MINS"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisStoreDB   int    `mapstructure:"REDIS_STORE_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Google Maps API Key (reverse geocoding).
	GoogleAPIKey string `mapstructure:"GOOGLE_API_KEY"`

	// reCAPTCHA site key forwarded to the upstream OTP endpoint.
	RecaptchaSiteKey string `mapstructure:"RECAPTCHA_SITE_KEY"`
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
	viper.SetDefault("UPSTREAM_API_URL", "http://localhost:9000")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECS", 15)
	viper.SetDefault("DEFAULT_LOCATION", "Pune")
	viper.SetDefault("FEED_PAGE_SIZE", 16)
	viper.SetDefault("DEFAULT_DISTANCE_KM", 10)
	viper.SetDefault("SESSION_TTL_MINS", 30)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_STORE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("GOOGLE_API_KEY", "")
	viper.SetDefault("RECAPTCHA_SITE_KEY", "")

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
