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
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB          int    `mapstructure:"REDIS_AUTH_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Calendar identifiers for the two parties of a tour.
	RenterCalendarID   string `mapstructure:"RENTER_CALENDAR_ID"`
	LandlordCalendarID string `mapstructure:"LANDLORD_CALENDAR_ID"`
	RenterEmail        string `mapstructure:"RENTER_EMAIL"`

	// Google credentials.
	GeminiAPIKey          string `mapstructure:"GEMINI_API_KEY"`
	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`

	// Scheduling window and slot parameters.
	SlotMinutes       int `mapstructure:"SLOT_MINUTES"`
	BusinessStartHour int `mapstructure:"BUSINESS_START_HOUR"`
	BusinessEndHour   int `mapstructure:"BUSINESS_END_HOUR"`
	LocalTZOffsetHrs  int `mapstructure:"LOCAL_TZ_OFFSET_HOURS"`
	MaxSlots          int `mapstructure:"MAX_SLOTS"`

	// Remote call policy for calendar and classification calls.
	CalendarMaxRetries     int `mapstructure:"CALENDAR_MAX_RETRIES"`
	CalendarTimeoutSeconds int `mapstructure:"CALENDAR_TIMEOUT_SECONDS"`
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
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "")
	viper.SetDefault("SLOT_MINUTES", 30)
	viper.SetDefault("BUSINESS_START_HOUR", 9)
	viper.SetDefault("BUSINESS_END_HOUR", 17)
	viper.SetDefault("LOCAL_TZ_OFFSET_HOURS", 2)
	viper.SetDefault("MAX_SLOTS", 10)
	viper.SetDefault("CALENDAR_MAX_RETRIES", 3)
	viper.SetDefault("CALENDAR_TIMEOUT_SECONDS", 30)

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
