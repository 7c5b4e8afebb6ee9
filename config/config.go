package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Salon working hours and capacity.
	OpenMinutes     int `mapstructure:"OPEN_MINUTES"`     // minutes from midnight, default 540 (09:00)
	CloseMinutes    int `mapstructure:"CLOSE_MINUTES"`    // minutes from midnight, default 1200 (20:00)
	SlotGranularity int `mapstructure:"SLOT_GRANULARITY"` // candidate grid step in minutes
	MaxChairs       int `mapstructure:"MAX_CHAIRS"`       // simultaneous in-progress appointments

	// Salon identity used on bills and WhatsApp messages.
	SalonName      string `mapstructure:"SALON_NAME"`
	SalonPhone     string `mapstructure:"SALON_PHONE"`
	BillBaseURL    string `mapstructure:"BILL_BASE_URL"`
	DefaultCountry string `mapstructure:"DEFAULT_COUNTRY_CODE"` // prefix stripped when normalizing phones
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
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "salonhq")
	viper.SetDefault("OPEN_MINUTES", 540)
	viper.SetDefault("CLOSE_MINUTES", 1200)
	viper.SetDefault("SLOT_GRANULARITY", 30)
	viper.SetDefault("MAX_CHAIRS", 2)
	viper.SetDefault("SALON_NAME", "AS Unisex Salon")
	viper.SetDefault("SALON_PHONE", "")
	viper.SetDefault("BILL_BASE_URL", "https://salon.example.com/bill")
	viper.SetDefault("DEFAULT_COUNTRY_CODE", "+91")

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
