package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSAllowOrigins  string `mapstructure:"CORS_ALLOW_ORIGINS"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Token signing secret.
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Stripe secret key.
	StripeKey             string        `mapstructure:"STRIPE_KEY"`
	PaymentIntentCacheTTL time.Duration `mapstructure:"PAYMENT_INTENT_CACHE_TTL"`

	// Outbound mail.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	MailUser     string `mapstructure:"MAIL_USER"`
	MailPass     string `mapstructure:"MAIL_PASS"`
	MailFromName string `mapstructure:"MAIL_FROM_NAME"`

	// Redis configuration. An empty address disables the cache.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
}

var AppConfig Config

// envAliases maps config keys to the variable names the original deployment used.
var envAliases = map[string]string{
	"APP_PORT":   "PORT",
	"JWT_SECRET": "ACCESS_TOKEN_SECRET",
	"STRIPE_KEY": "PAYMENT_SECRET_KEY",
	"MAIL_USER":  "EMAIL",
	"MAIL_PASS":  "PASS",
}

func LoadConfig() Config {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	for key, alias := range envAliases {
		if err := viper.BindEnv(key, key, alias); err != nil {
			log.Fatalf("Failed to bind env %s: %v", key, err)
		}
	}

	// Set default values.
	viper.SetDefault("APP_PORT", "5000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "AirCnC")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("PAYMENT_INTENT_CACHE_TTL", 24*time.Hour)
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("MAIL_USER", "")
	viper.SetDefault("MAIL_PASS", "")
	viper.SetDefault("MAIL_FROM_NAME", "AirCnC")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if AppConfig.JWTSecret == "" {
		log.Fatalf("Failed to load config: JWT_SECRET (or ACCESS_TOKEN_SECRET) must be set")
	}
	return AppConfig
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
