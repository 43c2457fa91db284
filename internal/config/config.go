package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseDSN string

	// Resend transactional email
	ResendAPIKey string
	EmailFrom    string

	// PesaPal payment gateway
	PesapalBaseURL        string
	PesapalConsumerKey    string
	PesapalConsumerSecret string
	PesapalCallbackURL    string

	// YouTube Data API
	YouTubeAPIKey    string
	YouTubeChannelID string

	// Admin session
	JWTSecret     string
	AdminEmail    string
	AdminPassword string
}

// Load reads the .env file (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		DatabaseDSN:           os.Getenv("DATABASE_URL"),
		ResendAPIKey:          os.Getenv("RESEND_API_KEY"),
		EmailFrom:             getEnv("EMAIL_FROM", "Caribbean Cruises <careers@caribbeancruises.site>"),
		PesapalBaseURL:        getEnv("PESAPAL_BASE_URL", "https://pay.pesapal.com/v3"),
		PesapalConsumerKey:    os.Getenv("PESAPAL_CONSUMER_KEY"),
		PesapalConsumerSecret: os.Getenv("PESAPAL_CONSUMER_SECRET"),
		PesapalCallbackURL:    os.Getenv("PESAPAL_CALLBACK_URL"),
		YouTubeAPIKey:         os.Getenv("YOUTUBE_API_KEY"),
		YouTubeChannelID:      os.Getenv("YOUTUBE_CHANNEL_ID"),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		AdminEmail:            os.Getenv("ADMIN_EMAIL"),
		AdminPassword:         os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
