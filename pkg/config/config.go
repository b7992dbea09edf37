package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret string
	JWTExpiry time.Duration

	NasaAPIKey string
	NasaAPIURL string

	OpenAIAPIKey string
	OpenAIAPIURL string

	AWSRegion    string
	SESFromEmail string

	FirebaseCredentials string

	AlertCheckInterval time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	jwtExpiry := 168 * time.Hour // 7 days
	if exp := os.Getenv("JWT_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			jwtExpiry = parsed
		}
	}

	checkInterval := 6 * time.Hour
	if iv := os.Getenv("ALERT_CHECK_INTERVAL"); iv != "" {
		if parsed, err := time.ParseDuration(iv); err == nil {
			checkInterval = parsed
		}
	}

	return &Config{
		Port:                getEnv("PORT", "5000"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		JWTSecret:           getEnv("JWT_SECRET", "your_super_secret_jwt_key_12345"),
		JWTExpiry:           jwtExpiry,
		NasaAPIKey:          getEnv("NASA_API_KEY", "DEMO_KEY"),
		NasaAPIURL:          getEnv("NASA_API_URL", "https://api.nasa.gov/neo/rest/v1"),
		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIAPIURL:        getEnv("OPENAI_API_URL", "https://api.openai.com/v1"),
		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail:        getEnv("SES_FROM_EMAIL", ""),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		AlertCheckInterval:  checkInterval,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
