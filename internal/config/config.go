package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Host         string
	Port         string
	Env          string
	JWTSecret    string
	TokenTTL     time.Duration
	CookieSecure bool
	RedisURL     string
	TemplateGlob string
	TestMode     bool
}

func LoadConfig() *Config {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "development")
	testMode := strings.ToLower(os.Getenv("TEST_MODE")) == "true"

	secret := getEnv("JWT_SECRET", "")
	if secret == "" {
		if !testMode {
			log.Fatal("JWT_SECRET environment variable is required when not in test mode")
		}
		secret = "test-secret"
	}

	return &Config{
		Host:         getEnv("HOST", "0.0.0.0"),
		Port:         getEnv("PORT", "3000"),
		Env:          env,
		JWTSecret:    secret,
		TokenTTL:     30 * 24 * time.Hour,
		CookieSecure: env != "development",
		RedisURL:     getEnv("REDIS_URL", ""),
		TemplateGlob: getEnv("TEMPLATE_GLOB", "web/templates/*.html"),
		TestMode:     testMode,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return strings.TrimSpace(value)
}
