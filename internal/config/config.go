package config

import (
	"os"
	"strconv"

	"ferapp_backend/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DatabaseURL    string
	JWTSecret      string
	GoogleClientID string
	AllowedOrigin  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      int // seconds

	// Business timezone: all "today" decisions use this location.
	Timezone string

	// Write limits (per owner)
	WriteRateLimit  int
	WriteRateWindow int
}

// Load reads the configuration from env (.env is honored when present).
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	googleClientID := os.Getenv("GOOGLE_CLIENT_ID")
	if googleClientID == "" {
		logger.Fatal("GOOGLE_CLIENT_ID is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	tz := os.Getenv("APP_TIMEZONE")
	if tz == "" {
		tz = "America/Argentina/Buenos_Aires"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	cacheTTL := 300
	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cacheTTL = n
		}
	}

	writeRateLimit := 120
	if v := os.Getenv("WRITE_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			writeRateLimit = n
		}
	}

	writeRateWindow := 60
	if v := os.Getenv("WRITE_RATE_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			writeRateWindow = n
		}
	}

	return &Config{
		AppPort:         port,
		DatabaseURL:     dbURL,
		JWTSecret:       jwtSecret,
		GoogleClientID:  googleClientID,
		AllowedOrigin:   os.Getenv("ALLOWED_ORIGIN"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         redisDB,
		CacheTTL:        cacheTTL,
		Timezone:        tz,
		WriteRateLimit:  writeRateLimit,
		WriteRateWindow: writeRateWindow,
	}
}
