package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIPort     string
	ServiceName string
	LogLevel    string

	ScoringBaseURL string
	ScoringTimeout time.Duration

	WorkingSetLimit int

	BreakerEnabled          bool
	BreakerMinRequests      int
	BreakerFailureRatio     float64
	BreakerOpenTimeout      time.Duration
	BreakerHalfOpenMaxCalls int

	RatePerSecond float64
	RateBurst     int
}

func Load() Config {
	return Config{
		APIPort:     mustEnv("API_PORT", "8080"),
		ServiceName: mustEnv("SERVICE_NAME", "algee-gateway"),
		LogLevel:    mustEnv("LOG_LEVEL", "info"),

		ScoringBaseURL: mustEnv("SCORING_BASE_URL", "http://localhost:3000/api/v1"),
		ScoringTimeout: mustEnvSeconds("SCORING_TIMEOUT_SECONDS", 15),

		WorkingSetLimit: mustEnvInt("WORKING_SET_LIMIT", 1000),

		BreakerEnabled:          mustEnvBool("BREAKER_ENABLED", true),
		BreakerMinRequests:      mustEnvInt("BREAKER_MIN_REQUESTS", 5),
		BreakerFailureRatio:     mustEnvFloat("BREAKER_FAILURE_RATIO", 0.6),
		BreakerOpenTimeout:      mustEnvSeconds("BREAKER_OPEN_TIMEOUT_SECONDS", 30),
		BreakerHalfOpenMaxCalls: mustEnvInt("BREAKER_HALF_OPEN_MAX_CALLS", 2),

		RatePerSecond: mustEnvFloat("RATE_PER_SECOND", 20),
		RateBurst:     mustEnvInt("RATE_BURST", 10),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func mustEnvSeconds(key string, fallbackSeconds int) time.Duration {
	return time.Duration(mustEnvInt(key, fallbackSeconds)) * time.Second
}
