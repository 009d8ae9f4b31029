package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"sectionschedule/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	Environment    string
	Port           string
	SectionAPIURL  string
	RequestTimeout time.Duration
	JWTSecret      string
	AllowedOrigins []string
	Calendar       CalendarConfig
}

// CalendarConfig is the visible window of the weekly grid. ClipToWindow narrows events
// to the window server-side and is off by default.
type CalendarConfig struct {
	DayStart      domain.TimeOfDay
	DayEnd        domain.TimeOfDay
	PixelsPerHour float64
	ClipToWindow  bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the environment is the only source; elsewhere a missing .env is fine.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:    env,
		Port:           getEnv("PORT", "8080"),
		SectionAPIURL:  getEnv("SECTION_API_URL", "http://localhost:8081/api"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	timeout, err := time.ParseDuration(getEnv("SECTION_API_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid SECTION_API_TIMEOUT: %q", os.Getenv("SECTION_API_TIMEOUT"))
	}
	cfg.RequestTimeout = timeout

	if cfg.Calendar.DayStart, err = domain.ParseTimeOfDay(getEnv("CALENDAR_DAY_START", "07:00")); err != nil {
		return nil, fmt.Errorf("invalid CALENDAR_DAY_START: %w", err)
	}
	if cfg.Calendar.DayEnd, err = domain.ParseTimeOfDay(getEnv("CALENDAR_DAY_END", "22:00")); err != nil {
		return nil, fmt.Errorf("invalid CALENDAR_DAY_END: %w", err)
	}
	if cfg.Calendar.DayStart >= cfg.Calendar.DayEnd {
		return nil, fmt.Errorf("CALENDAR_DAY_START must be before CALENDAR_DAY_END")
	}
	pph, err := strconv.ParseFloat(getEnv("CALENDAR_PIXELS_PER_HOUR", "60"), 64)
	if err != nil || pph <= 0 {
		return nil, fmt.Errorf("invalid CALENDAR_PIXELS_PER_HOUR: %q", os.Getenv("CALENDAR_PIXELS_PER_HOUR"))
	}
	cfg.Calendar.PixelsPerHour = pph
	if cfg.Calendar.ClipToWindow, err = strconv.ParseBool(getEnv("CALENDAR_CLIP_TO_WINDOW", "false")); err != nil {
		return nil, fmt.Errorf("invalid CALENDAR_CLIP_TO_WINDOW: %w", err)
	}

	if cfg.JWTSecret == "" && env == "production" {
		return nil, fmt.Errorf("JWT_SECRET is required in production")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
