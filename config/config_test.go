package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sectionschedule/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	for _, key := range []string{"PORT", "SECTION_API_URL", "SECTION_API_TIMEOUT", "JWT_SECRET", "CORS_ALLOWED_ORIGINS",
		"CALENDAR_DAY_START", "CALENDAR_DAY_END", "CALENDAR_PIXELS_PER_HOUR", "CALENDAR_CLIP_TO_WINDOW"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, domain.MustTimeOfDay(7, 0), cfg.Calendar.DayStart)
	assert.Equal(t, domain.MustTimeOfDay(22, 0), cfg.Calendar.DayEnd)
	assert.Equal(t, 60.0, cfg.Calendar.PixelsPerHour)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.False(t, cfg.Calendar.ClipToWindow)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("PORT", "9090")
	t.Setenv("SECTION_API_URL", "https://api.example.edu")
	t.Setenv("SECTION_API_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.edu, https://b.example.edu ,")
	t.Setenv("CALENDAR_DAY_START", "08:00")
	t.Setenv("CALENDAR_DAY_END", "20:30:00")
	t.Setenv("CALENDAR_PIXELS_PER_HOUR", "48")
	t.Setenv("CALENDAR_CLIP_TO_WINDOW", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://api.example.edu", cfg.SectionAPIURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"https://a.example.edu", "https://b.example.edu"}, cfg.AllowedOrigins)
	assert.Equal(t, domain.MustTimeOfDay(8, 0), cfg.Calendar.DayStart)
	assert.Equal(t, domain.MustTimeOfDay(20, 30), cfg.Calendar.DayEnd)
	assert.Equal(t, 48.0, cfg.Calendar.PixelsPerHour)
	assert.True(t, cfg.Calendar.ClipToWindow)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad timeout", map[string]string{"SECTION_API_TIMEOUT": "soon"}},
		{"bad day start", map[string]string{"CALENDAR_DAY_START": "7am"}},
		{"inverted window", map[string]string{"CALENDAR_DAY_START": "22:00", "CALENDAR_DAY_END": "07:00"}},
		{"zero scale", map[string]string{"CALENDAR_PIXELS_PER_HOUR": "0"}},
		{"bad clip flag", map[string]string{"CALENDAR_CLIP_TO_WINDOW": "sometimes"}},
		{"production without secret", map[string]string{"GO_ENV": "production", "JWT_SECRET": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GO_ENV", "test")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}
}
