package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string

	// CORS
	CORSOrigins string

	// Upload limits
	MaxUploadBytes    int64
	AllowedExtensions string // comma-separated, without dots

	// LLM analysis
	ChunkThreshold int
	LLMTimeout     time.Duration
	StatsWindow    time.Duration

	// PDF rasterization
	RasterConcurrency int
	RasterTimeout     time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8000"),

		CORSOrigins: envOr("CORS_ORIGINS", "*"),

		MaxUploadBytes:    envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB
		AllowedExtensions: envOr("ALLOWED_EXTENSIONS", "pdf,docx"),

		ChunkThreshold: envInt("CHUNKING_THRESHOLD", 6000),
		LLMTimeout:     envDuration("LLM_TIMEOUT", 120*time.Second),
		StatsWindow:    envDuration("STATS_WINDOW", time.Hour),

		RasterConcurrency: envInt("RASTER_CONCURRENCY", 2),
		RasterTimeout:     envDuration("RASTER_TIMEOUT", 60*time.Second),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.ChunkThreshold <= 0 {
		cfg.ChunkThreshold = 6000
	}
	if cfg.LLMTimeout <= 0 {
		cfg.LLMTimeout = 120 * time.Second
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = time.Hour
	}
	if cfg.RasterConcurrency <= 0 {
		cfg.RasterConcurrency = 2
	}
	if cfg.RasterTimeout <= 0 {
		cfg.RasterTimeout = 60 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.AllowedExtensions) == "" {
		return fmt.Errorf("ALLOWED_EXTENSIONS must not be empty")
	}
	return nil
}

// AllowedExtensionList returns the normalized extension allow-list.
func (c Config) AllowedExtensionList() []string {
	var out []string
	for _, ext := range strings.Split(c.AllowedExtensions, ",") {
		ext = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(ext, ".")))
		if ext != "" {
			out = append(out, ext)
		}
	}
	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
