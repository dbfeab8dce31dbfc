package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all application configuration. Values come from environment
// variables, then from the optional TOML file named by CONFIG_FILE, then from
// the defaults below.
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	// PublicOrigin is passed to YouTube embeds as the hosting page origin.
	PublicOrigin   string
	AllowedOrigins []string

	StorageBackend     string
	UploadDir          string
	BaseURL            string
	SupabaseURL        string
	SupabaseServiceKey string
	DefaultBucket      string
	MaxUploadBytes     int64

	UploadRatePerSec float64
	UploadBurst      int

	// ImportWorkers bounds concurrent entry creation during bulk imports.
	ImportWorkers int

	DBDriver    string
	DatabaseURL string
}

// Load reads configuration from .env file (if present), the optional config
// file and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config without touching .env files.
func FromEnv() *Config {
	src := source{file: map[string]any{}}
	if path, ok := os.LookupEnv("CONFIG_FILE"); ok && path != "" {
		if _, err := toml.DecodeFile(path, &src.file); err != nil {
			slog.Warn("failed to read config file, ignoring it", "path", path, "error", err)
			src.file = map[string]any{}
		}
	}

	maxUploadMB := src.getInt("MAX_UPLOAD_MB", 50)

	return &Config{
		Port:      src.get("PORT", "8080"),
		LogLevel:  src.get("LOG_LEVEL", "info"),
		LogFormat: src.get("LOG_FORMAT", "text"),

		PublicOrigin:   src.get("PUBLIC_ORIGIN", ""),
		AllowedOrigins: splitList(src.get("ALLOWED_ORIGINS", "http://localhost:5173")),

		StorageBackend:     src.get("STORAGE_BACKEND", "local"),
		UploadDir:          src.get("UPLOAD_DIR", "./uploads"),
		BaseURL:            src.get("BASE_URL", "http://localhost:8080"),
		SupabaseURL:        src.get("SUPABASE_URL", ""),
		SupabaseServiceKey: src.get("SUPABASE_SERVICE_KEY", ""),
		DefaultBucket:      src.get("DEFAULT_BUCKET", "uploads"),
		MaxUploadBytes:     int64(maxUploadMB) << 20,

		UploadRatePerSec: src.getFloat("UPLOAD_RATE_PER_SEC", 5),
		UploadBurst:      src.getInt("UPLOAD_BURST", 10),

		ImportWorkers: src.getInt("IMPORT_WORKERS", 4),

		DBDriver:    src.get("DB_DRIVER", "sqlite"),
		DatabaseURL: src.get("DATABASE_URL", "./data/media.db"),
	}
}

// source resolves a key from the environment first and the config file
// second. File keys are the lower-cased variable names (e.g. public_origin).
type source struct {
	file map[string]any
}

func (s source) lookup(key string) (string, bool) {
	if value, ok := os.LookupEnv(key); ok {
		return value, true
	}
	if value, ok := s.file[strings.ToLower(key)]; ok {
		if list, isList := value.([]any); isList {
			parts := make([]string, 0, len(list))
			for _, v := range list {
				parts = append(parts, fmt.Sprint(v))
			}
			return strings.Join(parts, ","), true
		}
		return fmt.Sprint(value), true
	}
	return "", false
}

func (s source) get(key, fallback string) string {
	if value, ok := s.lookup(key); ok {
		return value
	}
	return fallback
}

func (s source) getInt(key string, fallback int) int {
	value, ok := s.lookup(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func (s source) getFloat(key string, fallback float64) float64 {
	value, ok := s.lookup(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
