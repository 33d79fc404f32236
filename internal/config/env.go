// Package config reads the CLI and server settings from the environment and
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Engine names.
const (
	EngineNative = "native"
	EngineOCR    = "ocr"
)

type Config struct {
	LibraryPath string
	Engine      string
	OCRLang     string
	OCRPSM      int
	Addr        string
	CORSOrigins []string
	MaxUpload   int64
	Workers     int
	LogLevel    slog.Level
}

// Load reads files (default ".env") into the environment without overriding
// variables that are already set, then builds the configuration. Missing
// files are not an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{
		LibraryPath: getEnv("PDFSTRINGS_LIB", ""),
		Engine:      strings.ToLower(getEnv("PDFSTRINGS_ENGINE", EngineNative)),
		OCRLang:     getEnv("PDFSTRINGS_OCR_LANG", "eng"),
		OCRPSM:      getEnvInt("PDFSTRINGS_OCR_PSM", 3),
		Addr:        getEnv("PDFSTRINGS_ADDR", ":8080"),
		CORSOrigins: getEnvList("PDFSTRINGS_CORS_ORIGINS"),
		MaxUpload:   int64(getEnvInt("PDFSTRINGS_MAX_UPLOAD", 32<<20)),
		Workers:     getEnvInt("PDFSTRINGS_WORKERS", runtime.GOMAXPROCS(0)),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("PDFSTRINGS_LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("PDFSTRINGS_LOG_LEVEL: %w", err)
	}

	switch cfg.Engine {
	case EngineNative, EngineOCR:
	default:
		return nil, fmt.Errorf("PDFSTRINGS_ENGINE: unknown engine %q", cfg.Engine)
	}
	// Tesseract page segmentation modes run from 0 to 13.
	if cfg.OCRPSM < 0 || cfg.OCRPSM > 13 {
		return nil, fmt.Errorf("PDFSTRINGS_OCR_PSM out of range: %d", cfg.OCRPSM)
	}
	if cfg.MaxUpload <= 0 {
		return nil, fmt.Errorf("PDFSTRINGS_MAX_UPLOAD must be positive, got %d", cfg.MaxUpload)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("not an int, using default", slog.String("key", key), slog.String("value", v), slog.Int("default", def))
		return def
	}
	return n
}

// getEnvList splits a comma-separated variable, dropping empty items.
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(key, ""), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
