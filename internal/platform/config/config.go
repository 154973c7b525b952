package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"animals-registry/internal/platform/validation"

	"github.com/joho/godotenv"
)

const (
	DefaultPort            = 8080
	DefaultAppName         = "animals-registry"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultSourceTimeout   = 5 * time.Second
)

// Config de la app; todo sale de env (opcionalmente vía .env).
type Config struct {
	Port      int    `validate:"min=1,max=65535"`
	AppName   string `validate:"notblank"`
	LogLevel  string `validate:"omitempty,oneof=debug info warn warning error"`
	LogFormat string `validate:"omitempty,oneof=text json"`

	// DBDSN vacío => storage in-memory.
	DBDSN string

	// SourceURL: si viene, el set de mamíferos lee el catálogo de otra instancia.
	SourceURL     string `validate:"omitempty,url"`
	SourceTimeout time.Duration

	SeedFile string

	// APIKey vacío => modo dev (X-Debug-User-ID).
	APIKey string

	RefreshOnStart  bool
	ShutdownTimeout time.Duration `validate:"min=0"`
}

// Load lee .env si existe (no falla si no está) y luego el entorno.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	cfg := &Config{
		AppName:   getEnv("APP_NAME", DefaultAppName),
		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		DBDSN:     getEnv("DB_DSN", ""),
		SourceURL: getEnv("SOURCE_URL", ""),
		SeedFile:  getEnv("SEED_FILE", ""),
		APIKey:    getEnv("API_KEY", ""),
	}

	var errs []error

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		errs = append(errs, fmt.Errorf("invalid PORT: %w", err))
	}
	cfg.Port = port

	cfg.RefreshOnStart, err = strconv.ParseBool(getEnv("REFRESH_ON_START", "true"))
	if err != nil {
		errs = append(errs, fmt.Errorf("invalid REFRESH_ON_START: %w", err))
	}

	cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout.String()))
	if err != nil {
		errs = append(errs, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err))
	}

	cfg.SourceTimeout, err = time.ParseDuration(getEnv("SOURCE_TIMEOUT", DefaultSourceTimeout.String()))
	if err != nil {
		errs = append(errs, fmt.Errorf("invalid SOURCE_TIMEOUT: %w", err))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validation.Default().Struct(c); err != nil {
		fields := validation.Fields(err)
		parts := make([]string, 0, len(fields))
		for k, v := range fields {
			parts = append(parts, k+" "+v)
		}
		sort.Strings(parts)
		return fmt.Errorf("invalid config: %s", strings.Join(parts, "; "))
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// getEnv devuelve la variable (trim) o el default si no está o está vacía.
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}
