package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"streamprefs/utils/language"
)

var ErrInvalidPort = errors.New("port must be between 1 and 65535")

// Config holds server settings loaded from environment variables.
type Config struct {
	Host           string   `env:"STREAMPREFS_HOST" envDefault:"0.0.0.0"`
	Port           int      `env:"STREAMPREFS_PORT" envDefault:"7777"`
	AllowedOrigins []string `env:"STREAMPREFS_ALLOWED_ORIGINS" envSeparator:","` // Extra public origins trusted for CORS

	// Flat list applied to users without their own preferences, e.g. "english,japanese"
	DefaultLanguages []string `env:"STREAMPREFS_DEFAULT_LANGUAGES" envSeparator:","`

	// Logging
	LogFile       string `env:"STREAMPREFS_LOG_FILE"` // Empty logs to stdout only
	LogMaxSizeMB  int    `env:"STREAMPREFS_LOG_MAX_SIZE_MB" envDefault:"10"`
	LogMaxBackups int    `env:"STREAMPREFS_LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAgeDays int    `env:"STREAMPREFS_LOG_MAX_AGE_DAYS" envDefault:"28"`

	// Editor mutations per client
	EditorRatePerMinute int `env:"STREAMPREFS_EDITOR_RATE_PER_MINUTE" envDefault:"120"`
	EditorBurst         int `env:"STREAMPREFS_EDITOR_BURST" envDefault:"20"`
	// Key rate limits on X-Forwarded-For / X-Real-IP. Only enable behind a proxy that sets them.
	TrustProxyHeaders bool `env:"STREAMPREFS_TRUST_PROXY_HEADERS" envDefault:"false"`

	// Editor sessions untouched for this long are dropped
	EditorIdleTimeout time.Duration `env:"STREAMPREFS_EDITOR_IDLE_TIMEOUT" envDefault:"30m"`
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load parses environment variables and returns a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("STREAMPREFS_PORT=%d: %w", cfg.Port, ErrInvalidPort)
	}

	cfg.DefaultLanguages = cleanLanguages(cfg.DefaultLanguages)
	cfg.AllowedOrigins = cleanList(cfg.AllowedOrigins)

	if cfg.EditorRatePerMinute < 0 {
		cfg.EditorRatePerMinute = 0
	}
	if cfg.EditorBurst < 1 {
		cfg.EditorBurst = 1
	}
	if cfg.EditorIdleTimeout <= 0 {
		cfg.EditorIdleTimeout = 30 * time.Minute
	}

	return cfg, nil
}

// cleanLanguages trims entries, drops blanks and maps catalog languages onto
// their canonical key. Unknown names are kept verbatim.
func cleanLanguages(langs []string) []string {
	out := make([]string, 0, len(langs))
	for _, lang := range cleanList(langs) {
		if name, ok := language.CanonicalName(lang); ok {
			out = append(out, name)
			continue
		}
		if name, ok := language.CodeToName(strings.ToUpper(lang)); ok {
			out = append(out, name)
			continue
		}
		log.Printf("[config] default language %q is not in the catalog, keeping as-is", lang)
		out = append(out, lang)
	}
	return out
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
