package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr() != "0.0.0.0:7777" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), "0.0.0.0:7777")
	}
	if len(cfg.DefaultLanguages) != 0 {
		t.Errorf("expected no default languages, got %v", cfg.DefaultLanguages)
	}
	if cfg.LogFile != "" {
		t.Errorf("expected stdout logging by default, got %q", cfg.LogFile)
	}
	if cfg.EditorRatePerMinute != 120 || cfg.EditorBurst != 20 {
		t.Errorf("unexpected editor limits %d/%d", cfg.EditorRatePerMinute, cfg.EditorBurst)
	}
	if cfg.TrustProxyHeaders {
		t.Error("proxy headers should not be trusted by default")
	}
	if cfg.EditorIdleTimeout != 30*time.Minute {
		t.Errorf("EditorIdleTimeout = %v, want 30m", cfg.EditorIdleTimeout)
	}
}

func TestLoad_DefaultLanguages(t *testing.T) {
	t.Setenv("STREAMPREFS_DEFAULT_LANGUAGES", " English, ja ,,Latino,elvish")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := []string{"english", "japanese", "latino", "elvish"}
	if len(cfg.DefaultLanguages) != len(want) {
		t.Fatalf("DefaultLanguages = %v, want %v", cfg.DefaultLanguages, want)
	}
	for i := range want {
		if cfg.DefaultLanguages[i] != want[i] {
			t.Errorf("DefaultLanguages[%d] = %q, want %q", i, cfg.DefaultLanguages[i], want[i])
		}
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("STREAMPREFS_PORT", "70000")

	_, err := Load()
	if !errors.Is(err, ErrInvalidPort) {
		t.Fatalf("expected ErrInvalidPort, got %v", err)
	}
}

func TestLoad_UnparseablePort(t *testing.T) {
	t.Setenv("STREAMPREFS_PORT", "abc")

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_AllowedOriginsAndBurst(t *testing.T) {
	t.Setenv("STREAMPREFS_ALLOWED_ORIGINS", "https://ui.example.com, ")
	t.Setenv("STREAMPREFS_EDITOR_BURST", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://ui.example.com" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.EditorBurst != 1 {
		t.Errorf("EditorBurst = %d, want 1", cfg.EditorBurst)
	}
}

func TestLoad_ProxyAndEditorTimeout(t *testing.T) {
	t.Setenv("STREAMPREFS_TRUST_PROXY_HEADERS", "true")
	t.Setenv("STREAMPREFS_EDITOR_IDLE_TIMEOUT", "5m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.TrustProxyHeaders {
		t.Error("expected proxy headers to be trusted")
	}
	if cfg.EditorIdleTimeout != 5*time.Minute {
		t.Errorf("EditorIdleTimeout = %v, want 5m", cfg.EditorIdleTimeout)
	}
}
