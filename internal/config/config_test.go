package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("INHOME_API_BASE_URL", "https://api.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q; want :8080", cfg.Addr)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("RequestTimeout = %v; want 15s", cfg.RequestTimeout)
	}
	if !cfg.IsDevelopment() {
		t.Error("expected development mode by default")
	}
}

func TestLoad_MissingBaseURL(t *testing.T) {
	t.Setenv("INHOME_API_BASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when base URL is missing")
	}
}

func TestLoad_RejectsNonHTTPBaseURL(t *testing.T) {
	t.Setenv("INHOME_API_BASE_URL", "ftp://api.example.com")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-http base URL")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("INHOME_API_BASE_URL", "http://localhost:9000")
	t.Setenv("INHOME_ADDR", ":9090")
	t.Setenv("INHOME_API_TIMEOUT", "3s")
	t.Setenv("INHOME_ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q; want :9090", cfg.Addr)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Errorf("RequestTimeout = %v; want 3s", cfg.RequestTimeout)
	}
	if cfg.IsDevelopment() {
		t.Error("expected production mode")
	}
}
