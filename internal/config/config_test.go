package config

import (
	"testing"
	"time"
)

func TestConfig_Normalized_FillsDefaults(t *testing.T) {
	cfg := (&Config{}).Normalized()

	if cfg.Catalog.BaseURL != DefaultCatalogURL {
		t.Errorf("Expected base URL %q, got %q", DefaultCatalogURL, cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.DefaultImage != DefaultImage {
		t.Errorf("Expected default image %q, got %q", DefaultImage, cfg.Catalog.DefaultImage)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("Expected user agent %q, got %q", DefaultUserAgent, cfg.UserAgent)
	}
}

func TestConfig_Normalized_AddsTrailingSlash(t *testing.T) {
	in := &Config{}
	in.Catalog.BaseURL = "http://127.0.0.1:9999/api"

	cfg := in.Normalized()
	if cfg.Catalog.BaseURL != "http://127.0.0.1:9999/api/" {
		t.Errorf("Expected trailing slash, got %q", cfg.Catalog.BaseURL)
	}
	if in.Catalog.BaseURL != "http://127.0.0.1:9999/api" {
		t.Errorf("Normalized must not modify the receiver, got %q", in.Catalog.BaseURL)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback time.Duration
		want     time.Duration
	}{
		{name: "empty uses fallback", value: "", fallback: time.Second, want: time.Second},
		{name: "valid", value: "250ms", fallback: time.Second, want: 250 * time.Millisecond},
		{name: "invalid uses fallback", value: "soon", fallback: 3 * time.Second, want: 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDuration("test", tt.value, tt.fallback); got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestLoadConfig_EnvironmentOverride(t *testing.T) {
	t.Setenv("APP_CATALOG_BASE_URL", "http://catalog.test")
	t.Setenv("APP_SERVER_PORT", "8181")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Catalog.BaseURL != "http://catalog.test/" {
		t.Errorf("Expected env base URL with trailing slash, got %q", cfg.Catalog.BaseURL)
	}
	if cfg.Server.Port != 8181 {
		t.Errorf("Expected port 8181, got %d", cfg.Server.Port)
	}
	if cfg.Cache.Provider != "memory" {
		t.Errorf("Expected default cache provider 'memory', got %q", cfg.Cache.Provider)
	}
}

