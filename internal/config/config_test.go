package config

import (
	"strings"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("KOPIS_API_KEY", "abcdef123456")
	t.Setenv("KOPIS_BASE_URL", "http://www.kopis.or.kr/openApi/restful")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_VERSION", "2.0.0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Kopis.APIKey != "abcdef123456" {
		t.Errorf("api key = %q", cfg.Kopis.APIKey)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
	if cfg.Version != "2.0.0" {
		t.Errorf("version = %q", cfg.Version)
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q", cfg.Logging.Level)
	}
	if cfg.Logging.MaxSizeMB != 100 {
		t.Errorf("default log max size = %d", cfg.Logging.MaxSizeMB)
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("KOPIS_API_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "KOPIS_API_KEY") {
		t.Errorf("error must name the missing key: %v", err)
	}
}

func TestLoadTrimsWhitespace(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("KOPIS_API_KEY", "  abcdef123456  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Kopis.APIKey != "abcdef123456" {
		t.Errorf("api key not trimmed: %q", cfg.Kopis.APIKey)
	}
}

func TestMaskedAPIKey(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		key      string
		expected string
	}{
		"일반 키":   {key: "abcdef123456", expected: "abcd****"},
		"짧은 키":   {key: "abc", expected: "****"},
		"4자리 키":  {key: "abcd", expected: "****"},
		"빈 키":    {key: "", expected: ""},
		"공백만":    {key: "   ", expected: ""},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := KopisConfig{APIKey: tc.key}
			if got := cfg.MaskedAPIKey(); got != tc.expected {
				t.Errorf("MaskedAPIKey() = %q, expected %q", got, tc.expected)
			}
		})
	}
}
