package config

import (
	"os"
	"testing"
)

func TestLoadConfig_Valid(t *testing.T) {
	ResetConfigForTest()
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("WEATHER_API_KEY", "owm_test")
	tmp := "test_config.json"
	raw := []byte(`{
		"server": {
			"host": "localhost",
			"port": 9090,
			"subpath": "/trip"
		},
		"groq": {
			"model": "llama-3.1-8b-instant"
		},
		"default_lang": "fr"
	}`)
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		t.Fatalf("write tmp config: %v", err)
	}
	defer os.Remove(tmp)

	cfg, err := LoadConfig(tmp)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Server.Host != "localhost" || cfg.Server.Port != 9090 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Groq.APIKey != "gsk_test" {
		t.Errorf("groq api key not taken from environment")
	}
	if cfg.Weather.APIKey != "owm_test" {
		t.Errorf("weather api key not taken from environment")
	}
	if cfg.DefaultLang != "fr" {
		t.Errorf("default lang not loaded: %q", cfg.DefaultLang)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfigForTest()
	t.Setenv("GROQ_API_KEY", "gsk_test")
	tmp := "test_defaults_config.json"
	if err := os.WriteFile(tmp, []byte(`{}`), 0644); err != nil {
		t.Fatalf("write tmp config: %v", err)
	}
	defer os.Remove(tmp)

	cfg, err := LoadConfig(tmp)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
	if cfg.Groq.BaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("expected default groq base url, got %q", cfg.Groq.BaseURL)
	}
	if cfg.Groq.Model == "" {
		t.Errorf("expected a default model")
	}
	if cfg.Wiki.BaseURLTemplate != "https://%s.wikipedia.org" {
		t.Errorf("expected default wiki template, got %q", cfg.Wiki.BaseURLTemplate)
	}
}

func TestLoadConfig_MissingGroqKey(t *testing.T) {
	ResetConfigForTest()
	t.Setenv("GROQ_API_KEY", "")
	tmp := "test_nokey_config.json"
	if err := os.WriteFile(tmp, []byte(`{}`), 0644); err != nil {
		t.Fatalf("write tmp config: %v", err)
	}
	defer os.Remove(tmp)

	if _, err := LoadConfig(tmp); err == nil {
		t.Errorf("expected error when GROQ_API_KEY is unset")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	ResetConfigForTest()
	_, err := LoadConfig("no_such_config.json")
	if err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	ResetConfigForTest()
	tmp := "test_invalid_config.json"
	raw := []byte(`{this is not json}`)
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		t.Fatalf("write tmp config: %v", err)
	}
	defer os.Remove(tmp)

	_, err := LoadConfig(tmp)
	if err == nil {
		t.Errorf("expected error for malformed JSON")
	}
}
