package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

type Config struct {
	Server struct {
		Host    string `json:"host"`
		Port    int    `json:"port"`
		Subpath string `json:"subpath"`
	} `json:"server"`
	Groq struct {
		Model   string `json:"model"`
		BaseURL string `json:"base_url"`
		APIKey  string `json:"-"` // from GROQ_API_KEY, never serialized
	} `json:"groq"`
	Weather struct {
		BaseURL string `json:"base_url"`
		APIKey  string `json:"-"` // from WEATHER_API_KEY
	} `json:"weather"`
	Wiki struct {
		// BaseURLTemplate contains a %s slot for the language code, e.g.
		// "https://%s.wikipedia.org".
		BaseURLTemplate string `json:"base_url_template"`
	} `json:"wiki"`
	DefaultLang string `json:"default_lang"`
}

var (
	once   sync.Once
	cfg    *Config
	cfgErr error
)

// LoadConfig reads config.json from disk (singleton). API keys are taken from
// the environment, not the file.
func LoadConfig(path string) (*Config, error) {
	once.Do(func() {
		raw, err := os.ReadFile(path)
		if err != nil {
			cfgErr = fmt.Errorf("failed to read config file: %w", err)
			return
		}
		var c Config
		if err := json.Unmarshal(raw, &c); err != nil {
			cfgErr = fmt.Errorf("invalid config format: %w", err)
			return
		}
		applyDefaults(&c)
		c.Groq.APIKey = os.Getenv("GROQ_API_KEY")
		c.Weather.APIKey = os.Getenv("WEATHER_API_KEY")
		// The guide generator is the whole point of the app; refuse to start
		// without its key. A missing weather key only degrades that card.
		if c.Groq.APIKey == "" {
			cfgErr = errors.New("GROQ_API_KEY must be set in the environment")
			return
		}
		cfg = &c
	})
	return cfg, cfgErr
}

func applyDefaults(c *Config) {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Groq.Model == "" {
		c.Groq.Model = "llama-3.1-8b-instant"
	}
	if c.Groq.BaseURL == "" {
		c.Groq.BaseURL = "https://api.groq.com/openai/v1"
	}
	if c.Weather.BaseURL == "" {
		c.Weather.BaseURL = "https://api.openweathermap.org/data/2.5/weather"
	}
	if c.Wiki.BaseURLTemplate == "" {
		c.Wiki.BaseURLTemplate = "https://%s.wikipedia.org"
	}
	if c.DefaultLang == "" {
		c.DefaultLang = "en"
	}
}

// GetConfig returns the loaded config (must call LoadConfig first)
func GetConfig() *Config {
	return cfg
}

// ResetConfigForTest resets the singleton state (for testing only)
func ResetConfigForTest() {
	once = sync.Once{}
	cfg = nil
	cfgErr = nil
}
