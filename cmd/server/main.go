package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"tripwhisperer/internal/api"
	"tripwhisperer/internal/config"
	"tripwhisperer/internal/llm"
	"tripwhisperer/internal/weather"
	"tripwhisperer/internal/wiki"
)

func main() {
	// API keys live in .env during development; a missing file just means
	// they come from the real environment.
	if err := godotenv.Load(); err == nil {
		log.Printf("[Main] Loaded .env")
	}

	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Weather.APIKey == "" {
		log.Printf("[Main] WARNING: WEATHER_API_KEY not set, weather card will be disabled")
	}

	deps := api.Deps{
		LLM:     llm.NewClient(cfg.Groq.APIKey, cfg.Groq.BaseURL, cfg.Groq.Model),
		Weather: weather.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, 10*time.Second),
		Wiki:    wiki.NewClient(cfg.Wiki.BaseURLTemplate, 10*time.Second),
	}

	r := api.SetupRouter(cfg, deps)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("Starting server on %s%s\n", addr, cfg.Server.Subpath)
	if err := r.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
