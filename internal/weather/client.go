// Package weather fetches current conditions from the OpenWeatherMap API.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNoAPIKey is returned when the client was constructed without a key.
var ErrNoAPIKey = errors.New("weather API key not configured")

// ErrCityNotFound is returned when the provider does not know the place name.
var ErrCityNotFound = errors.New("city not found")

// Conditions is the subset of the provider response the app renders.
type Conditions struct {
	Description string  `json:"description"`
	Temp        float64 `json:"temp"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
}

// Summary renders the one-line weather text shown in the weather card.
func (c *Conditions) Summary() string {
	return fmt.Sprintf("Weather: %s | Temp: %.1f°C | Feels Like: %.1f°C | Humidity: %d%%",
		c.Description, c.Temp, c.FeelsLike, c.Humidity)
}

// Client handles communication with the weather provider.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a weather client. An empty key is allowed; calls will
// return ErrNoAPIKey so the handler can show the "not configured" text.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Current fetches current conditions for a city in metric units.
func (c *Client) Current(ctx context.Context, city string) (*Conditions, error) {
	if c.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("q", city)
	q.Set("appid", c.APIKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrCityNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("weather provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var owm struct {
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&owm); err != nil {
		return nil, fmt.Errorf("failed to parse weather response: %w", err)
	}

	cond := &Conditions{
		Temp:      owm.Main.Temp,
		FeelsLike: owm.Main.FeelsLike,
		Humidity:  owm.Main.Humidity,
	}
	if len(owm.Weather) > 0 {
		cond.Description = titleCase(owm.Weather[0].Description)
	}
	return cond, nil
}

// titleCase uppercases the first letter of each space-separated word, the way
// the provider's lowercase descriptions ("scattered clouds") are displayed.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
