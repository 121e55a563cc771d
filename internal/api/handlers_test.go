package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"tripwhisperer/internal/config"
)

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}

func TestHealthHandler_ReturnsOk(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", healthHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	if !contains(w.Body.String(), "ok") {
		t.Errorf("expected response to contain 'ok', got: %s", w.Body.String())
	}
}

func TestConfigHandler_ReturnsNonSensitiveConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Host = "localhost"
	cfg.Server.Port = 8080
	cfg.Groq.Model = "llama-3.1-8b-instant"
	cfg.Groq.APIKey = "gsk_secret_value"
	cfg.DefaultLang = "en"

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/config", configHandler(cfg))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/config", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	if !contains(w.Body.String(), "llama-3.1-8b-instant") {
		t.Errorf("expected model name in config, got: %s", w.Body.String())
	}
	if !contains(w.Body.String(), "Español") {
		t.Errorf("expected language list in config, got: %s", w.Body.String())
	}
	if contains(w.Body.String(), "gsk_secret_value") {
		t.Errorf("api key leaked into /config response")
	}
}
