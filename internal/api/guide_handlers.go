package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tripwhisperer/internal/config"
	"tripwhisperer/internal/guide"
	"tripwhisperer/internal/i18n"
	"tripwhisperer/internal/links"
	"tripwhisperer/internal/llm"
	"tripwhisperer/internal/weather"
	"tripwhisperer/internal/wiki"
)

// WeatherProvider is what the guide flow needs from the weather client.
type WeatherProvider interface {
	Current(ctx context.Context, city string) (*weather.Conditions, error)
}

// SummaryProvider is what the guide flow needs from the wiki client.
type SummaryProvider interface {
	Summary(ctx context.Context, title, lang string) (*wiki.Summary, error)
}

// Deps bundles the external providers, constructed once in main and passed
// down explicitly.
type Deps struct {
	LLM     llm.Completer
	Weather WeatherProvider
	Wiki    SummaryProvider
}

// ItemView is one rendered guide item. Description keeps the parser's
// placeholder sentinel; HasDescription tells renderers whether to show it.
type ItemView struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	HasDescription bool   `json:"has_description"`
	MapLink        string `json:"map_link"`
}

type SectionView struct {
	Title string     `json:"title"`
	Items []ItemView `json:"items"`
}

// GuideView is everything one submission produces, shared by the HTML, JSON
// and websocket handlers. Exactly one of Sections / GuideError / FormatError
// is meaningful for the guide card.
type GuideView struct {
	ID            string        `json:"id"`
	City          string        `json:"city"`
	DisplayCity   string        `json:"display_city"`
	Lang          string        `json:"lang"`
	WeatherText   string        `json:"weather"`
	SummaryText   string        `json:"summary"`
	ImageURL      string        `json:"image_url,omitempty"`
	FlightLink    string        `json:"flight_link"`
	Sections      []SectionView `json:"sections,omitempty"`
	RawGuide      string        `json:"-"`
	GuideError    string        `json:"guide_error,omitempty"`
	FormatError   string        `json:"format_error,omitempty"`
	Texts         i18n.Texts    `json:"-"`
}

// Progress stages reported over the websocket, in order.
const (
	StageWeather = "weather"
	StageSummary = "summary"
	StageGuide   = "guide"
	StageDone    = "done"
)

// buildGuide runs the whole submission flow: weather, summary, guide
// generation, parsing. Calls are strictly sequential; provider failures
// become inline text, never errors, so every card renders something.
// progress may be nil.
func buildGuide(ctx context.Context, deps Deps, city, lang string, progress func(stage string)) *GuideView {
	texts := i18n.Get(lang)
	view := &GuideView{
		ID:          uuid.NewString()[:8],
		City:        city,
		DisplayCity: displayCity(city),
		Lang:        lang,
		Texts:       texts,
		FlightLink:  links.FlightSearch(city),
	}

	if progress != nil {
		progress(StageWeather)
	}
	cond, err := deps.Weather.Current(ctx, city)
	switch {
	case err == nil:
		view.WeatherText = cond.Summary()
	case errors.Is(err, weather.ErrNoAPIKey):
		view.WeatherText = "Weather API key not configured."
	case errors.Is(err, weather.ErrCityNotFound):
		view.WeatherText = fmt.Sprintf("Could not find weather for '%s'. Please check the city name.", city)
	default:
		log.Printf("[Guide] %s weather fetch failed: %v", view.ID, err)
		view.WeatherText = fmt.Sprintf("Could not retrieve weather data. Error: %v", err)
	}

	if progress != nil {
		progress(StageSummary)
	}
	sum, err := deps.Wiki.Summary(ctx, city, lang)
	if err != nil {
		if !errors.Is(err, wiki.ErrNotFound) {
			log.Printf("[Guide] %s summary fetch failed: %v", view.ID, err)
		}
		view.SummaryText = fmt.Sprintf(texts.SummaryError, city, lang)
	} else {
		view.SummaryText = sum.Extract
		view.ImageURL = sum.ImageURL
	}

	if progress != nil {
		progress(StageGuide)
	}
	prompt := guide.BuildPrompt(city, lang, i18n.LangName(lang))
	raw, err := deps.LLM.Complete(ctx, prompt)
	if err != nil {
		log.Printf("[Guide] %s guide generation failed: %v", view.ID, err)
		view.GuideError = fmt.Sprintf(texts.GuideError, err)
		return view
	}
	view.RawGuide = raw

	doc := guide.Parse(raw)
	if doc.Empty() {
		// Transport worked but the model ignored the layout; a distinct
		// message from GuideError so the user knows a retry may help.
		log.Printf("[Guide] %s model response had no parseable sections (%d bytes)", view.ID, len(raw))
		view.FormatError = texts.FormatError
		return view
	}

	for _, sec := range doc.Sections() {
		sv := SectionView{Title: sec.Title}
		for _, it := range sec.Items {
			sv.Items = append(sv.Items, ItemView{
				Name:           it.Name,
				Description:    it.Description,
				HasDescription: it.HasDescription(),
				MapLink:        links.MapsSearch(it.Name, city),
			})
		}
		view.Sections = append(view.Sections, sv)
	}
	return view
}

// resolveLang falls back to the configured default for unsupported codes.
func resolveLang(cfg *config.Config, lang string) string {
	if i18n.Supported(lang) {
		return lang
	}
	return cfg.DefaultLang
}

func displayCity(city string) string {
	words := strings.Fields(city)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// GET / — the input form.
func IndexHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := resolveLang(cfg, c.Query("lang"))
		c.HTML(http.StatusOK, "index.html", gin.H{
			"subpath":   cfg.Server.Subpath,
			"lang":      lang,
			"texts":     i18n.Get(lang),
			"languages": i18n.Languages(),
		})
	}
}

// POST /guide — form submission, renders the result page.
func GuidePageHandler(cfg *config.Config, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := resolveLang(cfg, c.PostForm("lang"))
		city := guide.NormalizeCity(c.PostForm("city"))
		if city == "" {
			c.Redirect(http.StatusFound, indexPath(cfg)+"?lang="+lang)
			return
		}

		view := buildGuide(c.Request.Context(), deps, city, lang, nil)
		log.Printf("[Guide] %s rendered city=%q lang=%s sections=%d", view.ID, city, lang, len(view.Sections))
		c.HTML(http.StatusOK, "result.html", gin.H{
			"subpath": cfg.Server.Subpath,
			"view":    view,
			"texts":   view.Texts,
			"weatherHeader": fmt.Sprintf(view.Texts.WeatherHeader, view.DisplayCity),
			"summaryHeader": fmt.Sprintf(view.Texts.SummaryHeader, view.DisplayCity),
			"flightsLabel":  fmt.Sprintf(view.Texts.FlightsButton, view.DisplayCity),
		})
	}
}

// POST /guide.json — same flow with a JSON body and JSON result.
func GuideJSONHandler(cfg *config.Config, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			City string `json:"city"`
			Lang string `json:"lang"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		city := guide.NormalizeCity(req.City)
		if city == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing city"})
			return
		}
		lang := resolveLang(cfg, req.Lang)

		view := buildGuide(c.Request.Context(), deps, city, lang, nil)
		c.JSON(http.StatusOK, view)
	}
}

// POST /guide/download — re-parses the raw guide text echoed back by the
// result page and serves the plain-text rendering as an attachment. Nothing
// is kept server-side between submissions.
func DownloadGuideHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		place := guide.NormalizeCity(c.PostForm("place"))
		raw := c.PostForm("raw")
		if place == "" || raw == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing place or guide text"})
			return
		}
		doc := guide.Parse(raw)
		if doc.Empty() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no parseable guide content"})
			return
		}
		text := guide.FormatText(doc, displayCity(place))
		filename := fmt.Sprintf("travel-guide-%s-%s.txt", slugify(place), uuid.NewString()[:8])
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
	}
}

func indexPath(cfg *config.Config) string {
	if cfg.Server.Subpath == "" {
		return "/"
	}
	return cfg.Server.Subpath
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "-")
}
