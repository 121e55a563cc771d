// Package wiki fetches page summaries from the Wikipedia REST API.
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ErrNotFound is returned when no page exists for the requested title.
var ErrNotFound = errors.New("wikipedia page not found")

// Summary is a short intro for a place, with an optional representative image.
type Summary struct {
	Extract  string `json:"extract"`
	ImageURL string `json:"image_url,omitempty"`
}

// Client handles communication with Wikipedia. The language is a per-call
// parameter, not client state, so concurrent lookups in different languages
// cannot interfere.
type Client struct {
	// BaseURLTemplate has a %s slot for the language code,
	// e.g. "https://%s.wikipedia.org".
	BaseURLTemplate string
	HTTPClient      *http.Client
	// MaxSentences caps the extract length; 0 means no cap.
	MaxSentences int
}

// NewClient creates a Wikipedia client.
func NewClient(baseURLTemplate string, timeout time.Duration) *Client {
	return &Client{
		BaseURLTemplate: baseURLTemplate,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		MaxSentences: 3,
	}
}

// Summary fetches the intro summary of a page in the given language.
func (c *Client) Summary(ctx context.Context, title, lang string) (*Summary, error) {
	base := fmt.Sprintf(c.BaseURLTemplate, lang)
	endpoint := base + "/api/rest_v1/page/summary/" + url.PathEscape(title)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wikipedia request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("wikipedia returned status %d: %s", resp.StatusCode, string(body))
	}

	var page struct {
		Type        string `json:"type"`
		Extract     string `json:"extract"`
		ExtractHTML string `json:"extract_html"`
		Thumbnail   struct {
			Source string `json:"source"`
		} `json:"thumbnail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to parse wikipedia response: %w", err)
	}
	// Disambiguation and missing pages come back 200 with a type marker.
	if page.Type != "" && page.Type != "standard" {
		return nil, ErrNotFound
	}

	extract := strings.TrimSpace(page.Extract)
	if extract == "" && page.ExtractHTML != "" {
		extract = htmlToText(page.ExtractHTML)
	}
	if extract == "" {
		return nil, ErrNotFound
	}
	return &Summary{
		Extract:  firstSentences(extract, c.MaxSentences),
		ImageURL: page.Thumbnail.Source,
	}, nil
}

// htmlToText strips markup from an extract_html payload.
func htmlToText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Text())
}

var sentenceEndRe = regexp.MustCompile(`([.!?])\s+`)

// firstSentences truncates text after n sentence boundaries. Boundary
// detection is heuristic (punctuation followed by whitespace), which is
// enough for intro paragraphs.
func firstSentences(text string, n int) string {
	if n <= 0 {
		return text
	}
	ends := sentenceEndRe.FindAllStringIndex(text, -1)
	if len(ends) < n {
		return text
	}
	return strings.TrimSpace(text[:ends[n-1][1]])
}
