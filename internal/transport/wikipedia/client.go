// Package wikipedia implements web search against the MediaWiki
// search API. Wikipedia needs no API key, which keeps the default
// deployment self-contained.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/ragdex/ragdex/internal/domain"
)

// Client searches Wikipedia articles in a configured language edition.
type Client struct {
	http     *http.Client
	endpoint string
	pageBase string
	logger   *zap.Logger
}

// Config holds the web search settings.
type Config struct {
	// Language selects the Wikipedia edition ("en", "es", ...).
	Language string
	// BaseURL overrides the API endpoint. Tests point this at a fake
	// server; empty means the public Wikipedia API for Language.
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// New creates a Wikipedia search client.
func New(cfg *Config) *Client {
	lang := cfg.Language
	if lang == "" {
		lang = "en"
	}
	endpoint := cfg.BaseURL
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.wikipedia.org/w/api.php", lang)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		http:     &http.Client{Timeout: timeout},
		endpoint: endpoint,
		pageBase: fmt.Sprintf("https://%s.wikipedia.org/wiki/", lang),
		logger:   cfg.Logger,
	}
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
		} `json:"search"`
	} `json:"query"`
}

// Search implements the web search contract. The context bounds the
// whole request; all failures wrap domain.ErrWebSearchUnavailable so
// the router can degrade instead of erroring.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]domain.WebResult, error) {
	if maxResults <= 0 {
		maxResults = 3
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(maxResults))
	params.Set("format", "json")
	params.Set("utf8", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", domain.ErrWebSearchUnavailable)
	}
	req.Header.Set("User-Agent", "ragdex/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrWebSearchUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: search API returned %d", domain.ErrWebSearchUnavailable, resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %w", domain.ErrWebSearchUnavailable, err)
	}

	results := make([]domain.WebResult, 0, len(parsed.Query.Search))
	for _, hit := range parsed.Query.Search {
		results = append(results, domain.WebResult{
			Title:     hit.Title,
			Snippet:   cleanSnippet(hit.Snippet),
			SourceURL: c.pageBase + url.PathEscape(strings.ReplaceAll(hit.Title, " ", "_")),
		})
	}
	return results, nil
}

// cleanSnippet strips the searchmatch markup MediaWiki embeds in
// snippets and collapses whitespace.
func cleanSnippet(snippet string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snippet))
	if err != nil {
		return snippet
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
