// Package pastesearch provides a source.Client that discovers paste-site
// mentions through the Google Custom Search API, using a site-restricted
// query against pastebin.com. Search results carry no timestamps, so every
// mention is returned undated and ordering falls back to source priority.
package pastesearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"guardian/pkg/domain"
	"guardian/pkg/serrors"
	"guardian/pkg/source"
)

const (
	defaultBaseURL = "https://www.googleapis.com/customsearch/v1"
	pasteSite      = "pastebin.com"
)

// Client runs site-restricted searches against the Custom Search API.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	engineID   string
}

// Name implements source.Client.
func (c *Client) Name() string { return "pastesearch" }

// Priority implements source.Client. Search results are the least
// authoritative finding category and sort last.
func (c *Client) Priority() int { return 3 }

// Supports implements source.Client. Any attribute can appear in a paste.
func (c *Client) Supports(kind source.AttributeKind) bool {
	switch kind {
	case source.AttributeEmail, source.AttributeUsername, source.AttributeFullName:
		return true
	default:
		return false
	}
}

// Lookup searches pastebin.com for verbatim occurrences of the attribute.
func (c *Client) Lookup(ctx context.Context, attr source.Attribute) (source.Findings, error) {
	query := fmt.Sprintf("site:%s %q", pasteSite, attr.Value)
	params := url.Values{
		"key": {c.apiKey},
		"cx":  {c.engineID},
		"q":   {query},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return source.Findings{}, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return source.Findings{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return source.Findings{}, fmt.Errorf("could not read response body: %w", err)
	}
	// the Custom Search API signals exhausted quota with 429 on newer keys
	// and 403 rateLimitExceeded on older ones
	if resp.StatusCode == http.StatusTooManyRequests ||
		(resp.StatusCode == http.StatusForbidden && strings.Contains(string(b), "rateLimitExceeded")) {
		return source.Findings{}, serrors.With(serrors.ErrRateLimited,
			"search quota exhausted: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return source.Findings{}, fmt.Errorf("paste search failed: %s", strings.TrimSpace(string(b)))
	}

	var rs struct {
		Items []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
		} `json:"items"`
	}
	if err := json.Unmarshal(b, &rs); err != nil {
		return source.Findings{}, fmt.Errorf("could not decode response: %w", err)
	}

	out := source.Findings{Pastes: make([]domain.PasteMention, 0, len(rs.Items))}
	for _, item := range rs.Items {
		if item.Link == "" {
			continue
		}
		out.Pastes = append(out.Pastes, domain.PasteMention{
			Source:  c.Name(),
			URL:     item.Link,
			Title:   strings.TrimSpace(item.Title),
			Excerpt: strings.TrimSpace(item.Snippet),
		})
	}

	return out, nil
}

// Ensure Client conforms to the source.Client interface at compile time.
var _ source.Client = (*Client)(nil)

// New constructs a Client using the provided http.Client, API key and
// search engine ID. An empty baseURL selects the public endpoint.
func New(httpClient *http.Client, apiKey, engineID, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		engineID:   engineID,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}
