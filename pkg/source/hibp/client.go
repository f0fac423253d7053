// Package hibp provides a source.Client implementation backed by the
// HaveIBeenPwned v3 API. It is the primary breach-database source and only
// supports email lookups.
package hibp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"guardian/pkg/domain"
	"guardian/pkg/serrors"
	"guardian/pkg/source"
)

const (
	defaultBaseURL = "https://haveibeenpwned.com/api/v3"
	userAgent      = "guardian-exposure-monitor"
	dateLayout     = "2006-01-02"
)

// Client talks to the HaveIBeenPwned REST API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Name implements source.Client.
func (c *Client) Name() string { return "hibp" }

// Priority implements source.Client. HIBP is a breach database and sorts
// before search-based sources.
func (c *Client) Priority() int { return 0 }

// Supports implements source.Client.
func (c *Client) Supports(kind source.AttributeKind) bool {
	return kind == source.AttributeEmail
}

// breach mirrors the subset of the HIBP breach model this client consumes.
// https://haveibeenpwned.com/API/v3#BreachModel
type breach struct {
	Name        string   `json:"Name"`
	Title       string   `json:"Title"`
	BreachDate  string   `json:"BreachDate"`
	Description string   `json:"Description"`
	DataClasses []string `json:"DataClasses"`
}

// Lookup fetches all breaches the given email appears in. A 404 from HIBP
// means the account is not in any known breach and yields an empty result.
func (c *Client) Lookup(ctx context.Context, attr source.Attribute) (source.Findings, error) {
	endpoint := fmt.Sprintf("%s/breachedaccount/%s?truncateResponse=false",
		c.baseURL, url.PathEscape(attr.Value))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return source.Findings{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("hibp-api-key", c.apiKey)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return source.Findings{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		// not an error: the account is not in any indexed breach
		return source.Findings{}, nil
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return source.Findings{}, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return source.Findings{}, serrors.With(serrors.ErrRateLimited,
			"rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return source.Findings{}, fmt.Errorf("breach lookup failed: %s", strings.TrimSpace(string(b)))
	}

	var breaches []breach
	if err := json.Unmarshal(b, &breaches); err != nil {
		return source.Findings{}, fmt.Errorf("could not decode response: %w", err)
	}

	out := source.Findings{Breaches: make([]domain.BreachRecord, 0, len(breaches))}
	for _, br := range breaches {
		name := br.Title
		if name == "" {
			name = br.Name
		}
		var observed time.Time
		if br.BreachDate != "" {
			if t, err := time.Parse(dateLayout, br.BreachDate); err == nil {
				observed = t
			} // else: keep the record, just undated
		}
		out.Breaches = append(out.Breaches, domain.BreachRecord{
			SourceName:     c.Name(),
			BreachName:     name,
			Description:    stripTags(br.Description),
			DataCategories: source.NormalizeCategories(br.DataClasses),
			ObservedDate:   observed,
		})
	}

	return out, nil
}

// stripTags removes the simple HTML markup HIBP embeds in descriptions.
func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}

// Ensure Client conforms to the source.Client interface at compile time.
var _ source.Client = (*Client)(nil)

// New constructs a Client using the provided http.Client and API key.
// An empty baseURL selects the public HIBP endpoint.
func New(httpClient *http.Client, apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}
