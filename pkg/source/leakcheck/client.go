// Package leakcheck provides a source.Client implementation backed by the
// LeakCheck public API. It serves as a secondary leak index next to the
// primary breach database and supports email and username lookups.
package leakcheck

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
	defaultBaseURL = "https://leakcheck.io/api/public"
	monthLayout    = "2006-01"
)

// Client talks to the LeakCheck public endpoint. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Name implements source.Client.
func (c *Client) Name() string { return "leakcheck" }

// Priority implements source.Client. LeakCheck is a leak index, after the
// primary breach database but before search-based sources.
func (c *Client) Priority() int { return 1 }

// Supports implements source.Client.
func (c *Client) Supports(kind source.AttributeKind) bool {
	return kind == source.AttributeEmail || kind == source.AttributeUsername
}

// Lookup queries the public endpoint. The API reports one set of exposed
// fields for the account plus the list of leaks it appeared in; the fields
// are attached to every resulting record.
func (c *Client) Lookup(ctx context.Context, attr source.Attribute) (source.Findings, error) {
	endpoint := c.baseURL + "?check=" + url.QueryEscape(attr.Value)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
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
	if resp.StatusCode == http.StatusTooManyRequests {
		return source.Findings{}, serrors.With(serrors.ErrRateLimited,
			"rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return source.Findings{}, fmt.Errorf("leak lookup failed: %s", strings.TrimSpace(string(b)))
	}

	var rs struct {
		Success bool     `json:"success"`
		Error   string   `json:"error"`
		Found   int      `json:"found"`
		Fields  []string `json:"fields"`
		Sources []struct {
			Name string `json:"name"`
			Date string `json:"date"`
		} `json:"sources"`
	}
	if err := json.Unmarshal(b, &rs); err != nil {
		return source.Findings{}, fmt.Errorf("could not decode response: %w", err)
	}
	if !rs.Success {
		if strings.EqualFold(rs.Error, "not found") {
			return source.Findings{}, nil
		}

		return source.Findings{}, fmt.Errorf("leak lookup rejected: %s", rs.Error)
	}

	categories := source.NormalizeCategories(rs.Fields)
	out := source.Findings{Breaches: make([]domain.BreachRecord, 0, len(rs.Sources))}
	for _, src := range rs.Sources {
		if src.Name == "" {
			continue
		}
		var observed time.Time
		if src.Date != "" {
			if t, err := time.Parse(monthLayout, src.Date); err == nil {
				observed = t
			}
		}
		out.Breaches = append(out.Breaches, domain.BreachRecord{
			SourceName:     c.Name(),
			BreachName:     src.Name,
			DataCategories: categories,
			ObservedDate:   observed,
		})
	}

	return out, nil
}

// Ensure Client conforms to the source.Client interface at compile time.
var _ source.Client = (*Client)(nil)

// New constructs a Client using the provided http.Client. An empty baseURL
// selects the public LeakCheck endpoint.
func New(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}
