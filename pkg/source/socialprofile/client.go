// Package socialprofile provides a source.Client that probes well-known
// platforms for public profiles matching a username. GitHub is checked
// through its REST API and an exact login match marks the mention as
// confirmed; the remaining platforms are probed by profile URL and stay
// unconfirmed because a 200 only proves the page exists.
package socialprofile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"guardian/pkg/domain"
	"guardian/pkg/serrors"
	"guardian/pkg/source"
)

const defaultGithubAPIURL = "https://api.github.com"

// platform is one probed network. Profile pages are fetched with a plain GET
// since several platforms reject HEAD requests.
type platform struct {
	name       string
	profileURL string // format string taking the username
}

var defaultPlatforms = []platform{
	{name: "twitter", profileURL: "https://twitter.com/%s"},
	{name: "reddit", profileURL: "https://www.reddit.com/user/%s"},
}

// Client probes social platforms for a username. It is safe for concurrent use.
type Client struct {
	httpClient   *http.Client
	githubAPIURL string
	platforms    []platform
}

// Name implements source.Client.
func (c *Client) Name() string { return "socialprofile" }

// Priority implements source.Client. Profile probes are stronger evidence
// than generic search but weaker than breach databases.
func (c *Client) Priority() int { return 2 }

// Supports implements source.Client. Profiles only exist for usernames.
func (c *Client) Supports(kind source.AttributeKind) bool {
	return kind == source.AttributeUsername
}

// Lookup probes all platforms concurrently. A platform that cannot be
// reached is skipped rather than failing the whole lookup; only rate
// limiting from the GitHub API is surfaced so the aggregator can report it.
func (c *Client) Lookup(ctx context.Context, attr source.Attribute) (source.Findings, error) {
	type probeResult struct {
		mention *domain.SocialMention
		err     error
	}

	results := make([]probeResult, len(c.platforms)+1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		m, err := c.probeGithub(ctx, attr.Value)
		results[0] = probeResult{mention: m, err: err}
	}()
	for i, p := range c.platforms {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m := c.probePlatform(ctx, p, attr.Value)
			results[i+1] = probeResult{mention: m}
		}()
	}
	wg.Wait()

	var out source.Findings
	for _, r := range results {
		if r.err != nil {
			return source.Findings{}, r.err
		}
		if r.mention != nil {
			out.Mentions = append(out.Mentions, *r.mention)
		}
	}

	return out, nil
}

// probeGithub resolves the username through the users API. The returned
// login is compared case-insensitively; GitHub redirects renamed accounts,
// so a mismatch means the profile belongs to someone else now.
func (c *Client) probeGithub(ctx context.Context, username string) (*domain.SocialMention, error) {
	endpoint := c.githubAPIURL + "/users/" + url.PathEscape(username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil //nolint: nilerr // unreachable platform is not a finding
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests:
		b, _ := io.ReadAll(resp.Body)

		return nil, serrors.With(serrors.ErrRateLimited,
			"github rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, nil
	}

	var rs struct {
		Login   string `json:"login"`
		HTMLURL string `json:"html_url"`
		Bio     string `json:"bio"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rs); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return &domain.SocialMention{
		Platform:  "github",
		URL:       rs.HTMLURL,
		Snippet:   strings.TrimSpace(rs.Bio),
		Confirmed: strings.EqualFold(rs.Login, username),
	}, nil
}

// probePlatform fetches the public profile page. Anything but a 2xx means
// no usable profile.
func (c *Client) probePlatform(ctx context.Context, p platform, username string) *domain.SocialMention {
	profile := fmt.Sprintf(p.profileURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profile, nil)
	if err != nil {
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil
	}

	return &domain.SocialMention{
		Platform:  p.name,
		URL:       profile,
		Confirmed: false,
	}
}

// Ensure Client conforms to the source.Client interface at compile time.
var _ source.Client = (*Client)(nil)

// New constructs a Client using the provided http.Client. An empty
// githubAPIURL selects the public GitHub API.
func New(httpClient *http.Client, githubAPIURL string) *Client {
	if githubAPIURL == "" {
		githubAPIURL = defaultGithubAPIURL
	}

	return &Client{
		httpClient:   httpClient,
		githubAPIURL: strings.TrimSuffix(githubAPIURL, "/"),
		platforms:    defaultPlatforms,
	}
}
