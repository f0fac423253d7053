package pastesearch_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"guardian/pkg/serrors"
	"guardian/pkg/source"
	"guardian/pkg/source/pastesearch"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *pastesearch.Client {
	return pastesearch.New(&http.Client{Transport: fn}, "test-key", "test-cx", "")
}

func TestClient_Lookup_success(t *testing.T) {
	body := `{
		"items": [
			{"title": "dump.txt - Pastebin.com",
			 "link": "https://pastebin.com/abc123",
			 "snippet": "victim@example.com:hunter2"},
			{"title": "", "link": "", "snippet": "no link, skipped"}
		]
	}`
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "www.googleapis.com", r.URL.Host)
		require.Equal(t, "/customsearch/v1", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.Equal(t, "test-cx", r.URL.Query().Get("cx"))
		require.Equal(t, `site:pastebin.com "victim@example.com"`, r.URL.Query().Get("q"))

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	})

	findings, err := c.Lookup(context.Background(), source.Attribute{
		Value: "victim@example.com",
		Kind:  source.AttributeEmail,
	})
	require.NoError(t, err)
	require.Len(t, findings.Pastes, 1)

	p := findings.Pastes[0]
	require.Equal(t, "pastesearch", p.Source)
	require.Equal(t, "https://pastebin.com/abc123", p.URL)
	require.Equal(t, "dump.txt - Pastebin.com", p.Title)
	require.Equal(t, "victim@example.com:hunter2", p.Excerpt)
	require.True(t, p.ObservedDate.IsZero())
	require.False(t, p.ContainsSensitiveData)
}

func TestClient_Lookup_noItems(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"searchInformation": {"totalResults": "0"}}`)),
		}, nil
	})

	findings, err := c.Lookup(context.Background(), source.Attribute{
		Value: "ghost", Kind: source.AttributeUsername,
	})
	require.NoError(t, err)
	require.True(t, findings.Empty())
}

func TestClient_Lookup_quotaExhausted(t *testing.T) {
	for _, tc := range []struct {
		name   string
		status int
		body   string
	}{
		{"http 429", http.StatusTooManyRequests, "quota exceeded"},
		{"legacy 403", http.StatusForbidden, `{"error": {"errors": [{"reason": "rateLimitExceeded"}]}}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(func(r *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: tc.status,
					Body:       io.NopCloser(strings.NewReader(tc.body)),
				}, nil
			})

			_, err := c.Lookup(context.Background(), source.Attribute{
				Value: "victim@example.com", Kind: source.AttributeEmail,
			})
			require.Error(t, err)
			require.ErrorIs(t, err, serrors.ErrRateLimited)
		})
	}
}

func TestClient_Supports(t *testing.T) {
	c := newTestClient(nil)
	require.True(t, c.Supports(source.AttributeEmail))
	require.True(t, c.Supports(source.AttributeUsername))
	require.True(t, c.Supports(source.AttributeFullName))
}
