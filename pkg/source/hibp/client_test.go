package hibp_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"guardian/pkg/serrors"
	"guardian/pkg/source"
	"guardian/pkg/source/hibp"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *hibp.Client {
	return hibp.New(&http.Client{Transport: fn}, "test-key", "")
}

func emailAttr() source.Attribute {
	return source.Attribute{Value: "victim@example.com", Kind: source.AttributeEmail}
}

func TestClient_Lookup_success(t *testing.T) {
	body := `[
		{"Name":"Acme","Title":"Acme Leak 2021","BreachDate":"2021-06-01",
		 "Description":"Data of <em>Acme</em> users leaked.",
		 "DataClasses":["Email addresses","Passwords"]},
		{"Name":"NoDate","Title":"","BreachDate":"",
		 "Description":"","DataClasses":["Usernames"]}
	]`
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "haveibeenpwned.com", r.URL.Host)
		require.Equal(t, "/api/v3/breachedaccount/victim@example.com", r.URL.Path)
		require.Equal(t, "false", r.URL.Query().Get("truncateResponse"))
		require.Equal(t, "test-key", r.Header.Get("hibp-api-key"))

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	})

	findings, err := c.Lookup(context.Background(), emailAttr())
	require.NoError(t, err)
	require.Len(t, findings.Breaches, 2)

	first := findings.Breaches[0]
	require.Equal(t, "hibp", first.SourceName)
	require.Equal(t, "Acme Leak 2021", first.BreachName)
	require.Equal(t, "Data of Acme users leaked.", first.Description)
	require.Equal(t, []string{"email_addresses", "passwords"}, first.DataCategories)
	require.Equal(t, time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), first.ObservedDate)

	second := findings.Breaches[1]
	require.Equal(t, "NoDate", second.BreachName, "Name should be used when Title is empty")
	require.True(t, second.ObservedDate.IsZero())
}

func TestClient_Lookup_notFoundMeansClean(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(strings.NewReader("")),
		}, nil
	})

	findings, err := c.Lookup(context.Background(), emailAttr())
	require.NoError(t, err)
	require.True(t, findings.Empty())
}

func TestClient_Lookup_rateLimited(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(strings.NewReader("slow down")),
		}, nil
	})

	_, err := c.Lookup(context.Background(), emailAttr())
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestClient_Supports(t *testing.T) {
	c := newTestClient(nil)
	require.True(t, c.Supports(source.AttributeEmail))
	require.False(t, c.Supports(source.AttributeUsername))
	require.False(t, c.Supports(source.AttributeFullName))
}
