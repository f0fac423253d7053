// Package gemini implements narrative.Generator on top of the Google
// Generative Language REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"guardian/pkg/domain"
	"guardian/pkg/narrative"
	"guardian/pkg/serrors"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-pro"
)

// Client calls the generateContent endpoint. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// Summarize asks the model for a short summary of the assessment. All
// transport and API failures are reported as serrors.ErrUnavailable so the
// caller can degrade to a report without a narrative.
func (c *Client) Summarize(ctx context.Context, report domain.HygieneReport) (string, error) {
	payload := struct {
		Contents []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
	}{
		Contents: []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		}{{
			Parts: []struct {
				Text string `json:"text"`
			}{{Text: buildPrompt(report)}},
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("could not encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnavailable, err, "could not reach model API")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnavailable, err, "could not read response body")
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return "", serrors.With(serrors.ErrRateLimited,
			"model rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", serrors.With(serrors.ErrUnavailable,
			"generation failed: %s", strings.TrimSpace(string(b)))
	}

	var rs struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(b, &rs); err != nil {
		return "", serrors.Wrap(serrors.ErrUnavailable, err, "could not decode response")
	}
	if len(rs.Candidates) == 0 || len(rs.Candidates[0].Content.Parts) == 0 {
		return "", serrors.With(serrors.ErrUnavailable, "model returned no candidates")
	}

	return strings.TrimSpace(rs.Candidates[0].Content.Parts[0].Text), nil
}

// buildPrompt renders the score breakdown into the instruction sent to the
// model. Categories are sorted so the prompt is deterministic.
func buildPrompt(report domain.HygieneReport) string {
	categories := make([]string, 0, len(report.CategoryScores))
	for name := range report.CategoryScores {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	var b strings.Builder
	b.WriteString("You are a security advisor. Write a short, encouraging summary ")
	b.WriteString("(at most four sentences) of this digital hygiene assessment for a non-technical reader.\n")
	fmt.Fprintf(&b, "Overall score: %d/100, risk level %s.\n", report.OverallScore, report.RiskLevel)
	for _, name := range categories {
		fmt.Fprintf(&b, "Category %s: %d/100.\n", name, report.CategoryScores[name].Score)
	}

	return b.String()
}

// Ensure Client conforms to the narrative.Generator interface at compile time.
var _ narrative.Generator = (*Client)(nil)

// New constructs a Client using the provided http.Client and API key. Empty
// baseURL and model select the public endpoint and the default model.
func New(httpClient *http.Client, apiKey, model, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}

	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}
