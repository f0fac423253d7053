package exposure

import (
	"context"
	"errors"
	"testing"
	"time"

	"guardian/pkg/domain"
	"guardian/pkg/source"

	"github.com/stretchr/testify/require"
)

// fakeClient is an in-memory source.Client returning canned findings.
type fakeClient struct {
	name     string
	priority int
	kinds    []source.AttributeKind
	findings source.Findings
	err      error
	delay    time.Duration
}

func (f *fakeClient) Name() string  { return f.name }
func (f *fakeClient) Priority() int { return f.priority }

func (f *fakeClient) Supports(kind source.AttributeKind) bool {
	for _, k := range f.kinds {
		if k == kind {
			return true
		}
	}

	return false
}

func (f *fakeClient) Lookup(ctx context.Context, _ source.Attribute) (source.Findings, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return source.Findings{}, ctx.Err()
		}
	}

	return f.findings, f.err
}

func newAggregator(clients ...source.Client) *Aggregator {
	return New(clients, NewScorer(ScorerOptions{}), Options{SourceTimeout: time.Second})
}

func emailQuery() domain.ExposureQuery {
	return domain.ExposureQuery{Email: "victim@example.com"}
}

func combinedQuery() domain.ExposureQuery {
	return domain.ExposureQuery{
		Email:          "victim@example.com",
		Identifier:     "victim",
		IdentifierKind: domain.IdentifierUsername,
	}
}

func TestAggregator_CleanResultIsLowNotUnknown(t *testing.T) {
	a := newAggregator(
		&fakeClient{name: "hibp", kinds: []source.AttributeKind{source.AttributeEmail}},
		&fakeClient{name: "socialprofile", priority: 2,
			kinds: []source.AttributeKind{source.AttributeUsername}},
	)

	report := a.Aggregate(context.Background(), combinedQuery())
	require.Equal(t, domain.RiskLow, report.RiskLevel)
	require.Empty(t, report.Note)
	require.Equal(t, domain.RiskLow, report.EmailReport.RiskLevel)
	require.Equal(t, domain.RiskLow, report.UsernameReport.RiskLevel)
	require.Zero(t, report.PasteCount)
}

func TestAggregator_PartialFailureDegrades(t *testing.T) {
	date := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	a := newAggregator(
		&fakeClient{
			name:  "hibp",
			kinds: []source.AttributeKind{source.AttributeEmail},
			findings: source.Findings{Breaches: []domain.BreachRecord{
				{SourceName: "hibp", BreachName: "Acme Leak 2021",
					DataCategories: []string{"emails"}, ObservedDate: date},
			}},
		},
		&fakeClient{
			name: "leakcheck", priority: 1,
			kinds: []source.AttributeKind{source.AttributeEmail},
			err:   errors.New("provider down"),
		},
	)

	report := a.Aggregate(context.Background(), emailQuery())
	require.Empty(t, report.Note)
	require.Equal(t, domain.RiskMedium, report.RiskLevel)
	require.Equal(t, 1, report.EmailReport.TotalBreachCount)
}

func TestAggregator_TotalFailureIsUnknownWithNote(t *testing.T) {
	a := newAggregator(
		&fakeClient{name: "hibp", kinds: []source.AttributeKind{source.AttributeEmail},
			err: errors.New("down")},
		&fakeClient{name: "leakcheck", priority: 1,
			kinds: []source.AttributeKind{source.AttributeEmail},
			err:   errors.New("down too")},
	)

	report := a.Aggregate(context.Background(), emailQuery())
	require.Equal(t, domain.RiskUnknown, report.RiskLevel)
	require.NotEmpty(t, report.Note)
	require.Equal(t, domain.RiskUnknown, report.EmailReport.RiskLevel)
	require.Empty(t, report.Recommendations)
}

func TestAggregator_CrossSourceBreachMerge(t *testing.T) {
	date := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	a := newAggregator(
		&fakeClient{
			name:  "hibp",
			kinds: []source.AttributeKind{source.AttributeEmail},
			findings: source.Findings{Breaches: []domain.BreachRecord{
				{SourceName: "hibp", BreachName: "Acme Leak 2021",
					DataCategories: []string{"emails"}, ObservedDate: date},
			}},
		},
		&fakeClient{
			name: "leakcheck", priority: 1,
			kinds: []source.AttributeKind{source.AttributeEmail},
			findings: source.Findings{Breaches: []domain.BreachRecord{
				{SourceName: "leakcheck", BreachName: "ACME LEAK 2021 (verified)",
					DataCategories: []string{"emails", "passwords"}, ObservedDate: date},
				{SourceName: "leakcheck", BreachName: "Unrelated Dump",
					DataCategories: []string{"usernames"}},
			}},
		},
	)

	report := a.Aggregate(context.Background(), emailQuery())
	email := report.EmailReport
	require.Len(t, email.Breaches, 1)
	require.Equal(t, []string{"emails", "passwords"}, email.Breaches[0].DataCategories)
	require.Len(t, email.LeakResults, 1)
	require.Equal(t, "Unrelated Dump", email.LeakResults[0].BreachName)
	require.Equal(t, 2, email.TotalBreachCount)
	// merged password category upgrades the risk
	require.Equal(t, domain.RiskHigh, report.RiskLevel)
}

func TestAggregator_HighRiskScenarioDominatesCombined(t *testing.T) {
	a := newAggregator(
		&fakeClient{
			name:  "hibp",
			kinds: []source.AttributeKind{source.AttributeEmail},
			findings: source.Findings{Breaches: []domain.BreachRecord{
				{SourceName: "hibp", BreachName: "One", DataCategories: []string{"financial_information"}},
				{SourceName: "hibp", BreachName: "Two"},
				{SourceName: "hibp", BreachName: "Three"},
			}},
		},
		&fakeClient{name: "socialprofile", priority: 2,
			kinds: []source.AttributeKind{source.AttributeUsername}},
	)

	report := a.Aggregate(context.Background(), combinedQuery())
	require.Equal(t, domain.RiskHigh, report.EmailReport.RiskLevel)
	require.Equal(t, domain.RiskLow, report.UsernameReport.RiskLevel)
	require.Equal(t, domain.RiskHigh, report.RiskLevel)
}

func TestAggregator_PasteUnionCountsOnce(t *testing.T) {
	paste := domain.PasteMention{
		Source: "pastesearch",
		URL:    "https://pastebin.com/abc",
	}
	a := newAggregator(
		&fakeClient{
			name: "pastesearch", priority: 3,
			kinds: []source.AttributeKind{
				source.AttributeEmail, source.AttributeUsername,
			},
			findings: source.Findings{Pastes: []domain.PasteMention{paste}},
		},
	)

	report := a.Aggregate(context.Background(), combinedQuery())
	require.Len(t, report.EmailReport.Pastes, 1)
	require.Len(t, report.UsernameReport.Pastes, 1)
	require.Equal(t, 1, report.PasteCount)
}

func TestAggregator_SensitiveFlagAppliedAtIngestion(t *testing.T) {
	a := newAggregator(
		&fakeClient{
			name: "pastesearch", priority: 3,
			kinds: []source.AttributeKind{source.AttributeEmail},
			findings: source.Findings{Pastes: []domain.PasteMention{
				{Source: "pastesearch", URL: "https://pastebin.com/abc",
					Excerpt: "victim@example.com password: hunter2"},
			}},
		},
	)

	report := a.Aggregate(context.Background(), emailQuery())
	require.True(t, report.EmailReport.Pastes[0].ContainsSensitiveData)
	require.Equal(t, domain.RiskMedium, report.RiskLevel)
	require.Contains(t, report.Recommendations, recPasteTakedown)
}

func TestAggregator_SlowClientIsBounded(t *testing.T) {
	a := New([]source.Client{
		&fakeClient{name: "hibp", kinds: []source.AttributeKind{source.AttributeEmail},
			delay: time.Minute},
		&fakeClient{name: "leakcheck", priority: 1,
			kinds: []source.AttributeKind{source.AttributeEmail},
			findings: source.Findings{Breaches: []domain.BreachRecord{
				{SourceName: "leakcheck", BreachName: "Dump"},
			}},
		},
	}, NewScorer(ScorerOptions{}), Options{SourceTimeout: 50 * time.Millisecond})

	start := time.Now()
	report := a.Aggregate(context.Background(), emailQuery())
	require.Less(t, time.Since(start), 5*time.Second)

	// slow client timed out, fast one still contributed
	require.Equal(t, 1, report.EmailReport.TotalBreachCount)
	require.Empty(t, report.Note)
}

func TestAggregator_CancelledContextDiscardsResults(t *testing.T) {
	a := newAggregator(
		&fakeClient{name: "hibp", kinds: []source.AttributeKind{source.AttributeEmail},
			findings: source.Findings{Breaches: []domain.BreachRecord{
				{SourceName: "hibp", BreachName: "Dump"},
			}},
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := a.Aggregate(ctx, emailQuery())
	require.Equal(t, domain.RiskUnknown, report.RiskLevel)
	require.NotEmpty(t, report.Note)
	require.Nil(t, report.EmailReport)
}
