package exposure

import (
	"testing"

	"guardian/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestScorer_ScoreEmail(t *testing.T) {
	s := NewScorer(ScorerOptions{})

	for _, tc := range []struct {
		name   string
		report domain.EmailExposureReport
		want   domain.RiskLevel
	}{
		{
			name:   "no findings",
			report: domain.EmailExposureReport{},
			want:   domain.RiskLow,
		},
		{
			name: "one breach",
			report: domain.EmailExposureReport{
				Breaches:         []domain.BreachRecord{{BreachName: "a"}},
				TotalBreachCount: 1,
			},
			want: domain.RiskMedium,
		},
		{
			name: "three breaches",
			report: domain.EmailExposureReport{
				Breaches: []domain.BreachRecord{
					{BreachName: "a"}, {BreachName: "b"}, {BreachName: "c"},
				},
				TotalBreachCount: 3,
			},
			want: domain.RiskHigh,
		},
		{
			name: "single breach with financial data",
			report: domain.EmailExposureReport{
				Breaches: []domain.BreachRecord{
					{BreachName: "a", DataCategories: []string{"financial_information"}},
				},
				TotalBreachCount: 1,
			},
			want: domain.RiskHigh,
		},
		{
			name: "high-sensitivity leak result",
			report: domain.EmailExposureReport{
				LeakResults: []domain.BreachRecord{
					{BreachName: "a", DataCategories: []string{"passwords"}},
				},
				TotalBreachCount: 1,
			},
			want: domain.RiskHigh,
		},
		{
			name: "sensitive paste only",
			report: domain.EmailExposureReport{
				Pastes: []domain.PasteMention{{URL: "u", ContainsSensitiveData: true}},
			},
			want: domain.RiskMedium,
		},
		{
			name: "plain paste only",
			report: domain.EmailExposureReport{
				Pastes: []domain.PasteMention{{URL: "u"}},
			},
			want: domain.RiskLow,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, s.ScoreEmail(tc.report))
		})
	}
}

func TestScorer_ScoreUsername(t *testing.T) {
	s := NewScorer(ScorerOptions{})

	require.Equal(t, domain.RiskLow, s.ScoreUsername(domain.UsernameExposureReport{}))
	require.Equal(t, domain.RiskLow, s.ScoreUsername(domain.UsernameExposureReport{
		Mentions: []domain.SocialMention{{Platform: "twitter"}},
	}))
	require.Equal(t, domain.RiskMedium, s.ScoreUsername(domain.UsernameExposureReport{
		Mentions: []domain.SocialMention{{Platform: "github", Confirmed: true}},
	}))
	require.Equal(t, domain.RiskMedium, s.ScoreUsername(domain.UsernameExposureReport{
		Pastes: []domain.PasteMention{{URL: "u", ContainsSensitiveData: true}},
	}))
}

func TestScorer_Combine(t *testing.T) {
	s := NewScorer(ScorerOptions{})

	require.Equal(t, domain.RiskHigh, s.Combine(domain.RiskHigh, domain.RiskLow))
	require.Equal(t, domain.RiskUnknown, s.Combine(domain.RiskUnknown, domain.RiskUnknown))
	require.Equal(t, domain.RiskMedium, s.Combine(domain.RiskUnknown, domain.RiskMedium))
	require.Equal(t, domain.RiskLow, s.Combine(domain.RiskLow, domain.RiskUnknown))
}

func TestScorer_EmailRecommendations(t *testing.T) {
	s := NewScorer(ScorerOptions{})

	report := domain.EmailExposureReport{
		Breaches: []domain.BreachRecord{
			{BreachName: "a", DataCategories: []string{"credit_cards"}},
		},
		Pastes: []domain.PasteMention{
			{URL: "u", ContainsSensitiveData: true},
		},
		TotalBreachCount: 1,
	}

	recs := s.EmailRecommendations(report)
	require.Equal(t, []string{
		recRotatePasswords,
		recBreachMonitoring,
		recFinancialWatch,
		recPasteTakedown,
		recRotatePastedCreds,
	}, recs)

	require.Empty(t, s.EmailRecommendations(domain.EmailExposureReport{}))
}

func TestMergeRecommendations_DeduplicatedOrderedUnion(t *testing.T) {
	merged := mergeRecommendations(
		[]string{"a", "b"},
		[]string{"b", "c", "a"},
	)
	require.Equal(t, []string{"a", "b", "c"}, merged)
}
