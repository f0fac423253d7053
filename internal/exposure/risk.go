package exposure

import (
	"guardian/pkg/domain"
)

// Recommendation texts keyed by finding category. The mapping is fixed so
// repeated checks over the same findings produce identical reports.
const (
	recBreachMonitoring   = "enable breach-alert monitoring for this address"
	recRotatePasswords    = "change the password for every account tied to this identifier and enable two-factor authentication"
	recFinancialWatch     = "watch bank and card statements for unauthorized activity and consider a credit freeze"
	recPasteTakedown      = "contact the hosting platform to request takedown of the exposed paste"
	recRotatePastedCreds  = "rotate any credentials appearing in public pastes"
	recProfileVisibility  = "review public profile visibility and tighten privacy settings"
	recUsernameVariations = "use distinct usernames across services to limit cross-site linking"
)

// ScorerOptions carries the tunable thresholds of the risk model.
type ScorerOptions struct {
	// HighBreachCount is the breach count at which an email report is rated
	// high risk regardless of categories.
	HighBreachCount int
	// HighSensitivityCategories rate a report high risk when any breach
	// compromises one of them.
	HighSensitivityCategories []string
}

// DefaultScorerOptions returns the standard thresholds.
func DefaultScorerOptions() ScorerOptions {
	return ScorerOptions{
		HighBreachCount: 3,
		HighSensitivityCategories: []string{
			"bank_account_numbers",
			"credit_cards",
			"financial_information",
			"government_issued_ids",
			"partial_credit_card_data",
			"passports",
			"passwords",
			"social_security_numbers",
		},
	}
}

// Scorer derives qualitative risk levels from aggregated findings. All
// methods are pure functions of their inputs.
type Scorer struct {
	options   ScorerOptions
	sensitive map[string]struct{}
}

// NewScorer constructs a Scorer. Zero or missing option values fall back to
// the defaults.
func NewScorer(options ScorerOptions) *Scorer {
	defaults := DefaultScorerOptions()
	if options.HighBreachCount <= 0 {
		options.HighBreachCount = defaults.HighBreachCount
	}
	if len(options.HighSensitivityCategories) == 0 {
		options.HighSensitivityCategories = defaults.HighSensitivityCategories
	}

	sensitive := make(map[string]struct{}, len(options.HighSensitivityCategories))
	for _, c := range options.HighSensitivityCategories {
		sensitive[c] = struct{}{}
	}

	return &Scorer{options: options, sensitive: sensitive}
}

func (s *Scorer) anyHighSensitivity(records []domain.BreachRecord) bool {
	for _, r := range records {
		for _, c := range r.DataCategories {
			if _, ok := s.sensitive[c]; ok {
				return true
			}
		}
	}

	return false
}

func anySensitivePaste(pastes []domain.PasteMention) bool {
	for _, p := range pastes {
		if p.ContainsSensitiveData {
			return true
		}
	}

	return false
}

// ScoreEmail rates an email sub-report. The caller is responsible for using
// RiskUnknown instead when no source for the attribute produced data.
func (s *Scorer) ScoreEmail(report domain.EmailExposureReport) domain.RiskLevel {
	breachCount := report.TotalBreachCount

	switch {
	case breachCount >= s.options.HighBreachCount,
		s.anyHighSensitivity(report.Breaches),
		s.anyHighSensitivity(report.LeakResults):
		return domain.RiskHigh
	case breachCount >= 1, anySensitivePaste(report.Pastes):
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// ScoreUsername rates a username sub-report. Without breach evidence the
// ceiling is medium.
func (s *Scorer) ScoreUsername(report domain.UsernameExposureReport) domain.RiskLevel {
	confirmed := false
	for _, m := range report.Mentions {
		if m.Confirmed {
			confirmed = true

			break
		}
	}

	if confirmed || anySensitivePaste(report.Pastes) {
		return domain.RiskMedium
	}

	return domain.RiskLow
}

// Combine folds two sub-report risk levels into the combined verdict.
// RiskUnknown resolves to the other value unless both are unknown.
func (s *Scorer) Combine(email, username domain.RiskLevel) domain.RiskLevel {
	return domain.MaxRisk(email, username)
}

// EmailRecommendations maps email findings to fixed remediation texts.
func (s *Scorer) EmailRecommendations(report domain.EmailExposureReport) []string {
	var out []string
	if report.TotalBreachCount > 0 {
		out = append(out, recRotatePasswords, recBreachMonitoring)
	}
	if s.anyHighSensitivity(report.Breaches) || s.anyHighSensitivity(report.LeakResults) {
		out = append(out, recFinancialWatch)
	}
	if anySensitivePaste(report.Pastes) {
		out = append(out, recPasteTakedown)
	}
	if len(report.Pastes) > 0 {
		out = append(out, recRotatePastedCreds)
	}

	return out
}

// UsernameRecommendations maps username findings to fixed remediation texts.
func (s *Scorer) UsernameRecommendations(report domain.UsernameExposureReport) []string {
	var out []string
	for _, m := range report.Mentions {
		if m.Confirmed {
			out = append(out, recProfileVisibility)

			break
		}
	}
	if len(report.Mentions) > 0 {
		out = append(out, recUsernameVariations)
	}
	if anySensitivePaste(report.Pastes) {
		out = append(out, recPasteTakedown)
	}
	if len(report.Pastes) > 0 {
		out = append(out, recRotatePastedCreds)
	}

	return out
}

// mergeRecommendations builds the deduplicated ordered union of the
// sub-reports' recommendations.
func mergeRecommendations(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, r := range list {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			out = append(out, r)
		}
	}

	return out
}
