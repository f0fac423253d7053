package domain

import "time"

// BreachRecord is one normalized breach finding reported by a breach-database
// source. Multiple sources may report the same breach under slightly
// different names; the aggregator reconciles them.
type BreachRecord struct {
	// SourceName identifies the provider that reported the breach.
	SourceName string `json:"sourceName"`
	// BreachName is the provider's name for the incident.
	BreachName string `json:"breachName"`
	// Description is free-text detail about the incident, possibly empty.
	Description string `json:"description,omitempty"`
	// DataCategories is the set of compromised data classes, normalized to
	// lower_snake_case and kept sorted.
	DataCategories []string `json:"dataCategories,omitempty"`
	// ObservedDate is when the breach occurred or was indexed. Zero means
	// the provider reported no date.
	ObservedDate time.Time `json:"observedDate,omitzero"`
}

// PasteMention is one normalized paste-site finding.
type PasteMention struct {
	// Source identifies the provider or site the paste was found through.
	Source string `json:"source"`
	// URL is the paste location. Deduplication keys on its normalized form.
	URL string `json:"url"`
	// Title is the paste title if the provider reported one.
	Title string `json:"title,omitempty"`
	// Excerpt is the snippet of paste content around the match.
	Excerpt string `json:"excerpt,omitempty"`
	// ObservedDate is when the paste was indexed. Zero means unknown.
	ObservedDate time.Time `json:"observedDate,omitzero"`
	// ContainsSensitiveData is set once at ingestion when the excerpt
	// matches a configured sensitive-content detector.
	ContainsSensitiveData bool `json:"containsSensitiveData"`
}

// SocialMention is one normalized social-platform finding.
type SocialMention struct {
	// Platform is the social platform the identifier was found on.
	Platform string `json:"platform"`
	// URL is the profile or content location.
	URL string `json:"url"`
	// Snippet is surrounding text for fuzzy matches, possibly empty.
	Snippet string `json:"snippet,omitempty"`
	// Confirmed distinguishes an exact profile-handle match from a fuzzy
	// textual one.
	Confirmed bool `json:"confirmed"`
}

// EmailExposureReport summarizes all findings for a single email address.
type EmailExposureReport struct {
	Email string `json:"email"`
	// Breaches holds findings from the primary breach database.
	Breaches []BreachRecord `json:"breaches,omitempty"`
	// LeakResults holds findings from secondary leak indexes. A record that
	// matches one in Breaches is merged there and removed from this list.
	LeakResults []BreachRecord `json:"leakResults,omitempty"`
	Pastes      []PasteMention `json:"pastes,omitempty"`
	// TotalBreachCount is len(Breaches)+len(LeakResults) after dedup.
	TotalBreachCount int       `json:"totalBreachCount"`
	RiskLevel        RiskLevel `json:"riskLevel"`
	Recommendations  []string  `json:"recommendations,omitempty"`
}

// UsernameExposureReport summarizes all findings for a username or full name.
type UsernameExposureReport struct {
	Identifier      string          `json:"identifier"`
	IdentifierKind  IdentifierKind  `json:"identifierKind"`
	Mentions        []SocialMention `json:"mentions,omitempty"`
	Pastes          []PasteMention  `json:"pastes,omitempty"`
	RiskLevel       RiskLevel       `json:"riskLevel"`
	Recommendations []string        `json:"recommendations,omitempty"`
}

// CombinedExposureReport is the result of one aggregation run across all
// attributes of a query. The combined risk level is always derived from the
// sub-reports, never overridden.
type CombinedExposureReport struct {
	Query          ExposureQuery           `json:"query"`
	EmailReport    *EmailExposureReport    `json:"emailReport,omitempty"`
	UsernameReport *UsernameExposureReport `json:"usernameReport,omitempty"`
	// PasteCount is the size of the deduplicated union of pastes across both
	// sub-reports; a paste found via both attributes counts once.
	PasteCount int       `json:"pasteCount"`
	RiskLevel  RiskLevel `json:"riskLevel"`
	// Recommendations is the deduplicated ordered union of the sub-reports'
	// recommendations.
	Recommendations []string `json:"recommendations,omitempty"`
	// Note explains degraded results, e.g. when every source failed.
	Note string `json:"note,omitempty"`
}
