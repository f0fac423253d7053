package exposure

import (
	"regexp"
	"strings"
)

// Sensitive-content detectors applied to paste excerpts at ingestion. A hit
// on any detector marks the paste and upgrades the risk assessment, so the
// patterns err on the side of precision over recall.
var (
	// cardPattern matches 13-16 digit sequences with optional separators,
	// the common payment card formats.
	cardPattern = regexp.MustCompile(`\b(?:\d[ -]?){13,16}\b`)
	// nationalIDPattern matches SSN-style identifiers (three-two-four digit
	// groups with separators).
	nationalIDPattern = regexp.MustCompile(`\b\d{3}[- ]\d{2}[- ]\d{4}\b`)
)

// credentialKeywords are case-insensitive markers of credential or financial
// material in dump-style pastes.
var credentialKeywords = []string{
	"password",
	"passwd",
	"pwd:",
	"credentials",
	"credit card",
	"card number",
	"cvv",
	"iban",
	"ssn",
	"social security",
}

// ContainsSensitiveData reports whether a paste excerpt looks like it carries
// credentials, payment data or national identifiers.
func ContainsSensitiveData(excerpt string) bool {
	if excerpt == "" {
		return false
	}
	if cardPattern.MatchString(excerpt) || nationalIDPattern.MatchString(excerpt) {
		return true
	}

	lower := strings.ToLower(excerpt)
	for _, kw := range credentialKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	return false
}
