package source

import (
	"sort"
	"strings"
)

// NormalizeCategory converts a provider's data-class label into the canonical
// lower_snake_case form used across BreachRecord.DataCategories, e.g.
// "Email addresses" -> "email_addresses", "Credit Cards" -> "credit_cards".
func NormalizeCategory(label string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "_")
}

// NormalizeCategories normalizes, deduplicates and sorts a provider's
// data-class labels.
func NormalizeCategories(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		c := NormalizeCategory(l)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)

	if len(out) == 0 {
		return nil
	}

	return out
}
