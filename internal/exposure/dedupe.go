package exposure

import (
	"sort"
	"strings"

	"guardian/pkg/domain"
)

// providerSuffixes are qualifiers some providers append to breach names.
// They are stripped before names are compared so "Acme Leak 2021" and
// "ACME LEAK 2021 (verified)" reconcile to the same breach.
var providerSuffixes = []string{
	"(verified)",
	"(unverified)",
	"(combo list)",
	"(new)",
}

// normalizeBreachName lowercases a breach name, strips known provider
// suffixes and collapses whitespace.
func normalizeBreachName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	for changed := true; changed; {
		changed = false
		for _, suffix := range providerSuffixes {
			if strings.HasSuffix(n, suffix) {
				n = strings.TrimSpace(strings.TrimSuffix(n, suffix))
				changed = true
			}
		}
	}

	return strings.Join(strings.Fields(n), " ")
}

// sameBreach reports whether two records describe the same incident: their
// normalized names match, or they share an observed date and at least one
// compromised data category.
func sameBreach(a, b domain.BreachRecord) bool {
	if normalizeBreachName(a.BreachName) == normalizeBreachName(b.BreachName) {
		return true
	}
	if a.ObservedDate.IsZero() || b.ObservedDate.IsZero() {
		return false
	}
	if !a.ObservedDate.Equal(b.ObservedDate) {
		return false
	}
	for _, ca := range a.DataCategories {
		for _, cb := range b.DataCategories {
			if ca == cb {
				return true
			}
		}
	}

	return false
}

// mergeBreach folds b into a: categories are unioned and the richer
// description wins. The first-seen record keeps its source and name.
func mergeBreach(a, b domain.BreachRecord) domain.BreachRecord {
	seen := make(map[string]struct{}, len(a.DataCategories)+len(b.DataCategories))
	union := make([]string, 0, len(a.DataCategories)+len(b.DataCategories))
	for _, c := range append(append([]string{}, a.DataCategories...), b.DataCategories...) {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		union = append(union, c)
	}
	sort.Strings(union)
	a.DataCategories = union

	if len(b.Description) > len(a.Description) {
		a.Description = b.Description
	}
	if a.ObservedDate.IsZero() {
		a.ObservedDate = b.ObservedDate
	}

	return a
}

// dedupeBreaches reconciles breach records across sources. The operation is
// idempotent: merging an already-merged list again yields the same result.
func dedupeBreaches(records []domain.BreachRecord) []domain.BreachRecord {
	out := make([]domain.BreachRecord, 0, len(records))
	for _, record := range records {
		merged := false
		for i := range out {
			if sameBreach(out[i], record) {
				out[i] = mergeBreach(out[i], record)
				merged = true

				break
			}
		}
		if !merged {
			out = append(out, record)
		}
	}

	return out
}

// normalizePasteURL produces the deduplication key for a paste location:
// scheme and trailing slash are ignored, as is any fragment.
func normalizePasteURL(raw string) string {
	u := strings.TrimSpace(raw)
	if i := strings.Index(u, "#"); i >= 0 {
		u = u[:i]
	}
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	u = strings.TrimSuffix(u, "/")

	return strings.ToLower(u)
}

// dedupePastes collapses mentions of the same paste. On collision the longer
// excerpt wins and the sensitive flag is sticky.
func dedupePastes(pastes []domain.PasteMention) []domain.PasteMention {
	index := make(map[string]int, len(pastes))
	out := make([]domain.PasteMention, 0, len(pastes))
	for _, paste := range pastes {
		k := normalizePasteURL(paste.URL)
		i, ok := index[k]
		if !ok {
			index[k] = len(out)
			out = append(out, paste)

			continue
		}
		if len(paste.Excerpt) > len(out[i].Excerpt) {
			out[i].Excerpt = paste.Excerpt
			out[i].Title = paste.Title
		}
		if paste.ContainsSensitiveData {
			out[i].ContainsSensitiveData = true
		}
		if out[i].ObservedDate.IsZero() {
			out[i].ObservedDate = paste.ObservedDate
		}
	}

	return out
}

// sortBreaches orders records most recent first; undated records sort after
// all dated ones in source-priority order.
func sortBreaches(records []domain.BreachRecord, priorities map[string]int) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		switch {
		case !a.ObservedDate.IsZero() && !b.ObservedDate.IsZero():
			return a.ObservedDate.After(b.ObservedDate)
		case !a.ObservedDate.IsZero():
			return true
		case !b.ObservedDate.IsZero():
			return false
		default:
			return priorities[a.SourceName] < priorities[b.SourceName]
		}
	})
}

// sortPastes applies the same ordering rule to paste mentions.
func sortPastes(pastes []domain.PasteMention, priorities map[string]int) {
	sort.SliceStable(pastes, func(i, j int) bool {
		a, b := pastes[i], pastes[j]
		switch {
		case !a.ObservedDate.IsZero() && !b.ObservedDate.IsZero():
			return a.ObservedDate.After(b.ObservedDate)
		case !a.ObservedDate.IsZero():
			return true
		case !b.ObservedDate.IsZero():
			return false
		default:
			return priorities[a.Source] < priorities[b.Source]
		}
	})
}

// sortMentions puts confirmed profile matches first, then orders by platform
// for stable output.
func sortMentions(mentions []domain.SocialMention) {
	sort.SliceStable(mentions, func(i, j int) bool {
		if mentions[i].Confirmed != mentions[j].Confirmed {
			return mentions[i].Confirmed
		}

		return mentions[i].Platform < mentions[j].Platform
	})
}
