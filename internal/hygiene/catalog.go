package hygiene

// scoreBand selects which catalog entry a category recommendation is drawn
// from. Bands map directly to recommendation priority.
type scoreBand int

const (
	bandHigh   scoreBand = iota // score < 30
	bandMedium                  // 30-59
	bandLow                     // 60-79
)

// recommendationCatalog holds the fixed per-category, per-band remediation
// texts. Scoring never assembles freeform strings; every recommendation a
// report can contain is listed here.
var recommendationCatalog = map[string]map[scoreBand]string{
	"account_security": {
		bandHigh:   "set a unique password for every account, starting with email and banking, and turn on two-factor authentication today",
		bandMedium: "adopt a password manager and enable two-factor authentication on your remaining important accounts",
		bandLow:    "extend two-factor authentication to the last accounts still protected by password only",
	},
	"device_security": {
		bandHigh:   "enable automatic updates and lock screens on all devices, and set up a first backup now",
		bandMedium: "schedule automatic backups and stop postponing system updates",
		bandLow:    "verify that backups actually restore and that every device locks automatically",
	},
	"data_sharing": {
		bandHigh:   "stop filling optional personal fields in online forms and revoke permissions from apps you no longer use",
		bandMedium: "review app permissions quarterly and avoid sensitive logins on public networks without a VPN",
		bandLow:    "keep limiting form data to required fields and prefer trusted networks for sensitive accounts",
	},
	"social_media": {
		bandHigh:   "set your profiles to private, remove location tags from past posts and prune unknown contacts",
		bandMedium: "review the privacy settings of each social account and be selective about new contact requests",
		bandLow:    "do an occasional pass over old posts for location or routine details worth removing",
	},
	"browsing_habits": {
		bandHigh:   "never enter credentials on pages reached from email links; type addresses yourself and check for a secure connection",
		bandMedium: "verify senders before clicking links and download software only from official sources",
		bandLow:    "stay with official download sources and keep checking the address bar before logging in",
	},
}

// fallbackCatalog covers categories added through a questionnaire override
// that have no dedicated entry yet.
var fallbackCatalog = map[scoreBand]string{
	bandHigh:   "this area needs immediate attention; review every habit it covers",
	bandMedium: "build better routines in this area over the coming weeks",
	bandLow:    "minor improvements in this area would raise your score further",
}

// recommendationText resolves the catalog entry for a category and band.
func recommendationText(category string, band scoreBand) string {
	if texts, ok := recommendationCatalog[category]; ok {
		if text, ok := texts[band]; ok {
			return text
		}
	}

	return fallbackCatalog[band]
}
