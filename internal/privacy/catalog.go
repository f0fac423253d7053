// Package privacy provides the anti-doxxing toolkit: opt-out guides for data
// brokers and platforms, template-based data removal request letters, and a
// recurring privacy maintenance checklist. All content is a fixed catalog;
// nothing here performs I/O.
package privacy

// GuideStep is one action within a removal guide.
type GuideStep struct {
	Step    string `json:"step"`
	Details string `json:"details"`
}

// RemovalGuide describes how to get personal information removed from one
// platform or broker.
type RemovalGuide struct {
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	OptOutURL   string      `json:"optOutUrl,omitempty"`
	Steps       []GuideStep `json:"steps"`
}

// Guide categories.
const (
	CategoryDataBrokers      = "data_brokers"
	CategorySocialMedia      = "social_media"
	CategorySearchEngines    = "search_engines"
	CategoryGeneralResources = "general_resources"
)

// guideCatalog holds the fixed removal guides, grouped by category through
// the Category field. Order is the presentation order.
var guideCatalog = []RemovalGuide{
	{
		Name:        "Acxiom",
		Category:    CategoryDataBrokers,
		Description: "One of the largest data brokers worldwide.",
		OptOutURL:   "https://isapps.acxiom.com/optout/optout.aspx",
		Steps: []GuideStep{
			{Step: "Open the opt-out link", Details: "Navigate to the Acxiom opt-out page."},
			{Step: "Fill in the form", Details: "Enter your name, address and email."},
			{Step: "Confirm the request by email", Details: "A confirmation email must be validated."},
		},
	},
	{
		Name:        "Experian",
		Category:    CategoryDataBrokers,
		Description: "Credit bureau and consumer data broker.",
		OptOutURL:   "https://www.experian.com/privacy/opting_out",
		Steps: []GuideStep{
			{Step: "Open the privacy portal", Details: "Navigate to the Experian opt-out page."},
			{Step: "Select the marketing exclusion option", Details: "Choose removal from marketing lists."},
			{Step: "Verify your identity", Details: "Proof of identity is required for processing."},
		},
	},
	{
		Name:        "LexisNexis",
		Category:    CategoryDataBrokers,
		Description: "Legal information and business analytics provider.",
		OptOutURL:   "https://optout.lexisnexis.com/",
		Steps: []GuideStep{
			{Step: "Fill in the online form", Details: "Enter the personal information to be removed."},
			{Step: "Provide a copy of an ID document", Details: "Copies are required for verification."},
			{Step: "Wait for confirmation", Details: "Processing can take up to 30 days."},
		},
	},
	{
		Name:        "Whitepages",
		Category:    CategoryDataBrokers,
		Description: "People search and identity verification service.",
		OptOutURL:   "https://www.whitepages.com/suppression-requests",
		Steps: []GuideStep{
			{Step: "Find your listing", Details: "Search for your own profile URL on the site."},
			{Step: "Submit a suppression request", Details: "Paste the profile URL into the request form."},
			{Step: "Confirm by phone", Details: "An automated call verifies the request."},
		},
	},
	{
		Name:        "Facebook",
		Category:    CategorySocialMedia,
		Description: "Reporting personal information posted without consent.",
		Steps: []GuideStep{
			{Step: "Report the content", Details: "Use the report option on the post or profile."},
			{Step: "Escalate through the privacy form", Details: "File a privacy violation report if the content stays up."},
			{Step: "Document everything", Details: "Keep screenshots and URLs for follow-up."},
		},
	},
	{
		Name:        "Reddit",
		Category:    CategorySocialMedia,
		Description: "Reporting doxxing content on subreddits.",
		Steps: []GuideStep{
			{Step: "Report to the moderators", Details: "Use the subreddit's report flow for personal information."},
			{Step: "File a sitewide report", Details: "Reddit's content policy forbids posting personal information."},
		},
	},
	{
		Name:        "Google Search",
		Category:    CategorySearchEngines,
		Description: "Removing personal information from search results.",
		OptOutURL:   "https://support.google.com/websearch/troubleshooter/9685456",
		Steps: []GuideStep{
			{Step: "Collect the URLs", Details: "List every result page exposing your information."},
			{Step: "Submit the removal form", Details: "Explain the risk (doxxing, harassment, fraud)."},
			{Step: "Ask the site owner too", Details: "Removal from search does not delete the source page."},
		},
	},
	{
		Name:        "Search engine alerts",
		Category:    CategoryGeneralResources,
		Description: "Ongoing monitoring for new exposure.",
		Steps: []GuideStep{
			{Step: "Create alerts for your name", Details: "Get notified when your name newly appears online."},
			{Step: "Re-run exposure checks periodically", Details: "New breaches and pastes surface over time."},
		},
	},
}

// Guides returns the removal guide catalog in presentation order.
func Guides() []RemovalGuide {
	out := make([]RemovalGuide, len(guideCatalog))
	copy(out, guideCatalog)

	return out
}

// ChecklistItem is one recurring privacy maintenance task.
type ChecklistItem struct {
	Step    string `json:"step"`
	Details string `json:"details"`
}

var checklist = []ChecklistItem{
	{
		Step:    "Review privacy settings",
		Details: "Periodically revisit the settings of social networks and apps.",
	},
	{
		Step:    "Search for your own name",
		Details: "Use several search engines to see what is publicly visible.",
	},
	{
		Step:    "Monitor account activity",
		Details: "Check sign-in history for unauthorized access.",
	},
	{
		Step:    "Review connected applications",
		Details: "Remove third-party apps that still have access to your accounts.",
	},
	{
		Step:    "Set up name alerts",
		Details: "Create search alerts so new mentions of your name are reported to you.",
	},
}

// Checklist returns the recurring privacy maintenance checklist.
func Checklist() []ChecklistItem {
	out := make([]ChecklistItem, len(checklist))
	copy(out, checklist)

	return out
}
