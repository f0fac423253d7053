package privacy

import (
	"strings"

	"guardian/pkg/serrors"
)

// Data types a removal request can be generated for.
var supportedDataTypes = []string{
	"full_name",
	"home_address",
	"phone_number",
	"email_address",
	"social_media_profiles",
	"photos",
	"government_id",
	"financial_information",
}

// dataTypeLabels maps the technical data type names to the wording used
// inside the generated letters.
var dataTypeLabels = map[string]string{
	"full_name":             "my full name",
	"home_address":          "my home address",
	"phone_number":          "my phone number",
	"email_address":         "my email address",
	"social_media_profiles": "my social media profiles",
	"photos":                "my personal photos",
	"government_id":         "my government-issued ID details",
	"financial_information": "my financial information",
}

// RemovalRequest is a ready-to-send data removal letter with usage notes.
type RemovalRequest struct {
	Service      string `json:"service"`
	DataType     string `json:"dataType"`
	Subject      string `json:"subject"`
	Body         string `json:"body"`
	Instructions string `json:"instructions"`
	Notes        string `json:"notes,omitempty"`
}

// requestTemplate carries the per-service letter texts. The {data} marker is
// replaced with the human-readable data type label.
type requestTemplate struct {
	subject      string
	body         string
	instructions string
	notes        string
}

const genericService = "generic"

var requestTemplates = map[string]requestTemplate{
	genericService: {
		subject: "Request for erasure of personal data under GDPR (Article 17)",
		body: "Dear privacy team,\n\n" +
			"I hereby request the immediate removal of my personal data from your records, " +
			"in accordance with Article 17 of the General Data Protection Regulation.\n\n" +
			"Personal information appearing on your platform: {data}.\n" +
			"URL or location of the data (if known): [insert URL or section]\n\n" +
			"Under the GDPR you are legally required to respond within 30 days. " +
			"Please confirm by email once the data has been removed.\n\n" +
			"Kind regards,\n[your name]\n[your contact information]",
		instructions: "Personalize the template, send it to the company's data protection " +
			"address, keep a copy, and follow up if there is no answer within 30 days.",
		notes: "GDPR grants EU residents the right to erasure; outside the EU, check " +
			"local data protection law (for example the CCPA in California).",
	},
	"data_brokers": {
		subject: "Request for erasure of personal data under GDPR (Article 17)",
		body: "Dear privacy team,\n\n" +
			"I hereby request the immediate removal of my personal data from your database " +
			"and website, in accordance with Article 17 of the General Data Protection Regulation.\n\n" +
			"Personal information appearing on your platform: {data}.\n" +
			"URL or location of the data (if known): [insert URL or section]\n\n" +
			"For identity verification I have attached [list documents, with sensitive fields redacted].\n\n" +
			"Under the GDPR you are legally required to respond within 30 days. " +
			"Please confirm by email once my data has been removed completely.\n\n" +
			"Kind regards,\n[your name]\n[your contact information]",
		instructions: "Attach redacted proof of identity, send the request to the broker's " +
			"data protection address, keep a copy, and follow up within 30 days.",
		notes: "Many brokers also offer a web opt-out form; the letter is the fallback " +
			"when the form is missing or ignored.",
	},
	"facebook": {
		subject: "Request for removal of personal content posted without consent",
		body: "To the Facebook support team,\n\n" +
			"I am writing to request the urgent removal of personal information posted " +
			"without my consent on your platform.\n\n" +
			"Type of information: {data}.\n" +
			"URL of the post or content: [insert exact link]\n" +
			"Account or page that posted it: [username or page]\n\n" +
			"I have tried the platform's reporting tools but the content remains public. " +
			"This exposure endangers my safety and privacy, and I request its immediate " +
			"removal under your privacy policy and terms of use.\n\n" +
			"Respectfully,\n[your name]\n[your contact information]",
		instructions: "Provide exact URLs; without them the content cannot be located. " +
			"Resend the request if there is no answer within 72 hours.",
		notes: "Requests involving highly sensitive data or personal safety are " +
			"prioritized; state clearly if you are at risk.",
	},
	"google": {
		subject: "Request for removal of personal information from search results",
		body: "To the Google support team,\n\n" +
			"I request the removal of the following URLs from search results because they " +
			"expose personal information that endangers my privacy and safety.\n\n" +
			"URLs containing my personal information:\n1. [insert full URL]\n2. [insert full URL]\n\n" +
			"Type of personal information exposed: {data}.\n" +
			"Search terms showing these results: [for example, my full name]\n\n" +
			"I have contacted the site owners to remove the content, with the following " +
			"outcome: [describe]. Under Google's personal information removal policy and " +
			"GDPR Article 17, I request the removal of these URLs.\n\n" +
			"Respectfully,\n[your name]\n[your contact information]",
		instructions: "Use the official removal form, list exact URLs, explain the concrete " +
			"risk, and attach screenshots highlighting the exposed information.",
		notes: "Content of public interest is usually not removed; focus the request on " +
			"the specific risk to you.",
	},
}

// GenerateRemovalRequest renders the removal letter for a data type and
// target service. Unknown services fall back to the generic template;
// unknown data types are rejected.
func GenerateRemovalRequest(dataType, service string) (RemovalRequest, error) {
	label, ok := dataTypeLabels[dataType]
	if !ok {
		return RemovalRequest{}, serrors.With(serrors.ErrBadRequest,
			"unsupported data type %q, valid types are: %s",
			dataType, strings.Join(supportedDataTypes, ", "))
	}

	tmpl, ok := requestTemplates[service]
	if !ok {
		tmpl = requestTemplates[genericService]
	}

	return RemovalRequest{
		Service:      service,
		DataType:     dataType,
		Subject:      tmpl.subject,
		Body:         strings.ReplaceAll(tmpl.body, "{data}", label),
		Instructions: tmpl.instructions,
		Notes:        tmpl.notes,
	}, nil
}
