package domain

import (
	"regexp"
	"strings"
)

// IdentifierKind classifies the non-email identity attribute of a query.
type IdentifierKind string

const (
	// IdentifierUsername is a platform handle, checked against social
	// platforms and paste sites.
	IdentifierUsername IdentifierKind = "USERNAME"
	// IdentifierFullName is a person's real name, only searchable as free text.
	IdentifierFullName IdentifierKind = "FULL_NAME"
)

// emailPattern is the format check applied before any provider fan-out.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ExposureQuery describes one exposure check request. At least one of Email
// and Identifier must be present. A query is immutable once issued; re-running
// it produces a new report.
type ExposureQuery struct {
	// Email is the address to check against breach databases and paste sites.
	Email string `json:"email,omitempty"`
	// Identifier is a username or full name to check against social
	// platforms and paste sites.
	Identifier string `json:"identifier,omitempty"`
	// IdentifierKind tells how Identifier should be interpreted. It is
	// ignored when Identifier is empty.
	IdentifierKind IdentifierKind `json:"identifierKind,omitempty"`
}

// Validate rejects queries with neither attribute, malformed emails, and
// unusably short identifiers. It normalizes whitespace in place semantics by
// returning the cleaned query.
func (q ExposureQuery) Validate() (ExposureQuery, error) {
	q.Email = strings.TrimSpace(q.Email)
	q.Identifier = strings.TrimSpace(q.Identifier)

	if q.Email == "" && q.Identifier == "" {
		return q, ErrEmptyQuery
	}
	if q.Email != "" && !emailPattern.MatchString(q.Email) {
		return q, ErrInvalidEmail
	}
	if q.Identifier != "" {
		if len(q.Identifier) < 3 {
			return q, ErrIdentifierTooShort
		}
		switch q.IdentifierKind {
		case IdentifierUsername, IdentifierFullName:
		case "":
			q.IdentifierKind = IdentifierUsername
		default:
			return q, ErrUnknownIdentifierKind
		}
	}

	return q, nil
}
