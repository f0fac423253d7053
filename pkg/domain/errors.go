package domain

import "errors"

// Validation errors returned by ExposureQuery.Validate and hygiene submission
// checks. The service layer wraps these into semantic bad-request errors.
var (
	ErrEmptyQuery            = errors.New("query needs an email or an identifier")
	ErrInvalidEmail          = errors.New("malformed email address")
	ErrIdentifierTooShort    = errors.New("identifier must be at least 3 characters")
	ErrUnknownIdentifierKind = errors.New("unknown identifier kind")
)
