// Package source defines the capability interface consumed by the exposure
// aggregator and the normalized finding sets providers must produce.
// Provider-specific parsing lives entirely inside the adapter packages
// (hibp, leakcheck, pastesearch, socialprofile); the aggregator only ever
// sees BreachRecord/PasteMention/SocialMention values.
package source

import (
	"context"
	"guardian/pkg/domain"
)

// AttributeKind names the identity attribute a lookup runs against.
type AttributeKind string

const (
	AttributeEmail    AttributeKind = "EMAIL"
	AttributeUsername AttributeKind = "USERNAME"
	AttributeFullName AttributeKind = "FULL_NAME"
)

// Attribute is one identity attribute extracted from an exposure query.
type Attribute struct {
	Value string
	Kind  AttributeKind
}

// Findings is the normalized result set of a single lookup. A client fills
// only the slices matching its finding category.
type Findings struct {
	Breaches []domain.BreachRecord
	Pastes   []domain.PasteMention
	Mentions []domain.SocialMention
}

// Empty reports whether the lookup produced no findings at all.
func (f Findings) Empty() bool {
	return len(f.Breaches) == 0 && len(f.Pastes) == 0 && len(f.Mentions) == 0
}

// Client is the abstraction for one external data source. Implementations
// must be safe for concurrent use; the aggregator fans out to all applicable
// clients at once, each bounded by its own timeout.
type Client interface {
	// Name identifies the provider in logs, metrics and SourceName fields.
	Name() string
	// Priority orders providers when findings carry no date: breach-database
	// sources sort before generic-search sources. Lower is earlier.
	Priority() int
	// Supports reports whether the client can look up the given attribute kind.
	Supports(kind AttributeKind) bool
	// Lookup fetches raw results for one attribute and returns them in
	// normalized shape. Errors are absorbed by the aggregator into an empty
	// result for this client, never propagated into scoring.
	Lookup(ctx context.Context, attr Attribute) (Findings, error)
}
