// Package narrative defines the optional plain-language summary generator.
// Reports stay fully usable without one; callers treat a generation failure
// as a missing summary, never as a failed report.
package narrative

import (
	"context"

	"guardian/pkg/domain"
)

//go:generate mockgen -destination mock/mocknarrative.go -package mocknarrative . Generator

// Generator produces a short human-readable summary of a hygiene assessment.
type Generator interface {
	Summarize(ctx context.Context, report domain.HygieneReport) (string, error)
}
