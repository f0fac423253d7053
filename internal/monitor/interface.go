// Package monitor is the application service tying the exposure and hygiene
// engines to report persistence. Handlers and CLI commands talk to this
// interface only.
package monitor

import (
	"context"

	"guardian/pkg/domain"
)

//go:generate mockgen -package mockmonitor -source=interface.go -destination=mock/mockmonitor.go *
type Monitor interface {
	// CheckExposure runs one exposure check for the owner and persists the
	// resulting report. When persistence fails the computed report is still
	// returned alongside the error so callers can retry the save.
	CheckExposure(ctx context.Context, ownerID domain.OwnerID, query domain.ExposureQuery) (*domain.Report, error)
	// AssessHygiene scores a questionnaire submission for the owner and
	// persists the resulting report, with the same persistence semantics as
	// CheckExposure.
	AssessHygiene(ctx context.Context,
		ownerID domain.OwnerID,
		answers map[string]domain.HygieneAnswer) (*domain.Report, error)
	// Questionnaire returns the active questionnaire definition.
	Questionnaire() domain.Questionnaire
	// Report fetches one of the owner's reports by ID.
	Report(ctx context.Context, ownerID domain.OwnerID, reportID domain.ReportID) (*domain.Report, error)
	// History lists the owner's reports newest first and returns the total
	// page count. An empty kind lists both report kinds.
	History(ctx context.Context,
		ownerID domain.OwnerID,
		kind domain.ReportKind,
		page uint,
		pageSize uint) ([]domain.Report, uint, error)
	// Delete removes one of the owner's reports from history.
	Delete(ctx context.Context, ownerID domain.OwnerID, reportID domain.ReportID) error
}
