package storage

import (
	"context"

	"guardian/pkg/domain"
)

// ReportPage groups one page of an owner's report history together with the
// total page count for the applied filter.
type ReportPage struct {
	// Reports contains the current page, newest first.
	Reports []domain.Report
	// TotalPages is the number of pages available with the requested page
	// size. It is zero when the owner has no matching reports.
	TotalPages uint
}

// ReportStorage defines persistence and query operations for generated
// reports. Implementations must exclude soft-deleted records from every read.
type ReportStorage interface {
	// StoreReport inserts a report and returns the stored row as it exists in
	// the database, including generated fields.
	StoreReport(ctx context.Context, report domain.Report) (*domain.Report, error)
	// ReportByID fetches a report by its ID for the given owner. Returns nil
	// when not found or soft-deleted.
	ReportByID(ctx context.Context, ownerID domain.OwnerID, id domain.ReportID) (*domain.Report, error)
	// OwnerReports returns one page of the owner's reports ordered newest
	// first. Page numbering starts at 1. If kind is non-empty, results are
	// filtered to reports of that kind.
	OwnerReports(ctx context.Context,
		ownerID domain.OwnerID,
		kind domain.ReportKind,
		page uint,
		pageSize uint) (ReportPage, error)
	// DeleteReport performs a soft delete for the given report ID and owner
	// and returns the deleted report, or nil if it was not found.
	DeleteReport(ctx context.Context, ownerID domain.OwnerID, id domain.ReportID) (*domain.Report, error)
}
