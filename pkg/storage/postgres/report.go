package postgres

import (
	"context"
	"errors"
	"fmt"

	"guardian/pkg/domain"
	"guardian/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	reportsTable = "reports"
)

// ErrMissingOwner is returned when a report without an owner is stored.
var ErrMissingOwner = errors.New("report has no owner")

// StoreReport inserts a report and returns the stored row.
func (p *PgSQL) StoreReport(ctx context.Context, report domain.Report) (*domain.Report, error) {
	if report.OwnerID.IsZero() {
		return nil, ErrMissingOwner
	}

	var pgReport PgReport
	if err := pgReport.FromDomain(report); err != nil {
		return nil, err
	}

	var row PgReport
	found, err := p.Builder.Insert(reportsTable).
		Rows(pgReport).
		Returning(&PgReport{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store report into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store report into pg: no row returned")
	}

	return row.ToDomain()
}

// ReportByID returns a report by its ID for the given owner, excluding
// soft-deleted rows.
func (p *PgSQL) ReportByID(ctx context.Context,
	ownerID domain.OwnerID,
	id domain.ReportID) (*domain.Report, error) {
	var row PgReport
	found, err := p.Builder.From(reportsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("owner_id").Eq(uuid.UUID(ownerID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch report by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// OwnerReports returns one page of the owner's reports ordered newest first,
// together with the total page count for the applied filter. Page numbering
// starts at 1; page zero is treated as the first page.
func (p *PgSQL) OwnerReports(ctx context.Context,
	ownerID domain.OwnerID,
	kind domain.ReportKind,
	page uint,
	pageSize uint) (storage.ReportPage, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		return storage.ReportPage{}, fmt.Errorf("page size must be positive")
	}

	w := []goqu.Expression{
		goqu.I("owner_id").Eq(uuid.UUID(ownerID)),
		goqu.I("deleted_at").IsNull(),
	}
	if kind != "" {
		w = append(w, goqu.I("kind").Eq(string(kind)))
	}

	var total int64
	found, err := p.Builder.From(reportsTable).
		Select(goqu.COUNT(goqu.Star())).
		Where(w...).
		Executor().ScanValContext(ctx, &total)
	if err != nil || !found {
		return storage.ReportPage{}, fmt.Errorf("could not count owner reports in pg: %w", err)
	}

	var rows []PgReport
	if err := p.Builder.From(reportsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.ReportPage{}, fmt.Errorf("could not fetch owner reports from pg: %w", err)
	}

	domainRows, err := pgReportsToDomain(rows)
	if err != nil {
		return storage.ReportPage{}, err
	}

	totalPages := (uint(total) + pageSize - 1) / pageSize //nolint: gosec

	return storage.ReportPage{
		Reports:    domainRows,
		TotalPages: totalPages,
	}, nil
}

// DeleteReport performs a soft delete by setting the deleted_at timestamp for
// a given report id and owner, returning the deleted record.
func (p *PgSQL) DeleteReport(ctx context.Context,
	ownerID domain.OwnerID,
	id domain.ReportID) (*domain.Report, error) {
	var row PgReport
	found, err := p.Builder.Update(reportsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("owner_id").Eq(uuid.UUID(ownerID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgReport{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete report in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// Ensure PgSQL conforms to the storage interfaces at compile time.
var _ storage.Storage = (*PgSQL)(nil)
