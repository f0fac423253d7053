package monitor

import (
	"context"
	"errors"
	"fmt"

	"guardian/internal/exposure"
	"guardian/internal/hygiene"
	"guardian/pkg/domain"
	"guardian/pkg/logger"
	"guardian/pkg/metrics"
	"guardian/pkg/serrors"
	"guardian/pkg/storage"

	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// monitor is the concrete implementation of the Monitor interface. It owns
// no logic of its own beyond validation, persistence and error translation.
type monitor struct {
	storage    storage.Storage
	aggregator *exposure.Aggregator
	scorer     *hygiene.Scorer
}

// CheckExposure validates the query, runs the aggregation and persists the
// outcome. Aggregation itself never fails; only validation and persistence
// can surface errors.
func (m *monitor) CheckExposure(ctx context.Context,
	ownerID domain.OwnerID,
	query domain.ExposureQuery) (*domain.Report, error) {
	if ownerID.IsZero() {
		return nil, serrors.With(serrors.ErrUnauthorized, "missing owner")
	}

	query, err := query.Validate()
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid exposure query")
	}

	combined := m.aggregator.Aggregate(ctx, query)
	report := domain.Report{
		OwnerID:   ownerID,
		Kind:      domain.ReportKindExposure,
		RiskLevel: combined.RiskLevel,
		Exposure:  &combined,
	}

	return m.persist(ctx, report)
}

// AssessHygiene scores a submission and persists the outcome.
func (m *monitor) AssessHygiene(ctx context.Context,
	ownerID domain.OwnerID,
	answers map[string]domain.HygieneAnswer) (*domain.Report, error) {
	if ownerID.IsZero() {
		return nil, serrors.With(serrors.ErrUnauthorized, "missing owner")
	}

	scored, err := m.scorer.Score(ctx, answers)
	if err != nil {
		return nil, fmt.Errorf("could not score submission: %w", err)
	}

	report := domain.Report{
		OwnerID:   ownerID,
		Kind:      domain.ReportKindHygiene,
		RiskLevel: scored.RiskLevel,
		Hygiene:   &scored,
	}

	return m.persist(ctx, report)
}

// persist saves a finished report. On storage failure the computed report is
// returned together with a retryable error instead of being discarded.
func (m *monitor) persist(ctx context.Context, report domain.Report) (*domain.Report, error) {
	stored, err := m.storage.StoreReport(ctx, report)
	if err != nil {
		logger.Error(ctx, "could not persist report",
			zap.String("kind", string(report.Kind)),
			zap.Error(err))

		return &report, serrors.Wrap(serrors.ErrUnavailable, err, "could not persist report")
	}
	metrics.ReportsSaved.WithLabelValues(string(stored.Kind)).Inc()

	return stored, nil
}

// Questionnaire returns the active questionnaire definition.
func (m *monitor) Questionnaire() domain.Questionnaire {
	return m.scorer.Questionnaire()
}

// Report fetches a single report by ID for the given owner.
func (m *monitor) Report(ctx context.Context,
	ownerID domain.OwnerID,
	reportID domain.ReportID) (*domain.Report, error) {
	report, err := m.storage.ReportByID(ctx, ownerID, reportID)
	if err != nil {
		return nil, fmt.Errorf("could not get report: %w", err)
	}
	if report == nil {
		return nil, serrors.With(serrors.ErrNotFound, "report not found")
	}

	return report, nil
}

// History returns one page of the owner's report history, newest first.
func (m *monitor) History(ctx context.Context,
	ownerID domain.OwnerID,
	kind domain.ReportKind,
	page uint,
	pageSize uint) ([]domain.Report, uint, error) {
	switch kind {
	case "", domain.ReportKindExposure, domain.ReportKindHygiene:
	default:
		return nil, 0, serrors.With(serrors.ErrBadRequest, "unknown report kind %q", kind)
	}
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	result, err := m.storage.OwnerReports(ctx, ownerID, kind, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("could not list reports: %w", err)
	}

	return result.Reports, result.TotalPages, nil
}

// Delete removes a report from the owner's history.
func (m *monitor) Delete(ctx context.Context,
	ownerID domain.OwnerID,
	reportID domain.ReportID) error {
	deleted, err := m.storage.DeleteReport(ctx, ownerID, reportID)
	if err != nil {
		return fmt.Errorf("could not delete report: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "report not found")
	}

	return nil
}

// Ensure monitor conforms to the Monitor interface at compile time.
var _ Monitor = (*monitor)(nil)

// New creates a Monitor backed by the provided storage and engines.
func New(st storage.Storage, aggregator *exposure.Aggregator, scorer *hygiene.Scorer) Monitor {
	return &monitor{
		storage:    st,
		aggregator: aggregator,
		scorer:     scorer,
	}
}

// IsRetryable reports whether a failed save left the caller with a report it
// can submit again.
func IsRetryable(err error) bool {
	return errors.Is(err, serrors.ErrUnavailable)
}
