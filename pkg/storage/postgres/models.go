package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"guardian/pkg/domain"

	"github.com/google/uuid"
)

type PgReport struct {
	ID      uuid.UUID `db:"id" goqu:"skipinsert"`
	OwnerID uuid.UUID `db:"owner_id"`

	Kind      string          `db:"kind"`
	RiskLevel string          `db:"risk_level"`
	Payload   json.RawMessage `db:"payload"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgReport) ToDomain() (*domain.Report, error) {
	out := domain.Report{
		ID:        domain.ReportID(p.ID),
		OwnerID:   domain.OwnerID(p.OwnerID),
		Kind:      domain.ReportKind(p.Kind),
		RiskLevel: domain.RiskLevel(p.RiskLevel),
		CreatedAt: p.CreatedAt,
		DeletedAt: p.DeletedAt.Time,
	}

	// the payload column holds the kind-specific report body
	switch out.Kind {
	case domain.ReportKindExposure:
		var exposure domain.CombinedExposureReport
		if err := json.Unmarshal(p.Payload, &exposure); err != nil {
			return nil, fmt.Errorf("could not unmarshal exposure payload: %w", err)
		}
		out.Exposure = &exposure
	case domain.ReportKindHygiene:
		var hygiene domain.HygieneReport
		if err := json.Unmarshal(p.Payload, &hygiene); err != nil {
			return nil, fmt.Errorf("could not unmarshal hygiene payload: %w", err)
		}
		out.Hygiene = &hygiene
	default:
		return nil, fmt.Errorf("unknown report kind %q", p.Kind)
	}

	return &out, nil
}

func (p *PgReport) FromDomain(report domain.Report) error {
	var (
		payload []byte
		err     error
	)
	switch report.Kind {
	case domain.ReportKindExposure:
		payload, err = json.Marshal(report.Exposure)
	case domain.ReportKindHygiene:
		payload, err = json.Marshal(report.Hygiene)
	default:
		return fmt.Errorf("unknown report kind %q", report.Kind)
	}
	if err != nil {
		return fmt.Errorf("could not marshal report payload: %w", err)
	}

	*p = PgReport{
		ID:        uuid.UUID(report.ID),
		OwnerID:   uuid.UUID(report.OwnerID),
		Kind:      string(report.Kind),
		RiskLevel: string(report.RiskLevel),
		Payload:   payload,
		CreatedAt: report.CreatedAt,
		DeletedAt: sql.NullTime{
			Time:  report.DeletedAt,
			Valid: !report.DeletedAt.IsZero(),
		},
	}

	return nil
}

func pgReportsToDomain(reports []PgReport) ([]domain.Report, error) {
	out := make([]domain.Report, 0, len(reports))
	for _, report := range reports {
		d, err := report.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
