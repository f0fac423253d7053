package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportID uniquely identifies a persisted report. It is assigned once, at
// persistence time, and is the sole external handle to the report.
type ReportID uuid.UUID

// IsZero reports whether the ID has been assigned yet.
func (id ReportID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// String returns the canonical UUID string form.
func (id ReportID) String() string { return uuid.UUID(id).String() }

// MarshalText implements encoding.TextMarshaler so the ID serializes as its
// canonical UUID string instead of a byte array.
func (id ReportID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() } //nolint: wrapcheck

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ReportID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data) //nolint: wrapcheck
}

// ReportKind distinguishes the two report families kept in history.
type ReportKind string

const (
	ReportKindExposure ReportKind = "EXPOSURE"
	ReportKindHygiene  ReportKind = "HYGIENE"
)

// Report is the persisted envelope around a finished exposure check or
// hygiene assessment. Exactly one of Exposure and Hygiene is set, matching
// Kind. Reports are immutable once saved; re-running a check produces a new
// report, never mutates an old one.
type Report struct {
	// ID is assigned by the store on save and never reused.
	ID ReportID `json:"id"`
	// OwnerID is the identity owner the report belongs to.
	OwnerID OwnerID    `json:"ownerId"`
	Kind    ReportKind `json:"kind"`
	// RiskLevel mirrors the payload's top-level risk for cheap listing.
	RiskLevel RiskLevel `json:"riskLevel"`

	Exposure *CombinedExposureReport `json:"exposure,omitempty"`
	Hygiene  *HygieneReport          `json:"hygiene,omitempty"`

	// CreatedAt is when the report was persisted.
	CreatedAt time.Time `json:"createdAt"`
	// DeletedAt marks when the report was soft-deleted; zero means not deleted.
	DeletedAt time.Time `json:"-"`
}
