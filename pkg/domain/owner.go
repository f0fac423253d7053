package domain

import "github.com/google/uuid"

// OwnerID uniquely identifies the identity owner a report belongs to.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type OwnerID uuid.UUID

// IsZero reports whether the owner ID is unset. Reports cannot be persisted
// without an owner.
func (id OwnerID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// String returns the canonical UUID string form.
func (id OwnerID) String() string { return uuid.UUID(id).String() }

// MarshalText implements encoding.TextMarshaler so the ID serializes as its
// canonical UUID string instead of a byte array.
func (id OwnerID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() } //nolint: wrapcheck

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *OwnerID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data) //nolint: wrapcheck
}
