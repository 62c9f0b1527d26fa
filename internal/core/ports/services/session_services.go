package services

import (
	"context"

	"github.com/ninebox-labs/talent_review_app/internal/core/domain"
	"github.com/ninebox-labs/talent_review_app/internal/dto"
)

// SessionReaderSvc defines read-only session operations.
type SessionReaderSvc interface {
	// GetSession returns the session for a user, or ErrNotFound.
	GetSession(ctx context.Context, userID string) (*domain.Session, error)

	// ListEvents returns the session's active events in insertion order.
	ListEvents(ctx context.Context, userID string) ([]domain.ReviewEvent, error)
}

// SessionMutatorSvc defines the mutation operations. These are the only
// paths that may touch performance, potential, or flags; every one of them
// records through the event ledger and persists the whole session before
// returning.
type SessionMutatorSvc interface {
	// CreateSession builds a new session for a user from imported employees.
	// Fails with ErrConflict if one already exists, unless replace is set.
	CreateSession(ctx context.Context, userID string, req dto.CreateSessionRequest, replace bool) (*domain.Session, error)

	// MoveEmployee repositions an employee on the performance/potential grid.
	MoveEmployee(ctx context.Context, userID string, employeeID int64, performance, potential domain.Level) (*domain.Employee, error)

	// MoveEmployeeDonut repositions an employee on the donut calibration
	// axis (1-9, 5 = center).
	MoveEmployeeDonut(ctx context.Context, userID string, employeeID int64, donutPosition int) (*domain.Employee, error)

	// UpdateFlags replaces an employee's flag set, recording an event per
	// flag actually added or removed relative to the current set.
	UpdateFlags(ctx context.Context, userID string, employeeID int64, flags []string) (*domain.Employee, error)

	// UpdateFields applies edits to fields with no event semantics (notes).
	UpdateFields(ctx context.Context, userID string, employeeID int64, req dto.UpdateEmployeeFieldsRequest) (*domain.Employee, error)

	// DeleteSession removes a session from memory and the durable store.
	// Idempotent; reports whether a session existed.
	DeleteSession(ctx context.Context, userID string) (bool, error)
}

// SessionRestorerSvc defines the one-time startup restoration.
type SessionRestorerSvc interface {
	// RestoreAll loads every stored session into memory. Per-record
	// deserialization failures are isolated and counted, never fatal.
	RestoreAll(ctx context.Context) (restored int, failed int, err error)
}

// SessionSvcFacade combines all session service interfaces.
type SessionSvcFacade interface {
	SessionReaderSvc
	SessionMutatorSvc
	SessionRestorerSvc
}
