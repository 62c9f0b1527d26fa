package repositories

import (
	"context"

	"github.com/ninebox-labs/talent_review_app/internal/models"
)

// SessionRecordReader defines read operations over persisted session
// records. The durable store deals in opaque records; deserialization
// belongs to the caller so that one corrupted record cannot poison a bulk
// read.
type SessionRecordReader interface {
	// FindSessionByUserID retrieves the record for a user, or ErrNotFound.
	FindSessionByUserID(ctx context.Context, userID string) (*models.ReviewSession, error)

	// FindAllSessions retrieves every stored record, for startup restoration.
	FindAllSessions(ctx context.Context) ([]models.ReviewSession, error)
}

// SessionRecordWriter defines write operations over persisted session
// records.
type SessionRecordWriter interface {
	// SaveSession upserts the record for its user id inside a transaction:
	// it either fully succeeds or leaves the previous record intact.
	SaveSession(ctx context.Context, rec models.ReviewSession) error

	// DeleteSession removes the record for a user. Idempotent; reports
	// whether a record existed.
	DeleteSession(ctx context.Context, userID string) (bool, error)
}

// SessionRepositoryFacade combines all session record operations.
type SessionRepositoryFacade interface {
	SessionRecordReader
	SessionRecordWriter
}
