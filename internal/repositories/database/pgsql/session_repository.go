package pgsql

import (
	"context"
	"errors"

	"github.com/ninebox-labs/talent_review_app/internal/apperrors"
	portsrepo "github.com/ninebox-labs/talent_review_app/internal/core/ports/repositories"
	"github.com/ninebox-labs/talent_review_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSessionRepository persists one session record per user id in the
// review_sessions table. All writes run inside a transaction so a crash
// mid-write leaves the previous record intact.
type PgxSessionRepository struct {
	BaseRepository
}

// newPgxSessionRepository creates a new repository for session records.
func newPgxSessionRepository(pool *pgxpool.Pool) portsrepo.SessionRepositoryFacade {
	return &PgxSessionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxSessionRepository implements portsrepo.SessionRepositoryFacade
var _ portsrepo.SessionRepositoryFacade = (*PgxSessionRepository)(nil)

var FULL_SESSION_SELECT_QUERY = `
SELECT
	s.user_id, s.session_id, s.original_filename, s.original_file_path, s.sheet_name,
	s.created_at, s.updated_at, s.original_employees, s.current_employees, s.events
FROM review_sessions s
`

// getSessions runs the select query with the given filter and collects rows.
func (r *PgxSessionRepository) getSessions(ctx context.Context, filterQuery string, args ...any) ([]models.ReviewSession, error) {
	query := FULL_SESSION_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sessions", err)
	}
	defer rows.Close()
	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ReviewSession])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []models.ReviewSession{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect session rows", err)
	}
	return recs, nil
}

func (r *PgxSessionRepository) SaveSession(ctx context.Context, rec models.ReviewSession) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	query := `
		INSERT INTO review_sessions (
			user_id, session_id, original_filename, original_file_path, sheet_name,
			created_at, updated_at, original_employees, current_employees, events
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			session_id = EXCLUDED.session_id,
			original_filename = EXCLUDED.original_filename,
			original_file_path = EXCLUDED.original_file_path,
			sheet_name = EXCLUDED.sheet_name,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at,
			original_employees = EXCLUDED.original_employees,
			current_employees = EXCLUDED.current_employees,
			events = EXCLUDED.events;
	`
	_, err = tx.Exec(ctx, query,
		rec.UserID,
		rec.SessionID,
		rec.OriginalFilename,
		rec.OriginalFilePath,
		rec.SheetName,
		rec.CreatedAt,
		rec.UpdatedAt,
		rec.OriginalEmployees,
		rec.CurrentEmployees,
		rec.Events,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save session for user "+rec.UserID, err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxSessionRepository) FindSessionByUserID(ctx context.Context, userID string) (*models.ReviewSession, error) {
	recs, err := r.getSessions(ctx, `WHERE s.user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &recs[0], nil
}

func (r *PgxSessionRepository) FindAllSessions(ctx context.Context) ([]models.ReviewSession, error) {
	return r.getSessions(ctx, `ORDER BY s.user_id`)
}

func (r *PgxSessionRepository) DeleteSession(ctx context.Context, userID string) (bool, error) {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM review_sessions WHERE user_id = $1;`, userID)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to delete session for user "+userID, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
