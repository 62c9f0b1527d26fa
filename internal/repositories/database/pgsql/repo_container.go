package pgsql

import (
	portsrepo "github.com/ninebox-labs/talent_review_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the database-backed repositories. The upload
// store lives on the filesystem and is attached by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool, uploadStore portsrepo.UploadStoreFacade) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SessionRepo: newPgxSessionRepository(dbPool),
		UploadStore: uploadStore,
	}
}
