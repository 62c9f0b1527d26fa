package services

import (
	portsrepo "github.com/ninebox-labs/talent_review_app/internal/core/ports/repositories"
	portssvc "github.com/ninebox-labs/talent_review_app/internal/core/ports/services"
	"github.com/ninebox-labs/talent_review_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Session = NewSessionService(
		repos.SessionRepo,
		WithUploadStore(repos.UploadStore),
		WithStorageTimeout(cfg.StorageTimeout),
	)

	return container
}
