package repositories

// RepositoryProvider holds instances of all repository facades, wired once
// at startup and handed to the service container.
type RepositoryProvider struct {
	SessionRepo SessionRepositoryFacade
	UploadStore UploadStoreFacade
}
