package repositories

// UploadStoreFacade manages the companion uploads area holding the original
// source file for each session, at paths derived from the session id.
// Exports regenerate from these untouched files.
type UploadStoreFacade interface {
	// StoreFromPath copies the file at srcPath into the uploads area for the
	// session and returns the stored path.
	StoreFromPath(sessionID, filename, srcPath string) (string, error)

	// Exists reports whether a previously stored path still resolves to a
	// file. Checked on restore to decide degraded mode.
	Exists(path string) bool

	// RemoveAll deletes every stored file for a session. Idempotent.
	RemoveAll(sessionID string) error
}
