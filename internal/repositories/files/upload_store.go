package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	portsrepo "github.com/ninebox-labs/talent_review_app/internal/core/ports/repositories"
)

// LocalUploadStore keeps one directory per session id under a base uploads
// directory and retains the untouched source file there, so exports can
// regenerate from the original even after the roster has been edited.
type LocalUploadStore struct {
	baseDir string
}

// NewLocalUploadStore creates the uploads area rooted at baseDir, creating
// the directory if needed.
func NewLocalUploadStore(baseDir string) (*LocalUploadStore, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("uploads base directory cannot be empty")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory %s: %w", baseDir, err)
	}
	return &LocalUploadStore{baseDir: baseDir}, nil
}

// Ensure LocalUploadStore implements portsrepo.UploadStoreFacade
var _ portsrepo.UploadStoreFacade = (*LocalUploadStore)(nil)

func (s *LocalUploadStore) StoreFromPath(sessionID, filename, srcPath string) (string, error) {
	// Strip any directory components the caller sent along.
	filename = filepath.Base(filename)
	if filename == "." || filename == string(filepath.Separator) {
		return "", fmt.Errorf("invalid upload filename %q", filename)
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to open source file %s: %w", srcPath, err)
	}
	defer src.Close()

	dir := filepath.Join(s.baseDir, sessionID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create session upload directory: %w", err)
	}

	dstPath := filepath.Join(dir, filename)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create upload copy: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to copy upload: %w", err)
	}
	return dstPath, nil
}

func (s *LocalUploadStore) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (s *LocalUploadStore) RemoveAll(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return os.RemoveAll(filepath.Join(s.baseDir, sessionID))
}
