// Package storage provides file storage implementations for uploaded assets.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	contentapp "github.com/portfolio/backend/internal/application/content"
	"go.uber.org/zap"
)

// Ensure LocalStore implements FileStore
var _ contentapp.FileStore = (*LocalStore)(nil)

// LocalStore keeps uploaded files on the local filesystem, one
// subdirectory per namespace under the configured root. Stored names
// are prefixed with a millisecond timestamp so repeated uploads of the
// same file never collide.
type LocalStore struct {
	root   string
	logger *zap.Logger
	now    func() time.Time
}

// LocalStoreOption is a functional option for configuring LocalStore
type LocalStoreOption func(*LocalStore)

// WithLogger sets a custom logger for LocalStore
func WithLogger(logger *zap.Logger) LocalStoreOption {
	return func(s *LocalStore) {
		s.logger = logger
	}
}

// WithClock overrides the clock used for name prefixes (used in tests)
func WithClock(now func() time.Time) LocalStoreOption {
	return func(s *LocalStore) {
		s.now = now
	}
}

// NewLocalStore creates a LocalStore rooted at dir, creating the
// namespace directories up front so the first upload cannot race
// directory creation.
func NewLocalStore(dir string, opts ...LocalStoreOption) (*LocalStore, error) {
	if dir == "" {
		return nil, errors.New("storage directory is required")
	}

	store := &LocalStore{
		root:   dir,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(store)
	}

	namespaces := []string{
		contentapp.NamespaceHero,
		contentapp.NamespaceProjects,
		contentapp.NamespaceSkills,
		contentapp.NamespaceResume,
	}
	for _, ns := range namespaces {
		if err := os.MkdirAll(filepath.Join(dir, ns), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	return store, nil
}

// Save writes the upload into the namespace directory and returns the
// stored filename.
func (s *LocalStore) Save(ctx context.Context, namespace string, upload *contentapp.FileUpload) (string, error) {
	if upload == nil {
		return "", errors.New("upload is required")
	}

	dir, err := s.namespaceDir(namespace)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), sanitizeName(upload.Name))
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, upload.Content); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	s.logger.Debug("File stored",
		zap.String("namespace", namespace),
		zap.String("filename", name))
	return name, nil
}

// Delete removes a stored file. Deleting a file that no longer exists
// is not an error.
func (s *LocalStore) Delete(ctx context.Context, namespace, filename string) error {
	if filename == "" {
		return nil
	}

	dir, err := s.namespaceDir(namespace)
	if err != nil {
		return err
	}

	name := sanitizeName(filename)
	if err := os.Remove(filepath.Join(dir, name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.Debug("File deleted",
		zap.String("namespace", namespace),
		zap.String("filename", name))
	return nil
}

func (s *LocalStore) namespaceDir(namespace string) (string, error) {
	if namespace == "" || namespace != filepath.Base(namespace) {
		return "", fmt.Errorf("invalid storage namespace %q", namespace)
	}
	return filepath.Join(s.root, namespace), nil
}

// sanitizeName strips any path components from a client-supplied name
// so stored files cannot escape their namespace directory.
func sanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == ".." {
		return "file"
	}
	return name
}
