package content

import (
	"context"

	"go.uber.org/zap"
)

// fileLifecycle couples stored files to the record that owns them.
// Every service replaces and releases files through it so stale
// uploads never accumulate.
type fileLifecycle struct {
	store  FileStore
	logger *zap.Logger
}

// stage validates and stores a new upload, returning the stored filename.
// The previous file is released only after the owning record persists.
func (f *fileLifecycle) stage(ctx context.Context, namespace string, policy UploadPolicy, upload *FileUpload) (string, error) {
	if err := policy.Validate(upload); err != nil {
		return "", err
	}
	return f.store.Save(ctx, namespace, upload)
}

// release deletes a stored file best-effort. Failures are logged, not
// surfaced; a stray file is preferable to a failed write.
func (f *fileLifecycle) release(ctx context.Context, namespace, filename string) {
	if filename == "" {
		return
	}
	if err := f.store.Delete(ctx, namespace, filename); err != nil {
		f.logger.Warn("Failed to delete stored file",
			zap.String("namespace", namespace),
			zap.String("filename", filename),
			zap.Error(err))
	}
}
