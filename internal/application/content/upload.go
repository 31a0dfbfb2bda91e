package content

import (
	"context"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/portfolio/backend/internal/domain/shared"
)

// Upload namespaces segregate stored files by section
const (
	NamespaceHero     = "hero"
	NamespaceProjects = "projects"
	NamespaceSkills   = "skills"
	NamespaceResume   = "resume"
)

// FileUpload carries an uploaded file through the application layer
type FileUpload struct {
	Name    string
	Size    int64
	Content io.ReadSeeker
}

// FileStore defines the interface for upload persistence
// This interface is implemented by the infrastructure layer (local disk)
type FileStore interface {
	// Save writes the upload under the namespace and returns the stored filename
	Save(ctx context.Context, namespace string, upload *FileUpload) (string, error)

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, namespace, filename string) error
}

// UploadPolicy restricts what an endpoint accepts. Content types are
// checked against the actual bytes, not the client-declared header.
type UploadPolicy struct {
	AllowedTypes []string
	MaxBytes     int64
}

// ImagePolicy returns the policy for image fields
func ImagePolicy(maxBytes int64) UploadPolicy {
	return UploadPolicy{
		AllowedTypes: []string{"image/png", "image/jpeg", "image/webp", "image/svg+xml"},
		MaxBytes:     maxBytes,
	}
}

// PDFPolicy returns the policy for the resume field
func PDFPolicy(maxBytes int64) UploadPolicy {
	return UploadPolicy{
		AllowedTypes: []string{"application/pdf"},
		MaxBytes:     maxBytes,
	}
}

// Validate checks the upload against the policy. The upload's content
// is sniffed and rewound, so it can be handed to a FileStore afterwards.
func (p UploadPolicy) Validate(upload *FileUpload) error {
	if upload == nil {
		return shared.NewValidationError("File is required")
	}
	if p.MaxBytes > 0 && upload.Size > p.MaxBytes {
		return shared.ErrFileTooLarge
	}

	mtype, err := mimetype.DetectReader(upload.Content)
	if err != nil {
		return shared.ErrUnsupportedMediaType
	}
	if _, err := upload.Content.Seek(0, io.SeekStart); err != nil {
		return err
	}

	for _, allowed := range p.AllowedTypes {
		if mtype.Is(allowed) {
			return nil
		}
	}
	return shared.ErrUnsupportedMediaType
}
