package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	contentapp "github.com/portfolio/backend/internal/application/content"
)

// formFile extracts an optional multipart file part. A missing part or
// a non-multipart request yields a nil upload, not an error. The
// returned closer must be called once the upload has been consumed.
func formFile(c *gin.Context, field string) (*contentapp.FileUpload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}
		return nil, nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}

	upload := &contentapp.FileUpload{
		Name:    header.Filename,
		Size:    header.Size,
		Content: file,
	}
	return upload, func() { file.Close() }, nil
}
