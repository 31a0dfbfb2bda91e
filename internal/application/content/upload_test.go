package content

import (
	"io"
	"testing"

	"github.com/portfolio/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadPolicyValidate(t *testing.T) {
	imagePolicy := ImagePolicy(2 << 20)

	t.Run("accepts a png upload", func(t *testing.T) {
		upload := newPNGUpload("icon.png")
		require.NoError(t, imagePolicy.Validate(upload))

		// Content must be rewound for the store
		pos, err := upload.Content.Seek(0, io.SeekCurrent)
		require.NoError(t, err)
		assert.Equal(t, int64(0), pos)
	})

	t.Run("rejects a text file posing as an image", func(t *testing.T) {
		err := imagePolicy.Validate(newTextUpload("icon.png"))
		assert.ErrorIs(t, err, shared.ErrUnsupportedMediaType)
	})

	t.Run("rejects an oversized file", func(t *testing.T) {
		upload := newPNGUpload("big.png")
		upload.Size = 3 << 20
		err := imagePolicy.Validate(upload)
		assert.ErrorIs(t, err, shared.ErrFileTooLarge)
	})

	t.Run("rejects nil uploads", func(t *testing.T) {
		err := imagePolicy.Validate(nil)
		require.Error(t, err)
	})

	t.Run("pdf policy rejects images", func(t *testing.T) {
		err := PDFPolicy(5 << 20).Validate(newPNGUpload("resume.png"))
		assert.ErrorIs(t, err, shared.ErrUnsupportedMediaType)
	})
}
