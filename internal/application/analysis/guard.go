package analysis

import (
	"fmt"
	"strings"

	domain "github.com/avarialab/avaria/internal/domain/analysis"
)

// Guard validates uploaded files before any paid network call. The ordering
// matters: model calls are rate-limited and billed, so bad input must be
// rejected first.
type Guard struct {
	MaxImages    int
	MaxFileBytes int64
}

// Validate asserts count, MIME type and raw size for every file.
func (g Guard) Validate(images []domain.UploadedImage) error {
	if len(images) == 0 {
		return domain.ErrNoImages
	}
	if len(images) > g.MaxImages {
		return fmt.Errorf("%w: got %d, max %d", domain.ErrTooManyImages, len(images), g.MaxImages)
	}
	for _, img := range images {
		if !strings.HasPrefix(img.MimeType, "image/") {
			return fmt.Errorf("%w: %s is %q", domain.ErrInvalidImageType, img.Filename, img.MimeType)
		}
		if int64(len(img.Data)) > g.MaxFileBytes {
			return fmt.Errorf("%w: %s is %d bytes, max %d", domain.ErrImageTooLarge, img.Filename, len(img.Data), g.MaxFileBytes)
		}
	}
	return nil
}
