package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/niksmo/warehouse/internal/core/domain"
	"github.com/niksmo/warehouse/internal/core/port"
)

var _ port.ImageUploader = (*Images)(nil)

const defaultImageFilename = "image.jpg"

type Images struct {
	storage port.ImagesStorage
}

func NewImages(storage port.ImagesStorage) Images {
	return Images{storage}
}

// UploadImage stores the raw base64 payload under a fresh
// identifier. A data-URI scheme prefix is stripped up through
// the first comma.
func (s Images) UploadImage(
	ctx context.Context, data, filename string,
) (domain.Image, error) {
	const op = "Images.UploadImage"

	if err := ctx.Err(); err != nil {
		return domain.Image{}, fmt.Errorf("%s: %w", op, err)
	}

	if data == "" {
		return domain.Image{}, fmt.Errorf(
			"%s: image data is required: %w", op, domain.ErrValidation,
		)
	}

	if filename == "" {
		filename = defaultImageFilename
	}

	img := domain.Image{
		ID:       uuid.NewString(),
		Data:     stripDataURI(data),
		Filename: filename,
	}

	if err := s.storage.Store(ctx, img); err != nil {
		return domain.Image{}, fmt.Errorf("%s: %w", op, err)
	}
	return img, nil
}

func stripDataURI(data string) string {
	if !strings.HasPrefix(data, "data:") {
		return data
	}
	if _, raw, found := strings.Cut(data, ","); found {
		return raw
	}
	return data
}
