package pipeline

import (
	"errors"

	"orthoview/internal/models"
)

var (
	// ErrNotFound means no regular file exists at the requested path.
	ErrNotFound = errors.New("image file not found")
	// ErrEmpty means the file exists but has zero length.
	ErrEmpty = errors.New("image file is empty")
	// ErrDecode means neither decode mode produced pixel data.
	ErrDecode = errors.New("image could not be decoded")
)

// ImageLoader decodes a file into a red-green-blue buffer.
type ImageLoader interface {
	Load(path string) (*models.ImageBuffer, error)
}

// ImageProcessor turns a decoded buffer into the buffer that is displayed.
type ImageProcessor interface {
	Render(buf *models.ImageBuffer) *models.ImageBuffer
}
