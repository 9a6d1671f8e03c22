package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

const (
	postsImagesDir = "posts_images"
	sniffLen       = 512
)

// ErrNotImage is returned for uploads whose content is not a supported image.
var ErrNotImage = errors.New("not an image")

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// Storage keeps uploaded post images and returns the URL they are served from.
// contentType must be one returned by DetectImage.
type Storage interface {
	Save(ctx context.Context, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}

// DetectImage sniffs the content type from the leading bytes of body.
// The returned reader yields the whole body.
func DetectImage(body io.Reader) (string, io.Reader, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if _, ok := imageExtensions[contentType]; !ok {
		return contentType, nil, ErrNotImage
	}

	return contentType, io.MultiReader(bytes.NewReader(head), body), nil
}

// ObjectKey builds a unique key with the extension of the image type.
func ObjectKey(contentType string) (string, error) {
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", ErrNotImage
	}
	return postsImagesDir + "/" + uuid.NewString() + ext, nil
}
