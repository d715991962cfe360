// Package storage persists uploaded post images on the local filesystem.
package storage

import (
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrInvalidImage reports an upload that is not a decodable image.
var ErrInvalidImage = errors.New("uploaded file is not a valid image")

// ImageStore saves validated uploads under a media root, addressed by a
// media-relative path.
type ImageStore struct {
	root string
}

// NewImageStore creates an ImageStore rooted at dir, creating the posts
// subdirectory if needed.
func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, "posts"), 0o755); err != nil {
		return nil, err
	}
	return &ImageStore{root: dir}, nil
}

// Save validates that the upload decodes as an image and writes it under
// posts/ with a fresh UUID name. Returns the media-relative path.
func (s *ImageStore) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	_, format, err := image.DecodeConfig(src)
	if err != nil {
		return "", ErrInvalidImage
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	rel := path.Join("posts", uuid.New().String()+"."+format)
	dst, err := os.Create(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return rel, nil
}

// Root returns the media root directory, for static file serving.
func (s *ImageStore) Root() string {
	return s.root
}
