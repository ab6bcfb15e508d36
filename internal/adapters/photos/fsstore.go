// Package photos stores uploaded daily photos on the local filesystem.
// Uploads are decoded, rotated upright from their EXIF orientation, shrunk to
// fit the configured bounding box, and re-encoded as JPEG so clients receive
// a predictable format regardless of what the camera produced.
package photos

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/platform/config"
	"github.com/photostreak/streak-service/internal/ports"
)

// JPEGQuality is the re-encode quality for stored photos.
const JPEGQuality = 80

// Compile-time interface checks.
var (
	_ ports.PhotoStore    = (*FSStore)(nil)
	_ ports.HealthChecker = (*FSStore)(nil)
)

// FSStore implements ports.PhotoStore under a root directory.
type FSStore struct {
	dir      string
	baseURL  string
	maxBytes int64
	maxDim   int
}

// NewFSStore creates the root directory if needed and returns a store.
func NewFSStore(cfg config.PhotosConfig) (*FSStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating photo directory: %w", err)
	}
	return &FSStore{
		dir:      cfg.Dir,
		baseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
		maxBytes: cfg.MaxUploadBytes,
		maxDim:   cfg.MaxDimension,
	}, nil
}

// PutPhoto normalizes the image read from r and writes it under key.
func (s *FSStore) PutPhoto(ctx context.Context, key string, r io.Reader) (string, error) {
	rel, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", &domain.ValidationError{Fields: map[string]string{
			"image": fmt.Sprintf("must not exceed %d bytes", s.maxBytes),
		}}
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", &domain.ValidationError{Fields: map[string]string{
			"image": "must be a JPEG, PNG, GIF, BMP or TIFF image",
		}}
	}
	img = imaging.Fit(img, s.maxDim, s.maxDim, imaging.Lanczos)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	dst := filepath.Join(s.dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return "", fmt.Errorf("creating photo directory: %w", err)
	}

	// Write to a sibling temp file and rename so readers never see a partial image.
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := imaging.Encode(tmp, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("encoding photo: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("storing photo: %w", err)
	}

	return s.baseURL + "/" + rel, nil
}

// DeletePhoto removes the photo stored under key.
func (s *FSStore) DeletePhoto(_ context.Context, key string) error {
	rel, err := cleanKey(key)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.dir, filepath.FromSlash(rel)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing photo: %w", err)
	}
	return nil
}

// Handler serves stored photos. Mount it with the public base path stripped.
func (s *FSStore) Handler() http.Handler {
	return http.FileServer(http.Dir(s.dir))
}

// Name implements ports.HealthChecker.
func (s *FSStore) Name() string { return "photos-fs" }

// HealthCheck implements ports.HealthChecker by checking the root directory.
func (s *FSStore) HealthCheck(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("%s: %w", s.Name(), err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %s is not a directory", s.Name(), s.dir)
	}
	return nil
}

var errBadKey = errors.New("must be a relative path without traversal")

// cleanKey validates a slash-separated storage key.
func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + key)[1:]
	if key == "" || cleaned != key || strings.HasPrefix(key, "/") {
		return "", &domain.ValidationError{Fields: map[string]string{"key": errBadKey.Error()}}
	}
	return cleaned, nil
}
