// Package assets resolves image references for the page and turns them into
// pixel grids sized for the terminal.
package assets

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// Decoders registered with image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var (
	// ErrUnknownBuiltin is returned for a builtin: ref that does not exist.
	ErrUnknownBuiltin = errors.New("unknown built-in image")
	// ErrEmptyRef is returned when no image was named.
	ErrEmptyRef = errors.New("empty image reference")
)

// Resolver loads images named relative to a base directory, usually the
// directory of the content file.
type Resolver struct {
	baseDir string
}

// NewResolver creates a resolver for paths relative to baseDir. An empty
// baseDir resolves against the working directory.
func NewResolver(baseDir string) *Resolver {
	return &Resolver{baseDir: baseDir}
}

// Path returns the file a ref points at, or "" for built-in refs.
func (r *Resolver) Path(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "builtin:") {
		return ""
	}
	if strings.HasPrefix(ref, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			ref = filepath.Join(home, ref[2:])
		}
	}
	if filepath.IsAbs(ref) || r.baseDir == "" {
		return filepath.Clean(ref)
	}
	return filepath.Join(r.baseDir, ref)
}

// Load resolves and decodes ref.
func (r *Resolver) Load(ref string) (image.Image, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrEmptyRef
	}
	if strings.HasPrefix(ref, "builtin:") {
		return Builtin(ref)
	}
	return DecodeFile(r.Path(ref))
}

// DecodeFile decodes a PNG, JPEG, GIF, BMP or WebP file.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}
