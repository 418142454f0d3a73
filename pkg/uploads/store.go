// Package uploads stores point images on local disk and turns stored
// references into public URLs.
package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// ErrUnsupportedImage indicates the uploaded file is not a PNG or JPEG image.
var ErrUnsupportedImage = errors.New("unsupported image type")

var allowedTypes = []string{"image/png", "image/jpeg"}

// DiskStore writes uploads into a single directory.
type DiskStore struct {
	dir string
}

// NewDiskStore returns a DiskStore rooted at dir, creating it if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the directory served under /uploads.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Save sniffs r, rejects anything but PNG/JPEG and writes it as
// "<12 hex>-<original name>". The returned string is the storage reference.
func (s *DiskStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	mtype, err := mimetype.DetectReader(r)
	if err != nil {
		return "", fmt.Errorf("detect image type: %w", err)
	}
	if !mimetype.EqualsAny(mtype.String(), allowedTypes...) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, mtype.String())
	}

	// DetectReader consumed the header; rewind when possible.
	if seeker, ok := r.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return "", fmt.Errorf("rewind upload: %w", err)
		}
	} else {
		return "", fmt.Errorf("upload reader must be seekable")
	}

	ref := newReference(originalName, mtype.Extension())
	f, err := os.OpenFile(filepath.Join(s.dir, ref), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}

	if _, err := io.Copy(f, &ctxReader{ctx: ctx, r: r}); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("close upload: %w", err)
	}
	return ref, nil
}

// Remove deletes a stored file. Missing files are not an error.
func (s *DiskStore) Remove(ref string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(ref)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

func newReference(originalName, ext string) string {
	prefix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	name := sanitize(filepath.Base(originalName))
	if name == "" || name == "." {
		name = "image" + ext
	}
	return prefix + "-" + name
}

// sanitize keeps ASCII letters, digits, '.', '-' and '_'.
func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	return b.String()
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
