package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxFileSize is the upload limit for painting images.
const MaxFileSize = 10 << 20 // 10 MB

var (
	ErrNotImage = errors.New("only image files are allowed")
	ErrTooLarge = errors.New("image exceeds the 10MB limit")
)

// Saver persists uploaded painting images under a single directory
// served at /uploads.
type Saver struct {
	Dir string
}

func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Saver{Dir: dir}, nil
}

// Save validates and stores an uploaded image and returns its public
// URL path. The stored name combines the current time with a random
// suffix so concurrent uploads never collide; the original extension is
// preserved.
func (s *Saver) Save(fh *multipart.FileHeader) (string, error) {
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return "", ErrNotImage
	}
	if fh.Size > MaxFileSize {
		return "", ErrTooLarge
	}

	ext := filepath.Ext(fh.Filename)
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return "/uploads/" + name, nil
}
