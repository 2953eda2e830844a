package upload

import (
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Store keeps uploaded photos under a single directory, addressed only by
// generated filenames. Client-supplied names never touch the filesystem.
type Store struct {
	Dir          string
	MaxSize      int64
	AllowedTypes []string
}

func NewStore(dir string, maxSize int64, allowedTypes []string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{Dir: dir, MaxSize: maxSize, AllowedTypes: allowedTypes}, nil
}

// Validate checks an uploaded file against every rule and returns all
// violations, not just the first, so the caller can show the full list.
func (s *Store) Validate(fh *multipart.FileHeader) []string {
	if fh == nil {
		return []string{"Please upload a valid image file."}
	}

	var errs []string
	if fh.Size > s.MaxSize {
		errs = append(errs, fmt.Sprintf("File size must be less than %dMB.", s.MaxSize/1024/1024))
	}

	f, err := fh.Open()
	if err != nil {
		return append(errs, "Please upload a valid image file.")
	}
	defer f.Close()

	// Sniff the real content type; the client-declared header is not trusted.
	head := make([]byte, 512)
	n, _ := io.ReadFull(f, head)
	mimeType := http.DetectContentType(head[:n])
	if !s.allowed(mimeType) {
		errs = append(errs, "Only JPEG, PNG, and WebP images are allowed.")
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return append(errs, "File is not a valid image.")
	}
	if _, _, err := image.DecodeConfig(f); err != nil {
		errs = append(errs, "File is not a valid image.")
	}

	return errs
}

func (s *Store) allowed(mimeType string) bool {
	for _, t := range s.AllowedTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}

// Save moves the upload into the store under a fresh random name, keeping
// only the lower-cased extension of the original filename. Returns the
// stored filename.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := "profile_" + uuid.NewString() + ext

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write photo file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("close photo file: %w", err)
	}
	return name, nil
}

// Remove deletes a stored photo. Missing files are not an error: delete is
// used as best-effort compensation.
func (s *Store) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.Dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Exists reports whether a stored filename still resolves to a file.
func (s *Store) Exists(name string) bool {
	if name == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(s.Dir, name))
	return err == nil
}
