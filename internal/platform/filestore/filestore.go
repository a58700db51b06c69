package filestore

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Bucket is a logical upload destination under the base directory.
type Bucket string

const (
	// BucketNotifications holds attachments of area notifications.
	BucketNotifications Bucket = "notificaciones"
	// BucketEvidence holds user-submitted evidence files.
	BucketEvidence Bucket = "evidencias"
)

// ErrNotPDF is returned when an upload is not an application/pdf file.
var ErrNotPDF = fmt.Errorf("only PDF files are accepted")

// Store writes uploads to disk under a base directory and hands back
// relative web paths. Bucket directories are created once at startup, not
// lazily from request handlers.
type Store struct {
	baseDir string
}

// New creates a Store and ensures both bucket directories exist.
func New(baseDir string) (*Store, error) {
	for _, bucket := range []Bucket{BucketNotifications, BucketEvidence} {
		dir := filepath.Join(baseDir, string(bucket))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
		}
	}
	return &Store{baseDir: baseDir}, nil
}

// BaseDir returns the configured base directory.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// SavePDF validates that the upload is a PDF and writes it into the bucket
// under a collision-resistant name. It returns the stored path relative to
// the process working directory, with forward slashes, suitable for serving
// as a web path.
func (s *Store) SavePDF(bucket Bucket, file *multipart.FileHeader) (string, error) {
	if file.Header.Get("Content-Type") != "application/pdf" {
		return "", ErrNotPDF
	}

	name := fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), rand.Int63n(1e9), filepath.Base(file.Filename))
	dst := filepath.Join(s.baseDir, string(bucket), name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", dst, err)
	}

	return strings.ReplaceAll(dst, string(os.PathSeparator), "/"), nil
}
