// Package archive keeps a copy of raw voice notes in GCS before they
// are transcribed and their temp files deleted.
package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// Uploader copies audio files into a GCS bucket. It assumes
// Application Default Credentials are configured.
type Uploader struct {
	bucket string
}

// NewUploader creates an uploader targeting the given bucket.
func NewUploader(bucket string) *Uploader {
	return &Uploader{bucket: bucket}
}

// UploadVoice stores the file under voice/YYYY/MM/DD/<uuid><ext> and
// returns the resulting gs:// URI.
func (u *Uploader) UploadVoice(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("UploadVoice: open file %q: %w", path, err)
	}
	defer f.Close()

	client, err := storage.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("UploadVoice: create storage client: %w", err)
	}
	defer client.Close()

	objectName := fmt.Sprintf("voice/%s/%s%s",
		time.Now().UTC().Format("2006/01/02"),
		uuid.New().String(),
		filepath.Ext(path),
	)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := client.Bucket(u.bucket).Object(objectName).NewWriter(ctx)
	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("UploadVoice: copy to GCS writer: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("UploadVoice: finalize upload: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", u.bucket, objectName), nil
}
