package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const firebaseDownloadHost = "firebasestorage.googleapis.com"

// FirebaseStorage implements StorageService on a Firebase Storage bucket.
type FirebaseStorage struct {
	bucket     *gcs.BucketHandle
	bucketName string
	logger     *zap.Logger
}

// NewFirebaseStorage wraps the default bucket of a Firebase app.
func NewFirebaseStorage(bucket *gcs.BucketHandle, bucketName string, logger *zap.Logger) *FirebaseStorage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FirebaseStorage{bucket: bucket, bucketName: bucketName, logger: logger}
}

// Upload writes the object and returns a token download URL like the Firebase web SDK does.
func (s *FirebaseStorage) Upload(ctx context.Context, objectPath string, r io.Reader) (string, error) {
	token := uuid.NewString()
	w := s.bucket.Object(objectPath).NewWriter(ctx)
	w.ContentType = mime.TypeByExtension(path.Ext(objectPath))
	if w.ContentType == "" {
		w.ContentType = "application/octet-stream"
	}
	w.Metadata = map[string]string{"firebaseStorageDownloadTokens": token}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("firebase: failed to write %s: %w", objectPath, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("firebase: failed to close writer for %s: %w", objectPath, err)
	}
	s.logger.Debug("Uploaded image", zap.String("object", objectPath))
	return firebaseDownloadURL(s.bucketName, objectPath, token), nil
}

// Delete removes the object a download URL points to. Missing objects are not an error.
func (s *FirebaseStorage) Delete(ctx context.Context, rawURL string) error {
	objectPath, ok := firebaseObjectPath(rawURL, s.bucketName)
	if !ok {
		return fmt.Errorf("firebase: %w: %s", ErrForeignURL, rawURL)
	}
	err := s.bucket.Object(objectPath).Delete(ctx)
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("firebase: failed to delete %s: %w", objectPath, err)
	}
	return nil
}

// Owns reports whether the URL points into this bucket.
func (s *FirebaseStorage) Owns(rawURL string) bool {
	_, ok := firebaseObjectPath(rawURL, s.bucketName)
	return ok
}

func firebaseDownloadURL(bucket, objectPath, token string) string {
	return fmt.Sprintf("https://%s/v0/b/%s/o/%s?alt=media&token=%s",
		firebaseDownloadHost, bucket, url.PathEscape(objectPath), token)
}

// firebaseObjectPath parses https://firebasestorage.googleapis.com/v0/b/<bucket>/o/<escaped path>.
func firebaseObjectPath(rawURL, bucket string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host != firebaseDownloadHost {
		return "", false
	}
	prefix := "/v0/b/" + bucket + "/o/"
	escaped := u.EscapedPath()
	if !strings.HasPrefix(escaped, prefix) {
		return "", false
	}
	objectPath, err := url.PathUnescape(strings.TrimPrefix(escaped, prefix))
	if err != nil || objectPath == "" {
		return "", false
	}
	return objectPath, true
}
