package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

var versionSegment = regexp.MustCompile(`^v\d+$`)

// CloudinaryStorage implements StorageService on a Cloudinary account.
type CloudinaryStorage struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	logger    *zap.Logger
}

// NewCloudinaryStorage creates a new CloudinaryStorage instance.
func NewCloudinaryStorage(cld *cloudinary.Cloudinary, cloudName string, logger *zap.Logger) *CloudinaryStorage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CloudinaryStorage{cld: cld, cloudName: cloudName, logger: logger}
}

// Upload sends the content to Cloudinary using objectPath (minus extension) as public ID.
func (s *CloudinaryStorage) Upload(ctx context.Context, objectPath string, r io.Reader) (string, error) {
	publicID := strings.TrimSuffix(objectPath, path.Ext(objectPath))
	result, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{PublicID: publicID})
	if err != nil {
		return "", fmt.Errorf("cloudinary: failed to upload %s: %w", publicID, err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: upload rejected: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary: no URL returned for %s", publicID)
	}
	s.logger.Debug("Uploaded image", zap.String("publicId", result.PublicID))
	return result.SecureURL, nil
}

// Delete destroys the asset behind a Cloudinary delivery URL.
func (s *CloudinaryStorage) Delete(ctx context.Context, rawURL string) error {
	publicID, ok := cloudinaryPublicID(rawURL, s.cloudName)
	if !ok {
		return fmt.Errorf("cloudinary: %w: %s", ErrForeignURL, rawURL)
	}
	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary: failed to delete %s: %w", publicID, err)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("cloudinary: delete rejected: %s", result.Error.Message)
	}
	// "not found" means it is already gone.
	if result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("cloudinary: unexpected destroy result %q for %s", result.Result, publicID)
	}
	return nil
}

// Owns reports whether the URL was delivered from this cloud.
func (s *CloudinaryStorage) Owns(rawURL string) bool {
	_, ok := cloudinaryPublicID(rawURL, s.cloudName)
	return ok
}

// cloudinaryPublicID extracts the public ID from
// https://res.cloudinary.com/<cloud>/image/upload/[transformations/][v123/]<publicID>.<ext>
func cloudinaryPublicID(rawURL, cloudName string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host != "res.cloudinary.com" {
		return "", false
	}
	segments := strings.Split(strings.TrimPrefix(u.Path, "/"), "/")
	if len(segments) < 4 || segments[0] != cloudName {
		return "", false
	}
	rest := segments[1:]
	uploadAt := -1
	for i, seg := range rest {
		if seg == "upload" {
			uploadAt = i
			break
		}
	}
	if uploadAt < 0 || uploadAt+1 >= len(rest) {
		return "", false
	}
	rest = rest[uploadAt+1:]
	for i, seg := range rest {
		if versionSegment.MatchString(seg) {
			rest = rest[i+1:]
			break
		}
	}
	if len(rest) == 0 {
		return "", false
	}
	id := strings.Join(rest, "/")
	id = strings.TrimSuffix(id, path.Ext(id))
	if id == "" {
		return "", false
	}
	return id, true
}
