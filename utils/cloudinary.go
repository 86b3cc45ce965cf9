package utils

import (
	"fmt"

	"weddingconsole/config"
	"weddingconsole/services/storage"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Cloudinary initializes and returns a Cloudinary-based StorageService from AppConfig.
func Cloudinary() (storage.StorageService, error) {
	cloudName := config.AppConfig.CloudinaryCloudName
	apiKey := config.AppConfig.CloudinaryAPIKey
	apiSecret := config.AppConfig.CloudinaryAPISecret

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}

	return storage.NewCloudinaryStorage(cld, cloudName, GetLogger()), nil
}

// NewStorage returns the blob store selected by STORAGE_BACKEND.
func NewStorage() (storage.StorageService, error) {
	switch config.AppConfig.StorageBackend {
	case "", "cloudinary":
		return Cloudinary()
	case "firebase":
		return FirebaseStorage()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.AppConfig.StorageBackend)
	}
}
