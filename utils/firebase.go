// utils/firebase.go
package utils

import (
	"context"
	"fmt"

	"weddingconsole/config"
	"weddingconsole/services/storage"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// FirebaseStorage initializes the Firebase App and returns a StorageService on its default bucket.
func FirebaseStorage() (storage.StorageService, error) {
	ctx := context.Background()
	bucketName := config.AppConfig.FirebaseBucket
	if bucketName == "" {
		return nil, fmt.Errorf("firebase: FIREBASE_STORAGE_BUCKET is not set")
	}

	var opts []option.ClientOption
	if path := config.AppConfig.FirebaseCredentials; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: error getting Storage client: %w", err)
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("firebase: error opening bucket %s: %w", bucketName, err)
	}
	return storage.NewFirebaseStorage(bucket, bucketName, GetLogger()), nil
}
