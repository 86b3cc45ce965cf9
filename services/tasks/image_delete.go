package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"weddingconsole/services/storage"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeImageDelete = "image:delete"

// ImageDeletePayload names one blob URL that is no longer referenced.
type ImageDeletePayload struct {
	URL string `json:"url"`
}

func NewImageDeleteTask(url string) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ImageDeletePayload{URL: url})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeImageDelete, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}

// ImageCleaner schedules deletion of blobs dropped from a hall's image list.
type ImageCleaner interface {
	Schedule(ctx context.Context, urls []string)
}

// Enqueuer is the part of *asynq.Client the queue cleaner needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueCleaner enqueues one image:delete task per URL. URLs the store does not
// own are skipped. If enqueueing fails the deletion falls back to running inline.
type QueueCleaner struct {
	Queue  Enqueuer
	Store  storage.StorageService
	Logger *zap.Logger
}

func (c *QueueCleaner) Schedule(ctx context.Context, urls []string) {
	for _, url := range urls {
		if !c.Store.Owns(url) {
			c.Logger.Debug("Skipping foreign image URL", zap.String("url", url))
			continue
		}
		task, opts, err := NewImageDeleteTask(url)
		if err == nil {
			_, err = c.Queue.EnqueueContext(ctx, task, opts...)
		}
		if err != nil {
			c.Logger.Warn("Failed to enqueue image deletion, deleting inline", zap.String("url", url), zap.Error(err))
			deleteNow(ctx, c.Store, c.Logger, url)
			continue
		}
		c.Logger.Info("Scheduled image deletion", zap.String("url", url))
	}
}

// InlineCleaner deletes blobs synchronously and only logs failures.
type InlineCleaner struct {
	Store  storage.StorageService
	Logger *zap.Logger
}

func (c *InlineCleaner) Schedule(ctx context.Context, urls []string) {
	for _, url := range urls {
		if !c.Store.Owns(url) {
			continue
		}
		deleteNow(ctx, c.Store, c.Logger, url)
	}
}

func deleteNow(ctx context.Context, store storage.StorageService, logger *zap.Logger, url string) {
	if err := store.Delete(ctx, url); err != nil {
		logger.Error("Failed to delete image", zap.String("url", url), zap.Error(err))
	}
}

// HandleImageDelete is the asynq handler for image:delete tasks.
func HandleImageDelete(store storage.StorageService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ImageDeletePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid image:delete payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if err := store.Delete(ctx, p.URL); err != nil {
			logger.Warn("Image deletion failed", zap.String("url", p.URL), zap.Error(err))
			return err
		}
		logger.Info("Deleted image", zap.String("url", p.URL))
		return nil
	}
}
