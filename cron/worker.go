package cron

import (
	"time"

	"weddingconsole/config"
	"weddingconsole/services/storage"
	"weddingconsole/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt returns the connection options of the cleanup queue.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewCleanupMux routes queue tasks to their handlers.
func NewCleanupMux(store storage.StorageService, logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeImageDelete, tasks.HandleImageDelete(store, logger))
	return mux
}

// InitCleanupWorker starts the image cleanup worker in the background. The
// returned server must be shut down by the caller.
func InitCleanupWorker(store storage.StorageService, logger *zap.Logger) *asynq.Server {
	concurrency := config.AppConfig.CleanupConcurrency
	if concurrency <= 0 {
		concurrency = 5
	}
	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	mux := NewCleanupMux(store, logger)

	go func() {
		logger.Info("Starting image cleanup worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Warn("Cleanup worker failed to start", zap.Int("attempt", attempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Cleanup worker gave up; deletions stay queued until restart")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}
