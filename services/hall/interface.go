package hall

import (
	"context"
	"errors"
	"time"

	bookingRepo "weddingconsole/database/repository/booking"
	hallRepo "weddingconsole/database/repository/hall"
	"weddingconsole/models"
	"weddingconsole/services/storage"
	"weddingconsole/services/tasks"
	"weddingconsole/services/workflow"

	"go.uber.org/zap"
)

// ErrInvalidImage is returned when an uploaded file cannot be decoded as an image.
var ErrInvalidImage = errors.New("uploaded file is not a supported image")

// HallService backs the hall-manager dashboard.
type HallService interface {
	Dashboard(ctx context.Context, managerID string) (*models.HallManagerDashboardView, error)
	UpdateHall(ctx context.Context, managerID string, edit models.HallEdit) (*models.HallManager, error)
	DecideBooking(ctx context.Context, managerID, bookingID string, action models.Action) (*models.Booking, error)
}

// DefaultHallService is the production implementation.
type DefaultHallService struct {
	Halls         hallRepo.HallManagerRepository
	Bookings      bookingRepo.BookingRepository
	Storage       storage.StorageService
	Cleaner       tasks.ImageCleaner
	Workflow      *workflow.Workflow
	Logger        *zap.Logger
	MaxImageWidth int
	Clock         func() time.Time
}

func (s *DefaultHallService) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock()
}
