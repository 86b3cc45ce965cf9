package admin

import (
	"context"
	"time"

	bookingRepo "weddingconsole/database/repository/booking"
	hallRepo "weddingconsole/database/repository/hall"
	lockRepo "weddingconsole/database/repository/lock"
	providerRepo "weddingconsole/database/repository/provider"
	"weddingconsole/models"
	"weddingconsole/services/workflow"

	"go.uber.org/zap"
)

// AdminService backs the admin dashboard: review queues, decisions, edits and deletions.
type AdminService interface {
	Dashboard(ctx context.Context) (*models.AdminDashboardView, error)
	Decide(ctx context.Context, kind models.EntityKind, id string, action models.Action) (models.Status, error)
	EditServiceProvider(ctx context.Context, id string, edit models.ServiceProviderEdit) (*models.ServiceProvider, error)
	EditHallManager(ctx context.Context, id string, edit models.HallManagerEdit) (*models.HallManager, error)
	EditBooking(ctx context.Context, id string, edit models.BookingEdit) (*models.Booking, error)
	Delete(ctx context.Context, kind models.EntityKind, id string) error
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Providers providerRepo.ProviderRepository
	Halls     hallRepo.HallManagerRepository
	Bookings  bookingRepo.BookingRepository
	Locks     lockRepo.Locker
	Workflow  *workflow.Workflow
	Logger    *zap.Logger
	LockTTL   time.Duration
}

func NewDefaultAdminService(
	providers providerRepo.ProviderRepository,
	halls hallRepo.HallManagerRepository,
	bookings bookingRepo.BookingRepository,
	locks lockRepo.Locker,
	wf *workflow.Workflow,
	logger *zap.Logger,
) *DefaultAdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultAdminService{
		Providers: providers,
		Halls:     halls,
		Bookings:  bookings,
		Locks:     locks,
		Workflow:  wf,
		Logger:    logger,
	}
}
