package provider

import (
	"context"

	bookingRepo "weddingconsole/database/repository/booking"
	providerRepo "weddingconsole/database/repository/provider"
	"weddingconsole/models"

	"go.uber.org/zap"
)

// ProviderService backs the service-provider dashboard.
type ProviderService interface {
	Dashboard(ctx context.Context, providerID string) (*models.ServiceProviderDashboardView, error)
	UpdateProfile(ctx context.Context, providerID string, edit models.ProfileEdit) (*models.ServiceProvider, error)
	ToggleBooking(ctx context.Context, providerID, bookingID string) (*models.Booking, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo     providerRepo.ProviderRepository
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}
