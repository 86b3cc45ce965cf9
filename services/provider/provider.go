package provider

import (
	"context"
	"errors"
	"strings"

	"weddingconsole/models"
	"weddingconsole/services"
	"weddingconsole/services/workflow"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ErrNameRequired is returned when a profile edit clears the display name.
var ErrNameRequired = errors.New("name is required")

func (s *DefaultProviderService) Dashboard(ctx context.Context, providerID string) (*models.ServiceProviderDashboardView, error) {
	provider, err := s.Repo.GetByID(ctx, providerID)
	if err != nil {
		return nil, workflow.Collaborator("get service provider", err)
	}
	bookings, err := s.Bookings.List(ctx, models.Filter{ServiceProviderID: providerID})
	if err != nil {
		return nil, workflow.Collaborator("list provider bookings", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return &models.ServiceProviderDashboardView{Provider: *provider, Bookings: bookings}, nil
}

// UpdateProfile replaces the editable profile fields. The services list is stored
// trimmed and without duplicates.
func (s *DefaultProviderService) UpdateProfile(ctx context.Context, providerID string, edit models.ProfileEdit) (*models.ServiceProvider, error) {
	name := strings.TrimSpace(edit.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	provider, err := s.Repo.GetByID(ctx, providerID)
	if err != nil {
		return nil, workflow.Collaborator("get service provider", err)
	}

	provider.Name = name
	provider.Phone = strings.TrimSpace(edit.Phone)
	provider.Address = strings.TrimSpace(edit.Address)
	provider.Services = models.NormalizeServices(edit.Services)

	fields := bson.M{
		"name":     provider.Name,
		"phone":    provider.Phone,
		"address":  provider.Address,
		"services": provider.Services,
	}
	if err := s.Repo.Update(ctx, providerID, fields); err != nil {
		return nil, workflow.Collaborator("update service provider", err)
	}
	s.Logger.Info("Provider profile updated", zap.String("providerId", providerID))
	return provider, nil
}

// ToggleBooking flips one of the provider's bookings between pending and completed.
func (s *DefaultProviderService) ToggleBooking(ctx context.Context, providerID, bookingID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, workflow.Collaborator("get booking", err)
	}
	if booking.ServiceProviderID != providerID {
		return nil, services.ErrForbidden
	}

	next, err := workflow.TransitionBooking(*booking, models.ActionCompleteToggle)
	if err != nil {
		return nil, err
	}
	if err := s.Bookings.Update(ctx, bookingID, bson.M{"status": next}); err != nil {
		return nil, workflow.Collaborator("update booking", err)
	}
	booking.Status = next

	s.Logger.Info("Provider booking toggled",
		zap.String("providerId", providerID),
		zap.String("bookingId", bookingID),
		zap.String("status", string(next)))
	return booking, nil
}
