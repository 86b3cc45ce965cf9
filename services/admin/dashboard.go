package admin

import (
	"context"

	"weddingconsole/models"
	"weddingconsole/services/workflow"
)

// Dashboard loads every provider, hall manager and booking once and derives the
// pending queues from them.
func (s *DefaultAdminService) Dashboard(ctx context.Context) (*models.AdminDashboardView, error) {
	providers, err := s.Providers.List(ctx, models.Filter{})
	if err != nil {
		return nil, workflow.Collaborator("list service providers", err)
	}
	managers, err := s.Halls.List(ctx, models.Filter{})
	if err != nil {
		return nil, workflow.Collaborator("list hall managers", err)
	}
	bookings, err := s.Bookings.List(ctx, models.Filter{})
	if err != nil {
		return nil, workflow.Collaborator("list bookings", err)
	}

	view := &models.AdminDashboardView{
		PendingServiceProviders: []models.ServiceProvider{},
		ServiceProviders:        nonNil(providers),
		PendingHallManagers:     []models.HallManager{},
		HallManagers:            nonNil(managers),
		PendingBookings:         []models.Booking{},
		Bookings:                nonNil(bookings),
	}
	for _, p := range view.ServiceProviders {
		if p.Status == models.StatusPending {
			view.PendingServiceProviders = append(view.PendingServiceProviders, p)
		}
	}
	for _, m := range view.HallManagers {
		if m.Status == models.StatusPending {
			view.PendingHallManagers = append(view.PendingHallManagers, m)
		}
	}
	for _, b := range view.Bookings {
		if b.Status == models.StatusPending {
			view.PendingBookings = append(view.PendingBookings, b)
		}
	}
	return view, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
