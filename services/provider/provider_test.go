package provider

import (
	"context"
	"errors"
	"testing"

	"weddingconsole/database/repository/mocks"
	"weddingconsole/models"
	"weddingconsole/services"
	"weddingconsole/services/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func newService(t *testing.T) (*DefaultProviderService, *mocks.MockProviderRepository, *mocks.MockBookingRepository) {
	t.Helper()
	repo := mocks.NewMockProviderRepository(t)
	bookings := mocks.NewMockBookingRepository(t)
	return &DefaultProviderService{Repo: repo, Bookings: bookings, Logger: zap.NewNop()}, repo, bookings
}

func TestDashboard(t *testing.T) {
	svc, repo, bookings := newService(t)
	repo.On("GetByID", mock.Anything, "p1").Return(&models.ServiceProvider{ID: "p1", Name: "Lens & Light"}, nil)
	bookings.On("List", mock.Anything, models.Filter{ServiceProviderID: "p1"}).Return(nil, nil)

	view, err := svc.Dashboard(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Lens & Light", view.Provider.Name)
	assert.NotNil(t, view.Bookings)
	assert.Empty(t, view.Bookings)
}

func TestUpdateProfile(t *testing.T) {
	svc, repo, _ := newService(t)
	repo.On("GetByID", mock.Anything, "p1").Return(&models.ServiceProvider{ID: "p1"}, nil)
	repo.On("Update", mock.Anything, "p1", bson.M{
		"name":     "Lens & Light",
		"phone":    "0700",
		"address":  "",
		"services": []string{"Photography", "Video"},
	}).Return(nil)

	p, err := svc.UpdateProfile(context.Background(), "p1", models.ProfileEdit{
		Name:     " Lens & Light ",
		Phone:    "0700",
		Services: []string{"Photography", "Video", "photography", " "},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Photography", "Video"}, p.Services)
}

func TestUpdateProfile_NameRequired(t *testing.T) {
	svc, _, _ := newService(t)
	_, err := svc.UpdateProfile(context.Background(), "p1", models.ProfileEdit{Name: "  "})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestToggleBooking_RoundTrip(t *testing.T) {
	svc, _, bookings := newService(t)
	b := &models.Booking{ID: "b1", ServiceProviderID: "p1", Status: models.StatusPending}
	bookings.On("GetByID", mock.Anything, "b1").Return(b, nil).Once()
	bookings.On("Update", mock.Anything, "b1", bson.M{"status": models.StatusCompleted}).Return(nil).Once()

	got, err := svc.ToggleBooking(context.Background(), "p1", "b1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)

	bookings.On("GetByID", mock.Anything, "b1").Return(&models.Booking{ID: "b1", ServiceProviderID: "p1", Status: models.StatusCompleted}, nil).Once()
	bookings.On("Update", mock.Anything, "b1", bson.M{"status": models.StatusPending}).Return(nil).Once()

	got, err = svc.ToggleBooking(context.Background(), "p1", "b1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestToggleBooking_Failures(t *testing.T) {
	svc, _, bookings := newService(t)
	bookings.On("GetByID", mock.Anything, "other").Return(&models.Booking{ID: "other", ServiceProviderID: "p2", Status: models.StatusPending}, nil)
	bookings.On("GetByID", mock.Anything, "approved").Return(&models.Booking{ID: "approved", ServiceProviderID: "p1", Status: models.StatusApproved}, nil)
	boom := errors.New("timeout")
	bookings.On("GetByID", mock.Anything, "broken").Return(nil, boom)

	_, err := svc.ToggleBooking(context.Background(), "p1", "other")
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = svc.ToggleBooking(context.Background(), "p1", "approved")
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)

	_, err = svc.ToggleBooking(context.Background(), "p1", "broken")
	assert.ErrorIs(t, err, boom)
}
