package admin

import (
	"context"
	"errors"
	"testing"

	"weddingconsole/database/repository"
	lockRepo "weddingconsole/database/repository/lock"
	"weddingconsole/database/repository/mocks"
	"weddingconsole/models"
	"weddingconsole/services/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type fixture struct {
	providers *mocks.MockProviderRepository
	halls     *mocks.MockHallManagerRepository
	bookings  *mocks.MockBookingRepository
	locks     *mocks.MockLocker
	svc       *DefaultAdminService
}

func newFixture(t *testing.T, strict bool) *fixture {
	t.Helper()
	f := &fixture{
		providers: mocks.NewMockProviderRepository(t),
		halls:     mocks.NewMockHallManagerRepository(t),
		bookings:  mocks.NewMockBookingRepository(t),
		locks:     mocks.NewMockLocker(t),
	}
	f.svc = NewDefaultAdminService(f.providers, f.halls, f.bookings, f.locks, workflow.New(strict), zap.NewNop())
	return f
}

// expectLock expects the venue/date lock to be taken and released once.
func (f *fixture) expectLock(ref models.VenueRef, date string) {
	key := lockRepo.BookingKey(ref, date)
	f.locks.On("Acquire", mock.Anything, key, defaultLockTTL).Return(nil).Once()
	f.locks.On("Release", mock.Anything, key).Return(nil).Once()
}

func TestDashboard_SplitsPendingQueues(t *testing.T) {
	f := newFixture(t, false)
	f.providers.On("List", mock.Anything, models.Filter{}).Return([]models.ServiceProvider{
		{ID: "p1", Status: models.StatusPending},
		{ID: "p2", Status: models.StatusApproved},
	}, nil)
	f.halls.On("List", mock.Anything, models.Filter{}).Return(nil, nil)
	f.bookings.On("List", mock.Anything, models.Filter{}).Return([]models.Booking{
		{ID: "b1", Status: models.StatusCompleted},
		{ID: "b2", Status: models.StatusPending},
	}, nil)

	view, err := f.svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Len(t, view.ServiceProviders, 2)
	require.Len(t, view.PendingServiceProviders, 1)
	assert.Equal(t, "p1", view.PendingServiceProviders[0].ID)
	assert.NotNil(t, view.HallManagers)
	assert.Empty(t, view.PendingHallManagers)
	require.Len(t, view.PendingBookings, 1)
	assert.Equal(t, "b2", view.PendingBookings[0].ID)
}

func TestDashboard_CollaboratorFailure(t *testing.T) {
	f := newFixture(t, false)
	boom := errors.New("connection reset")
	f.providers.On("List", mock.Anything, models.Filter{}).Return(nil, boom)

	_, err := f.svc.Dashboard(context.Background())
	var cerr *workflow.CollaboratorError
	require.ErrorAs(t, err, &cerr)
	assert.ErrorIs(t, err, boom)
}

func TestDecide_ApprovesPendingProvider(t *testing.T) {
	f := newFixture(t, false)
	f.providers.On("GetByID", mock.Anything, "p1").Return(&models.ServiceProvider{ID: "p1", Status: models.StatusPending}, nil)
	f.providers.On("Update", mock.Anything, "p1", bson.M{"status": models.StatusApproved}).Return(nil)

	status, err := f.svc.Decide(context.Background(), models.KindServiceProvider, "p1", models.ActionApprove)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, status)
}

func TestDecide_AlreadyDecidedDoesNotWrite(t *testing.T) {
	f := newFixture(t, false)
	f.halls.On("GetByID", mock.Anything, "h1").Return(&models.HallManager{ID: "h1", Status: models.StatusRejected}, nil)

	_, err := f.svc.Decide(context.Background(), models.KindHallManager, "h1", models.ActionApprove)
	assert.ErrorIs(t, err, workflow.ErrAlreadyDecided)
	f.halls.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDecide_NotFound(t *testing.T) {
	f := newFixture(t, false)
	f.bookings.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	_, err := f.svc.Decide(context.Background(), models.KindBooking, "missing", models.ActionReject)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDecide_UnknownKind(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.svc.Decide(context.Background(), models.EntityKind("venue"), "x", models.ActionApprove)
	assert.ErrorIs(t, err, workflow.ErrUnsupportedAction)
}

func TestEditHallManager_LenientCoercion(t *testing.T) {
	f := newFixture(t, false)
	f.halls.On("GetByID", mock.Anything, "h1").Return(&models.HallManager{ID: "h1", HallCapacity: 300}, nil)
	f.halls.On("Update", mock.Anything, "h1", mock.MatchedBy(func(fields bson.M) bool {
		price, ok := fields["hallPrice"].(models.Money)
		return fields["hallCapacity"] == 0 && ok && price.IsZero() && fields["hallName"] == "Rose Garden"
	})).Return(nil)

	m, err := f.svc.EditHallManager(context.Background(), "h1", models.HallManagerEdit{
		HallName:     " Rose Garden ",
		HallCapacity: "lots",
		HallPrice:    "n/a",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, m.HallCapacity)
	assert.Equal(t, "Rose Garden", m.HallName)
}

func TestEditHallManager_StrictRejectsBadNumber(t *testing.T) {
	f := newFixture(t, true)
	f.halls.On("GetByID", mock.Anything, "h1").Return(&models.HallManager{ID: "h1"}, nil)

	_, err := f.svc.EditHallManager(context.Background(), "h1", models.HallManagerEdit{HallCapacity: "lots"})
	assert.ErrorIs(t, err, workflow.ErrInvalidNumber)
}

func TestEditServiceProvider_StatusOverride(t *testing.T) {
	f := newFixture(t, false)
	f.providers.On("GetByID", mock.Anything, "p1").Return(&models.ServiceProvider{ID: "p1", Status: models.StatusRejected}, nil)
	f.providers.On("Update", mock.Anything, "p1", bson.M{
		"status":   models.StatusApproved,
		"services": []string{"Catering", "dj"},
	}).Return(nil)

	p, err := f.svc.EditServiceProvider(context.Background(), "p1", models.ServiceProviderEdit{
		Status:   models.StatusApproved,
		Services: []string{"Catering", " dj ", "", "catering"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, p.Status)
}

func TestEditServiceProvider_InvalidStatus(t *testing.T) {
	f := newFixture(t, false)
	f.providers.On("GetByID", mock.Anything, "p1").Return(&models.ServiceProvider{ID: "p1"}, nil)

	_, err := f.svc.EditServiceProvider(context.Background(), "p1", models.ServiceProviderEdit{Status: models.StatusCompleted})
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)
}

func TestEditBooking_DateMoveChecksVenue(t *testing.T) {
	f := newFixture(t, false)
	f.bookings.On("GetByID", mock.Anything, "b1").Return(&models.Booking{ID: "b1", HallManagerID: "h1", Date: "2025-06-01"}, nil)
	f.bookings.On("List", mock.Anything, models.Filter{HallManagerID: "h1"}).Return([]models.Booking{
		{ID: "b1", Date: "2025-06-01", Status: models.StatusPending},
		{ID: "b2", Date: "2025-06-02", Status: models.StatusApproved},
	}, nil)
	f.expectLock(models.VenueRef{ID: "h1", IsManager: true}, "2025-06-02")

	_, err := f.svc.EditBooking(context.Background(), "b1", models.BookingEdit{Date: "2025-06-02"})
	assert.ErrorIs(t, err, workflow.ErrDateConflict)
}

func TestEditBooking_DateMoveAllowed(t *testing.T) {
	f := newFixture(t, false)
	f.bookings.On("GetByID", mock.Anything, "b1").Return(&models.Booking{ID: "b1", HallID: "w1", Date: "2025-06-01"}, nil)
	f.bookings.On("List", mock.Anything, models.Filter{HallID: "w1"}).Return([]models.Booking{
		{ID: "b1", Date: "2025-06-01", Status: models.StatusPending},
		{ID: "b2", Date: "2025-06-03", Status: models.StatusRejected},
	}, nil)
	f.expectLock(models.VenueRef{ID: "w1"}, "2025-06-03")
	f.bookings.On("Update", mock.Anything, "b1", bson.M{"date": "2025-06-03"}).Return(nil)

	b, err := f.svc.EditBooking(context.Background(), "b1", models.BookingEdit{Date: "2025-06-03"})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-03", b.Date)
}

func TestEditBooking_DateMoveLockHeld(t *testing.T) {
	f := newFixture(t, false)
	f.bookings.On("GetByID", mock.Anything, "b1").Return(&models.Booking{ID: "b1", HallManagerID: "h1", Date: "2025-06-01"}, nil)
	key := lockRepo.BookingKey(models.VenueRef{ID: "h1", IsManager: true}, "2025-06-04")
	f.locks.On("Acquire", mock.Anything, key, defaultLockTTL).Return(lockRepo.ErrLocked)

	_, err := f.svc.EditBooking(context.Background(), "b1", models.BookingEdit{Date: "2025-06-04"})
	assert.ErrorIs(t, err, workflow.ErrDateConflict)
	f.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditBooking_RevivingRejectedChecksDate(t *testing.T) {
	f := newFixture(t, false)
	f.bookings.On("GetByID", mock.Anything, "b1").Return(&models.Booking{
		ID: "b1", HallManagerID: "h1", Date: "2025-06-01", Status: models.StatusRejected,
	}, nil)
	f.bookings.On("List", mock.Anything, models.Filter{HallManagerID: "h1"}).Return([]models.Booking{
		{ID: "b1", Date: "2025-06-01", Status: models.StatusRejected},
		{ID: "b2", Date: "2025-06-01", Status: models.StatusApproved},
	}, nil)
	f.expectLock(models.VenueRef{ID: "h1", IsManager: true}, "2025-06-01")

	_, err := f.svc.EditBooking(context.Background(), "b1", models.BookingEdit{Status: models.StatusApproved})
	assert.ErrorIs(t, err, workflow.ErrDateConflict)
	f.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditBooking_RevivingRejectedOnFreeDate(t *testing.T) {
	f := newFixture(t, false)
	f.bookings.On("GetByID", mock.Anything, "b1").Return(&models.Booking{
		ID: "b1", HallID: "w1", Date: "2025-06-01", Status: models.StatusRejected,
	}, nil)
	f.bookings.On("List", mock.Anything, models.Filter{HallID: "w1"}).Return([]models.Booking{
		{ID: "b1", Date: "2025-06-01", Status: models.StatusRejected},
	}, nil)
	f.expectLock(models.VenueRef{ID: "w1"}, "2025-06-01")
	f.bookings.On("Update", mock.Anything, "b1", bson.M{"status": models.StatusPending}).Return(nil)

	b, err := f.svc.EditBooking(context.Background(), "b1", models.BookingEdit{Status: models.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, b.Status)
}

func TestEditBooking_RejectingSkipsDateCheck(t *testing.T) {
	f := newFixture(t, false)
	f.bookings.On("GetByID", mock.Anything, "b1").Return(&models.Booking{
		ID: "b1", HallManagerID: "h1", Date: "2025-06-01", Status: models.StatusApproved,
	}, nil)
	f.bookings.On("Update", mock.Anything, "b1", bson.M{"status": models.StatusRejected}).Return(nil)

	_, err := f.svc.EditBooking(context.Background(), "b1", models.BookingEdit{Status: models.StatusRejected})
	require.NoError(t, err)
	f.locks.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditBooking_HallBookingCannotComplete(t *testing.T) {
	f := newFixture(t, false)
	f.bookings.On("GetByID", mock.Anything, "b1").Return(&models.Booking{
		ID: "b1", HallManagerID: "h1", Date: "2025-06-01", Status: models.StatusPending,
	}, nil)

	_, err := f.svc.EditBooking(context.Background(), "b1", models.BookingEdit{Status: models.StatusCompleted})
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)
	f.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditBooking_ServiceBookingCanComplete(t *testing.T) {
	f := newFixture(t, false)
	f.bookings.On("GetByID", mock.Anything, "b2").Return(&models.Booking{
		ID: "b2", ServiceProviderID: "p1", Type: models.BookingTypeService, Status: models.StatusPending,
	}, nil)
	f.bookings.On("Update", mock.Anything, "b2", bson.M{"status": models.StatusCompleted}).Return(nil)

	b, err := f.svc.EditBooking(context.Background(), "b2", models.BookingEdit{Status: models.StatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, b.Status)
}

func TestDecide_HallBookingCannotToggle(t *testing.T) {
	f := newFixture(t, false)
	f.bookings.On("GetByID", mock.Anything, "b1").Return(&models.Booking{
		ID: "b1", HallManagerID: "h1", Status: models.StatusPending,
	}, nil)

	_, err := f.svc.Decide(context.Background(), models.KindBooking, "b1", models.ActionCompleteToggle)
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)
	f.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDecide_ServiceBookingToggles(t *testing.T) {
	f := newFixture(t, false)
	f.bookings.On("GetByID", mock.Anything, "b2").Return(&models.Booking{
		ID: "b2", ServiceProviderID: "p1", Status: models.StatusPending,
	}, nil)
	f.bookings.On("Update", mock.Anything, "b2", bson.M{"status": models.StatusCompleted}).Return(nil)

	status, err := f.svc.Decide(context.Background(), models.KindBooking, "b2", models.ActionCompleteToggle)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, status)
}

func TestDelete(t *testing.T) {
	f := newFixture(t, false)
	f.bookings.On("Delete", mock.Anything, "b1").Return(nil)
	require.NoError(t, f.svc.Delete(context.Background(), models.KindBooking, "b1"))

	f.providers.On("Delete", mock.Anything, "p1").Return(repository.ErrNotFound)
	assert.ErrorIs(t, f.svc.Delete(context.Background(), models.KindServiceProvider, "p1"), repository.ErrNotFound)
}
