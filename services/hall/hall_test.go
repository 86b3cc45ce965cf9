package hall

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"
	"time"

	"weddingconsole/database/repository/mocks"
	"weddingconsole/models"
	"weddingconsole/services"
	storagemocks "weddingconsole/services/storage/mocks"
	taskmocks "weddingconsole/services/tasks/mocks"
	"weddingconsole/services/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type fixture struct {
	halls    *mocks.MockHallManagerRepository
	bookings *mocks.MockBookingRepository
	store    *storagemocks.MockStorageService
	cleaner  *taskmocks.MockImageCleaner
	svc      *DefaultHallService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		halls:    mocks.NewMockHallManagerRepository(t),
		bookings: mocks.NewMockBookingRepository(t),
		store:    storagemocks.NewMockStorageService(t),
		cleaner:  taskmocks.NewMockImageCleaner(t),
	}
	f.svc = &DefaultHallService{
		Halls:         f.halls,
		Bookings:      f.bookings,
		Storage:       f.store,
		Cleaner:       f.cleaner,
		Workflow:      workflow.New(false),
		Logger:        zap.NewNop(),
		MaxImageWidth: 800,
		Clock:         func() time.Time { return time.UnixMilli(1700000000000) },
	}
	return f
}

func pngUpload(t *testing.T, name string) models.ImageUpload {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 10, 10))))
	return models.ImageUpload{Filename: name, Content: &buf}
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	f.halls.On("GetByID", mock.Anything, "h1").Return(&models.HallManager{ID: "h1", HallName: "Rose"}, nil)
	f.bookings.On("List", mock.Anything, models.Filter{HallManagerID: "h1"}).Return([]models.Booking{
		{ID: "b1", Status: models.StatusPending},
		{ID: "b2", Status: models.StatusApproved},
	}, nil)

	view, err := f.svc.Dashboard(context.Background(), "h1")
	require.NoError(t, err)
	assert.Equal(t, "Rose", view.Hall.HallName)
	assert.Len(t, view.Bookings, 2)
	require.Len(t, view.PendingBookings, 1)
	assert.Equal(t, "b1", view.PendingBookings[0].ID)
}

func TestUpdateHall_MergesImagesAndSchedulesCleanup(t *testing.T) {
	f := newFixture(t)
	f.halls.On("GetByID", mock.Anything, "h1").Return(&models.HallManager{
		ID:     "h1",
		Images: []string{"https://cdn/a.jpg", "https://cdn/b.jpg"},
	}, nil)
	f.store.On("Upload", mock.Anything, "hallImages/h1/1700000000000_new.jpg", mock.Anything).Return("https://cdn/new.jpg", nil)
	f.halls.On("Update", mock.Anything, "h1", bson.M{
		"hallName": "Rose Garden",
		"images":   []string{"https://cdn/b.jpg", "https://cdn/new.jpg"},
	}).Return(nil)
	f.cleaner.On("Schedule", mock.Anything, []string{"https://cdn/a.jpg"}).Return()

	m, err := f.svc.UpdateHall(context.Background(), "h1", models.HallEdit{
		HallName:      "Rose Garden",
		NewImages:     []models.ImageUpload{pngUpload(t, "new.png")},
		DeleteIndices: []int{0, 7},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn/b.jpg", "https://cdn/new.jpg"}, m.Images)
}

func TestUpdateHall_UploadFailureDiscardsEarlierUploads(t *testing.T) {
	f := newFixture(t)
	f.halls.On("GetByID", mock.Anything, "h1").Return(&models.HallManager{ID: "h1"}, nil)
	f.store.On("Upload", mock.Anything, "hallImages/h1/1700000000000_one.jpg", mock.Anything).Return("https://cdn/one.jpg", nil)
	f.store.On("Upload", mock.Anything, "hallImages/h1/1700000000000_two.jpg", mock.Anything).Return("", errors.New("quota exceeded"))
	f.cleaner.On("Schedule", mock.Anything, []string{"https://cdn/one.jpg"}).Return()

	_, err := f.svc.UpdateHall(context.Background(), "h1", models.HallEdit{
		NewImages: []models.ImageUpload{pngUpload(t, "one.png"), pngUpload(t, "two.png")},
	})
	var cerr *workflow.CollaboratorError
	require.ErrorAs(t, err, &cerr)
	f.halls.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateHall_RejectsNonImage(t *testing.T) {
	f := newFixture(t)
	f.halls.On("GetByID", mock.Anything, "h1").Return(&models.HallManager{ID: "h1"}, nil)

	_, err := f.svc.UpdateHall(context.Background(), "h1", models.HallEdit{
		NewImages: []models.ImageUpload{{Filename: "notes.txt", Content: bytes.NewBufferString("hi")}},
	})
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestUpdateHall_NoChanges(t *testing.T) {
	f := newFixture(t)
	f.halls.On("GetByID", mock.Anything, "h1").Return(&models.HallManager{ID: "h1", Images: []string{"x"}}, nil)

	m, err := f.svc.UpdateHall(context.Background(), "h1", models.HallEdit{DeleteIndices: []int{3}})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, m.Images)
}

func TestDecideBooking(t *testing.T) {
	f := newFixture(t)
	f.bookings.On("GetByID", mock.Anything, "b1").Return(&models.Booking{ID: "b1", HallManagerID: "h1", Status: models.StatusPending}, nil)
	f.bookings.On("Update", mock.Anything, "b1", bson.M{"status": models.StatusApproved}).Return(nil)

	b, err := f.svc.DecideBooking(context.Background(), "h1", "b1", models.ActionApprove)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, b.Status)
}

func TestDecideBooking_OtherManager(t *testing.T) {
	f := newFixture(t)
	f.bookings.On("GetByID", mock.Anything, "b1").Return(&models.Booking{ID: "b1", HallManagerID: "h2", Status: models.StatusPending}, nil)

	_, err := f.svc.DecideBooking(context.Background(), "h1", "b1", models.ActionReject)
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestDecideBooking_ToggleNotAllowed(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.DecideBooking(context.Background(), "h1", "b1", models.ActionCompleteToggle)
	assert.ErrorIs(t, err, workflow.ErrUnsupportedAction)
}
