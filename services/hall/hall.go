package hall

import (
	"context"
	"fmt"
	"strings"

	"weddingconsole/models"
	"weddingconsole/services"
	"weddingconsole/services/storage"
	"weddingconsole/services/workflow"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Dashboard returns the manager's hall with its bookings and the pending subset.
func (s *DefaultHallService) Dashboard(ctx context.Context, managerID string) (*models.HallManagerDashboardView, error) {
	manager, err := s.Halls.GetByID(ctx, managerID)
	if err != nil {
		return nil, workflow.Collaborator("get hall manager", err)
	}
	bookings, err := s.Bookings.List(ctx, models.Filter{HallManagerID: managerID})
	if err != nil {
		return nil, workflow.Collaborator("list hall bookings", err)
	}

	view := &models.HallManagerDashboardView{
		Hall:            *manager,
		Bookings:        []models.Booking{},
		PendingBookings: []models.Booking{},
	}
	for _, b := range bookings {
		view.Bookings = append(view.Bookings, b)
		if b.Status == models.StatusPending {
			view.PendingBookings = append(view.PendingBookings, b)
		}
	}
	return view, nil
}

// UpdateHall saves the manager's profile and hall fields, uploads new images and
// applies the image deletions. Images dropped from the list are handed to the
// cleaner only after the document is saved.
func (s *DefaultHallService) UpdateHall(ctx context.Context, managerID string, edit models.HallEdit) (*models.HallManager, error) {
	manager, err := s.Halls.GetByID(ctx, managerID)
	if err != nil {
		return nil, workflow.Collaborator("get hall manager", err)
	}

	fields := bson.M{}
	setString := func(key, raw string, dst *string) {
		if v := strings.TrimSpace(raw); v != "" {
			fields[key] = v
			*dst = v
		}
	}
	setString("name", edit.FullName, &manager.Name)
	setString("hallName", edit.HallName, &manager.HallName)
	setString("hallAddress", edit.HallAddress, &manager.HallAddress)
	setString("hallDescription", edit.HallDescription, &manager.HallDescription)
	setString("hallPhone", edit.HallPhone, &manager.HallPhone)

	if strings.TrimSpace(edit.HallCapacity) != "" {
		capacity, err := s.Workflow.Numbers.Int("hallCapacity", edit.HallCapacity)
		if err != nil {
			return nil, err
		}
		fields["hallCapacity"] = capacity
		manager.HallCapacity = capacity
	}
	if strings.TrimSpace(edit.HallPrice) != "" {
		price, err := s.Workflow.Numbers.Decimal("hallPrice", edit.HallPrice)
		if err != nil {
			return nil, err
		}
		fields["hallPrice"] = price
		manager.HallPrice = price
	}

	uploaded, err := s.uploadImages(ctx, managerID, edit.NewImages)
	if err != nil {
		return nil, err
	}

	current := manager.Images
	removed := workflow.RemovedImages(current, edit.DeleteIndices)
	if len(uploaded) > 0 || len(removed) > 0 {
		manager.Images = workflow.MergeImageEdits(current, uploaded, edit.DeleteIndices)
		fields["images"] = manager.Images
	}
	if len(fields) == 0 {
		return manager, nil
	}

	if err := s.Halls.Update(ctx, managerID, fields); err != nil {
		s.discard(ctx, uploaded)
		return nil, workflow.Collaborator("update hall manager", err)
	}
	if len(removed) > 0 {
		s.Cleaner.Schedule(ctx, removed)
	}

	s.Logger.Info("Hall updated",
		zap.String("managerId", managerID),
		zap.Int("uploaded", len(uploaded)),
		zap.Int("removed", len(removed)))
	return manager, nil
}

// uploadImages normalises and uploads each file in order. On failure the files
// already uploaded in this call are discarded.
func (s *DefaultHallService) uploadImages(ctx context.Context, managerID string, uploads []models.ImageUpload) ([]string, error) {
	urls := make([]string, 0, len(uploads))
	for _, up := range uploads {
		name, content, err := storage.NormalizeImage(up.Filename, up.Content, s.MaxImageWidth)
		if err != nil {
			s.discard(ctx, urls)
			return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
		}
		objectPath := storage.ObjectPath(storage.HallImageFolder, managerID, name, s.now())
		url, err := s.Storage.Upload(ctx, objectPath, content)
		if err != nil {
			s.discard(ctx, urls)
			return nil, workflow.Collaborator("upload image", err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *DefaultHallService) discard(ctx context.Context, urls []string) {
	if len(urls) > 0 {
		s.Cleaner.Schedule(ctx, urls)
	}
}

// DecideBooking approves or rejects one of the manager's own bookings.
func (s *DefaultHallService) DecideBooking(ctx context.Context, managerID, bookingID string, action models.Action) (*models.Booking, error) {
	if action != models.ActionApprove && action != models.ActionReject {
		return nil, workflow.ErrUnsupportedAction
	}
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, workflow.Collaborator("get booking", err)
	}
	if booking.HallManagerID != managerID {
		return nil, services.ErrForbidden
	}

	next, err := workflow.Transition(models.KindBooking, booking.Status, action)
	if err != nil {
		return nil, err
	}
	if err := s.Bookings.Update(ctx, bookingID, bson.M{"status": next}); err != nil {
		return nil, workflow.Collaborator("update booking", err)
	}
	booking.Status = next

	s.Logger.Info("Hall booking decided",
		zap.String("managerId", managerID),
		zap.String("bookingId", bookingID),
		zap.String("status", string(next)))
	return booking, nil
}
