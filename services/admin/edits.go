package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lockRepo "weddingconsole/database/repository/lock"
	"weddingconsole/models"
	"weddingconsole/services/workflow"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const defaultLockTTL = 30 * time.Second

// EditServiceProvider applies the non-empty fields of edit. A status set here is an
// admin override and is only checked for validity.
func (s *DefaultAdminService) EditServiceProvider(ctx context.Context, id string, edit models.ServiceProviderEdit) (*models.ServiceProvider, error) {
	provider, err := s.Providers.GetByID(ctx, id)
	if err != nil {
		return nil, workflow.Collaborator("get service provider", err)
	}

	fields := bson.M{}
	if v := strings.TrimSpace(edit.Name); v != "" {
		fields["name"] = v
		provider.Name = v
	}
	if v := strings.ToLower(strings.TrimSpace(edit.Email)); v != "" {
		fields["email"] = v
		provider.Email = v
	}
	if v := strings.TrimSpace(edit.Phone); v != "" {
		fields["phone"] = v
		provider.Phone = v
	}
	if edit.Services != nil {
		provider.Services = models.NormalizeServices(edit.Services)
		fields["services"] = provider.Services
	}
	if edit.Status != "" {
		if err := workflow.ValidateStatus(models.KindServiceProvider, edit.Status); err != nil {
			return nil, err
		}
		fields["status"] = edit.Status
		provider.Status = edit.Status
	}
	if len(fields) == 0 {
		return provider, nil
	}

	if err := s.Providers.Update(ctx, id, fields); err != nil {
		return nil, workflow.Collaborator("update service provider", err)
	}
	s.Logger.Info("Service provider edited", zap.String("id", id), zap.Int("fields", len(fields)))
	return provider, nil
}

// EditHallManager applies the non-empty fields of edit. Capacity and price go
// through the configured number parser.
func (s *DefaultAdminService) EditHallManager(ctx context.Context, id string, edit models.HallManagerEdit) (*models.HallManager, error) {
	manager, err := s.Halls.GetByID(ctx, id)
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
	setString("name", edit.Name, &manager.Name)
	setString("email", strings.ToLower(edit.Email), &manager.Email)
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
	if edit.Status != "" {
		if err := workflow.ValidateStatus(models.KindHallManager, edit.Status); err != nil {
			return nil, err
		}
		fields["status"] = edit.Status
		manager.Status = edit.Status
	}
	if len(fields) == 0 {
		return manager, nil
	}

	if err := s.Halls.Update(ctx, id, fields); err != nil {
		return nil, workflow.Collaborator("update hall manager", err)
	}
	s.Logger.Info("Hall manager edited", zap.String("id", id), zap.Int("fields", len(fields)))
	return manager, nil
}

// EditBooking applies the non-empty fields of edit. Whenever the result would
// occupy a venue date it did not hold before (a date move, or reviving a rejected
// booking) the date is re-checked under the venue/date lock.
func (s *DefaultAdminService) EditBooking(ctx context.Context, id string, edit models.BookingEdit) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, workflow.Collaborator("get booking", err)
	}
	wasRejected := booking.Status == models.StatusRejected

	fields := bson.M{}
	if v := strings.TrimSpace(edit.CustomerName); v != "" {
		fields["customerName"] = v
		booking.CustomerName = v
	}
	if v := strings.TrimSpace(edit.Email); v != "" {
		fields["email"] = v
		booking.Email = v
	}
	if v := strings.TrimSpace(edit.Phone); v != "" {
		fields["phone"] = v
		booking.Phone = v
	}
	if edit.Status != "" {
		if err := workflow.ValidateBookingStatus(*booking, edit.Status); err != nil {
			return nil, err
		}
		fields["status"] = edit.Status
		booking.Status = edit.Status
	}
	moved := false
	if date := strings.TrimSpace(edit.Date); date != "" && date != booking.Date {
		fields["date"] = date
		booking.Date = date
		moved = true
	}
	if len(fields) == 0 {
		return booking, nil
	}

	if ref, ok := booking.Venue(); ok && booking.Status != models.StatusRejected && (moved || wasRejected) {
		release, err := s.holdDate(ctx, ref, booking.Date)
		if err != nil {
			return nil, err
		}
		defer release()

		existing, err := s.Bookings.List(ctx, ref.Filter())
		if err != nil {
			return nil, workflow.Collaborator("list venue bookings", err)
		}
		if !workflow.IsDateAvailableExcept(existing, booking.Date, booking.ID) {
			return nil, workflow.DateConflict(booking.Date)
		}
	}

	if err := s.Bookings.Update(ctx, id, fields); err != nil {
		return nil, workflow.Collaborator("update booking", err)
	}
	s.Logger.Info("Booking edited", zap.String("id", id), zap.Int("fields", len(fields)))
	return booking, nil
}

// holdDate takes the same venue/date lock as customer submissions.
func (s *DefaultAdminService) holdDate(ctx context.Context, ref models.VenueRef, date string) (func(), error) {
	ttl := s.LockTTL
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	release, err := s.Locks.Acquire(ctx, lockRepo.BookingKey(ref, date), ttl)
	if errors.Is(err, lockRepo.ErrLocked) {
		return nil, fmt.Errorf("%w (another booking for this date is in progress)", workflow.DateConflict(date))
	}
	if err != nil {
		return nil, workflow.Collaborator("acquire booking lock", err)
	}
	return func() {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := release(rctx); err != nil {
			s.Logger.Warn("Failed to release booking lock", zap.String("venue", ref.ID), zap.String("date", date), zap.Error(err))
		}
	}, nil
}
