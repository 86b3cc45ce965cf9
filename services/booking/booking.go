package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lockRepo "weddingconsole/database/repository/lock"
	"weddingconsole/models"
	"weddingconsole/services/workflow"

	"go.uber.org/zap"
)

const defaultLockTTL = 30 * time.Second

// Form returns the venue and its existing bookings so the client can grey out taken dates.
func (s *DefaultBookingService) Form(ctx context.Context, ref models.VenueRef) (*models.HallBookingFormView, error) {
	venue, err := s.Venues.Get(ctx, ref)
	if err != nil {
		return nil, workflow.Collaborator("get venue", err)
	}
	existing, err := s.Bookings.List(ctx, ref.Filter())
	if err != nil {
		return nil, workflow.Collaborator("list venue bookings", err)
	}
	if existing == nil {
		existing = []models.Booking{}
	}
	return &models.HallBookingFormView{
		Venue:            *venue,
		VenueKey:         ref.Key(),
		ExistingBookings: existing,
	}, nil
}

// Submit books a date at a venue. The venue/date lock is held across the
// availability check and the insert so two requests cannot both take the date.
func (s *DefaultBookingService) Submit(ctx context.Context, ref models.VenueRef, req models.BookingRequest) (*models.Booking, error) {
	date := strings.TrimSpace(req.Date)
	if date == "" {
		return nil, workflow.ErrMissingDate
	}

	venue, err := s.Venues.Get(ctx, ref)
	if err != nil {
		return nil, workflow.Collaborator("get venue", err)
	}

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
	defer func() {
		// The request context may already be cancelled; the lock must still go.
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := release(rctx); err != nil {
			s.Logger.Warn("Failed to release booking lock", zap.String("venue", ref.ID), zap.String("date", date), zap.Error(err))
		}
	}()

	existing, err := s.Bookings.List(ctx, ref.Filter())
	if err != nil {
		return nil, workflow.Collaborator("list venue bookings", err)
	}
	booking, err := s.Workflow.ValidateBookingSubmission(existing, date, req.GuestCount)
	if err != nil {
		return nil, err
	}

	booking.Type = models.BookingTypeHall
	if ref.IsManager {
		booking.HallManagerID = ref.ID
	} else {
		booking.HallID = ref.ID
	}
	booking.HallName = venue.Name
	booking.Price = venue.Price
	booking.CustomerName = strings.TrimSpace(req.CustomerName)
	booking.Email = strings.TrimSpace(req.Email)
	booking.Phone = strings.TrimSpace(req.Phone)
	booking.EventType = strings.TrimSpace(req.EventType)
	booking.AdditionalRequirements = strings.TrimSpace(req.AdditionalRequirements)

	if err := s.Bookings.Create(ctx, &booking); err != nil {
		return nil, workflow.Collaborator("create booking", err)
	}

	s.Logger.Info("Booking submitted",
		zap.String("bookingId", booking.ID),
		zap.String("trackingId", booking.TrackingID),
		zap.String(ref.Key(), ref.ID),
		zap.String("date", date))
	return &booking, nil
}
