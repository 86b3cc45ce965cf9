package booking

import (
	"context"
	"time"

	bookingRepo "weddingconsole/database/repository/booking"
	lockRepo "weddingconsole/database/repository/lock"
	venueRepo "weddingconsole/database/repository/venue"
	"weddingconsole/models"
	"weddingconsole/services/workflow"

	"go.uber.org/zap"
)

// BookingService backs the customer hall-booking form.
type BookingService interface {
	Form(ctx context.Context, ref models.VenueRef) (*models.HallBookingFormView, error)
	Submit(ctx context.Context, ref models.VenueRef, req models.BookingRequest) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Venues   venueRepo.VenueRepository
	Bookings bookingRepo.BookingRepository
	Locks    lockRepo.Locker
	Workflow *workflow.Workflow
	Logger   *zap.Logger
	LockTTL  time.Duration
}
