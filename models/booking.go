package models

import "time"

// Booking types. Hall bookings reference a venue, service bookings a service provider.
const (
	BookingTypeHall    = "hall"
	BookingTypeService = "service"
)

// Booking is a customer's reservation request for a hall or a service.
type Booking struct {
	ID                     string    `bson:"id" json:"id"`
	Type                   string    `bson:"type,omitempty" json:"type,omitempty"`
	HallID                 string    `bson:"hallId,omitempty" json:"hallId,omitempty"`
	HallManagerID          string    `bson:"hallManagerId,omitempty" json:"hallManagerId,omitempty"`
	ServiceProviderID      string    `bson:"serviceProviderId,omitempty" json:"serviceProviderId,omitempty"`
	HallName               string    `bson:"hallName,omitempty" json:"hallName,omitempty"`
	TrackingID             string    `bson:"trackingId" json:"trackingId"`
	CustomerName           string    `bson:"customerName" json:"customerName"`
	Email                  string    `bson:"email" json:"email"`
	Phone                  string    `bson:"phone" json:"phone"`
	Date                   string    `bson:"date" json:"date"` // YYYY-MM-DD
	EventType              string    `bson:"eventType" json:"eventType"`
	GuestCount             int       `bson:"guestCount" json:"guestCount"`
	AdditionalRequirements string    `bson:"additionalRequirements" json:"additionalRequirements"`
	Status                 Status    `bson:"status" json:"status"`
	Price                  Money     `bson:"price" json:"price"`
	CreatedAt              time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt              time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// IsServiceBooking reports whether the booking targets a service provider rather than a hall.
func (b Booking) IsServiceBooking() bool {
	return b.Type == BookingTypeService || b.ServiceProviderID != ""
}

// BookingRequest is the customer hall-booking form.
type BookingRequest struct {
	CustomerName           string `json:"customerName" binding:"required"`
	Email                  string `json:"email" binding:"required,email"`
	Phone                  string `json:"phone" binding:"required"`
	Date                   string `json:"date"`
	GuestCount             string `json:"guestCount"`
	EventType              string `json:"eventType"`
	AdditionalRequirements string `json:"additionalRequirements"`
}

// BookingEdit is the admin booking edit form.
type BookingEdit struct {
	CustomerName string `json:"customerName"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone"`
	Date         string `json:"date"`
	Status       Status `json:"status"`
}

// StatusChange is the body of every approve/reject endpoint.
type StatusChange struct {
	Action Action `json:"action" binding:"required"`
}

// Venue returns the hall a booking belongs to. ok is false for service bookings.
func (b Booking) Venue() (ref VenueRef, ok bool) {
	switch {
	case b.HallManagerID != "":
		return VenueRef{ID: b.HallManagerID, IsManager: true}, true
	case b.HallID != "":
		return VenueRef{ID: b.HallID}, true
	}
	return VenueRef{}, false
}
