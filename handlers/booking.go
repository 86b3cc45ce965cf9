package handlers

import (
	"net/http"
	"strconv"

	"weddingconsole/models"
	"weddingconsole/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the public hall-booking form.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func venueRef(c *gin.Context) models.VenueRef {
	isManager, _ := strconv.ParseBool(c.Query("isManager"))
	return models.VenueRef{ID: c.Param("id"), IsManager: isManager}
}

// Form handles GET /api/halls/:id/booking-form.
func (h *BookingHandler) Form(c *gin.Context) {
	view, err := h.Service.Form(c.Request.Context(), venueRef(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Submit handles POST /api/halls/:id/bookings.
func (h *BookingHandler) Submit(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	b, err := h.Service.Submit(c.Request.Context(), venueRef(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Booking request sent successfully",
		"trackingId": b.TrackingID,
		"booking":    b,
	})
}
