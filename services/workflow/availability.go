package workflow

import (
	"strings"
	"time"

	"weddingconsole/models"

	"github.com/google/uuid"
)

// IsDateAvailable reports whether no non-rejected booking occupies date.
// Dates are compared as exact strings; callers pass the canonical YYYY-MM-DD form.
// An empty date never conflicts.
func IsDateAvailable(existing []models.Booking, date string) bool {
	return IsDateAvailableExcept(existing, date, "")
}

// IsDateAvailableExcept is IsDateAvailable ignoring the booking with id exceptID.
func IsDateAvailableExcept(existing []models.Booking, date, exceptID string) bool {
	if date == "" {
		return true
	}
	for _, b := range existing {
		if exceptID != "" && b.ID == exceptID {
			continue
		}
		if b.Date == date && b.Status != models.StatusRejected {
			return false
		}
	}
	return true
}

// Workflow holds the configurable parts of the booking rules.
type Workflow struct {
	Numbers NumberParser
	Clock   func() time.Time
}

// New returns a Workflow. strict selects whether malformed numbers are rejected
// instead of coerced to zero.
func New(strict bool) *Workflow {
	return &Workflow{
		Numbers: NumberParser{Strict: strict},
		Clock:   time.Now,
	}
}

func (w *Workflow) now() time.Time {
	if w.Clock == nil {
		return time.Now().UTC()
	}
	return w.Clock().UTC()
}

// ValidateBookingSubmission checks a candidate date against existing bookings and
// returns the pending booking payload. Venue and customer fields are left for the caller.
func (w *Workflow) ValidateBookingSubmission(existing []models.Booking, date, guestCount string) (models.Booking, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return models.Booking{}, ErrMissingDate
	}
	if !IsDateAvailable(existing, date) {
		return models.Booking{}, DateConflict(date)
	}

	guests, err := w.Numbers.Int("guestCount", guestCount)
	if err != nil {
		return models.Booking{}, err
	}
	if w.Numbers.Strict && guests < 1 {
		return models.Booking{}, newError(CodeInvalidNumber, "guestCount must be at least 1")
	}

	return models.Booking{
		ID:         uuid.New().String(),
		TrackingID: NewTrackingID(),
		Date:       date,
		GuestCount: guests,
		Status:     models.StatusPending,
		CreatedAt:  w.now(),
	}, nil
}

// NewTrackingID returns a short customer-facing booking reference.
func NewTrackingID() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "WB-" + strings.ToUpper(id[:10])
}
