package workflow

import "weddingconsole/models"

var kindStatuses = map[models.EntityKind]map[models.Status]bool{
	models.KindServiceProvider: {models.StatusPending: true, models.StatusApproved: true, models.StatusRejected: true},
	models.KindHallManager:     {models.StatusPending: true, models.StatusApproved: true, models.StatusRejected: true},
	models.KindBooking: {
		models.StatusPending:   true,
		models.StatusApproved:  true,
		models.StatusRejected:  true,
		models.StatusCompleted: true,
	},
}

// ValidateStatus checks that status is allowed for kind. Admin edits use it to set a status directly.
func ValidateStatus(kind models.EntityKind, status models.Status) error {
	allowed, ok := kindStatuses[kind]
	if !ok {
		return newError(CodeUnsupportedAction, "unknown entity kind %q", kind)
	}
	if !allowed[status] {
		return newError(CodeInvalidTransition, "status %q is not valid for %s", status, kind)
	}
	return nil
}

// Transition applies action to an entity of kind currently in status current.
//
// approve and reject are legal from pending only; an item already approved or
// rejected fails with AlreadyDecided. completeToggle flips a booking between
// pending and completed.
func Transition(kind models.EntityKind, current models.Status, action models.Action) (models.Status, error) {
	if _, ok := kindStatuses[kind]; !ok {
		return "", newError(CodeUnsupportedAction, "unknown entity kind %q", kind)
	}

	switch action {
	case models.ActionApprove, models.ActionReject:
		target := models.StatusApproved
		if action == models.ActionReject {
			target = models.StatusRejected
		}
		switch current {
		case models.StatusPending:
			return target, nil
		case models.StatusApproved, models.StatusRejected:
			return "", newError(CodeAlreadyDecided, "%s is already %s", kind, current)
		default:
			return "", newError(CodeInvalidTransition, "cannot %s %s in status %q", action, kind, current)
		}

	case models.ActionCompleteToggle:
		if kind != models.KindBooking {
			return "", newError(CodeUnsupportedAction, "%s is not supported for %s", action, kind)
		}
		switch current {
		case models.StatusPending:
			return models.StatusCompleted, nil
		case models.StatusCompleted:
			return models.StatusPending, nil
		default:
			return "", newError(CodeInvalidTransition, "cannot toggle completion of a %s booking", current)
		}
	}

	return "", newError(CodeUnsupportedAction, "unknown action %q", action)
}

// ValidateBookingStatus narrows ValidateStatus to one booking: completed is
// reserved for service bookings.
func ValidateBookingStatus(b models.Booking, status models.Status) error {
	if err := ValidateStatus(models.KindBooking, status); err != nil {
		return err
	}
	if status == models.StatusCompleted && !b.IsServiceBooking() {
		return newError(CodeInvalidTransition, "hall booking %s cannot be completed", b.ID)
	}
	return nil
}

// TransitionBooking applies action to b. completeToggle is refused for hall bookings.
func TransitionBooking(b models.Booking, action models.Action) (models.Status, error) {
	if action == models.ActionCompleteToggle && !b.IsServiceBooking() {
		return "", newError(CodeInvalidTransition, "hall booking %s cannot be toggled complete", b.ID)
	}
	return Transition(models.KindBooking, b.Status, action)
}
