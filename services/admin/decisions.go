package admin

import (
	"context"

	"weddingconsole/models"
	"weddingconsole/services/workflow"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Decide applies an approve/reject (or completeToggle for bookings) to any record.
func (s *DefaultAdminService) Decide(ctx context.Context, kind models.EntityKind, id string, action models.Action) (models.Status, error) {
	if kind == models.KindBooking {
		return s.decideBooking(ctx, id, action)
	}

	current, err := s.currentStatus(ctx, kind, id)
	if err != nil {
		return "", err
	}

	next, err := workflow.Transition(kind, current, action)
	if err != nil {
		return "", err
	}
	if err := s.update(ctx, kind, id, bson.M{"status": next}); err != nil {
		return "", err
	}

	s.Logger.Info("Status changed",
		zap.String("kind", string(kind)),
		zap.String("id", id),
		zap.String("from", string(current)),
		zap.String("to", string(next)))
	return next, nil
}

// decideBooking goes through the booking itself so completeToggle is refused for hall bookings.
func (s *DefaultAdminService) decideBooking(ctx context.Context, id string, action models.Action) (models.Status, error) {
	booking, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return "", workflow.Collaborator("get booking", err)
	}
	next, err := workflow.TransitionBooking(*booking, action)
	if err != nil {
		return "", err
	}
	if err := s.update(ctx, models.KindBooking, id, bson.M{"status": next}); err != nil {
		return "", err
	}
	s.Logger.Info("Status changed",
		zap.String("kind", string(models.KindBooking)),
		zap.String("id", id),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(next)))
	return next, nil
}

// Delete removes a record of any kind.
func (s *DefaultAdminService) Delete(ctx context.Context, kind models.EntityKind, id string) error {
	var err error
	switch kind {
	case models.KindServiceProvider:
		err = s.Providers.Delete(ctx, id)
	case models.KindHallManager:
		err = s.Halls.Delete(ctx, id)
	case models.KindBooking:
		err = s.Bookings.Delete(ctx, id)
	default:
		return workflow.ErrUnsupportedAction
	}
	if err != nil {
		return workflow.Collaborator("delete "+string(kind), err)
	}
	s.Logger.Info("Record deleted", zap.String("kind", string(kind)), zap.String("id", id))
	return nil
}

func (s *DefaultAdminService) currentStatus(ctx context.Context, kind models.EntityKind, id string) (models.Status, error) {
	switch kind {
	case models.KindServiceProvider:
		p, err := s.Providers.GetByID(ctx, id)
		if err != nil {
			return "", workflow.Collaborator("get service provider", err)
		}
		return p.Status, nil
	case models.KindHallManager:
		m, err := s.Halls.GetByID(ctx, id)
		if err != nil {
			return "", workflow.Collaborator("get hall manager", err)
		}
		return m.Status, nil
	}
	return "", workflow.ErrUnsupportedAction
}

func (s *DefaultAdminService) update(ctx context.Context, kind models.EntityKind, id string, fields bson.M) error {
	var err error
	switch kind {
	case models.KindServiceProvider:
		err = s.Providers.Update(ctx, id, fields)
	case models.KindHallManager:
		err = s.Halls.Update(ctx, id, fields)
	case models.KindBooking:
		err = s.Bookings.Update(ctx, id, fields)
	default:
		return workflow.ErrUnsupportedAction
	}
	if err != nil {
		return workflow.Collaborator("update "+string(kind), err)
	}
	return nil
}
