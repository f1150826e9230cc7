// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "countdown/internal/delivery/context"
	"countdown/internal/domain/countdown"
	"countdown/internal/domain/entity"
	domainerrors "countdown/internal/domain/errors"
	"countdown/internal/domain/repository"
	"countdown/internal/domain/service"
	"countdown/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TimerServiceParams holds dependencies for TimerService, injected by Fx
type TimerServiceParams struct {
	fx.In

	TimerRepo repository.TimerRepository
	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Clock     countdown.Clock `optional:"true"`
	Logger    *slog.Logger
}

// timerService implements the TimerUsecase interface.
type timerService struct {
	timerRepo repository.TimerRepository
	txManager repository.TransactionManager
	publisher service.EventPublisher
	clock     countdown.Clock
	logger    *slog.Logger
}

// NewTimerService is the constructor for timerService.
func NewTimerService(params TimerServiceParams) usecase.TimerUsecase {
	clock := params.Clock
	if clock == nil {
		clock = countdown.SystemClock
	}

	return &timerService{
		timerRepo: params.TimerRepo,
		txManager: params.TxManager,
		publisher: params.Publisher,
		clock:     clock,
		logger:    params.Logger,
	}
}

// CreateTimer validates input and stores a new timer for the shop.
func (srv *timerService) CreateTimer(ctx context.Context, shopID string, input *usecase.TimerInput) (*entity.Timer, error) {
	if shopID == "" {
		return nil, domainerrors.ErrShopRequired
	}

	timer := newTimerFromInput(shopID, input)
	if err := validateTimer(timer, input.Urgency); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate timer ID")
	}
	timer.ID = id

	if err := srv.timerRepo.Create(ctx, timer); err != nil {
		if errors.Is(err, repository.ErrDuplicateTimer) {
			return nil, errors.Wrap(domainerrors.ErrTimerConflict, "create timer")
		}

		return nil, errors.Wrap(err, "failed to create timer")
	}

	srv.publish(ctx, service.TimerEventCreated, timer)

	return timer, nil
}

// ListTimers retrieves every timer of the shop, newest first.
func (srv *timerService) ListTimers(ctx context.Context, shopID string) ([]*entity.Timer, error) {
	if shopID == "" {
		return nil, domainerrors.ErrShopRequired
	}

	timers, err := srv.timerRepo.FindByShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list timers")
	}

	return timers, nil
}

// GetTimer retrieves one timer owned by the shop.
func (srv *timerService) GetTimer(ctx context.Context, shopID string, id uuid.UUID) (*entity.Timer, error) {
	timer, err := srv.timerRepo.FindByIDAndShop(ctx, id, shopID)
	if err != nil {
		return nil, timerLookupError(err)
	}

	return timer, nil
}

// UpdateTimer applies input onto an existing timer owned by the shop.
func (srv *timerService) UpdateTimer(ctx context.Context, shopID string, id uuid.UUID, input *usecase.TimerInput) (*entity.Timer, error) {
	var updated *entity.Timer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		timerRepo := repoFactory.NewTimerRepository()

		// 1. Ownership check
		timer, err := timerRepo.FindByIDAndShop(ctx, id, shopID)
		if err != nil {
			return timerLookupError(err)
		}

		// 2. Merge and validate
		applyTimerInput(timer, input)
		if err := validateTimer(timer, input.Urgency); err != nil {
			return err
		}

		// 3. Persist
		if err := timerRepo.Update(ctx, timer); err != nil {
			if errors.Is(err, repository.ErrTimerNotFound) {
				return errors.Wrap(domainerrors.ErrTimerNotFound, "update timer")
			}

			return errors.Wrap(err, "failed to update timer")
		}
		updated = timer

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, service.TimerEventUpdated, updated)

	return updated, nil
}

// DeleteTimer removes a timer owned by the shop.
func (srv *timerService) DeleteTimer(ctx context.Context, shopID string, id uuid.UUID) error {
	var deleted *entity.Timer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		timerRepo := repoFactory.NewTimerRepository()

		timer, err := timerRepo.FindByIDAndShop(ctx, id, shopID)
		if err != nil {
			return timerLookupError(err)
		}

		if err := timerRepo.Delete(ctx, timer.ID); err != nil {
			if errors.Is(err, repository.ErrTimerNotFound) {
				return errors.Wrap(domainerrors.ErrTimerNotFound, "delete timer")
			}

			return errors.Wrap(err, "failed to delete timer")
		}
		deleted = timer

		return nil
	})
	if err != nil {
		return err
	}

	srv.publish(ctx, service.TimerEventDeleted, deleted)

	return nil
}

// SetTimerActive flips the on/off switch of a timer owned by the shop.
func (srv *timerService) SetTimerActive(ctx context.Context, shopID string, id uuid.UUID, active bool) (*entity.Timer, error) {
	var toggled *entity.Timer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		timerRepo := repoFactory.NewTimerRepository()

		timer, err := timerRepo.FindByIDAndShop(ctx, id, shopID)
		if err != nil {
			return timerLookupError(err)
		}

		if err := timerRepo.UpdateActive(ctx, timer.ID, active); err != nil {
			if errors.Is(err, repository.ErrTimerNotFound) {
				return errors.Wrap(domainerrors.ErrTimerNotFound, "set timer active")
			}

			return errors.Wrap(err, "failed to set timer active")
		}
		timer.Active = active
		timer.UpdatedAt = srv.clock.Now()
		toggled = timer

		return nil
	})
	if err != nil {
		return nil, err
	}

	eventType := service.TimerEventDeactivated
	if active {
		eventType = service.TimerEventActivated
	}
	srv.publish(ctx, eventType, toggled)

	return toggled, nil
}

// publish announces a timer change. Failures are logged and never fail the request.
func (srv *timerService) publish(ctx context.Context, eventType service.TimerEventType, timer *entity.Timer) {
	if srv.publisher == nil || timer == nil {
		return
	}

	event := &service.TimerEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		TimerID:    timer.ID.String(),
		ShopID:     timer.ShopID,
		OccurredAt: srv.clock.Now().UTC(),
	}

	if err := srv.publisher.PublishTimerEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to publish timer event",
			slog.String("type", string(eventType)),
			slog.String("timer_id", event.TimerID),
			slog.Any("error", err),
		)
	}
}

// timerLookupError maps a repository lookup failure onto the error returned to callers.
func timerLookupError(err error) error {
	if errors.Is(err, repository.ErrTimerNotFound) {
		return errors.Wrap(domainerrors.ErrTimerNotFound, "timer lookup")
	}

	return errors.Wrap(err, "failed to find timer")
}
