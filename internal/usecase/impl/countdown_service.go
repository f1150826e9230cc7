package impl

import (
	"context"
	"log/slog"
	"time"

	"countdown/internal/domain/countdown"
	"countdown/internal/domain/entity"
	domainerrors "countdown/internal/domain/errors"
	"countdown/internal/domain/repository"
	"countdown/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CountdownServiceParams holds dependencies for CountdownService, injected by Fx
type CountdownServiceParams struct {
	fx.In

	TimerRepo repository.TimerRepository
	Clock     countdown.Clock `optional:"true"`
	Logger    *slog.Logger
}

type countdownService struct {
	timerRepo repository.TimerRepository
	clock     countdown.Clock
	logger    *slog.Logger
}

// NewCountdownService creates a new countdown service instance
func NewCountdownService(params CountdownServiceParams) usecase.CountdownUsecase {
	clock := params.Clock
	if clock == nil {
		clock = countdown.SystemClock
	}

	return &countdownService{
		timerRepo: params.TimerRepo,
		clock:     clock,
		logger:    params.Logger,
	}
}

// Preview evaluates an unsaved timer. Nothing is validated or stored.
func (s *countdownService) Preview(_ context.Context, input *usecase.TimerInput, at *time.Time) (*usecase.TimerCountdown, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "preview input is required")
	}

	now := s.clock.Now()
	if at != nil {
		now = *at
	}

	return newTimerCountdown(newTimerFromInput("", input), now), nil
}

// TimerCountdown evaluates one saved timer of the shop now
func (s *countdownService) TimerCountdown(ctx context.Context, shopID string, id uuid.UUID) (*usecase.TimerCountdown, error) {
	timer, err := s.timerRepo.FindByIDAndShop(ctx, id, shopID)
	if err != nil {
		return nil, timerLookupError(err)
	}

	return newTimerCountdown(timer, s.clock.Now()), nil
}

// ActiveTimers lists the shop's running timers, narrowed to productID when given
func (s *countdownService) ActiveTimers(ctx context.Context, shopID, productID string) ([]*entity.Timer, error) {
	if shopID == "" {
		return nil, domainerrors.ErrShopRequired
	}

	timers, err := s.timerRepo.FindActiveByShop(ctx, shopID, s.clock.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active timers")
	}

	if productID == "" {
		return timers, nil
	}

	filtered := make([]*entity.Timer, 0, len(timers))
	for _, timer := range timers {
		if timer.AppliesTo(productID) {
			filtered = append(filtered, timer)
		}
	}

	return filtered, nil
}

// StorefrontCountdowns evaluates the active timers at one instant and drops hidden ones
func (s *countdownService) StorefrontCountdowns(ctx context.Context, shopID, productID string) ([]*usecase.TimerCountdown, error) {
	timers, err := s.ActiveTimers(ctx, shopID, productID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	countdowns := make([]*usecase.TimerCountdown, 0, len(timers))
	for _, timer := range timers {
		tc := newTimerCountdown(timer, now)
		if tc.View.ShouldHide {
			s.logger.Debug("Skipping hidden timer",
				slog.String("timer_id", timer.ID.String()),
				slog.String("phase", string(tc.View.Phase)),
			)

			continue
		}
		countdowns = append(countdowns, tc)
	}

	return countdowns, nil
}

func newTimerCountdown(timer *entity.Timer, now time.Time) *usecase.TimerCountdown {
	resolved := timer.WithDefaults()

	return &usecase.TimerCountdown{
		Timer: &resolved,
		Frame: countdown.Tick(resolved, now),
	}
}
