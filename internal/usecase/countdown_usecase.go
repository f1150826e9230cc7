package usecase

import (
	"context"
	"time"

	"countdown/internal/domain/countdown"
	"countdown/internal/domain/entity"

	"github.com/google/uuid"
)

// TimerCountdown is a timer together with its evaluation at one instant
type TimerCountdown struct {
	Timer *entity.Timer `json:"timer"`
	countdown.Frame
}

// CountdownUsecase evaluates timers for the storefront and the admin preview
type CountdownUsecase interface {
	// Preview evaluates an unsaved timer at the given instant, or now when at is nil
	Preview(ctx context.Context, input *TimerInput, at *time.Time) (*TimerCountdown, error)

	// TimerCountdown evaluates one saved timer of the shop now
	TimerCountdown(ctx context.Context, shopID string, id uuid.UUID) (*TimerCountdown, error)

	// ActiveTimers lists the shop's switched-on timers that have not ended,
	// narrowed to productID when it is not empty
	ActiveTimers(ctx context.Context, shopID, productID string) ([]*entity.Timer, error)

	// StorefrontCountdowns evaluates the active timers now and drops the hidden ones
	StorefrontCountdowns(ctx context.Context, shopID, productID string) ([]*TimerCountdown, error)
}
