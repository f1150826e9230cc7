// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"countdown/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for timer persistence.
var (
	// ErrTimerNotFound is returned when no timer matches the id and shop.
	ErrTimerNotFound = errors.New("timer not found")
	// ErrDuplicateTimer is returned when trying to create a timer whose id already exists.
	ErrDuplicateTimer = errors.New("timer already exists")
)

// TimerRepository defines the interface for timer-related database operations.
// Every lookup is scoped to the owning shop.
type TimerRepository interface {
	// Create persists a new timer.
	Create(ctx context.Context, timer *entity.Timer) error

	// FindByIDAndShop retrieves a timer owned by shopID.
	FindByIDAndShop(ctx context.Context, id uuid.UUID, shopID string) (*entity.Timer, error)

	// FindByShop retrieves every timer of a shop, newest first.
	FindByShop(ctx context.Context, shopID string) ([]*entity.Timer, error)

	// FindActiveByShop retrieves switched-on timers of a shop whose end time is
	// unset or after now, newest first.
	FindActiveByShop(ctx context.Context, shopID string, now time.Time) ([]*entity.Timer, error)

	// Update overwrites every mutable field of an existing timer.
	Update(ctx context.Context, timer *entity.Timer) error

	// UpdateActive flips the merchant on/off switch of a timer.
	UpdateActive(ctx context.Context, id uuid.UUID, active bool) error

	// Delete removes a timer by its ID (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
