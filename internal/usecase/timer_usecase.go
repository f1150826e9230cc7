package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"countdown/internal/domain/entity"

	"github.com/google/uuid"
)

// Clearable fields of TimerInput. An explicit JSON null for one of them
// removes the stored value on update.
const (
	FieldDuration      = "duration"
	FieldBeforeMessage = "beforeMessage"
	FieldAfterMessage  = "afterMessage"
)

var clearableFields = []string{FieldDuration, FieldBeforeMessage, FieldAfterMessage}

// TimerInput represents the merchant-editable fields of a timer.
// Nil pointers mean "not provided" unless the field was sent as an explicit null.
type TimerInput struct {
	Title               string                  `json:"title" validate:"max=255"`
	StartTime           *time.Time              `json:"startTime"`
	EndTime             *time.Time              `json:"endTime"`
	Duration            *int                    `json:"duration" validate:"omitempty,min=0"`
	Loop                *bool                   `json:"loop"`
	HideAfterCompletion *bool                   `json:"hideAfterCompletion"`
	BeforeMessage       *string                 `json:"beforeMessage" validate:"omitempty,max=500"`
	AfterMessage        *string                 `json:"afterMessage" validate:"omitempty,max=500"`
	Style               *entity.TimerStyle      `json:"style"`
	Urgency             *entity.UrgencySettings `json:"urgencySettings"`
	ProductIDs          []string                `json:"productIds" validate:"omitempty,dive,max=255"`
	CollectionIDs       []string                `json:"collectionIds" validate:"omitempty,dive,max=255"`
	Active              *bool                   `json:"active"`

	nulls map[string]bool
}

// UnmarshalJSON decodes the input and records which clearable fields were sent as null.
func (in *TimerInput) UnmarshalJSON(data []byte) error {
	type plain TimerInput
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*in = TimerInput(decoded)
	for _, field := range clearableFields {
		if value, ok := raw[field]; ok && bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			in.SetNull(field)
		}
	}

	return nil
}

// SetNull marks field as explicitly cleared.
func (in *TimerInput) SetNull(field string) {
	if in.nulls == nil {
		in.nulls = make(map[string]bool)
	}
	in.nulls[field] = true
}

// IsNull reports whether field was explicitly cleared.
func (in *TimerInput) IsNull(field string) bool {
	return in.nulls[field]
}

// TimerUsecase defines the interface for merchant timer management
type TimerUsecase interface {
	// CreateTimer validates input and stores a new timer for the shop
	CreateTimer(ctx context.Context, shopID string, input *TimerInput) (*entity.Timer, error)

	// ListTimers retrieves every timer of the shop, newest first
	ListTimers(ctx context.Context, shopID string) ([]*entity.Timer, error)

	// GetTimer retrieves one timer owned by the shop
	GetTimer(ctx context.Context, shopID string, id uuid.UUID) (*entity.Timer, error)

	// UpdateTimer applies input onto an existing timer owned by the shop
	UpdateTimer(ctx context.Context, shopID string, id uuid.UUID, input *TimerInput) (*entity.Timer, error)

	// DeleteTimer removes a timer owned by the shop
	DeleteTimer(ctx context.Context, shopID string, id uuid.UUID) error

	// SetTimerActive flips the on/off switch of a timer owned by the shop
	SetTimerActive(ctx context.Context, shopID string, id uuid.UUID, active bool) (*entity.Timer, error)
}
