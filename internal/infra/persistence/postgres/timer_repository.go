// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"countdown/internal/domain/entity"
	domainerrors "countdown/internal/domain/errors"
	"countdown/internal/domain/repository"
	"countdown/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// timerRepository implements the repository.TimerRepository interface.
type timerRepository struct {
	db *gorm.DB
}

// NewTimerRepository is the constructor for timerRepository.
func NewTimerRepository(db *gorm.DB) repository.TimerRepository {
	return &timerRepository{
		db: db,
	}
}

// Create persists a new timer.
func (repo *timerRepository) Create(ctx context.Context, timer *entity.Timer) error {
	timerM := fromTimerDomain(timer)

	if err := repo.db.WithContext(ctx).Create(timerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTimer
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrTimerCreationFailed.WrapMessage("missing required timer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create timer")
	}

	// Update the entity with generated values
	timer.ID = timerM.ID
	timer.CreatedAt = timerM.CreatedAt
	timer.UpdatedAt = timerM.UpdatedAt

	return nil
}

// FindByIDAndShop retrieves a timer owned by shopID.
func (repo *timerRepository) FindByIDAndShop(ctx context.Context, id uuid.UUID, shopID string) (*entity.Timer, error) {
	var timerM model.TimerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&timerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTimerNotFound
		}

		return nil, errors.Wrap(err, "failed to find timer by ID")
	}

	return toTimerDomain(&timerM), nil
}

// FindByShop retrieves every timer of a shop, newest first.
func (repo *timerRepository) FindByShop(ctx context.Context, shopID string) ([]*entity.Timer, error) {
	var timerModels []*model.TimerModel

	if err := repo.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Find(&timerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find timers by shop")
	}

	return toTimerDomains(timerModels), nil
}

// FindActiveByShop retrieves switched-on timers whose end time is unset or after now.
func (repo *timerRepository) FindActiveByShop(ctx context.Context, shopID string, now time.Time) ([]*entity.Timer, error) {
	var timerModels []*model.TimerModel

	if err := repo.db.WithContext(ctx).
		Where("shop_id = ? AND active = ?", shopID, true).
		Where("end_time IS NULL OR end_time > ?", now).
		Order("created_at DESC").
		Find(&timerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active timers by shop")
	}

	return toTimerDomains(timerModels), nil
}

// Update overwrites every mutable field of an existing timer.
func (repo *timerRepository) Update(ctx context.Context, timer *entity.Timer) error {
	timerM := fromTimerDomain(timer)

	// Select("*") so zero values (loop=false, nil end time, ...) are written too.
	result := repo.db.WithContext(ctx).
		Model(&model.TimerModel{ID: timer.ID}).
		Select("*").
		Omit("id", "shop_id", "created_at", "deleted_at").
		Updates(timerM)

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) || isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrTimerUpdateFailed.WrapMessage("missing required timer information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update timer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTimerNotFound
	}

	timer.UpdatedAt = timerM.UpdatedAt

	return nil
}

// UpdateActive flips the merchant on/off switch of a timer.
func (repo *timerRepository) UpdateActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TimerModel{}).
		Where("id = ?", id).
		Update("active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update timer active status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTimerNotFound
	}

	return nil
}

// Delete removes a timer by its ID (soft delete).
func (repo *timerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TimerModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete timer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTimerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTimerDomain converts a GORM TimerModel to a domain Timer entity.
func toTimerDomain(data *model.TimerModel) *entity.Timer {
	if data == nil {
		return nil
	}

	style := data.Style.Data()
	urgency := data.UrgencySettings.Data()

	timer := entity.Timer{
		ID:                  data.ID,
		ShopID:              data.ShopID,
		Title:               data.Title,
		StartTime:           data.StartTime,
		EndTime:             data.EndTime,
		Duration:            data.Duration,
		Loop:                data.Loop,
		HideAfterCompletion: data.HideAfterCompletion,
		BeforeMessage:       data.BeforeMessage,
		AfterMessage:        data.AfterMessage,
		Style: entity.TimerStyle{
			BackgroundColor: style.BackgroundColor,
			TextColor:       style.TextColor,
			FontFamily:      style.FontFamily,
			FontSize:        style.FontSize,
			BorderRadius:    style.BorderRadius,
			Padding:         style.Padding,
		},
		Urgency: entity.UrgencySettings{
			Enabled:        urgency.Enabled,
			TriggerMinutes: urgency.TriggerMinutes,
			PulseColor:     urgency.PulseColor,
			ShowBanner:     urgency.ShowBanner,
			BannerMessage:  urgency.BannerMessage,
		},
		ProductIDs:    []string(data.ProductIDs),
		CollectionIDs: []string(data.CollectionIDs),
		Active:        data.Active,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	// Rows written before a setting existed come back with zero values.
	timer = timer.WithDefaults()

	return &timer
}

func toTimerDomains(models []*model.TimerModel) []*entity.Timer {
	timers := make([]*entity.Timer, 0, len(models))
	for _, timerM := range models {
		timers = append(timers, toTimerDomain(timerM))
	}

	return timers
}

// fromTimerDomain converts a domain Timer entity to a GORM TimerModel.
func fromTimerDomain(data *entity.Timer) *model.TimerModel {
	if data == nil {
		return nil
	}

	productIDs := data.ProductIDs
	if productIDs == nil {
		productIDs = []string{}
	}
	collectionIDs := data.CollectionIDs
	if collectionIDs == nil {
		collectionIDs = []string{}
	}

	return &model.TimerModel{
		ID:                  data.ID,
		ShopID:              data.ShopID,
		Title:               data.Title,
		StartTime:           data.StartTime,
		EndTime:             data.EndTime,
		Duration:            data.Duration,
		Loop:                data.Loop,
		HideAfterCompletion: data.HideAfterCompletion,
		BeforeMessage:       data.BeforeMessage,
		AfterMessage:        data.AfterMessage,
		Style: datatypes.NewJSONType(model.TimerStyleData{
			BackgroundColor: data.Style.BackgroundColor,
			TextColor:       data.Style.TextColor,
			FontFamily:      data.Style.FontFamily,
			FontSize:        data.Style.FontSize,
			BorderRadius:    data.Style.BorderRadius,
			Padding:         data.Style.Padding,
		}),
		UrgencySettings: datatypes.NewJSONType(model.UrgencySettingsData{
			Enabled:        data.Urgency.Enabled,
			TriggerMinutes: data.Urgency.TriggerMinutes,
			PulseColor:     data.Urgency.PulseColor,
			ShowBanner:     data.Urgency.ShowBanner,
			BannerMessage:  data.Urgency.BannerMessage,
		}),
		ProductIDs:    datatypes.JSONSlice[string](productIDs),
		CollectionIDs: datatypes.JSONSlice[string](collectionIDs),
		Active:        data.Active,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
