package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

type scheduleSettingsRepository struct {
	db *gorm.DB
}

func NewScheduleSettingsRepository(db *gorm.DB) domain.ScheduleSettingsRepository {
	return &scheduleSettingsRepository{db: db}
}

func (r *scheduleSettingsRepository) List(ctx context.Context, marketID string) ([]*domain.ScheduleSettings, error) {
	db := r.db.WithContext(ctx)
	if marketID != "" {
		db = db.Where("market_id = ?", marketID)
	}
	var models []ScheduleSettingsModel
	if err := db.Order("`rank`, id").Find(&models).Error; err != nil {
		return nil, err
	}
	settings := make([]*domain.ScheduleSettings, len(models))
	for i := range models {
		settings[i] = models[i].ToDomain()
	}
	return settings, nil
}

func (r *scheduleSettingsRepository) Get(ctx context.Context, id string) (*domain.ScheduleSettings, error) {
	var model ScheduleSettingsModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *scheduleSettingsRepository) Insert(ctx context.Context, settings *domain.ScheduleSettings) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(FromScheduleSettingsDomain(settings))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *scheduleSettingsRepository) Update(ctx context.Context, settings *domain.ScheduleSettings) error {
	return r.db.WithContext(ctx).Save(FromScheduleSettingsDomain(settings)).Error
}

func (r *scheduleSettingsRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&ScheduleSettingsModel{}, "id = ?", id).Error
}
