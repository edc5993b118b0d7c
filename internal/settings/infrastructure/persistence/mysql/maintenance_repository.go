package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

const maintenanceRowID = 1

type maintenanceModeRepository struct {
	db *gorm.DB
}

func NewMaintenanceModeRepository(db *gorm.DB) domain.MaintenanceModeRepository {
	return &maintenanceModeRepository{db: db}
}

func (r *maintenanceModeRepository) Get(ctx context.Context) (bool, error) {
	var model MaintenanceModeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", maintenanceRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return model.Enabled, nil
}

func (r *maintenanceModeRepository) Set(ctx context.Context, enabled bool) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoUpdates: clause.AssignmentColumns([]string{"enabled", "updated_at"})}).
		Create(&MaintenanceModeModel{ID: maintenanceRowID, Enabled: enabled}).Error
}
