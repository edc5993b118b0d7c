package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

type assetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) domain.AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	var models []AssetModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	assets := make([]*domain.Asset, len(models))
	for i := range models {
		assets[i] = models[i].ToDomain()
	}
	return assets, nil
}

func (r *assetRepository) ListByPages(ctx context.Context, skip, take int) (*domain.Paginated[*domain.Asset], error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&AssetModel{}).Count(&total).Error; err != nil {
		return nil, err
	}
	var models []AssetModel
	if err := r.db.WithContext(ctx).Order("id").Offset(skip).Limit(take).Find(&models).Error; err != nil {
		return nil, err
	}
	assets := make([]*domain.Asset, len(models))
	for i := range models {
		assets[i] = models[i].ToDomain()
	}
	return &domain.Paginated[*domain.Asset]{Contents: assets, Start: skip, Size: len(assets), TotalSize: total}, nil
}

func (r *assetRepository) Get(ctx context.Context, id string) (*domain.Asset, error) {
	var model AssetModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *assetRepository) Insert(ctx context.Context, asset *domain.Asset) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(FromAssetDomain(asset))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *assetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	return r.db.WithContext(ctx).Save(FromAssetDomain(asset)).Error
}

func (r *assetRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&AssetModel{}, "id = ?", id).Error
}
