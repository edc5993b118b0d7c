package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

type assetPairRepository struct {
	db *gorm.DB
}

func NewAssetPairRepository(db *gorm.DB) domain.AssetPairRepository {
	return &assetPairRepository{db: db}
}

func (r *assetPairRepository) filtered(ctx context.Context, legalEntity string, mode domain.MatchingEngineMode) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&AssetPairModel{})
	if legalEntity != "" {
		db = db.Where("legal_entity = ?", legalEntity)
	}
	if mode != "" {
		db = db.Where("matching_engine_mode = ?", string(mode))
	}
	return db
}

func (r *assetPairRepository) List(ctx context.Context, legalEntity string, mode domain.MatchingEngineMode) ([]*domain.AssetPair, error) {
	var models []AssetPairModel
	if err := r.filtered(ctx, legalEntity, mode).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	pairs := make([]*domain.AssetPair, len(models))
	for i := range models {
		pairs[i] = models[i].ToDomain()
	}
	return pairs, nil
}

func (r *assetPairRepository) ListByPages(ctx context.Context, legalEntity string, mode domain.MatchingEngineMode,
	skip, take int) (*domain.Paginated[*domain.AssetPair], error) {
	var total int64
	if err := r.filtered(ctx, legalEntity, mode).Count(&total).Error; err != nil {
		return nil, err
	}
	var models []AssetPairModel
	if err := r.filtered(ctx, legalEntity, mode).Order("id").Offset(skip).Limit(take).Find(&models).Error; err != nil {
		return nil, err
	}
	pairs := make([]*domain.AssetPair, len(models))
	for i := range models {
		pairs[i] = models[i].ToDomain()
	}
	return &domain.Paginated[*domain.AssetPair]{Contents: pairs, Start: skip, Size: len(pairs), TotalSize: total}, nil
}

func (r *assetPairRepository) Get(ctx context.Context, id string) (*domain.AssetPair, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *assetPairRepository) GetByBasePair(ctx context.Context, basePairID string) (*domain.AssetPair, error) {
	return r.first(ctx, "base_pair_id = ?", basePairID)
}

func (r *assetPairRepository) GetByBasePairAndNotByID(ctx context.Context, id, basePairID string) (*domain.AssetPair, error) {
	return r.first(ctx, "base_pair_id = ? AND id <> ?", basePairID, id)
}

func (r *assetPairRepository) first(ctx context.Context, query string, args ...any) (*domain.AssetPair, error) {
	var model AssetPairModel
	if err := r.db.WithContext(ctx).First(&model, append([]any{query}, args...)...).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *assetPairRepository) Insert(ctx context.Context, pair *domain.AssetPair) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(FromAssetPairDomain(pair))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *assetPairRepository) Update(ctx context.Context, pair *domain.AssetPair) error {
	return r.db.WithContext(ctx).Save(FromAssetPairDomain(pair)).Error
}

func (r *assetPairRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&AssetPairModel{}, "id = ?", id).Error
}
