package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

type marketRepository struct {
	db *gorm.DB
}

func NewMarketRepository(db *gorm.DB) domain.MarketRepository {
	return &marketRepository{db: db}
}

func (r *marketRepository) List(ctx context.Context) ([]*domain.Market, error) {
	var models []MarketModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	markets := make([]*domain.Market, len(models))
	for i := range models {
		markets[i] = models[i].ToDomain()
	}
	return markets, nil
}

func (r *marketRepository) Get(ctx context.Context, id string) (*domain.Market, error) {
	var model MarketModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *marketRepository) Insert(ctx context.Context, market *domain.Market) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(FromMarketDomain(market))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *marketRepository) Update(ctx context.Context, market *domain.Market) error {
	return r.db.WithContext(ctx).Save(FromMarketDomain(market)).Error
}

func (r *marketRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&MarketModel{}, "id = ?", id).Error
}
