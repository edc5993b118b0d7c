package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

type tradingRouteRepository struct {
	db *gorm.DB
}

func NewTradingRouteRepository(db *gorm.DB) domain.TradingRouteRepository {
	return &tradingRouteRepository{db: db}
}

func (r *tradingRouteRepository) List(ctx context.Context) ([]*domain.TradingRoute, error) {
	var models []TradingRouteModel
	if err := r.db.WithContext(ctx).Order("`rank`, id").Find(&models).Error; err != nil {
		return nil, err
	}
	routes := make([]*domain.TradingRoute, len(models))
	for i := range models {
		routes[i] = models[i].ToDomain()
	}
	return routes, nil
}

func (r *tradingRouteRepository) Get(ctx context.Context, id string) (*domain.TradingRoute, error) {
	var model TradingRouteModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *tradingRouteRepository) Insert(ctx context.Context, route *domain.TradingRoute) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(FromTradingRouteDomain(route))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *tradingRouteRepository) Update(ctx context.Context, route *domain.TradingRoute) error {
	return r.db.WithContext(ctx).Save(FromTradingRouteDomain(route)).Error
}

func (r *tradingRouteRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&TradingRouteModel{}, "id = ?", id).Error
}
