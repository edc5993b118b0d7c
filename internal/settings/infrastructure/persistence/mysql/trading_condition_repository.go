package mysql

import (
	"context"
	"errors"

	"github.com/wyfcoding/pkg/contextx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

type tradingConditionRepository struct {
	db *gorm.DB
}

func NewTradingConditionRepository(db *gorm.DB) domain.TradingConditionRepository {
	return &tradingConditionRepository{db: db}
}

func (r *tradingConditionRepository) WithTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(contextx.WithTx(ctx, tx))
	})
}

func (r *tradingConditionRepository) List(ctx context.Context, isDefault *bool) ([]*domain.TradingCondition, error) {
	db := getDB(ctx, r.db).WithContext(ctx)
	if isDefault != nil {
		db = db.Where("is_default = ?", *isDefault)
	}
	var models []TradingConditionModel
	if err := db.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	conditions := make([]*domain.TradingCondition, len(models))
	for i := range models {
		conditions[i] = models[i].ToDomain()
	}
	return conditions, nil
}

func (r *tradingConditionRepository) Get(ctx context.Context, id string) (*domain.TradingCondition, error) {
	var model TradingConditionModel
	if err := getDB(ctx, r.db).WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// GetDefault 行级锁读取当前默认条件，避免并发切换默认时丢失更新
func (r *tradingConditionRepository) GetDefault(ctx context.Context, legalEntity string) (*domain.TradingCondition, error) {
	db := getDB(ctx, r.db).WithContext(ctx)
	if contextx.GetTx(ctx) != nil {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var model TradingConditionModel
	if err := db.First(&model, "is_default = ? AND legal_entity = ?", true, legalEntity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *tradingConditionRepository) Insert(ctx context.Context, condition *domain.TradingCondition) (bool, error) {
	result := getDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(FromTradingConditionDomain(condition))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *tradingConditionRepository) Update(ctx context.Context, condition *domain.TradingCondition) error {
	return getDB(ctx, r.db).WithContext(ctx).Save(FromTradingConditionDomain(condition)).Error
}
