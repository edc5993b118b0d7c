package mysql

import (
	"context"
	"errors"

	"github.com/wyfcoding/pkg/contextx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

type tradingInstrumentRepository struct {
	db *gorm.DB
}

func NewTradingInstrumentRepository(db *gorm.DB) domain.TradingInstrumentRepository {
	return &tradingInstrumentRepository{db: db}
}

func (r *tradingInstrumentRepository) WithTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(contextx.WithTx(ctx, tx))
	})
}

func (r *tradingInstrumentRepository) List(ctx context.Context, tradingConditionID string) ([]*domain.TradingInstrument, error) {
	db := getDB(ctx, r.db).WithContext(ctx)
	if tradingConditionID != "" {
		db = db.Where("trading_condition_id = ?", tradingConditionID)
	}
	var models []TradingInstrumentModel
	if err := db.Order("trading_condition_id, instrument").Find(&models).Error; err != nil {
		return nil, err
	}
	instruments := make([]*domain.TradingInstrument, len(models))
	for i := range models {
		instruments[i] = models[i].ToDomain()
	}
	return instruments, nil
}

func (r *tradingInstrumentRepository) ListByPages(ctx context.Context, tradingConditionID string,
	skip, take int) (*domain.Paginated[*domain.TradingInstrument], error) {
	count := getDB(ctx, r.db).WithContext(ctx).Model(&TradingInstrumentModel{})
	find := getDB(ctx, r.db).WithContext(ctx)
	if tradingConditionID != "" {
		count = count.Where("trading_condition_id = ?", tradingConditionID)
		find = find.Where("trading_condition_id = ?", tradingConditionID)
	}

	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, err
	}
	var models []TradingInstrumentModel
	if err := find.Order("trading_condition_id, instrument").Offset(skip).Limit(take).Find(&models).Error; err != nil {
		return nil, err
	}
	instruments := make([]*domain.TradingInstrument, len(models))
	for i := range models {
		instruments[i] = models[i].ToDomain()
	}
	return &domain.Paginated[*domain.TradingInstrument]{
		Contents: instruments, Start: skip, Size: len(instruments), TotalSize: total,
	}, nil
}

func (r *tradingInstrumentRepository) Get(ctx context.Context, tradingConditionID, instrument string) (*domain.TradingInstrument, error) {
	var model TradingInstrumentModel
	err := getDB(ctx, r.db).WithContext(ctx).
		First(&model, "trading_condition_id = ? AND instrument = ?", tradingConditionID, instrument).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *tradingInstrumentRepository) Insert(ctx context.Context, instrument *domain.TradingInstrument) (bool, error) {
	result := getDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(FromTradingInstrumentDomain(instrument))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *tradingInstrumentRepository) Update(ctx context.Context, instrument *domain.TradingInstrument) error {
	return getDB(ctx, r.db).WithContext(ctx).Save(FromTradingInstrumentDomain(instrument)).Error
}

func (r *tradingInstrumentRepository) Delete(ctx context.Context, tradingConditionID, instrument string) error {
	return getDB(ctx, r.db).WithContext(ctx).
		Delete(&TradingInstrumentModel{}, "trading_condition_id = ? AND instrument = ?", tradingConditionID, instrument).Error
}

func (r *tradingInstrumentRepository) CreateDefaultInstruments(ctx context.Context, tradingConditionID string,
	instruments []string, defaults domain.DefaultTradingInstrumentSettings) ([]*domain.TradingInstrument, error) {
	created := make([]*domain.TradingInstrument, 0, len(instruments))
	for _, id := range instruments {
		instr := domain.NewDefaultInstrument(tradingConditionID, id, defaults)
		inserted, err := r.Insert(ctx, instr)
		if err != nil {
			return nil, err
		}
		if inserted {
			created = append(created, instr)
		}
	}
	return created, nil
}
