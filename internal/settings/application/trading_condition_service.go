package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

// TradingConditionService 交易条件的维护，含默认条件协议：
// 每个 legalEntity 范围内至多一个默认条件；范围内第一个条件强制为默认；
// 新默认条件生效时，旧默认条件的取消与新条件的落库在同一事务内完成。
type TradingConditionService struct {
	conditions         domain.TradingConditionRepository
	assets             domain.AssetRepository
	events             domain.EventSender
	defaultLegalEntity string
}

func NewTradingConditionService(
	conditions domain.TradingConditionRepository,
	assets domain.AssetRepository,
	events domain.EventSender,
	defaultLegalEntity string,
) *TradingConditionService {
	return &TradingConditionService{
		conditions:         conditions,
		assets:             assets,
		events:             events,
		defaultLegalEntity: defaultLegalEntity,
	}
}

func (s *TradingConditionService) List(ctx context.Context, isDefault *bool) ([]*domain.TradingCondition, error) {
	return s.conditions.List(ctx, isDefault)
}

func (s *TradingConditionService) Get(ctx context.Context, id string) (*domain.TradingCondition, error) {
	return s.conditions.Get(ctx, id)
}

func (s *TradingConditionService) Insert(ctx context.Context, params TradingConditionUpsertParams, route string) (*domain.TradingCondition, error) {
	if err := validateTraceability(params.Traceability); err != nil {
		return nil, err
	}
	if err := s.validateCondition(ctx, params.TradingCondition); err != nil {
		return nil, err
	}

	condition := params.TradingCondition
	s.stampLegalEntity(condition)

	err := s.conditions.WithTx(ctx, func(txCtx context.Context) error {
		current, err := s.conditions.GetDefault(txCtx, condition.LegalEntity)
		if err != nil {
			return err
		}
		if current == nil {
			// 范围内还没有默认条件，新条件强制为默认
			condition.IsDefault = true
		} else if condition.IsDefault && current.ID != condition.ID {
			current.IsDefault = false
			if err := s.conditions.Update(txCtx, current); err != nil {
				return err
			}
		}

		inserted, err := s.conditions.Insert(txCtx, condition)
		if err != nil {
			return err
		}
		if !inserted {
			return &domain.ConflictError{Kind: "trading condition", Key: condition.ID}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, params.Traceability, route)
	return condition, nil
}

func (s *TradingConditionService) Update(ctx context.Context, id string, params TradingConditionUpsertParams, route string) (*domain.TradingCondition, error) {
	if err := validateTraceability(params.Traceability); err != nil {
		return nil, err
	}
	if err := s.validateCondition(ctx, params.TradingCondition); err != nil {
		return nil, err
	}
	if params.TradingCondition.ID != id {
		return nil, domain.NewValidationError("id", "must match with body id")
	}

	condition := params.TradingCondition
	s.stampLegalEntity(condition)

	err := s.conditions.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := s.conditions.Get(txCtx, condition.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("trading condition %s: %w", condition.ID, domain.ErrNotFound)
		}
		if existing.LegalEntity != condition.LegalEntity {
			return domain.NewBusinessRuleError("legal entity cannot be changed")
		}

		current, err := s.conditions.GetDefault(txCtx, condition.LegalEntity)
		if err != nil {
			return err
		}
		if current == nil {
			condition.IsDefault = true
		} else if condition.IsDefault && current.ID != condition.ID {
			current.IsDefault = false
			if err := s.conditions.Update(txCtx, current); err != nil {
				return err
			}
		}

		return s.conditions.Update(txCtx, condition)
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, params.Traceability, route)
	return condition, nil
}

func (s *TradingConditionService) notify(ctx context.Context, tr *domain.TraceableMessage, route string) {
	s.events.SendSettingsChanged(ctx, tr.ExtractCorrelationID(), tr.ID, domain.SettingsTypeTradingCondition, route)
}

func (s *TradingConditionService) stampLegalEntity(condition *domain.TradingCondition) {
	if strings.TrimSpace(condition.LegalEntity) == "" {
		condition.LegalEntity = s.defaultLegalEntity
	}
}

func (s *TradingConditionService) validateCondition(ctx context.Context, condition *domain.TradingCondition) error {
	if condition == nil {
		return domain.NewValidationError("tradingCondition", "model is incorrect")
	}
	if strings.TrimSpace(condition.ID) == "" {
		return domain.NewValidationError("id", "trading condition id must be set")
	}
	if condition.LimitCurrency != "" {
		if asset, err := s.assets.Get(ctx, condition.LimitCurrency); err != nil {
			return err
		} else if asset == nil {
			return domain.NewValidationError("limitCurrency",
				fmt.Sprintf("limit currency asset %s does not exist", condition.LimitCurrency))
		}
	}
	for _, baseAsset := range condition.BaseAssets {
		if asset, err := s.assets.Get(ctx, baseAsset); err != nil {
			return err
		} else if asset == nil {
			return domain.NewValidationError("baseAssets",
				fmt.Sprintf("base asset %s does not exist", baseAsset))
		}
	}
	return nil
}
