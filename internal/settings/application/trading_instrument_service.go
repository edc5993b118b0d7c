package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

// TradingInstrumentService 交易品种的维护与批量分配
type TradingInstrumentService struct {
	instruments domain.TradingInstrumentRepository
	conditions  domain.TradingConditionRepository
	pairs       domain.AssetPairRepository
	assets      domain.AssetRepository
	trading     domain.TradingService
	events      domain.EventSender
	defaults    domain.DefaultTradingInstrumentSettings
}

func NewTradingInstrumentService(
	instruments domain.TradingInstrumentRepository,
	conditions domain.TradingConditionRepository,
	pairs domain.AssetPairRepository,
	assets domain.AssetRepository,
	trading domain.TradingService,
	events domain.EventSender,
	defaults domain.DefaultTradingInstrumentSettings,
) *TradingInstrumentService {
	return &TradingInstrumentService{
		instruments: instruments,
		conditions:  conditions,
		pairs:       pairs,
		assets:      assets,
		trading:     trading,
		events:      events,
		defaults:    defaults,
	}
}

func (s *TradingInstrumentService) List(ctx context.Context, tradingConditionID string) ([]*domain.TradingInstrument, error) {
	return s.instruments.List(ctx, tradingConditionID)
}

func (s *TradingInstrumentService) ListByPages(ctx context.Context, tradingConditionID string,
	skip, take int) (*domain.Paginated[*domain.TradingInstrument], error) {
	skip, take = normalizePaging(skip, take)
	return s.instruments.ListByPages(ctx, tradingConditionID, skip, take)
}

func (s *TradingInstrumentService) Get(ctx context.Context, tradingConditionID, instrument string) (*domain.TradingInstrument, error) {
	return s.instruments.Get(ctx, tradingConditionID, instrument)
}

func (s *TradingInstrumentService) Insert(ctx context.Context, params TradingInstrumentUpsertParams, route string) (*domain.TradingInstrument, error) {
	if err := validateTraceability(params.Traceability); err != nil {
		return nil, err
	}
	if err := s.validateInstrument(ctx, params.TradingInstrument); err != nil {
		return nil, err
	}

	inserted, err := s.instruments.Insert(ctx, params.TradingInstrument)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, &domain.ConflictError{
			Kind: "trading instrument",
			Key:  params.TradingInstrument.TradingConditionID + "/" + params.TradingInstrument.Instrument,
		}
	}

	s.notify(ctx, params.Traceability, route)
	return params.TradingInstrument, nil
}

func (s *TradingInstrumentService) Update(ctx context.Context, tradingConditionID, instrument string,
	params TradingInstrumentUpsertParams, route string) (*domain.TradingInstrument, error) {
	if err := validateTraceability(params.Traceability); err != nil {
		return nil, err
	}
	if err := s.validateInstrument(ctx, params.TradingInstrument); err != nil {
		return nil, err
	}
	if params.TradingInstrument.TradingConditionID != tradingConditionID ||
		params.TradingInstrument.Instrument != instrument {
		return nil, domain.NewValidationError("id", "must match with body trading condition id and instrument")
	}

	existing, err := s.instruments.Get(ctx, tradingConditionID, instrument)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("trading instrument %s/%s: %w", tradingConditionID, instrument, domain.ErrNotFound)
	}

	if err := s.instruments.Update(ctx, params.TradingInstrument); err != nil {
		return nil, err
	}

	s.notify(ctx, params.Traceability, route)
	return params.TradingInstrument, nil
}

func (s *TradingInstrumentService) Delete(ctx context.Context, tradingConditionID, instrument string,
	tr *domain.TraceableMessage, route string) error {
	if err := validateTraceability(tr); err != nil {
		return err
	}
	if err := s.instruments.Delete(ctx, tradingConditionID, instrument); err != nil {
		return err
	}

	s.notify(ctx, tr, route)
	return nil
}

// AssignCollection 把某交易条件下的品种集合对齐到期望集合：
// 先检查被移除的品种是否仍有活跃订单（有则整体拒绝），再删除多余项、
// 以平台默认参数补齐缺少项。只返回本次新建的品种。
func (s *TradingInstrumentService) AssignCollection(ctx context.Context, tradingConditionID string,
	params AssignInstrumentsParams, route string) ([]*domain.TradingInstrument, error) {
	if err := validateTraceability(params.Traceability); err != nil {
		return nil, err
	}
	if strings.TrimSpace(tradingConditionID) == "" {
		return nil, domain.NewValidationError("tradingConditionId", "trading condition id must be set")
	}

	current, err := s.instruments.List(ctx, tradingConditionID)
	if err != nil {
		return nil, err
	}

	desired := make(map[string]bool, len(params.Instruments))
	for _, id := range params.Instruments {
		desired[id] = true
	}

	var toRemove []*domain.TradingInstrument
	currentSet := make(map[string]bool, len(current))
	for _, instr := range current {
		currentSet[instr.Instrument] = true
		if !desired[instr.Instrument] {
			toRemove = append(toRemove, instr)
		}
	}

	if len(toRemove) > 0 {
		blocked, err := s.trading.CheckActiveByTradingCondition(ctx, tradingConditionID)
		if err != nil {
			return nil, err
		}
		if len(blocked) > 0 {
			return nil, domain.NewBusinessRuleError(
				"unable to remove instruments with active orders: %s", strings.Join(blocked, ", "))
		}
	}

	var toAdd []string
	for _, id := range params.Instruments {
		if !currentSet[id] {
			toAdd = append(toAdd, id)
		}
	}

	var created []*domain.TradingInstrument
	err = s.instruments.WithTx(ctx, func(txCtx context.Context) error {
		for _, instr := range toRemove {
			if err := s.instruments.Delete(txCtx, instr.TradingConditionID, instr.Instrument); err != nil {
				return err
			}
		}
		created, err = s.instruments.CreateDefaultInstruments(txCtx, tradingConditionID, toAdd, s.defaults)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, params.Traceability, route)
	return created, nil
}

func (s *TradingInstrumentService) notify(ctx context.Context, tr *domain.TraceableMessage, route string) {
	s.events.SendSettingsChanged(ctx, tr.ExtractCorrelationID(), tr.ID, domain.SettingsTypeTradingInstrument, route)
}

func (s *TradingInstrumentService) validateInstrument(ctx context.Context, instr *domain.TradingInstrument) error {
	if instr == nil {
		return domain.NewValidationError("tradingInstrument", "model is incorrect")
	}
	if strings.TrimSpace(instr.TradingConditionID) == "" {
		return domain.NewValidationError("tradingConditionId", "trading condition id must be set")
	}
	if strings.TrimSpace(instr.Instrument) == "" {
		return domain.NewValidationError("instrument", "instrument must be set")
	}

	if condition, err := s.conditions.Get(ctx, instr.TradingConditionID); err != nil {
		return err
	} else if condition == nil {
		return domain.NewValidationError("tradingConditionId",
			fmt.Sprintf("trading condition %s does not exist", instr.TradingConditionID))
	}
	if pair, err := s.pairs.Get(ctx, instr.Instrument); err != nil {
		return err
	} else if pair == nil {
		return domain.NewValidationError("instrument",
			fmt.Sprintf("asset pair %s does not exist", instr.Instrument))
	}

	if instr.LeverageInit <= 0 {
		return domain.NewValidationError("leverageInit", "must be greater than zero")
	}
	if instr.LeverageMaintenance <= 0 {
		return domain.NewValidationError("leverageMaintenance", "must be greater than zero")
	}

	if asset, err := s.assets.Get(ctx, instr.CommissionCurrency); err != nil {
		return err
	} else if asset == nil {
		return domain.NewValidationError("commissionCurrency",
			fmt.Sprintf("commission currency asset %s does not exist", instr.CommissionCurrency))
	}
	return nil
}
