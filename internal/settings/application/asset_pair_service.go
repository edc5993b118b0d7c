package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

// AssetPairService 资产对的增删改查、引用完整性校验与变更通知
type AssetPairService struct {
	pairs              domain.AssetPairRepository
	assets             domain.AssetRepository
	markets            domain.MarketRepository
	events             domain.EventSender
	defaultLegalEntity string
}

func NewAssetPairService(
	pairs domain.AssetPairRepository,
	assets domain.AssetRepository,
	markets domain.MarketRepository,
	events domain.EventSender,
	defaultLegalEntity string,
) *AssetPairService {
	return &AssetPairService{
		pairs:              pairs,
		assets:             assets,
		markets:            markets,
		events:             events,
		defaultLegalEntity: defaultLegalEntity,
	}
}

func (s *AssetPairService) List(ctx context.Context, legalEntity string, mode domain.MatchingEngineMode) ([]*domain.AssetPair, error) {
	if mode != "" && !mode.Valid() {
		return nil, domain.NewValidationError("matchingEngineMode", "unknown matching engine mode")
	}
	return s.pairs.List(ctx, legalEntity, mode)
}

func (s *AssetPairService) ListByPages(ctx context.Context, legalEntity string, mode domain.MatchingEngineMode,
	skip, take int) (*domain.Paginated[*domain.AssetPair], error) {
	if mode != "" && !mode.Valid() {
		return nil, domain.NewValidationError("matchingEngineMode", "unknown matching engine mode")
	}
	skip, take = normalizePaging(skip, take)
	return s.pairs.ListByPages(ctx, legalEntity, mode, skip, take)
}

func (s *AssetPairService) Get(ctx context.Context, id string) (*domain.AssetPair, error) {
	return s.pairs.Get(ctx, id)
}

func (s *AssetPairService) Insert(ctx context.Context, params AssetPairUpsertParams, route string) (*domain.AssetPair, error) {
	if err := validateTraceability(params.Traceability); err != nil {
		return nil, err
	}
	if err := s.validatePair(ctx, params.AssetPair); err != nil {
		return nil, err
	}
	s.stampLegalEntity(params.AssetPair)

	inserted, err := s.pairs.Insert(ctx, params.AssetPair)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, &domain.ConflictError{Kind: "asset pair", Key: params.AssetPair.ID}
	}

	s.notify(ctx, params.Traceability, route)
	return params.AssetPair, nil
}

func (s *AssetPairService) Update(ctx context.Context, id string, params AssetPairUpsertParams, route string) (*domain.AssetPair, error) {
	if err := validateTraceability(params.Traceability); err != nil {
		return nil, err
	}
	if err := s.validatePair(ctx, params.AssetPair); err != nil {
		return nil, err
	}
	if params.AssetPair.ID != id {
		return nil, domain.NewValidationError("id", "must match with body id")
	}
	s.stampLegalEntity(params.AssetPair)

	existing, err := s.pairs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("asset pair %s: %w", id, domain.ErrNotFound)
	}

	if err := s.pairs.Update(ctx, params.AssetPair); err != nil {
		return nil, err
	}

	s.notify(ctx, params.Traceability, route)
	return params.AssetPair, nil
}

func (s *AssetPairService) Delete(ctx context.Context, id string, tr *domain.TraceableMessage, route string) error {
	if err := validateTraceability(tr); err != nil {
		return err
	}
	if err := s.pairs.Delete(ctx, id); err != nil {
		return err
	}

	s.notify(ctx, tr, route)
	return nil
}

func (s *AssetPairService) notify(ctx context.Context, tr *domain.TraceableMessage, route string) {
	s.events.SendSettingsChanged(ctx, tr.ExtractCorrelationID(), tr.ID, domain.SettingsTypeAssetPair, route)
}

func (s *AssetPairService) stampLegalEntity(pair *domain.AssetPair) {
	if strings.TrimSpace(pair.LegalEntity) == "" {
		pair.LegalEntity = s.defaultLegalEntity
	}
}

// validatePair 按固定顺序执行规则，首个失败即返回
func (s *AssetPairService) validatePair(ctx context.Context, pair *domain.AssetPair) error {
	if pair == nil {
		return domain.NewValidationError("assetPair", "model is incorrect")
	}
	if strings.TrimSpace(pair.ID) == "" {
		return domain.NewValidationError("id", "asset pair id must be set")
	}
	if !pair.MatchingEngineMode.Valid() {
		return domain.NewValidationError("matchingEngineMode", "matching engine mode must be set")
	}

	if asset, err := s.assets.Get(ctx, pair.BaseAssetID); err != nil {
		return err
	} else if asset == nil {
		return domain.NewValidationError("baseAssetId", fmt.Sprintf("base asset %s does not exist", pair.BaseAssetID))
	}
	if asset, err := s.assets.Get(ctx, pair.QuoteAssetID); err != nil {
		return err
	} else if asset == nil {
		return domain.NewValidationError("quoteAssetId", fmt.Sprintf("quote asset %s does not exist", pair.QuoteAssetID))
	}
	if pair.MarketID != "" {
		if market, err := s.markets.Get(ctx, pair.MarketID); err != nil {
			return err
		} else if market == nil {
			return domain.NewValidationError("marketId", fmt.Sprintf("market %s does not exist", pair.MarketID))
		}
	}

	if pair.StpMultiplierMarkupAsk.Sign() <= 0 {
		return domain.NewValidationError("stpMultiplierMarkupAsk", "must be greater than zero")
	}
	if pair.StpMultiplierMarkupBid.Sign() <= 0 {
		return domain.NewValidationError("stpMultiplierMarkupBid", "must be greater than zero")
	}

	// 基础对检查放在最后
	if pair.BasePairID == "" {
		return nil
	}
	if base, err := s.pairs.Get(ctx, pair.BasePairID); err != nil {
		return err
	} else if base == nil {
		return domain.NewValidationError("basePairId", fmt.Sprintf("base pair %s does not exist", pair.BasePairID))
	}
	if taken, err := s.pairs.GetByBasePair(ctx, pair.BasePairID); err != nil {
		return err
	} else if taken != nil {
		return domain.NewValidationError("basePairId", fmt.Sprintf("base pair %s is already used", pair.BasePairID))
	}
	if dup, err := s.pairs.GetByBasePairAndNotByID(ctx, pair.ID, pair.BasePairID); err != nil {
		return err
	} else if dup != nil {
		return domain.NewValidationError("basePairId", fmt.Sprintf("base pair %s cannot be added twice", pair.BasePairID))
	}
	return nil
}
