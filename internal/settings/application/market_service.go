package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

// MarketService 市场的增删改查与变更通知
type MarketService struct {
	markets domain.MarketRepository
	events  domain.EventSender
}

func NewMarketService(markets domain.MarketRepository, events domain.EventSender) *MarketService {
	return &MarketService{markets: markets, events: events}
}

func (s *MarketService) List(ctx context.Context) ([]*domain.Market, error) {
	return s.markets.List(ctx)
}

func (s *MarketService) Get(ctx context.Context, id string) (*domain.Market, error) {
	return s.markets.Get(ctx, id)
}

func (s *MarketService) Insert(ctx context.Context, params MarketUpsertParams, route string) (*domain.Market, error) {
	if err := validateTraceability(params.Traceability); err != nil {
		return nil, err
	}
	if err := validateMarket(params.Market); err != nil {
		return nil, err
	}

	inserted, err := s.markets.Insert(ctx, params.Market)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, &domain.ConflictError{Kind: "market", Key: params.Market.ID}
	}

	s.notify(ctx, params.Traceability, route)
	return params.Market, nil
}

func (s *MarketService) Update(ctx context.Context, id string, params MarketUpsertParams, route string) (*domain.Market, error) {
	if err := validateTraceability(params.Traceability); err != nil {
		return nil, err
	}
	if err := validateMarket(params.Market); err != nil {
		return nil, err
	}
	if params.Market.ID != id {
		return nil, domain.NewValidationError("id", "must match with body id")
	}

	existing, err := s.markets.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("market %s: %w", id, domain.ErrNotFound)
	}

	if err := s.markets.Update(ctx, params.Market); err != nil {
		return nil, err
	}

	s.notify(ctx, params.Traceability, route)
	return params.Market, nil
}

func (s *MarketService) Delete(ctx context.Context, id string, tr *domain.TraceableMessage, route string) error {
	if err := validateTraceability(tr); err != nil {
		return err
	}
	if err := s.markets.Delete(ctx, id); err != nil {
		return err
	}

	s.notify(ctx, tr, route)
	return nil
}

func (s *MarketService) notify(ctx context.Context, tr *domain.TraceableMessage, route string) {
	s.events.SendSettingsChanged(ctx, tr.ExtractCorrelationID(), tr.ID, domain.SettingsTypeMarket, route)
}

func validateMarket(market *domain.Market) error {
	if market == nil {
		return domain.NewValidationError("market", "model is incorrect")
	}
	if strings.TrimSpace(market.ID) == "" {
		return domain.NewValidationError("id", "market id must be set")
	}
	return nil
}
