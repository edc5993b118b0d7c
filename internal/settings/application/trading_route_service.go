package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

// TradingRouteService 撮合引擎路由规则的维护
type TradingRouteService struct {
	routes domain.TradingRouteRepository
	events domain.EventSender
}

func NewTradingRouteService(routes domain.TradingRouteRepository, events domain.EventSender) *TradingRouteService {
	return &TradingRouteService{routes: routes, events: events}
}

func (s *TradingRouteService) List(ctx context.Context) ([]*domain.TradingRoute, error) {
	return s.routes.List(ctx)
}

func (s *TradingRouteService) Get(ctx context.Context, id string) (*domain.TradingRoute, error) {
	return s.routes.Get(ctx, id)
}

func (s *TradingRouteService) Insert(ctx context.Context, params TradingRouteUpsertParams, route string) (*domain.TradingRoute, error) {
	if err := validateTraceability(params.Traceability); err != nil {
		return nil, err
	}
	if err := validateRoute(params.TradingRoute); err != nil {
		return nil, err
	}

	inserted, err := s.routes.Insert(ctx, params.TradingRoute)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, &domain.ConflictError{Kind: "trading route", Key: params.TradingRoute.ID}
	}

	s.notify(ctx, params.Traceability, route)
	return params.TradingRoute, nil
}

func (s *TradingRouteService) Update(ctx context.Context, id string, params TradingRouteUpsertParams, route string) (*domain.TradingRoute, error) {
	if err := validateTraceability(params.Traceability); err != nil {
		return nil, err
	}
	if err := validateRoute(params.TradingRoute); err != nil {
		return nil, err
	}
	if params.TradingRoute.ID != id {
		return nil, domain.NewValidationError("id", "must match with body id")
	}

	existing, err := s.routes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("trading route %s: %w", id, domain.ErrNotFound)
	}

	if err := s.routes.Update(ctx, params.TradingRoute); err != nil {
		return nil, err
	}

	s.notify(ctx, params.Traceability, route)
	return params.TradingRoute, nil
}

func (s *TradingRouteService) Delete(ctx context.Context, id string, tr *domain.TraceableMessage, route string) error {
	if err := validateTraceability(tr); err != nil {
		return err
	}
	if err := s.routes.Delete(ctx, id); err != nil {
		return err
	}

	s.notify(ctx, tr, route)
	return nil
}

func (s *TradingRouteService) notify(ctx context.Context, tr *domain.TraceableMessage, route string) {
	s.events.SendSettingsChanged(ctx, tr.ExtractCorrelationID(), tr.ID, domain.SettingsTypeTradingRoute, route)
}

func validateRoute(tradingRoute *domain.TradingRoute) error {
	if tradingRoute == nil {
		return domain.NewValidationError("tradingRoute", "model is incorrect")
	}
	if strings.TrimSpace(tradingRoute.ID) == "" {
		return domain.NewValidationError("id", "trading route id must be set")
	}
	if tradingRoute.Type != "" &&
		tradingRoute.Type != domain.OrderDirectionBuy && tradingRoute.Type != domain.OrderDirectionSell {
		return domain.NewValidationError("type", "unknown order direction")
	}
	return nil
}
