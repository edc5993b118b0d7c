package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

// AssetService 资产的增删改查与变更通知
type AssetService struct {
	assets domain.AssetRepository
	events domain.EventSender
}

func NewAssetService(assets domain.AssetRepository, events domain.EventSender) *AssetService {
	return &AssetService{assets: assets, events: events}
}

func (s *AssetService) List(ctx context.Context) ([]*domain.Asset, error) {
	return s.assets.List(ctx)
}

func (s *AssetService) ListByPages(ctx context.Context, skip, take int) (*domain.Paginated[*domain.Asset], error) {
	skip, take = normalizePaging(skip, take)
	return s.assets.ListByPages(ctx, skip, take)
}

func (s *AssetService) Get(ctx context.Context, id string) (*domain.Asset, error) {
	return s.assets.Get(ctx, id)
}

func (s *AssetService) Insert(ctx context.Context, params AssetUpsertParams, route string) (*domain.Asset, error) {
	if err := validateTraceability(params.Traceability); err != nil {
		return nil, err
	}
	if err := validateAsset(params.Asset); err != nil {
		return nil, err
	}

	inserted, err := s.assets.Insert(ctx, params.Asset)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, &domain.ConflictError{Kind: "asset", Key: params.Asset.ID}
	}

	s.notify(ctx, params.Traceability, route)
	return params.Asset, nil
}

func (s *AssetService) Update(ctx context.Context, id string, params AssetUpsertParams, route string) (*domain.Asset, error) {
	if err := validateTraceability(params.Traceability); err != nil {
		return nil, err
	}
	if err := validateAsset(params.Asset); err != nil {
		return nil, err
	}
	if params.Asset.ID != id {
		return nil, domain.NewValidationError("id", "must match with body id")
	}

	existing, err := s.assets.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("asset %s: %w", id, domain.ErrNotFound)
	}

	if err := s.assets.Update(ctx, params.Asset); err != nil {
		return nil, err
	}

	s.notify(ctx, params.Traceability, route)
	return params.Asset, nil
}

func (s *AssetService) Delete(ctx context.Context, id string, tr *domain.TraceableMessage, route string) error {
	if err := validateTraceability(tr); err != nil {
		return err
	}
	if err := s.assets.Delete(ctx, id); err != nil {
		return err
	}

	s.notify(ctx, tr, route)
	return nil
}

func (s *AssetService) notify(ctx context.Context, tr *domain.TraceableMessage, route string) {
	s.events.SendSettingsChanged(ctx, tr.ExtractCorrelationID(), tr.ID, domain.SettingsTypeAsset, route)
}

func validateAsset(asset *domain.Asset) error {
	if asset == nil {
		return domain.NewValidationError("asset", "model is incorrect")
	}
	if strings.TrimSpace(asset.ID) == "" {
		return domain.NewValidationError("id", "asset id must be set")
	}
	return nil
}
