package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

// ScheduleSettingsService 交易时段配置的维护
type ScheduleSettingsService struct {
	schedules domain.ScheduleSettingsRepository
	pairs     domain.AssetPairRepository
	events    domain.EventSender
}

func NewScheduleSettingsService(
	schedules domain.ScheduleSettingsRepository,
	pairs domain.AssetPairRepository,
	events domain.EventSender,
) *ScheduleSettingsService {
	return &ScheduleSettingsService{schedules: schedules, pairs: pairs, events: events}
}

func (s *ScheduleSettingsService) List(ctx context.Context, marketID string) ([]*domain.ScheduleSettings, error) {
	return s.schedules.List(ctx, marketID)
}

func (s *ScheduleSettingsService) Get(ctx context.Context, id string) (*domain.ScheduleSettings, error) {
	return s.schedules.Get(ctx, id)
}

func (s *ScheduleSettingsService) Insert(ctx context.Context, params ScheduleSettingsUpsertParams, route string) (*domain.ScheduleSettings, error) {
	if err := validateTraceability(params.Traceability); err != nil {
		return nil, err
	}
	if err := s.validateSettings(ctx, params.ScheduleSettings); err != nil {
		return nil, err
	}

	inserted, err := s.schedules.Insert(ctx, params.ScheduleSettings)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, &domain.ConflictError{Kind: "schedule settings", Key: params.ScheduleSettings.ID}
	}

	s.notify(ctx, params.Traceability, route)
	return params.ScheduleSettings, nil
}

func (s *ScheduleSettingsService) Update(ctx context.Context, id string, params ScheduleSettingsUpsertParams, route string) (*domain.ScheduleSettings, error) {
	if err := validateTraceability(params.Traceability); err != nil {
		return nil, err
	}
	if err := s.validateSettings(ctx, params.ScheduleSettings); err != nil {
		return nil, err
	}
	if params.ScheduleSettings.ID != id {
		return nil, domain.NewValidationError("id", "must match with body id")
	}

	existing, err := s.schedules.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("schedule settings %s: %w", id, domain.ErrNotFound)
	}

	if err := s.schedules.Update(ctx, params.ScheduleSettings); err != nil {
		return nil, err
	}

	s.notify(ctx, params.Traceability, route)
	return params.ScheduleSettings, nil
}

func (s *ScheduleSettingsService) Delete(ctx context.Context, id string, tr *domain.TraceableMessage, route string) error {
	if err := validateTraceability(tr); err != nil {
		return err
	}
	if err := s.schedules.Delete(ctx, id); err != nil {
		return err
	}

	s.notify(ctx, tr, route)
	return nil
}

func (s *ScheduleSettingsService) notify(ctx context.Context, tr *domain.TraceableMessage, route string) {
	s.events.SendSettingsChanged(ctx, tr.ExtractCorrelationID(), tr.ID, domain.SettingsTypeScheduleSettings, route)
}

func (s *ScheduleSettingsService) validateSettings(ctx context.Context, settings *domain.ScheduleSettings) error {
	if settings == nil {
		return domain.NewValidationError("scheduleSettings", "model is incorrect")
	}
	if strings.TrimSpace(settings.ID) == "" {
		return domain.NewValidationError("id", "schedule settings id must be set")
	}
	for _, pairID := range settings.AssetPairs {
		if pair, err := s.pairs.Get(ctx, pairID); err != nil {
			return err
		} else if pair == nil {
			return domain.NewValidationError("assetPairs",
				fmt.Sprintf("asset pair %s does not exist", pairID))
		}
	}
	return nil
}
