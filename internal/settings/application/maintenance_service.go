package application

import (
	"context"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

// MaintenanceModeService 全局维护开关。
// 持久化为单行记录而非进程内存，重启后状态保留且多实例一致。
type MaintenanceModeService struct {
	maintenance domain.MaintenanceModeRepository
	events      domain.EventSender
}

func NewMaintenanceModeService(maintenance domain.MaintenanceModeRepository, events domain.EventSender) *MaintenanceModeService {
	return &MaintenanceModeService{maintenance: maintenance, events: events}
}

func (s *MaintenanceModeService) Get(ctx context.Context) (bool, error) {
	return s.maintenance.Get(ctx)
}

func (s *MaintenanceModeService) Set(ctx context.Context, enabled bool, tr *domain.TraceableMessage, route string) error {
	if err := validateTraceability(tr); err != nil {
		return err
	}
	if err := s.maintenance.Set(ctx, enabled); err != nil {
		return err
	}

	s.events.SendSettingsChanged(ctx, tr.ExtractCorrelationID(), tr.ID, domain.SettingsTypeServiceMaintenance, route)
	return nil
}
