// 包 trading 交易核心协作方实现
package trading

import (
	"context"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

// NoopTradingService 未接入交易核心时的占位实现，视所有品种无活跃订单
type NoopTradingService struct{}

func NewNoopTradingService() domain.TradingService {
	return &NoopTradingService{}
}

func (s *NoopTradingService) CheckActiveByTradingCondition(ctx context.Context, tradingConditionID string) ([]string, error) {
	return nil, nil
}
