package domain

import "context"

// EventSender 配置变更事件发送接口。
// 仅在变更成功落库之后调用；发送失败由实现方记录并吞掉，绝不影响已提交的变更。
type EventSender interface {
	SendSettingsChanged(ctx context.Context, correlationID, causationID string, settingsType SettingsType, route string)
}

// TradingService 交易核心协作方：查询某交易条件下仍有活跃订单的品种
type TradingService interface {
	CheckActiveByTradingCondition(ctx context.Context, tradingConditionID string) ([]string, error)
}
