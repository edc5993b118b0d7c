package domain

import "time"

// SettingsType 变更事件中标记的配置类别
type SettingsType string

const (
	SettingsTypeAsset              SettingsType = "Asset"
	SettingsTypeAssetPair          SettingsType = "AssetPair"
	SettingsTypeMarket             SettingsType = "Market"
	SettingsTypeTradingCondition   SettingsType = "TradingCondition"
	SettingsTypeTradingInstrument  SettingsType = "TradingInstrument"
	SettingsTypeTradingRoute       SettingsType = "TradingRoute"
	SettingsTypeScheduleSettings   SettingsType = "ScheduleSettings"
	SettingsTypeServiceMaintenance SettingsType = "ServiceMaintenance"
)

// SettingsChangedEvent 配置变更事件。
// 仅作为下游缓存失效信号：不携带差异数据，只说明哪类配置在哪个路由上发生了变更。
type SettingsChangedEvent struct {
	TraceableMessage
	SettingsType SettingsType `json:"settingsType"`
	Route        string       `json:"route"`
}

// NewSettingsChangedEvent 在一次成功变更后构建事件。
// correlationID 来自触发请求，causationID 是触发请求自身的消息 Id，事件 Id 总是新生成。
func NewSettingsChangedEvent(correlationID, causationID string, settingsType SettingsType, route string) SettingsChangedEvent {
	return SettingsChangedEvent{
		TraceableMessage: TraceableMessage{
			ID:             NewMessageID(),
			CorrelationID:  correlationID,
			CausationID:    causationID,
			EventTimestamp: time.Now().UTC(),
		},
		SettingsType: settingsType,
		Route:        route,
	}
}
