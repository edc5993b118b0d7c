// 包 application 实现各配置实体统一的 校验 → 落库 → 通知 流水线
package application

import (
	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

// AssetUpsertParams 资产新增/更新请求体
type AssetUpsertParams struct {
	Asset        *domain.Asset            `json:"asset"`
	Traceability *domain.TraceableMessage `json:"traceability"`
}

// AssetPairUpsertParams 资产对新增/更新请求体
type AssetPairUpsertParams struct {
	AssetPair    *domain.AssetPair        `json:"assetPair"`
	Traceability *domain.TraceableMessage `json:"traceability"`
}

// MarketUpsertParams 市场新增/更新请求体
type MarketUpsertParams struct {
	Market       *domain.Market           `json:"market"`
	Traceability *domain.TraceableMessage `json:"traceability"`
}

// TradingConditionUpsertParams 交易条件新增/更新请求体
type TradingConditionUpsertParams struct {
	TradingCondition *domain.TradingCondition `json:"tradingCondition"`
	Traceability     *domain.TraceableMessage `json:"traceability"`
}

// TradingInstrumentUpsertParams 交易品种新增/更新请求体
type TradingInstrumentUpsertParams struct {
	TradingInstrument *domain.TradingInstrument `json:"tradingInstrument"`
	Traceability      *domain.TraceableMessage  `json:"traceability"`
}

// TradingRouteUpsertParams 路由规则新增/更新请求体
type TradingRouteUpsertParams struct {
	TradingRoute *domain.TradingRoute     `json:"tradingRoute"`
	Traceability *domain.TraceableMessage `json:"traceability"`
}

// ScheduleSettingsUpsertParams 交易时段新增/更新请求体
type ScheduleSettingsUpsertParams struct {
	ScheduleSettings *domain.ScheduleSettings `json:"scheduleSettings"`
	Traceability     *domain.TraceableMessage `json:"traceability"`
}

// AssignInstrumentsParams 品种批量分配请求体
type AssignInstrumentsParams struct {
	Instruments  []string                 `json:"instruments"`
	Traceability *domain.TraceableMessage `json:"traceability"`
}

// validateTraceability 每个变更操作都要求携带追溯信息；缺失 Id 时就地补齐
func validateTraceability(tr *domain.TraceableMessage) error {
	if tr == nil {
		return domain.NewValidationError("traceability", "must be set")
	}
	tr.Normalize()
	return nil
}
