package domain

// OrderDirection 路由规则匹配的订单方向，空值表示双向
type OrderDirection string

const (
	OrderDirectionBuy  OrderDirection = "Buy"
	OrderDirectionSell OrderDirection = "Sell"
)

// TradingRoute 撮合引擎路由规则
type TradingRoute struct {
	ID                  string         `json:"id"`
	Rank                int            `json:"rank"`
	TradingConditionID  string         `json:"tradingConditionId,omitempty"`
	ClientID            string         `json:"clientId,omitempty"`
	Instrument          string         `json:"instrument,omitempty"`
	Type                OrderDirection `json:"type,omitempty"`
	MatchingEngineID    string         `json:"matchingEngineId"`
	Asset               string         `json:"asset,omitempty"`
	RiskSystemLimitType string         `json:"riskSystemLimitType,omitempty"`
	RiskSystemMetric    string         `json:"riskSystemMetricType,omitempty"`
}
