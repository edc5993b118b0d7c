// 包 mysql 配置实体的 GORM 持久化实现
package mysql

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

// AssetModel 资产数据库模型
type AssetModel struct {
	ID        string `gorm:"column:id;type:varchar(64);primaryKey"`
	Name      string `gorm:"column:name;type:varchar(64);not null"`
	Accuracy  int    `gorm:"column:accuracy;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AssetModel) TableName() string {
	return "assets"
}

func (m *AssetModel) ToDomain() *domain.Asset {
	return &domain.Asset{ID: m.ID, Name: m.Name, Accuracy: m.Accuracy}
}

func FromAssetDomain(d *domain.Asset) *AssetModel {
	return &AssetModel{ID: d.ID, Name: d.Name, Accuracy: d.Accuracy}
}

// MarketModel 市场数据库模型
type MarketModel struct {
	ID        string `gorm:"column:id;type:varchar(64);primaryKey"`
	Name      string `gorm:"column:name;type:varchar(64);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MarketModel) TableName() string {
	return "markets"
}

func (m *MarketModel) ToDomain() *domain.Market {
	return &domain.Market{ID: m.ID, Name: m.Name}
}

func FromMarketDomain(d *domain.Market) *MarketModel {
	return &MarketModel{ID: d.ID, Name: d.Name}
}

// AssetPairModel 资产对数据库模型
type AssetPairModel struct {
	ID                     string          `gorm:"column:id;type:varchar(64);primaryKey"`
	Name                   string          `gorm:"column:name;type:varchar(64);not null"`
	BaseAssetID            string          `gorm:"column:base_asset_id;type:varchar(64);not null"`
	QuoteAssetID           string          `gorm:"column:quote_asset_id;type:varchar(64);not null"`
	Accuracy               int             `gorm:"column:accuracy;not null"`
	MarketID               string          `gorm:"column:market_id;type:varchar(64);index"`
	LegalEntity            string          `gorm:"column:legal_entity;type:varchar(64);index"`
	BasePairID             string          `gorm:"column:base_pair_id;type:varchar(64);index"`
	MatchingEngineMode     string          `gorm:"column:matching_engine_mode;type:varchar(20);not null"`
	StpMultiplierMarkupBid decimal.Decimal `gorm:"column:stp_multiplier_markup_bid;type:decimal(20,8)"`
	StpMultiplierMarkupAsk decimal.Decimal `gorm:"column:stp_multiplier_markup_ask;type:decimal(20,8)"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (AssetPairModel) TableName() string {
	return "asset_pairs"
}

func (m *AssetPairModel) ToDomain() *domain.AssetPair {
	return &domain.AssetPair{
		ID:                     m.ID,
		Name:                   m.Name,
		BaseAssetID:            m.BaseAssetID,
		QuoteAssetID:           m.QuoteAssetID,
		Accuracy:               m.Accuracy,
		MarketID:               m.MarketID,
		LegalEntity:            m.LegalEntity,
		BasePairID:             m.BasePairID,
		MatchingEngineMode:     domain.MatchingEngineMode(m.MatchingEngineMode),
		StpMultiplierMarkupBid: m.StpMultiplierMarkupBid,
		StpMultiplierMarkupAsk: m.StpMultiplierMarkupAsk,
	}
}

func FromAssetPairDomain(d *domain.AssetPair) *AssetPairModel {
	return &AssetPairModel{
		ID:                     d.ID,
		Name:                   d.Name,
		BaseAssetID:            d.BaseAssetID,
		QuoteAssetID:           d.QuoteAssetID,
		Accuracy:               d.Accuracy,
		MarketID:               d.MarketID,
		LegalEntity:            d.LegalEntity,
		BasePairID:             d.BasePairID,
		MatchingEngineMode:     string(d.MatchingEngineMode),
		StpMultiplierMarkupBid: d.StpMultiplierMarkupBid,
		StpMultiplierMarkupAsk: d.StpMultiplierMarkupAsk,
	}
}

// TradingConditionModel 交易条件数据库模型，BaseAssets 以 JSON 存储
type TradingConditionModel struct {
	ID                     string          `gorm:"column:id;type:varchar(64);primaryKey"`
	Name                   string          `gorm:"column:name;type:varchar(64);not null"`
	LegalEntity            string          `gorm:"column:legal_entity;type:varchar(64);index"`
	BaseTradingConditionID string          `gorm:"column:base_trading_condition_id;type:varchar(64)"`
	MarginCall1            decimal.Decimal `gorm:"column:margin_call_1;type:decimal(20,8)"`
	MarginCall2            decimal.Decimal `gorm:"column:margin_call_2;type:decimal(20,8)"`
	StopOut                decimal.Decimal `gorm:"column:stop_out;type:decimal(20,8)"`
	DepositLimit           decimal.Decimal `gorm:"column:deposit_limit;type:decimal(20,8)"`
	WithdrawalLimit        decimal.Decimal `gorm:"column:withdrawal_limit;type:decimal(20,8)"`
	LimitCurrency          string          `gorm:"column:limit_currency;type:varchar(64)"`
	BaseAssets             string          `gorm:"column:base_assets;type:text"`
	IsDefault              bool            `gorm:"column:is_default;index"`
	IsBase                 bool            `gorm:"column:is_base"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (TradingConditionModel) TableName() string {
	return "trading_conditions"
}

func (m *TradingConditionModel) ToDomain() *domain.TradingCondition {
	var baseAssets []string
	if m.BaseAssets != "" {
		_ = json.Unmarshal([]byte(m.BaseAssets), &baseAssets)
	}
	return &domain.TradingCondition{
		ID:                     m.ID,
		Name:                   m.Name,
		LegalEntity:            m.LegalEntity,
		BaseTradingConditionID: m.BaseTradingConditionID,
		MarginCall1:            m.MarginCall1,
		MarginCall2:            m.MarginCall2,
		StopOut:                m.StopOut,
		DepositLimit:           m.DepositLimit,
		WithdrawalLimit:        m.WithdrawalLimit,
		LimitCurrency:          m.LimitCurrency,
		BaseAssets:             baseAssets,
		IsDefault:              m.IsDefault,
		IsBase:                 m.IsBase,
	}
}

func FromTradingConditionDomain(d *domain.TradingCondition) *TradingConditionModel {
	baseAssets, _ := json.Marshal(d.BaseAssets)
	return &TradingConditionModel{
		ID:                     d.ID,
		Name:                   d.Name,
		LegalEntity:            d.LegalEntity,
		BaseTradingConditionID: d.BaseTradingConditionID,
		MarginCall1:            d.MarginCall1,
		MarginCall2:            d.MarginCall2,
		StopOut:                d.StopOut,
		DepositLimit:           d.DepositLimit,
		WithdrawalLimit:        d.WithdrawalLimit,
		LimitCurrency:          d.LimitCurrency,
		BaseAssets:             string(baseAssets),
		IsDefault:              d.IsDefault,
		IsBase:                 d.IsBase,
	}
}

// TradingInstrumentModel 交易品种数据库模型，复合主键
type TradingInstrumentModel struct {
	TradingConditionID        string          `gorm:"column:trading_condition_id;type:varchar(64);primaryKey"`
	Instrument                string          `gorm:"column:instrument;type:varchar(64);primaryKey"`
	LeverageInit              int             `gorm:"column:leverage_init"`
	LeverageMaintenance       int             `gorm:"column:leverage_maintenance"`
	SwapLong                  decimal.Decimal `gorm:"column:swap_long;type:decimal(20,8)"`
	SwapShort                 decimal.Decimal `gorm:"column:swap_short;type:decimal(20,8)"`
	Delta                     decimal.Decimal `gorm:"column:delta;type:decimal(20,8)"`
	DealMinLimit              decimal.Decimal `gorm:"column:deal_min_limit;type:decimal(20,8)"`
	DealMaxLimit              decimal.Decimal `gorm:"column:deal_max_limit;type:decimal(20,8)"`
	PositionLimit             decimal.Decimal `gorm:"column:position_limit;type:decimal(20,8)"`
	ShortPosition             bool            `gorm:"column:short_position"`
	LiquidationThreshold      decimal.Decimal `gorm:"column:liquidation_threshold;type:decimal(20,8)"`
	OvernightMarginMultiplier decimal.Decimal `gorm:"column:overnight_margin_multiplier;type:decimal(20,8)"`
	CommissionRate            decimal.Decimal `gorm:"column:commission_rate;type:decimal(20,8)"`
	CommissionMin             decimal.Decimal `gorm:"column:commission_min;type:decimal(20,8)"`
	CommissionMax             decimal.Decimal `gorm:"column:commission_max;type:decimal(20,8)"`
	CommissionCurrency        string          `gorm:"column:commission_currency;type:varchar(64)"`
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

func (TradingInstrumentModel) TableName() string {
	return "trading_instruments"
}

func (m *TradingInstrumentModel) ToDomain() *domain.TradingInstrument {
	return &domain.TradingInstrument{
		TradingConditionID:        m.TradingConditionID,
		Instrument:                m.Instrument,
		LeverageInit:              m.LeverageInit,
		LeverageMaintenance:       m.LeverageMaintenance,
		SwapLong:                  m.SwapLong,
		SwapShort:                 m.SwapShort,
		Delta:                     m.Delta,
		DealMinLimit:              m.DealMinLimit,
		DealMaxLimit:              m.DealMaxLimit,
		PositionLimit:             m.PositionLimit,
		ShortPosition:             m.ShortPosition,
		LiquidationThreshold:      m.LiquidationThreshold,
		OvernightMarginMultiplier: m.OvernightMarginMultiplier,
		CommissionRate:            m.CommissionRate,
		CommissionMin:             m.CommissionMin,
		CommissionMax:             m.CommissionMax,
		CommissionCurrency:        m.CommissionCurrency,
	}
}

func FromTradingInstrumentDomain(d *domain.TradingInstrument) *TradingInstrumentModel {
	return &TradingInstrumentModel{
		TradingConditionID:        d.TradingConditionID,
		Instrument:                d.Instrument,
		LeverageInit:              d.LeverageInit,
		LeverageMaintenance:       d.LeverageMaintenance,
		SwapLong:                  d.SwapLong,
		SwapShort:                 d.SwapShort,
		Delta:                     d.Delta,
		DealMinLimit:              d.DealMinLimit,
		DealMaxLimit:              d.DealMaxLimit,
		PositionLimit:             d.PositionLimit,
		ShortPosition:             d.ShortPosition,
		LiquidationThreshold:      d.LiquidationThreshold,
		OvernightMarginMultiplier: d.OvernightMarginMultiplier,
		CommissionRate:            d.CommissionRate,
		CommissionMin:             d.CommissionMin,
		CommissionMax:             d.CommissionMax,
		CommissionCurrency:        d.CommissionCurrency,
	}
}

// TradingRouteModel 路由规则数据库模型
type TradingRouteModel struct {
	ID                  string `gorm:"column:id;type:varchar(64);primaryKey"`
	Rank                int    `gorm:"column:rank"`
	TradingConditionID  string `gorm:"column:trading_condition_id;type:varchar(64)"`
	ClientID            string `gorm:"column:client_id;type:varchar(64)"`
	Instrument          string `gorm:"column:instrument;type:varchar(64)"`
	Type                string `gorm:"column:type;type:varchar(10)"`
	MatchingEngineID    string `gorm:"column:matching_engine_id;type:varchar(64)"`
	Asset               string `gorm:"column:asset;type:varchar(64)"`
	RiskSystemLimitType string `gorm:"column:risk_system_limit_type;type:varchar(64)"`
	RiskSystemMetric    string `gorm:"column:risk_system_metric_type;type:varchar(64)"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (TradingRouteModel) TableName() string {
	return "trading_routes"
}

func (m *TradingRouteModel) ToDomain() *domain.TradingRoute {
	return &domain.TradingRoute{
		ID:                  m.ID,
		Rank:                m.Rank,
		TradingConditionID:  m.TradingConditionID,
		ClientID:            m.ClientID,
		Instrument:          m.Instrument,
		Type:                domain.OrderDirection(m.Type),
		MatchingEngineID:    m.MatchingEngineID,
		Asset:               m.Asset,
		RiskSystemLimitType: m.RiskSystemLimitType,
		RiskSystemMetric:    m.RiskSystemMetric,
	}
}

func FromTradingRouteDomain(d *domain.TradingRoute) *TradingRouteModel {
	return &TradingRouteModel{
		ID:                  d.ID,
		Rank:                d.Rank,
		TradingConditionID:  d.TradingConditionID,
		ClientID:            d.ClientID,
		Instrument:          d.Instrument,
		Type:                string(d.Type),
		MatchingEngineID:    d.MatchingEngineID,
		Asset:               d.Asset,
		RiskSystemLimitType: d.RiskSystemLimitType,
		RiskSystemMetric:    d.RiskSystemMetric,
	}
}

// ScheduleSettingsModel 交易时段数据库模型，约束与资产对集合以 JSON 存储
type ScheduleSettingsModel struct {
	ID                  string `gorm:"column:id;type:varchar(64);primaryKey"`
	Rank                int    `gorm:"column:rank"`
	AssetPairRegex      string `gorm:"column:asset_pair_regex;type:varchar(128)"`
	AssetPairs          string `gorm:"column:asset_pairs;type:text"`
	MarketID            string `gorm:"column:market_id;type:varchar(64);index"`
	IsTradeEnabled      *bool  `gorm:"column:is_trade_enabled"`
	PendingOrdersCutOff int64  `gorm:"column:pending_orders_cut_off"`
	Start               string `gorm:"column:start_constraint;type:text"`
	End                 string `gorm:"column:end_constraint;type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (ScheduleSettingsModel) TableName() string {
	return "schedule_settings"
}

func (m *ScheduleSettingsModel) ToDomain() *domain.ScheduleSettings {
	var assetPairs []string
	if m.AssetPairs != "" {
		_ = json.Unmarshal([]byte(m.AssetPairs), &assetPairs)
	}
	var start, end domain.ScheduleConstraint
	if m.Start != "" {
		_ = json.Unmarshal([]byte(m.Start), &start)
	}
	if m.End != "" {
		_ = json.Unmarshal([]byte(m.End), &end)
	}
	return &domain.ScheduleSettings{
		ID:                  m.ID,
		Rank:                m.Rank,
		AssetPairRegex:      m.AssetPairRegex,
		AssetPairs:          assetPairs,
		MarketID:            m.MarketID,
		IsTradeEnabled:      m.IsTradeEnabled,
		PendingOrdersCutOff: m.PendingOrdersCutOff,
		Start:               start,
		End:                 end,
	}
}

func FromScheduleSettingsDomain(d *domain.ScheduleSettings) *ScheduleSettingsModel {
	assetPairs, _ := json.Marshal(d.AssetPairs)
	start, _ := json.Marshal(d.Start)
	end, _ := json.Marshal(d.End)
	return &ScheduleSettingsModel{
		ID:                  d.ID,
		Rank:                d.Rank,
		AssetPairRegex:      d.AssetPairRegex,
		AssetPairs:          string(assetPairs),
		MarketID:            d.MarketID,
		IsTradeEnabled:      d.IsTradeEnabled,
		PendingOrdersCutOff: d.PendingOrdersCutOff,
		Start:               string(start),
		End:                 string(end),
	}
}

// MaintenanceModeModel 维护开关单行记录
type MaintenanceModeModel struct {
	ID        uint `gorm:"column:id;primaryKey"`
	Enabled   bool `gorm:"column:enabled"`
	UpdatedAt time.Time
}

func (MaintenanceModeModel) TableName() string {
	return "maintenance_mode"
}
