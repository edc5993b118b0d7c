package domain

import "github.com/shopspring/decimal"

// TradingInstrument 交易品种实体，复合键 (TradingConditionID, Instrument)
type TradingInstrument struct {
	TradingConditionID        string          `json:"tradingConditionId"`
	Instrument                string          `json:"instrument"`
	LeverageInit              int             `json:"leverageInit"`
	LeverageMaintenance       int             `json:"leverageMaintenance"`
	SwapLong                  decimal.Decimal `json:"swapLong"`
	SwapShort                 decimal.Decimal `json:"swapShort"`
	Delta                     decimal.Decimal `json:"delta"`
	DealMinLimit              decimal.Decimal `json:"dealMinLimit"`
	DealMaxLimit              decimal.Decimal `json:"dealMaxLimit"`
	PositionLimit             decimal.Decimal `json:"positionLimit"`
	ShortPosition             bool            `json:"shortPosition"`
	LiquidationThreshold      decimal.Decimal `json:"liquidationThreshold"`
	OvernightMarginMultiplier decimal.Decimal `json:"overnightMarginMultiplier"`
	CommissionRate            decimal.Decimal `json:"commissionRate"`
	CommissionMin             decimal.Decimal `json:"commissionMin"`
	CommissionMax             decimal.Decimal `json:"commissionMax"`
	CommissionCurrency        string          `json:"commissionCurrency,omitempty"`
}

// DefaultTradingInstrumentSettings 批量分配品种时使用的平台默认参数
type DefaultTradingInstrumentSettings struct {
	LeverageInit              int             `mapstructure:"leverage_init"`
	LeverageMaintenance       int             `mapstructure:"leverage_maintenance"`
	SwapLong                  decimal.Decimal `mapstructure:"swap_long"`
	SwapShort                 decimal.Decimal `mapstructure:"swap_short"`
	Delta                     decimal.Decimal `mapstructure:"delta"`
	DealMinLimit              decimal.Decimal `mapstructure:"deal_min_limit"`
	DealMaxLimit              decimal.Decimal `mapstructure:"deal_max_limit"`
	PositionLimit             decimal.Decimal `mapstructure:"position_limit"`
	ShortPosition             bool            `mapstructure:"short_position"`
	LiquidationThreshold      decimal.Decimal `mapstructure:"liquidation_threshold"`
	OvernightMarginMultiplier decimal.Decimal `mapstructure:"overnight_margin_multiplier"`
	CommissionRate            decimal.Decimal `mapstructure:"commission_rate"`
	CommissionMin             decimal.Decimal `mapstructure:"commission_min"`
	CommissionMax             decimal.Decimal `mapstructure:"commission_max"`
	CommissionCurrency        string          `mapstructure:"commission_currency"`
}

// NewDefaultInstrument 以默认参数实例化某交易条件下的品种
func NewDefaultInstrument(tradingConditionID, instrument string, d DefaultTradingInstrumentSettings) *TradingInstrument {
	return &TradingInstrument{
		TradingConditionID:        tradingConditionID,
		Instrument:                instrument,
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
