package mysql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

func TestAssetModel_RoundTrip(t *testing.T) {
	asset := &domain.Asset{ID: "BTC", Name: "Bitcoin", Accuracy: 8}
	assert.Equal(t, asset, FromAssetDomain(asset).ToDomain())
}

func TestMarketModel_RoundTrip(t *testing.T) {
	market := &domain.Market{ID: "crypto", Name: "Crypto"}
	assert.Equal(t, market, FromMarketDomain(market).ToDomain())
}

func TestAssetPairModel_RoundTrip(t *testing.T) {
	pair := &domain.AssetPair{
		ID:                     "BTCUSD",
		Name:                   "BTC/USD",
		BaseAssetID:            "BTC",
		QuoteAssetID:           "USD",
		Accuracy:               5,
		MarketID:               "crypto",
		LegalEntity:            "ENTITY-CY",
		BasePairID:             "BTCEUR",
		MatchingEngineMode:     domain.MatchingEngineModeStp,
		StpMultiplierMarkupBid: decimal.RequireFromString("0.95"),
		StpMultiplierMarkupAsk: decimal.RequireFromString("1.05"),
	}
	assert.Equal(t, pair, FromAssetPairDomain(pair).ToDomain())
}

func TestTradingConditionModel_RoundTrip(t *testing.T) {
	condition := &domain.TradingCondition{
		ID:                     "tc-1",
		Name:                   "Standard",
		LegalEntity:            "ENTITY-CY",
		BaseTradingConditionID: "tc-base",
		MarginCall1:            decimal.RequireFromString("1.25"),
		MarginCall2:            decimal.RequireFromString("1.11"),
		StopOut:                decimal.RequireFromString("1.05"),
		DepositLimit:           decimal.NewFromInt(1000000),
		WithdrawalLimit:        decimal.NewFromInt(500000),
		LimitCurrency:          "USD",
		BaseAssets:             []string{"USD", "EUR"},
		IsDefault:              true,
		IsBase:                 false,
	}
	assert.Equal(t, condition, FromTradingConditionDomain(condition).ToDomain())
}

// BaseAssets 经 JSON 文本列往返：nil 保持 nil，空切片保持空切片
func TestTradingConditionModel_RoundTrip_BaseAssetsNilAndEmpty(t *testing.T) {
	nilAssets := &domain.TradingCondition{ID: "tc-1", Name: "n"}
	assert.Nil(t, FromTradingConditionDomain(nilAssets).ToDomain().BaseAssets)

	emptyAssets := &domain.TradingCondition{ID: "tc-2", Name: "e", BaseAssets: []string{}}
	got := FromTradingConditionDomain(emptyAssets).ToDomain().BaseAssets
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTradingInstrumentModel_RoundTrip(t *testing.T) {
	instrument := &domain.TradingInstrument{
		TradingConditionID:        "tc-1",
		Instrument:                "BTCUSD",
		LeverageInit:              100,
		LeverageMaintenance:       150,
		SwapLong:                  decimal.RequireFromString("-50"),
		SwapShort:                 decimal.RequireFromString("-75"),
		Delta:                     decimal.NewFromInt(30),
		DealMinLimit:              decimal.RequireFromString("0.01"),
		DealMaxLimit:              decimal.NewFromInt(1000000),
		PositionLimit:             decimal.NewFromInt(10000000),
		ShortPosition:             true,
		LiquidationThreshold:      decimal.Zero,
		OvernightMarginMultiplier: decimal.NewFromInt(1),
		CommissionRate:            decimal.RequireFromString("0.001"),
		CommissionMin:             decimal.RequireFromString("9.5"),
		CommissionMax:             decimal.NewFromInt(100),
		CommissionCurrency:        "USD",
	}
	assert.Equal(t, instrument, FromTradingInstrumentDomain(instrument).ToDomain())
}

func TestTradingRouteModel_RoundTrip(t *testing.T) {
	route := &domain.TradingRoute{
		ID:                  "route-1",
		Rank:                10,
		TradingConditionID:  "tc-1",
		ClientID:            "client-1",
		Instrument:          "BTCUSD",
		Type:                domain.OrderDirectionSell,
		MatchingEngineID:    "me-1",
		Asset:               "BTC",
		RiskSystemLimitType: "limit",
		RiskSystemMetric:    "metric",
	}
	assert.Equal(t, route, FromTradingRouteDomain(route).ToDomain())
}

func TestScheduleSettingsModel_RoundTrip_DateConstraint(t *testing.T) {
	date := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	enabled := false
	settings := &domain.ScheduleSettings{
		ID:                  "sched-1",
		Rank:                5,
		AssetPairRegex:      "^BTC.*",
		AssetPairs:          []string{"BTCUSD", "ETHUSD"},
		MarketID:            "crypto",
		IsTradeEnabled:      &enabled,
		PendingOrdersCutOff: 300,
		Start:               domain.ScheduleConstraint{Date: &date, Time: "08:00:00"},
		End:                 domain.ScheduleConstraint{Date: &date, Time: "17:00:00"},
	}
	assert.Equal(t, settings, FromScheduleSettingsDomain(settings).ToDomain())
}

func TestScheduleSettingsModel_RoundTrip_DayOfWeekConstraint(t *testing.T) {
	friday := time.Friday
	sunday := time.Sunday
	settings := &domain.ScheduleSettings{
		ID:    "sched-2",
		Rank:  1,
		Start: domain.ScheduleConstraint{DayOfWeek: &friday, Time: "21:00:00"},
		End:   domain.ScheduleConstraint{DayOfWeek: &sunday, Time: "21:00:00"},
	}
	assert.Equal(t, settings, FromScheduleSettingsDomain(settings).ToDomain())
}

// AssetPairs 与 IsTradeEnabled 缺省时往返不应凭空出现值
func TestScheduleSettingsModel_RoundTrip_NilFields(t *testing.T) {
	settings := &domain.ScheduleSettings{ID: "sched-3"}

	got := FromScheduleSettingsDomain(settings).ToDomain()

	assert.Nil(t, got.AssetPairs)
	assert.Nil(t, got.IsTradeEnabled)
	assert.Nil(t, got.Start.Date)
	assert.Nil(t, got.Start.DayOfWeek)
	assert.Equal(t, settings, got)
}
