package domain

import "github.com/shopspring/decimal"

// MatchingEngineMode 资产对的撮合/路由模式
type MatchingEngineMode string

const (
	MatchingEngineModeMarketMaker MatchingEngineMode = "MarketMaker"
	MatchingEngineModeStp         MatchingEngineMode = "Stp"
)

// Valid 是否为已定义的枚举值
func (m MatchingEngineMode) Valid() bool {
	return m == MatchingEngineModeMarketMaker || m == MatchingEngineModeStp
}

// AssetPair 资产对实体。
// BasePairID 非空时指向另一个资产对，且同一基础对只能被引用一次。
type AssetPair struct {
	ID                     string             `json:"id"`
	Name                   string             `json:"name"`
	BaseAssetID            string             `json:"baseAssetId"`
	QuoteAssetID           string             `json:"quoteAssetId"`
	Accuracy               int                `json:"accuracy"`
	MarketID               string             `json:"marketId,omitempty"`
	LegalEntity            string             `json:"legalEntity"`
	BasePairID             string             `json:"basePairId,omitempty"`
	MatchingEngineMode     MatchingEngineMode `json:"matchingEngineMode"`
	StpMultiplierMarkupBid decimal.Decimal    `json:"stpMultiplierMarkupBid"`
	StpMultiplierMarkupAsk decimal.Decimal    `json:"stpMultiplierMarkupAsk"`
}
