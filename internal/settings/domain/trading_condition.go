package domain

import "github.com/shopspring/decimal"

// TradingCondition 交易条件实体。
// 每个 legalEntity 范围内至多一个 IsDefault = true 的条件。
type TradingCondition struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	LegalEntity            string          `json:"legalEntity"`
	BaseTradingConditionID string          `json:"baseTradingConditionId,omitempty"`
	MarginCall1            decimal.Decimal `json:"marginCall1"`
	MarginCall2            decimal.Decimal `json:"marginCall2"`
	StopOut                decimal.Decimal `json:"stopOut"`
	DepositLimit           decimal.Decimal `json:"depositLimit"`
	WithdrawalLimit        decimal.Decimal `json:"withdrawalLimit"`
	LimitCurrency          string          `json:"limitCurrency,omitempty"`
	BaseAssets             []string        `json:"baseAssets"`
	IsDefault              bool            `json:"isDefault"`
	IsBase                 bool            `json:"isBase"`
}
