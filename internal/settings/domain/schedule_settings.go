package domain

import "time"

// ScheduleConstraint 交易时段边界。Date 与 DayOfWeek 互斥，Time 为当日时刻（HH:MM:SS）。
type ScheduleConstraint struct {
	Date      *time.Time    `json:"date,omitempty"`
	DayOfWeek *time.Weekday `json:"dayOfWeek,omitempty"`
	Time      string        `json:"time"`
}

// ScheduleSettings 交易时段配置，按 AssetPairs / AssetPairRegex / MarketID 选定生效范围
type ScheduleSettings struct {
	ID                  string             `json:"id"`
	Rank                int                `json:"rank"`
	AssetPairRegex      string             `json:"assetPairRegex,omitempty"`
	AssetPairs          []string           `json:"assetPairs"`
	MarketID            string             `json:"marketId,omitempty"`
	IsTradeEnabled      *bool              `json:"isTradeEnabled,omitempty"`
	PendingOrdersCutOff int64              `json:"pendingOrdersCutOff,omitempty"`
	Start               ScheduleConstraint `json:"start"`
	End                 ScheduleConstraint `json:"end"`
}

// MaintenanceMode 全局维护开关，持久化为单行记录
type MaintenanceMode struct {
	Enabled bool `json:"enabled"`
}
