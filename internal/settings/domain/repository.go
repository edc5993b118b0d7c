package domain

import "context"

// Insert 语义统一为 insert-if-absent：键已存在时返回 false 且不写入。
// Get 语义统一为：不存在时返回 (nil, nil)。
// Delete 语义统一为幂等：键不存在不报错。

// AssetRepository 资产仓储接口
type AssetRepository interface {
	List(ctx context.Context) ([]*Asset, error)
	ListByPages(ctx context.Context, skip, take int) (*Paginated[*Asset], error)
	Get(ctx context.Context, id string) (*Asset, error)
	Insert(ctx context.Context, asset *Asset) (bool, error)
	Update(ctx context.Context, asset *Asset) error
	Delete(ctx context.Context, id string) error
}

// MarketRepository 市场仓储接口
type MarketRepository interface {
	List(ctx context.Context) ([]*Market, error)
	Get(ctx context.Context, id string) (*Market, error)
	Insert(ctx context.Context, market *Market) (bool, error)
	Update(ctx context.Context, market *Market) error
	Delete(ctx context.Context, id string) error
}

// AssetPairRepository 资产对仓储接口
type AssetPairRepository interface {
	// List 按 legalEntity 与撮合模式过滤，空参不过滤
	List(ctx context.Context, legalEntity string, mode MatchingEngineMode) ([]*AssetPair, error)
	ListByPages(ctx context.Context, legalEntity string, mode MatchingEngineMode, skip, take int) (*Paginated[*AssetPair], error)
	Get(ctx context.Context, id string) (*AssetPair, error)
	// GetByBasePair 返回以 basePairID 为基础对的任一资产对
	GetByBasePair(ctx context.Context, basePairID string) (*AssetPair, error)
	// GetByBasePairAndNotByID 同上，但排除 id 自身
	GetByBasePairAndNotByID(ctx context.Context, id, basePairID string) (*AssetPair, error)
	Insert(ctx context.Context, pair *AssetPair) (bool, error)
	Update(ctx context.Context, pair *AssetPair) error
	Delete(ctx context.Context, id string) error
}

// TradingConditionRepository 交易条件仓储接口
type TradingConditionRepository interface {
	List(ctx context.Context, isDefault *bool) ([]*TradingCondition, error)
	Get(ctx context.Context, id string) (*TradingCondition, error)
	// GetDefault 返回 legalEntity 范围内当前默认条件，不存在时 (nil, nil)
	GetDefault(ctx context.Context, legalEntity string) (*TradingCondition, error)
	Insert(ctx context.Context, condition *TradingCondition) (bool, error)
	Update(ctx context.Context, condition *TradingCondition) error
	// WithTx fn 内通过上下文复用同一事务，用于默认条件的原子切换
	WithTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

// TradingInstrumentRepository 交易品种仓储接口
type TradingInstrumentRepository interface {
	List(ctx context.Context, tradingConditionID string) ([]*TradingInstrument, error)
	ListByPages(ctx context.Context, tradingConditionID string, skip, take int) (*Paginated[*TradingInstrument], error)
	Get(ctx context.Context, tradingConditionID, instrument string) (*TradingInstrument, error)
	Insert(ctx context.Context, instrument *TradingInstrument) (bool, error)
	Update(ctx context.Context, instrument *TradingInstrument) error
	Delete(ctx context.Context, tradingConditionID, instrument string) error
	// CreateDefaultInstruments 按平台默认参数批量创建，返回新建的品种
	CreateDefaultInstruments(ctx context.Context, tradingConditionID string, instruments []string,
		defaults DefaultTradingInstrumentSettings) ([]*TradingInstrument, error)
	WithTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

// TradingRouteRepository 路由规则仓储接口
type TradingRouteRepository interface {
	List(ctx context.Context) ([]*TradingRoute, error)
	Get(ctx context.Context, id string) (*TradingRoute, error)
	Insert(ctx context.Context, route *TradingRoute) (bool, error)
	Update(ctx context.Context, route *TradingRoute) error
	Delete(ctx context.Context, id string) error
}

// ScheduleSettingsRepository 交易时段仓储接口
type ScheduleSettingsRepository interface {
	// List marketID 非空时仅返回该市场的配置
	List(ctx context.Context, marketID string) ([]*ScheduleSettings, error)
	Get(ctx context.Context, id string) (*ScheduleSettings, error)
	Insert(ctx context.Context, settings *ScheduleSettings) (bool, error)
	Update(ctx context.Context, settings *ScheduleSettings) error
	Delete(ctx context.Context, id string) error
}

// MaintenanceModeRepository 维护模式仓储接口，单行记录
type MaintenanceModeRepository interface {
	Get(ctx context.Context) (bool, error)
	Set(ctx context.Context, enabled bool) error
}
