package application

import (
	"context"
	"sort"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

// 内存仓储桩，行为对齐持久化实现的语义约定：
// Get 不存在返回 (nil, nil)，Insert 键冲突返回 false，Delete 幂等。

type fakeAssetRepo struct {
	assets  map[string]*domain.Asset
	updates int
	deletes int
}

func newFakeAssetRepo(assets ...*domain.Asset) *fakeAssetRepo {
	repo := &fakeAssetRepo{assets: make(map[string]*domain.Asset)}
	for _, a := range assets {
		repo.assets[a.ID] = a
	}
	return repo
}

func (r *fakeAssetRepo) List(ctx context.Context) ([]*domain.Asset, error) {
	ids := make([]string, 0, len(r.assets))
	for id := range r.assets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*domain.Asset, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.assets[id])
	}
	return out, nil
}

func (r *fakeAssetRepo) ListByPages(ctx context.Context, skip, take int) (*domain.Paginated[*domain.Asset], error) {
	all, _ := r.List(ctx)
	total := int64(len(all))
	if skip > len(all) {
		skip = len(all)
	}
	end := skip + take
	if end > len(all) {
		end = len(all)
	}
	return &domain.Paginated[*domain.Asset]{Contents: all[skip:end], Start: skip, Size: end - skip, TotalSize: total}, nil
}

func (r *fakeAssetRepo) Get(ctx context.Context, id string) (*domain.Asset, error) {
	return r.assets[id], nil
}

func (r *fakeAssetRepo) Insert(ctx context.Context, asset *domain.Asset) (bool, error) {
	if _, ok := r.assets[asset.ID]; ok {
		return false, nil
	}
	r.assets[asset.ID] = asset
	return true, nil
}

func (r *fakeAssetRepo) Update(ctx context.Context, asset *domain.Asset) error {
	r.updates++
	r.assets[asset.ID] = asset
	return nil
}

func (r *fakeAssetRepo) Delete(ctx context.Context, id string) error {
	r.deletes++
	delete(r.assets, id)
	return nil
}

type fakeMarketRepo struct {
	markets map[string]*domain.Market
}

func newFakeMarketRepo(markets ...*domain.Market) *fakeMarketRepo {
	repo := &fakeMarketRepo{markets: make(map[string]*domain.Market)}
	for _, m := range markets {
		repo.markets[m.ID] = m
	}
	return repo
}

func (r *fakeMarketRepo) List(ctx context.Context) ([]*domain.Market, error) {
	out := make([]*domain.Market, 0, len(r.markets))
	for _, m := range r.markets {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMarketRepo) Get(ctx context.Context, id string) (*domain.Market, error) {
	return r.markets[id], nil
}

func (r *fakeMarketRepo) Insert(ctx context.Context, market *domain.Market) (bool, error) {
	if _, ok := r.markets[market.ID]; ok {
		return false, nil
	}
	r.markets[market.ID] = market
	return true, nil
}

func (r *fakeMarketRepo) Update(ctx context.Context, market *domain.Market) error {
	r.markets[market.ID] = market
	return nil
}

func (r *fakeMarketRepo) Delete(ctx context.Context, id string) error {
	delete(r.markets, id)
	return nil
}

type fakeAssetPairRepo struct {
	pairs   map[string]*domain.AssetPair
	inserts int
	updates int
}

func newFakeAssetPairRepo(pairs ...*domain.AssetPair) *fakeAssetPairRepo {
	repo := &fakeAssetPairRepo{pairs: make(map[string]*domain.AssetPair)}
	for _, p := range pairs {
		repo.pairs[p.ID] = p
	}
	return repo
}

func (r *fakeAssetPairRepo) List(ctx context.Context, legalEntity string, mode domain.MatchingEngineMode) ([]*domain.AssetPair, error) {
	out := make([]*domain.AssetPair, 0, len(r.pairs))
	for _, p := range r.pairs {
		if legalEntity != "" && p.LegalEntity != legalEntity {
			continue
		}
		if mode != "" && p.MatchingEngineMode != mode {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAssetPairRepo) ListByPages(ctx context.Context, legalEntity string, mode domain.MatchingEngineMode,
	skip, take int) (*domain.Paginated[*domain.AssetPair], error) {
	all, _ := r.List(ctx, legalEntity, mode)
	total := int64(len(all))
	if skip > len(all) {
		skip = len(all)
	}
	end := skip + take
	if end > len(all) {
		end = len(all)
	}
	return &domain.Paginated[*domain.AssetPair]{Contents: all[skip:end], Start: skip, Size: end - skip, TotalSize: total}, nil
}

func (r *fakeAssetPairRepo) Get(ctx context.Context, id string) (*domain.AssetPair, error) {
	return r.pairs[id], nil
}

func (r *fakeAssetPairRepo) GetByBasePair(ctx context.Context, basePairID string) (*domain.AssetPair, error) {
	for _, p := range r.pairs {
		if p.BasePairID == basePairID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeAssetPairRepo) GetByBasePairAndNotByID(ctx context.Context, id, basePairID string) (*domain.AssetPair, error) {
	for _, p := range r.pairs {
		if p.BasePairID == basePairID && p.ID != id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeAssetPairRepo) Insert(ctx context.Context, pair *domain.AssetPair) (bool, error) {
	if _, ok := r.pairs[pair.ID]; ok {
		return false, nil
	}
	r.inserts++
	r.pairs[pair.ID] = pair
	return true, nil
}

func (r *fakeAssetPairRepo) Update(ctx context.Context, pair *domain.AssetPair) error {
	r.updates++
	r.pairs[pair.ID] = pair
	return nil
}

func (r *fakeAssetPairRepo) Delete(ctx context.Context, id string) error {
	delete(r.pairs, id)
	return nil
}

type fakeConditionRepo struct {
	conditions map[string]*domain.TradingCondition
}

func newFakeConditionRepo(conditions ...*domain.TradingCondition) *fakeConditionRepo {
	repo := &fakeConditionRepo{conditions: make(map[string]*domain.TradingCondition)}
	for _, c := range conditions {
		repo.conditions[c.ID] = c
	}
	return repo
}

func (r *fakeConditionRepo) List(ctx context.Context, isDefault *bool) ([]*domain.TradingCondition, error) {
	out := make([]*domain.TradingCondition, 0, len(r.conditions))
	for _, c := range r.conditions {
		if isDefault != nil && c.IsDefault != *isDefault {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeConditionRepo) Get(ctx context.Context, id string) (*domain.TradingCondition, error) {
	return r.conditions[id], nil
}

func (r *fakeConditionRepo) GetDefault(ctx context.Context, legalEntity string) (*domain.TradingCondition, error) {
	for _, c := range r.conditions {
		if c.LegalEntity == legalEntity && c.IsDefault {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeConditionRepo) Insert(ctx context.Context, condition *domain.TradingCondition) (bool, error) {
	if _, ok := r.conditions[condition.ID]; ok {
		return false, nil
	}
	r.conditions[condition.ID] = condition
	return true, nil
}

func (r *fakeConditionRepo) Update(ctx context.Context, condition *domain.TradingCondition) error {
	r.conditions[condition.ID] = condition
	return nil
}

func (r *fakeConditionRepo) WithTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type fakeInstrumentRepo struct {
	instruments map[string]*domain.TradingInstrument
}

func instrumentKey(tradingConditionID, instrument string) string {
	return tradingConditionID + "/" + instrument
}

func newFakeInstrumentRepo(instruments ...*domain.TradingInstrument) *fakeInstrumentRepo {
	repo := &fakeInstrumentRepo{instruments: make(map[string]*domain.TradingInstrument)}
	for _, i := range instruments {
		repo.instruments[instrumentKey(i.TradingConditionID, i.Instrument)] = i
	}
	return repo
}

func (r *fakeInstrumentRepo) List(ctx context.Context, tradingConditionID string) ([]*domain.TradingInstrument, error) {
	out := make([]*domain.TradingInstrument, 0, len(r.instruments))
	for _, i := range r.instruments {
		if tradingConditionID != "" && i.TradingConditionID != tradingConditionID {
			continue
		}
		out = append(out, i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Instrument < out[j].Instrument })
	return out, nil
}

func (r *fakeInstrumentRepo) ListByPages(ctx context.Context, tradingConditionID string,
	skip, take int) (*domain.Paginated[*domain.TradingInstrument], error) {
	all, _ := r.List(ctx, tradingConditionID)
	total := int64(len(all))
	if skip > len(all) {
		skip = len(all)
	}
	end := skip + take
	if end > len(all) {
		end = len(all)
	}
	return &domain.Paginated[*domain.TradingInstrument]{Contents: all[skip:end], Start: skip, Size: end - skip, TotalSize: total}, nil
}

func (r *fakeInstrumentRepo) Get(ctx context.Context, tradingConditionID, instrument string) (*domain.TradingInstrument, error) {
	return r.instruments[instrumentKey(tradingConditionID, instrument)], nil
}

func (r *fakeInstrumentRepo) Insert(ctx context.Context, instrument *domain.TradingInstrument) (bool, error) {
	key := instrumentKey(instrument.TradingConditionID, instrument.Instrument)
	if _, ok := r.instruments[key]; ok {
		return false, nil
	}
	r.instruments[key] = instrument
	return true, nil
}

func (r *fakeInstrumentRepo) Update(ctx context.Context, instrument *domain.TradingInstrument) error {
	r.instruments[instrumentKey(instrument.TradingConditionID, instrument.Instrument)] = instrument
	return nil
}

func (r *fakeInstrumentRepo) Delete(ctx context.Context, tradingConditionID, instrument string) error {
	delete(r.instruments, instrumentKey(tradingConditionID, instrument))
	return nil
}

func (r *fakeInstrumentRepo) CreateDefaultInstruments(ctx context.Context, tradingConditionID string,
	instruments []string, defaults domain.DefaultTradingInstrumentSettings) ([]*domain.TradingInstrument, error) {
	var created []*domain.TradingInstrument
	for _, id := range instruments {
		instr := domain.NewDefaultInstrument(tradingConditionID, id, defaults)
		if inserted, _ := r.Insert(ctx, instr); inserted {
			created = append(created, instr)
		}
	}
	return created, nil
}

func (r *fakeInstrumentRepo) WithTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

// recordedEvent 事件发送桩捕获的一次调用
type recordedEvent struct {
	CorrelationID string
	CausationID   string
	SettingsType  domain.SettingsType
	Route         string
}

type recordingEventSender struct {
	events []recordedEvent
}

func (s *recordingEventSender) SendSettingsChanged(ctx context.Context, correlationID, causationID string,
	settingsType domain.SettingsType, route string) {
	s.events = append(s.events, recordedEvent{
		CorrelationID: correlationID,
		CausationID:   causationID,
		SettingsType:  settingsType,
		Route:         route,
	})
}

// stubTradingService 可配置的交易核心桩
type stubTradingService struct {
	blocked []string
	err     error
}

func (s *stubTradingService) CheckActiveByTradingCondition(ctx context.Context, tradingConditionID string) ([]string, error) {
	return s.blocked, s.err
}
