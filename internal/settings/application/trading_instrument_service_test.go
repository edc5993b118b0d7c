package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

func testDefaults() domain.DefaultTradingInstrumentSettings {
	return domain.DefaultTradingInstrumentSettings{
		LeverageInit:        100,
		LeverageMaintenance: 150,
		CommissionRate:      decimal.NewFromFloat(0.001),
		CommissionCurrency:  "USD",
	}
}

func validInstrument(conditionID, instrument string) *domain.TradingInstrument {
	return &domain.TradingInstrument{
		TradingConditionID:  conditionID,
		Instrument:          instrument,
		LeverageInit:        100,
		LeverageMaintenance: 150,
		CommissionCurrency:  "USD",
	}
}

type instrumentFixture struct {
	repo    *fakeInstrumentRepo
	trading *stubTradingService
	sender  *recordingEventSender
	svc     *TradingInstrumentService
}

func newInstrumentFixture(instruments ...*domain.TradingInstrument) *instrumentFixture {
	repo := newFakeInstrumentRepo(instruments...)
	conditions := newFakeConditionRepo(&domain.TradingCondition{ID: "tc-1", LegalEntity: "Default", IsDefault: true})
	pairs := newFakeAssetPairRepo(validPair("BTCUSD"), validPair("ETHUSD"), validPair("XAUUSD"))
	assets := newFakeAssetRepo(&domain.Asset{ID: "USD"})
	trading := &stubTradingService{}
	sender := &recordingEventSender{}
	svc := NewTradingInstrumentService(repo, conditions, pairs, assets, trading, sender, testDefaults())
	return &instrumentFixture{repo: repo, trading: trading, sender: sender, svc: svc}
}

func TestTradingInstrumentService_Insert(t *testing.T) {
	f := newInstrumentFixture()

	params := TradingInstrumentUpsertParams{
		TradingInstrument: validInstrument("tc-1", "BTCUSD"),
		Traceability:      &domain.TraceableMessage{ID: "op-1"},
	}

	instr, err := f.svc.Insert(context.Background(), params, "/api/tradingInstruments")
	require.NoError(t, err)
	assert.Equal(t, "BTCUSD", instr.Instrument)
	assert.Len(t, f.sender.events, 1)
	assert.Equal(t, domain.SettingsTypeTradingInstrument, f.sender.events[0].SettingsType)
}

func TestTradingInstrumentService_Insert_NonPositiveLeverageRejected(t *testing.T) {
	f := newInstrumentFixture()

	instr := validInstrument("tc-1", "BTCUSD")
	instr.LeverageInit = 0
	params := TradingInstrumentUpsertParams{
		TradingInstrument: instr,
		Traceability:      &domain.TraceableMessage{ID: "op-1"},
	}

	_, err := f.svc.Insert(context.Background(), params, "/api/tradingInstruments")

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "leverageInit", validationErr.Field)
}

func TestTradingInstrumentService_Insert_Duplicate(t *testing.T) {
	f := newInstrumentFixture(validInstrument("tc-1", "BTCUSD"))

	params := TradingInstrumentUpsertParams{
		TradingInstrument: validInstrument("tc-1", "BTCUSD"),
		Traceability:      &domain.TraceableMessage{ID: "op-1"},
	}

	_, err := f.svc.Insert(context.Background(), params, "/api/tradingInstruments")

	var conflictErr *domain.ConflictError
	require.ErrorAs(t, err, &conflictErr)
}

func TestTradingInstrumentService_AssignCollection(t *testing.T) {
	f := newInstrumentFixture(validInstrument("tc-1", "BTCUSD"), validInstrument("tc-1", "ETHUSD"))

	params := AssignInstrumentsParams{
		Instruments:  []string{"ETHUSD", "XAUUSD"},
		Traceability: &domain.TraceableMessage{ID: "op-1"},
	}

	created, err := f.svc.AssignCollection(context.Background(), "tc-1", params, "/api/tradingInstruments/tc-1")
	require.NoError(t, err)

	require.Len(t, created, 1)
	assert.Equal(t, "XAUUSD", created[0].Instrument)
	assert.Equal(t, 100, created[0].LeverageInit)

	remaining, err := f.repo.List(context.Background(), "tc-1")
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, "ETHUSD", remaining[0].Instrument)
	assert.Equal(t, "XAUUSD", remaining[1].Instrument)
	assert.Len(t, f.sender.events, 1)
}

func TestTradingInstrumentService_AssignCollection_BlockedByActiveOrders(t *testing.T) {
	f := newInstrumentFixture(validInstrument("tc-1", "BTCUSD"))
	f.trading.blocked = []string{"BTCUSD"}

	params := AssignInstrumentsParams{
		Instruments:  []string{"ETHUSD"},
		Traceability: &domain.TraceableMessage{ID: "op-1"},
	}

	_, err := f.svc.AssignCollection(context.Background(), "tc-1", params, "/api/tradingInstruments/tc-1")

	var ruleErr *domain.BusinessRuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Contains(t, ruleErr.Reason, "BTCUSD")

	remaining, _ := f.repo.List(context.Background(), "tc-1")
	require.Len(t, remaining, 1)
	assert.Equal(t, "BTCUSD", remaining[0].Instrument)
	assert.Empty(t, f.sender.events)
}

func TestTradingInstrumentService_AssignCollection_NoRemovalsSkipsOrderCheck(t *testing.T) {
	f := newInstrumentFixture(validInstrument("tc-1", "BTCUSD"))
	f.trading.blocked = []string{"BTCUSD"}

	params := AssignInstrumentsParams{
		Instruments:  []string{"BTCUSD", "ETHUSD"},
		Traceability: &domain.TraceableMessage{ID: "op-1"},
	}

	created, err := f.svc.AssignCollection(context.Background(), "tc-1", params, "/api/tradingInstruments/tc-1")
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "ETHUSD", created[0].Instrument)
}
