package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

func validPair(id string) *domain.AssetPair {
	return &domain.AssetPair{
		ID:                     id,
		Name:                   id,
		BaseAssetID:            "BTC",
		QuoteAssetID:           "USD",
		Accuracy:               5,
		MatchingEngineMode:     domain.MatchingEngineModeMarketMaker,
		StpMultiplierMarkupBid: decimal.NewFromInt(1),
		StpMultiplierMarkupAsk: decimal.NewFromInt(1),
	}
}

func newPairService(pairs *fakeAssetPairRepo, sender *recordingEventSender) *AssetPairService {
	assets := newFakeAssetRepo(&domain.Asset{ID: "BTC"}, &domain.Asset{ID: "USD"})
	markets := newFakeMarketRepo(&domain.Market{ID: "crypto"})
	return NewAssetPairService(pairs, assets, markets, sender, "Default")
}

func TestAssetPairService_Insert_StampsDefaultLegalEntity(t *testing.T) {
	repo := newFakeAssetPairRepo()
	sender := &recordingEventSender{}
	svc := newPairService(repo, sender)

	params := AssetPairUpsertParams{
		AssetPair:    validPair("BTCUSD"),
		Traceability: &domain.TraceableMessage{ID: "op-1"},
	}

	pair, err := svc.Insert(context.Background(), params, "/api/assetPairs")
	require.NoError(t, err)
	assert.Equal(t, "Default", pair.LegalEntity)
	assert.Len(t, sender.events, 1)
	assert.Equal(t, domain.SettingsTypeAssetPair, sender.events[0].SettingsType)
}

func TestAssetPairService_Insert_NonPositiveStpMarkupRejected(t *testing.T) {
	repo := newFakeAssetPairRepo()
	sender := &recordingEventSender{}
	svc := newPairService(repo, sender)

	pair := validPair("BTCUSD")
	pair.StpMultiplierMarkupAsk = decimal.Zero
	params := AssetPairUpsertParams{AssetPair: pair, Traceability: &domain.TraceableMessage{ID: "op-1"}}

	_, err := svc.Insert(context.Background(), params, "/api/assetPairs")

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Zero(t, repo.inserts)
	assert.Empty(t, sender.events)
}

func TestAssetPairService_Insert_UnknownBaseAsset(t *testing.T) {
	svc := newPairService(newFakeAssetPairRepo(), &recordingEventSender{})

	pair := validPair("XAUUSD")
	pair.BaseAssetID = "XAU"
	params := AssetPairUpsertParams{AssetPair: pair, Traceability: &domain.TraceableMessage{ID: "op-1"}}

	_, err := svc.Insert(context.Background(), params, "/api/assetPairs")

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "baseAssetId", validationErr.Field)
}

func TestAssetPairService_Insert_BasePairAlreadyUsed(t *testing.T) {
	base := validPair("BTCUSD")
	existing := validPair("BTCUSD.cy")
	existing.BasePairID = "BTCUSD"
	repo := newFakeAssetPairRepo(base, existing)
	svc := newPairService(repo, &recordingEventSender{})

	pair := validPair("BTCUSD.mf")
	pair.BasePairID = "BTCUSD"
	params := AssetPairUpsertParams{AssetPair: pair, Traceability: &domain.TraceableMessage{ID: "op-1"}}

	_, err := svc.Insert(context.Background(), params, "/api/assetPairs")

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "basePairId", validationErr.Field)
}

func TestAssetPairService_List_UnknownModeRejected(t *testing.T) {
	svc := newPairService(newFakeAssetPairRepo(), &recordingEventSender{})

	_, err := svc.List(context.Background(), "", domain.MatchingEngineMode("Hybrid"))

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestAssetPairService_Update_KeepsExplicitLegalEntity(t *testing.T) {
	existing := validPair("BTCUSD")
	existing.LegalEntity = "ENTITY-CY"
	repo := newFakeAssetPairRepo(existing)
	svc := newPairService(repo, &recordingEventSender{})

	updated := validPair("BTCUSD")
	updated.LegalEntity = "ENTITY-CY"
	updated.Accuracy = 3
	params := AssetPairUpsertParams{AssetPair: updated, Traceability: &domain.TraceableMessage{ID: "op-1"}}

	pair, err := svc.Update(context.Background(), "BTCUSD", params, "/api/assetPairs/BTCUSD")
	require.NoError(t, err)
	assert.Equal(t, "ENTITY-CY", pair.LegalEntity)
	assert.Equal(t, 3, pair.Accuracy)
}
