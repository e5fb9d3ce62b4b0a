package httphandler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gaze-network/presale-ledger/modules/presale/datagateway"
	"github.com/gaze-network/presale-ledger/modules/presale/datagateway/mocks"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/gaze-network/presale-ledger/pkg/middleware/errorhandler"
	"github.com/gofiber/fiber/v2"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	now   = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	buyer = common.HexToAddress("0xb000000000000000000000000000000000000001")
)

type fakeLedger struct {
	stages   []entity.Stage
	current  int
	accounts map[common.Address]entity.Account
}

func newFakeLedger() *fakeLedger {
	first := entity.Stage{Index: 0, StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour)}
	first.Price.SetUint64(4000)
	first.MinContribution.SetUint64(20_000_000)
	first.TotalAssetSold.SetFromDecimal("5000000000000000000000")
	first.TotalValueRaised.SetUint64(20_000_000)
	second := entity.Stage{Index: 1}
	second.Price.SetUint64(6000)

	acc := entity.Account{Address: buyer, ReferralCount: 2}
	acc.AssetBalance.SetFromDecimal("5000000000000000000000")
	acc.TotalValueInvested.SetUint64(20_000_000)

	return &fakeLedger{
		stages:   []entity.Stage{first, second},
		current:  0,
		accounts: map[common.Address]entity.Account{buyer: acc},
	}
}

func (f *fakeLedger) Now() time.Time { return now }

func (f *fakeLedger) Status(context.Context) entity.Status {
	return entity.Status{Owner: buyer, Treasury: buyer, StagesInitialized: true}
}

func (f *fakeLedger) Totals(context.Context) entity.Totals {
	return entity.Totals{
		TotalAssetSold:   f.stages[0].TotalAssetSold,
		TotalValueRaised: f.stages[0].TotalValueRaised,
	}
}

func (f *fakeLedger) Stages(context.Context) []entity.Stage { return f.stages }

func (f *fakeLedger) Stage(_ context.Context, idx int) (entity.Stage, error) {
	if idx < 0 || idx >= len(f.stages) {
		return entity.Stage{}, errors.Mark(errors.New("Invalid stage index"), errs.Rejected)
	}
	return f.stages[idx], nil
}

func (f *fakeLedger) CurrentStage(context.Context) (entity.Stage, error) {
	if f.current < 0 {
		return entity.Stage{}, errors.Wrap(errs.NotFound, "no active stage")
	}
	return f.stages[f.current], nil
}

func (f *fakeLedger) ReferralTiers(context.Context) []entity.ReferralTier {
	return []entity.ReferralTier{
		{AmountThreshold: *uint256.NewInt(0), BonusPercentage: 5},
		{AmountThreshold: *uint256.NewInt(1000), BonusPercentage: 7},
	}
}

func (f *fakeLedger) Account(_ context.Context, addr common.Address) entity.Account {
	acc, ok := f.accounts[addr]
	if !ok {
		return entity.Account{Address: addr}
	}
	return acc
}

func (f *fakeLedger) Quote(ctx context.Context, idx int, value *uint256.Int) (*uint256.Int, error) {
	stage, err := f.Stage(ctx, idx)
	if err != nil {
		return nil, err
	}
	scale := new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(18))
	out := new(uint256.Int).Mul(value, scale)
	return out.Div(out, &stage.Price), nil
}

func newTestApp(t *testing.T, ledger Ledger, dg datagateway.PresaleDataGateway) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(errorhandler.New())
	require.NoError(t, New(ledger, dg).Mount(app))
	return app
}

func doGet(t *testing.T, app *fiber.App, target string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), string(body))
	}
	return resp.StatusCode
}

func TestInfo(t *testing.T) {
	ledger := newFakeLedger()
	app := newTestApp(t, ledger, nil)

	var res infoResponse
	require.Equal(t, http.StatusOK, doGet(t, app, "/presale/v1/info", &res))
	require.NotNil(t, res.CurrentStage)
	assert.Equal(t, 0, *res.CurrentStage)
	assert.Equal(t, "5000", res.TotalAssetSold.Decimal)
	assert.Equal(t, "20", res.TotalValueRaised.Decimal)
	assert.Nil(t, res.ClaimStart)
	assert.Empty(t, res.Asset)

	ledger.current = -1
	res = infoResponse{}
	require.Equal(t, http.StatusOK, doGet(t, app, "/presale/v1/info", &res))
	assert.Nil(t, res.CurrentStage)
}

func TestStages(t *testing.T) {
	ledger := newFakeLedger()
	app := newTestApp(t, ledger, nil)

	var stages []stageResponse
	require.Equal(t, http.StatusOK, doGet(t, app, "/presale/v1/stages", &stages))
	require.Len(t, stages, 2)
	assert.Equal(t, "active", stages[0].Status)
	assert.Equal(t, "0.004", stages[0].Price.Decimal)
	assert.Equal(t, "4000", stages[0].Price.Raw)
	assert.Equal(t, "pending", stages[1].Status)
	assert.Nil(t, stages[1].StartTime)

	var stage stageResponse
	require.Equal(t, http.StatusOK, doGet(t, app, "/presale/v1/stages/1", &stage))
	assert.Equal(t, 1, stage.Index)

	var current stageResponse
	require.Equal(t, http.StatusOK, doGet(t, app, "/presale/v1/stages/current", &current))
	assert.Equal(t, 0, current.Index)

	var errBody map[string]string
	assert.Equal(t, http.StatusBadRequest, doGet(t, app, "/presale/v1/stages/8", &errBody))
	assert.Equal(t, "Invalid stage index", errBody["error"])

	ledger.current = -1
	assert.Equal(t, http.StatusNotFound, doGet(t, app, "/presale/v1/stages/current", nil))
}

func TestTiers(t *testing.T) {
	app := newTestApp(t, newFakeLedger(), nil)

	var tiers []tierResponse
	require.Equal(t, http.StatusOK, doGet(t, app, "/presale/v1/tiers", &tiers))
	require.Len(t, tiers, 2)
	assert.Equal(t, "1000", tiers[1].AmountThreshold)
	assert.Equal(t, uint64(7), tiers[1].BonusPercentage)
}

func TestAccount(t *testing.T) {
	app := newTestApp(t, newFakeLedger(), nil)

	var acc accountResponse
	require.Equal(t, http.StatusOK, doGet(t, app, "/presale/v1/accounts/"+buyer.Hex(), &acc))
	assert.Equal(t, "5000", acc.AssetBalance.Decimal)
	assert.Equal(t, "20", acc.TotalValueInvested.Decimal)
	assert.Equal(t, uint64(2), acc.ReferralCount)

	stranger := common.HexToAddress("0xc000000000000000000000000000000000000001")
	acc = accountResponse{}
	require.Equal(t, http.StatusOK, doGet(t, app, "/presale/v1/accounts/"+stranger.Hex(), &acc))
	assert.Equal(t, "0", acc.AssetBalance.Raw)

	assert.Equal(t, http.StatusBadRequest, doGet(t, app, "/presale/v1/accounts/not-an-address", nil))
}

func TestQuote(t *testing.T) {
	app := newTestApp(t, newFakeLedger(), nil)

	var res quoteResponse
	require.Equal(t, http.StatusOK, doGet(t, app, "/presale/v1/quote?stage=0&value=20000000", &res))
	assert.Equal(t, "5000", res.AssetAmount.Decimal)
	assert.Equal(t, "20", res.Value.Decimal)

	assert.Equal(t, http.StatusBadRequest, doGet(t, app, "/presale/v1/quote?stage=0&value=-1", nil))
	assert.Equal(t, http.StatusBadRequest, doGet(t, app, "/presale/v1/quote?stage=9&value=1", nil))
}

func TestEvents(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		app := newTestApp(t, newFakeLedger(), nil)
		assert.Equal(t, http.StatusNotImplemented, doGet(t, app, "/presale/v1/events", nil))
	})

	t.Run("by wallet", func(t *testing.T) {
		dg := mocks.NewPresaleDataGateway(t)
		dg.EXPECT().GetEventsByWallet(anyContext, buyer).Return([]entity.EventRecord{
			{
				ID:        7,
				Kind:      entity.EventTokensPurchased,
				Wallet:    buyer,
				Amount:    *uint256.NewInt(5000),
				Payload:   []byte(`{"stageIndex":0}`),
				CreatedAt: now,
			},
		}, nil)
		app := newTestApp(t, newFakeLedger(), dg)

		var events []eventResponse
		require.Equal(t, http.StatusOK, doGet(t, app, "/presale/v1/events?wallet="+buyer.Hex(), &events))
		require.Len(t, events, 1)
		assert.Equal(t, int64(7), events[0].ID)
		assert.Equal(t, "TokensPurchased", events[0].Kind)
		assert.Equal(t, "5000", events[0].Amount)
		assert.JSONEq(t, `{"stageIndex":0}`, string(events[0].Payload))
	})

	t.Run("paged", func(t *testing.T) {
		dg := mocks.NewPresaleDataGateway(t)
		dg.EXPECT().GetEvents(anyContext, datagateway.GetEventsParams{
			Kind:   entity.EventStageCreated,
			Limit:  maxEventsLimit,
			Offset: 0,
		}).Return(nil, nil)
		app := newTestApp(t, newFakeLedger(), dg)

		var events []eventResponse
		require.Equal(t, http.StatusOK, doGet(t, app, "/presale/v1/events?kind=StageCreated&limit=5000", &events))
		assert.Empty(t, events)
	})
}

var anyContext = mock.Anything
