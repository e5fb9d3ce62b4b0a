package presale

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/modules/presale/api/httphandler"
	"github.com/gaze-network/presale-ledger/pkg/middleware/errorhandler"
	"github.com/gaze-network/presale-ledger/pkg/middleware/requestcontext"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiSecret = "host-secret"

type apiAmount struct {
	Raw     string `json:"raw"`
	Decimal string `json:"decimal"`
}

type apiPurchase struct {
	Buyer         string    `json:"buyer"`
	StageIndex    int       `json:"stageIndex"`
	Currency      string    `json:"currency"`
	PaidAmount    apiAmount `json:"paidAmount"`
	AssetAmount   apiAmount `json:"assetAmount"`
	Referrer      string    `json:"referrer"`
	ReferralBonus apiAmount `json:"referralBonus"`
}

type apiTransfer struct {
	Amount apiAmount `json:"amount"`
}

func newAPIApp(t *testing.T, f *fixture, writes bool) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(requestcontext.New(requestcontext.WithCaller(requestcontext.WithCallerConfig{Secret: apiSecret})))
	app.Use(errorhandler.New())
	h := httphandler.New(f.p, nil)
	if writes {
		h.WithOperator(f.p)
	}
	require.NoError(t, h.Mount(app))
	return app
}

// send issues a JSON request as caller. A zero caller sends no caller headers.
func send(t *testing.T, app *fiber.App, method, target string, caller common.Address, body, out any) int {
	t.Helper()
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, payload)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if caller != (common.Address{}) {
		req.Header.Set(requestcontext.DefaultCallerHeader, caller.Hex())
		req.Header.Set(requestcontext.DefaultCallerSecretHeader, apiSecret)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && resp.StatusCode < http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(respBody, out), string(respBody))
	}
	return resp.StatusCode
}

func TestAPIPurchaseThenClaim(t *testing.T) {
	f := newFixture(t)
	app := newAPIApp(t, f, true)
	f.vault.Mint(usdt, buyer, units(100))

	var purchase apiPurchase
	status := send(t, app, http.MethodPost, "/presale/v1/purchases/stable", buyer, fiber.Map{
		"stage":    0,
		"currency": usdt.Hex(),
		"amount":   units(100).Dec(),
	}, &purchase)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, buyer.Hex(), purchase.Buyer)
	assert.Equal(t, "100", purchase.PaidAmount.Decimal)
	assert.Equal(t, "25000", purchase.AssetAmount.Decimal)
	assert.Empty(t, purchase.Referrer)

	sold := f.p.Account(f.ctx, buyer).AssetBalance
	assert.Equal(t, sold.Dec(), purchase.AssetAmount.Raw)
	assert.True(t, f.balance(t, usdt, buyer).IsZero())

	f.vault.Mint(asset, treasury, &sold)
	finalize := fiber.Map{
		"claimStart": genesis.Add(time.Hour).Format(time.RFC3339),
		"asset":      asset.Hex(),
	}
	assert.Equal(t, http.StatusForbidden, send(t, app, http.MethodPost, "/presale/v1/admin/finalize", buyer, finalize, nil))
	require.Equal(t, http.StatusNoContent, send(t, app, http.MethodPost, "/presale/v1/admin/finalize", treasury, finalize, nil))
	assert.True(t, f.p.Status(f.ctx).Finalized)

	assert.Equal(t, http.StatusBadRequest, send(t, app, http.MethodPost, "/presale/v1/claims", buyer, nil, nil), "claim window not open")

	f.clock.Advance(time.Hour)
	var claimed apiTransfer
	require.Equal(t, http.StatusOK, send(t, app, http.MethodPost, "/presale/v1/claims", buyer, nil, &claimed))
	assert.Equal(t, sold.Dec(), claimed.Amount.Raw)
	assert.Equal(t, &sold, f.balance(t, asset, buyer))
	buyerAcc := f.p.Account(f.ctx, buyer)
	assert.True(t, buyerAcc.AssetBalance.IsZero())

	assert.Equal(t, http.StatusBadRequest, send(t, app, http.MethodPost, "/presale/v1/claims", buyer, nil, nil), "nothing left to claim")
}

func TestAPINativePurchase(t *testing.T) {
	f := newFixture(t)
	app := newAPIApp(t, f, true)
	f.vault.Mint(NativeCurrency, buyer, ether(1))

	var purchase apiPurchase
	status := send(t, app, http.MethodPost, "/presale/v1/purchases/native", buyer, fiber.Map{
		"stage":    0,
		"referrer": referrer.Hex(),
		"amount":   ether(1).Dec(),
	}, &purchase)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, NativeCurrency.Hex(), purchase.Currency)
	assert.Equal(t, "1", purchase.PaidAmount.Decimal)
	assert.Equal(t, referrer.Hex(), purchase.Referrer)
	assert.Equal(t, purchase.ReferralBonus.Raw, f.balance(t, NativeCurrency, referrer).Dec())
	assert.Equal(t, uint64(1), f.p.Account(f.ctx, referrer).ReferralCount)
}

func TestAPIAdmin(t *testing.T) {
	f := newFixture(t)
	app := newAPIApp(t, f, true)

	threshold := f.p.ReferralTiers(f.ctx)[0].AmountThreshold
	tier := fiber.Map{"threshold": threshold.Dec(), "bonusPercentage": 7}
	assert.Equal(t, http.StatusForbidden, send(t, app, http.MethodPut, "/presale/v1/admin/tiers/0", treasury, tier, nil))
	assert.Equal(t, http.StatusBadRequest, send(t, app, http.MethodPut, "/presale/v1/admin/tiers/0", owner, fiber.Map{"bonusPercentage": 7}, nil))
	require.Equal(t, http.StatusNoContent, send(t, app, http.MethodPut, "/presale/v1/admin/tiers/0", owner, tier, nil))
	assert.Equal(t, uint64(7), f.p.ReferralTiers(f.ctx)[0].BonusPercentage)

	newTreasury := common.HexToAddress("0x0000000000000000000000000000000000000a03")
	require.Equal(t, http.StatusNoContent, send(t, app, http.MethodPut, "/presale/v1/admin/treasury", owner, fiber.Map{"treasury": newTreasury.Hex()}, nil))
	assert.Equal(t, newTreasury, f.p.Status(f.ctx).Treasury)

	require.Equal(t, http.StatusNoContent, send(t, app, http.MethodPost, "/presale/v1/admin/stages/0/conclude", newTreasury, nil, nil))
	assert.True(t, f.p.Stages(f.ctx)[0].SoldOut)
	f.clock.Advance(time.Second)
	current, err := f.p.CurrentStage(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, current.Index)

	f.vault.Mint(usdc, presaleAddr, units(40))
	var withdrawn apiTransfer
	require.Equal(t, http.StatusOK, send(t, app, http.MethodPost, "/presale/v1/admin/withdrawals/stable", owner, fiber.Map{"token": usdc.Hex()}, &withdrawn))
	assert.Equal(t, "40", withdrawn.Amount.Decimal)
	assert.Equal(t, units(40), f.balance(t, usdc, newTreasury))
}

func TestAPICallerRequired(t *testing.T) {
	f := newFixture(t)
	app := newAPIApp(t, f, true)

	assert.Equal(t, http.StatusUnauthorized, send(t, app, http.MethodPost, "/presale/v1/claims", common.Address{}, nil, nil))

	req := httptest.NewRequest(http.MethodPost, "/presale/v1/claims", nil)
	req.Header.Set(requestcontext.DefaultCallerHeader, buyer.Hex())
	req.Header.Set(requestcontext.DefaultCallerSecretHeader, "guess")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPIWritesDisabled(t *testing.T) {
	f := newFixture(t)
	app := newAPIApp(t, f, false)
	f.vault.Mint(usdt, buyer, units(100))

	status := send(t, app, http.MethodPost, "/presale/v1/purchases/stable", buyer, fiber.Map{
		"stage":    0,
		"currency": usdt.Hex(),
		"amount":   units(100).Dec(),
	}, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, units(100), f.balance(t, usdt, buyer))
	assert.Equal(t, http.StatusOK, send(t, app, http.MethodGet, "/presale/v1/info", common.Address{}, nil, nil))
}
