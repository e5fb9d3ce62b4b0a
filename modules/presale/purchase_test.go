package presale

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuyWithStableRejections(t *testing.T) {
	f := newFixture(t)
	f.vault.Mint(usdt, buyer, units(1000))

	testCases := []struct {
		name     string
		currency common.Address
		stage    int
		referrer common.Address
		amount   *uint256.Int
		want     error
	}{
		{"unsupported currency", asset, 0, common.Address{}, units(100), ErrUnsupportedCurrency},
		{"native is not stable", NativeCurrency, 0, common.Address{}, units(100), ErrUnsupportedCurrency},
		{"negative stage", usdt, -1, common.Address{}, units(100), ErrInvalidStageIndex},
		{"stage out of range", usdt, StageCount, common.Address{}, units(100), ErrInvalidStageIndex},
		{"self referral", usdt, 0, buyer, units(100), ErrSelfReferral},
		{"stage not started", usdt, 1, common.Address{}, units(100), ErrStageNotActive},
		{"below minimum", usdt, 0, common.Address{}, uint256.NewInt(99_999_999), ErrBelowMinContribution},
		{"zero amount", usdt, 0, common.Address{}, new(uint256.Int), ErrBelowMinContribution},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.p.BuyWithStable(f.ctx, buyer, tc.currency, tc.stage, tc.referrer, tc.amount)
			require.ErrorIs(t, err, tc.want)
			assert.True(t, errors.Is(err, errs.Rejected))
		})
	}

	assert.True(t, f.p.Account(f.ctx, buyer).IsEmpty())
	assert.Empty(t, f.p.Accounts(f.ctx))
	assert.Equal(t, units(1000), f.balance(t, usdt, buyer))
	f.requireConsistent(t)
}

func TestBuyWithStable(t *testing.T) {
	f := newFixture(t)
	f.vault.Mint(usdc, buyer, units(1000))
	f.sink.reset()

	purchase, err := f.p.BuyWithStable(f.ctx, buyer, usdc, 0, common.Address{}, units(100))
	require.NoError(t, err)

	wantAsset := dec("25000000000000000000000")
	assert.Equal(t, *wantAsset, purchase.AssetAmount)
	assert.Equal(t, *units(100), purchase.ValueAmount)
	assert.Equal(t, *units(100), purchase.PaidAmount)
	assert.True(t, purchase.ReferralBonus.IsZero())

	acc := f.p.Account(f.ctx, buyer)
	assert.Equal(t, *wantAsset, acc.AssetBalance)
	assert.Equal(t, *units(100), acc.TotalValueInvested)

	stage, err := f.p.Stage(f.ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, *wantAsset, stage.TotalAssetSold)
	assert.Equal(t, *units(100), stage.TotalValueRaised)

	assert.Equal(t, units(100), f.balance(t, usdc, treasury))
	assert.Equal(t, units(900), f.balance(t, usdc, buyer))
	assert.True(t, f.balance(t, usdc, presaleAddr).IsZero())

	ev := f.sink.last()
	assert.Equal(t, entity.EventTokensPurchased, ev.Kind)
	assert.Equal(t, buyer, ev.Wallet)
	assert.Equal(t, genesis, ev.Timestamp)
	payload, ok := ev.Payload.(*entity.Purchase)
	require.True(t, ok)
	assert.Equal(t, purchase, *payload)
	f.requireConsistent(t)
}

func TestBuyStageWindow(t *testing.T) {
	f := newFixture(t)
	f.vault.Mint(usdt, buyer, units(1000))

	f.clock.Advance(StageDuration)
	_, err := f.p.BuyWithStable(f.ctx, buyer, usdt, 0, common.Address{}, units(100))
	require.NoError(t, err, "the end second is inside the window")

	f.clock.Advance(time.Second)
	_, err = f.p.BuyWithStable(f.ctx, buyer, usdt, 0, common.Address{}, units(100))
	require.ErrorIs(t, err, ErrStageNotActive)
}

func TestStableReferralTiers(t *testing.T) {
	f := newFixture(t)
	f.vault.Mint(usdt, buyer, units(10_000))

	// cumulative 100: below every tier
	purchase, err := f.p.BuyWithStable(f.ctx, buyer, usdt, 0, referrer, units(100))
	require.NoError(t, err)
	assert.True(t, purchase.ReferralBonus.IsZero())
	acc := f.p.Account(f.ctx, referrer)
	assert.Equal(t, uint64(1), acc.ReferralCount)
	assert.True(t, acc.ReferralRewardsEarned.IsZero())

	// cumulative 500: 5%
	purchase, err = f.p.BuyWithStable(f.ctx, buyer, usdt, 0, referrer, units(400))
	require.NoError(t, err)
	assert.Equal(t, *units(20), purchase.ReferralBonus)

	// cumulative 1001: crosses into 7% on this very purchase
	purchase, err = f.p.BuyWithStable(f.ctx, buyer, usdt, 0, referrer, units(501))
	require.NoError(t, err)
	assert.Equal(t, *uint256.NewInt(35_070_000), purchase.ReferralBonus)

	acc = f.p.Account(f.ctx, referrer)
	assert.Equal(t, uint64(3), acc.ReferralCount)
	assert.Equal(t, *units(1001), acc.CumulativeValueReferred)
	assert.Equal(t, *uint256.NewInt(55_070_000), acc.ReferralRewardsEarned)
	assert.True(t, acc.AssetBalance.IsZero(), "referrers earn no asset")

	assert.Equal(t, uint256.NewInt(55_070_000), f.balance(t, usdt, referrer))
	assert.Equal(t, uint256.NewInt(945_930_000), f.balance(t, usdt, treasury))
	f.requireConsistent(t)
}

func TestBuyWithNative(t *testing.T) {
	f := newFixture(t)
	f.vault.Mint(NativeCurrency, buyer, ether(10))

	purchase, err := f.p.BuyWithNative(f.ctx, buyer, 0, referrer, ether(1))
	require.NoError(t, err)

	assert.Equal(t, *units(3000), purchase.ValueAmount)
	assert.Equal(t, *dec("750000000000000000000000"), purchase.AssetAmount)
	assert.Equal(t, NativeCurrency, purchase.Currency)
	// 3000 referred reaches the 7% tier; the bonus is paid in native
	assert.Equal(t, *dec("70000000000000000"), purchase.ReferralBonus)

	assert.Equal(t, dec("70000000000000000"), f.balance(t, NativeCurrency, referrer))
	assert.Equal(t, dec("930000000000000000"), f.balance(t, NativeCurrency, treasury))
	assert.True(t, f.balance(t, NativeCurrency, presaleAddr).IsZero())
	assert.Equal(t, ether(9), f.balance(t, NativeCurrency, buyer))

	acc := f.p.Account(f.ctx, referrer)
	assert.Equal(t, *units(210), acc.ReferralRewardsEarned)

	_, err = f.p.BuyWithNative(f.ctx, buyer, 0, common.Address{}, uint256.NewInt(1))
	require.ErrorIs(t, err, ErrBelowMinContribution, "dust normalizes to zero")
	f.requireConsistent(t)
}

func TestNativePricePolicy(t *testing.T) {
	f := newFixture(t)
	f.vault.Mint(NativeCurrency, buyer, ether(10))

	f.feed.Set(big.NewInt(0))
	_, err := f.p.BuyWithNative(f.ctx, buyer, 0, common.Address{}, ether(1))
	require.ErrorIs(t, err, ErrInvalidPrice)

	f.feed.Set(big.NewInt(-5))
	_, err = f.p.BuyWithNative(f.ctx, buyer, 0, common.Address{}, ether(1))
	require.ErrorIs(t, err, ErrInvalidPrice)

	feedErr := errors.New("oracle unreachable")
	f.feed.Set(nativePrice(3000))
	f.feed.Fail(feedErr)
	_, err = f.p.BuyWithNative(f.ctx, buyer, 0, common.Address{}, ether(1))
	require.ErrorIs(t, err, feedErr)
	assert.False(t, errors.Is(err, errs.Rejected))
	f.feed.Fail(nil)

	quotedAt := f.clock.Now()
	f.feed.WithClock(func() time.Time { return quotedAt })
	f.clock.Advance(DefaultPriceMaxAge + time.Second)
	_, err = f.p.BuyWithNative(f.ctx, buyer, 0, common.Address{}, ether(1))
	require.ErrorIs(t, err, ErrStalePrice)

	assert.Equal(t, ether(10), f.balance(t, NativeCurrency, buyer))
	assert.True(t, f.p.Account(f.ctx, buyer).IsEmpty())
}

func TestNativePriceMaxAgeDisabled(t *testing.T) {
	f := newFixture(t, WithPriceMaxAge(0))
	f.vault.Mint(NativeCurrency, buyer, ether(1))

	quotedAt := f.clock.Now()
	f.feed.WithClock(func() time.Time { return quotedAt })
	f.clock.Advance(24 * time.Hour)

	_, err := f.p.BuyWithNative(f.ctx, buyer, 0, common.Address{}, ether(1))
	require.NoError(t, err)
}

func TestTransferFailureUnwinds(t *testing.T) {
	f := newFixture(t)
	f.vault.Mint(usdt, buyer, units(1000))
	f.sink.reset()

	refused := errors.New("treasury refuses")
	f.vault.OnTransfer(func(_ context.Context, _, _, to common.Address, _ *uint256.Int) error {
		if to == treasury {
			return refused
		}
		return nil
	})

	_, err := f.p.BuyWithStable(f.ctx, buyer, usdt, 0, referrer, units(600))
	require.ErrorIs(t, err, refused)
	requireKind(t, err, errs.TransferFailed)

	// the referral payout made before the failure is reversed
	assert.True(t, f.balance(t, usdt, referrer).IsZero())
	assert.Equal(t, units(1000), f.balance(t, usdt, buyer))
	assert.True(t, f.p.Account(f.ctx, referrer).IsEmpty())
	assert.True(t, f.p.Account(f.ctx, buyer).IsEmpty())
	totals := f.p.Totals(f.ctx)
	assert.True(t, totals.TotalValueRaised.IsZero())
	assert.Empty(t, f.sink.kinds(), "failed operations publish nothing")
	f.requireConsistent(t)

	f.vault.OnTransfer(nil)
	_, err = f.p.BuyWithStable(f.ctx, buyer, usdt, 0, referrer, units(600))
	require.NoError(t, err)
}

func TestReentrantPurchase(t *testing.T) {
	f := newFixture(t)
	f.vault.Mint(usdt, buyer, units(1000))

	var (
		reentryErr error
		seenValue  uint256.Int
	)
	f.vault.OnTransfer(func(ctx context.Context, _, _, to common.Address, _ *uint256.Int) error {
		if to != treasury {
			return nil
		}
		// counters are already settled when value moves
		totals := f.p.Totals(ctx)
		seenValue = totals.TotalValueRaised
		_, reentryErr = f.p.BuyWithStable(ctx, buyer, usdt, 0, common.Address{}, units(100))
		return reentryErr
	})

	_, err := f.p.BuyWithStable(f.ctx, buyer, usdt, 0, common.Address{}, units(100))
	require.Error(t, err)
	requireKind(t, reentryErr, errs.Reentrancy)
	assert.True(t, errors.Is(err, ErrReentrant))
	assert.Equal(t, *units(100), seenValue)

	assert.Equal(t, units(1000), f.balance(t, usdt, buyer))
	assert.True(t, f.p.Account(f.ctx, buyer).IsEmpty())
	f.requireConsistent(t)
}
