package presale

import (
	"math/big"
	"testing"
	"time"

	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name   string
		native *uint256.Int
		price  *uint256.Int
		want   *uint256.Int
	}{
		{"one native at 3000", ether(1), uint256.NewInt(3000_00000000), units(3000)},
		{"fraction", dec("1500000000000000"), uint256.NewInt(3521_12345678), uint256.NewInt(5_281_685)},
		{"dust truncates", uint256.NewInt(1), uint256.NewInt(3000_00000000), uint256.NewInt(0)},
		{"zero", new(uint256.Int), uint256.NewInt(3000_00000000), uint256.NewInt(0)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.native, tc.price)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	huge := new(uint256.Int).SetAllOne()
	_, err := Normalize(huge, huge)
	require.ErrorIs(t, err, ErrAmountOverflow)
	requireKind(t, err, errs.Rejected)
}

func TestAssetAmount(t *testing.T) {
	got, err := AssetAmount(units(100), uint256.NewInt(4000))
	require.NoError(t, err)
	assert.Equal(t, dec("25000000000000000000000"), got)

	// the smallest unit of account at 0.0175, remainder dropped
	got, err = AssetAmount(uint256.NewInt(1), uint256.NewInt(17500))
	require.NoError(t, err)
	assert.Equal(t, uint256.NewInt(57142857142857), got)

	_, err = AssetAmount(new(uint256.Int).SetAllOne(), uint256.NewInt(1))
	require.ErrorIs(t, err, ErrAmountOverflow)
}

func TestCheckPrice(t *testing.T) {
	now := genesis
	fresh := entity.Price{Answer: nativePrice(3000), Decimals: FeedDecimals, UpdatedAt: now}

	v, err := checkPrice(fresh, now, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, uint256.NewInt(3000_00000000), v)

	old := fresh
	old.UpdatedAt = now.Add(-time.Hour)
	_, err = checkPrice(old, now, time.Hour)
	require.NoError(t, err, "exactly max age is accepted")

	old.UpdatedAt = now.Add(-time.Hour - time.Second)
	_, err = checkPrice(old, now, time.Hour)
	require.ErrorIs(t, err, ErrStalePrice)
	_, err = checkPrice(old, now, 0)
	require.NoError(t, err)

	undated := fresh
	undated.UpdatedAt = time.Time{}
	_, err = checkPrice(undated, now, time.Hour)
	require.ErrorIs(t, err, ErrStalePrice)

	for _, answer := range []*big.Int{nil, big.NewInt(0), big.NewInt(-1), new(big.Int).Lsh(big.NewInt(1), 256)} {
		bad := fresh
		bad.Answer = answer
		_, err = checkPrice(bad, now, time.Hour)
		require.ErrorIs(t, err, ErrInvalidPrice)
	}

	wrongScale := fresh
	wrongScale.Decimals = 18
	_, err = checkPrice(wrongScale, now, time.Hour)
	require.ErrorIs(t, err, ErrInvalidPrice)
}

func TestQuote(t *testing.T) {
	f := newFixture(t)

	got, err := f.p.Quote(f.ctx, 0, units(100))
	require.NoError(t, err)
	assert.Equal(t, dec("25000000000000000000000"), got)

	_, err = f.p.Quote(f.ctx, StageCount, units(100))
	require.ErrorIs(t, err, ErrInvalidStageIndex)

	value, err := f.p.QuoteNative(f.ctx, ether(2))
	require.NoError(t, err)
	assert.Equal(t, units(6000), value)
}
