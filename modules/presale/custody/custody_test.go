package custody

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	token = common.HexToAddress("0x1000000000000000000000000000000000000001")
	alice = common.HexToAddress("0xa000000000000000000000000000000000000001")
	bob   = common.HexToAddress("0xb000000000000000000000000000000000000001")
)

func balanceOf(t *testing.T, v *Vault, holder common.Address) uint64 {
	t.Helper()
	bal, err := v.BalanceOf(context.Background(), token, holder)
	require.NoError(t, err)
	return bal.Uint64()
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	v := New()
	v.Mint(token, alice, uint256.NewInt(100))

	require.NoError(t, v.Transfer(ctx, token, alice, bob, uint256.NewInt(30)))
	assert.Equal(t, uint64(70), balanceOf(t, v, alice))
	assert.Equal(t, uint64(30), balanceOf(t, v, bob))

	err := v.Transfer(ctx, token, bob, alice, uint256.NewInt(31))
	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, uint64(30), balanceOf(t, v, bob))

	require.NoError(t, v.Transfer(ctx, token, bob, alice, uint256.NewInt(0)), "zero transfers are no-ops")
	assert.Error(t, v.Transfer(ctx, token, alice, common.Address{}, uint256.NewInt(1)))
}

func TestTransferHook(t *testing.T) {
	ctx := context.Background()
	v := New()
	v.Mint(token, alice, uint256.NewInt(100))

	var seen int
	v.OnTransfer(func(ctx context.Context, _, from, to common.Address, amount *uint256.Int) error {
		seen++
		// the hook runs without the vault lock, so it can read balances
		bal, err := v.BalanceOf(ctx, token, to)
		require.NoError(t, err)
		assert.Equal(t, uint64(10), bal.Uint64())
		return nil
	})
	require.NoError(t, v.Transfer(ctx, token, alice, bob, uint256.NewInt(10)))
	assert.Equal(t, 1, seen)

	hookErr := errors.New("receiver refused")
	v.OnTransfer(func(context.Context, common.Address, common.Address, common.Address, *uint256.Int) error {
		return hookErr
	})
	err := v.Transfer(ctx, token, alice, bob, uint256.NewInt(5))
	require.ErrorIs(t, err, hookErr)
	assert.Equal(t, uint64(90), balanceOf(t, v, alice), "refused transfer is reverted")
	assert.Equal(t, uint64(10), balanceOf(t, v, bob))
}
