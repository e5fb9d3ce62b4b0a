// Package custody is an in-process ledger of token balances. It backs local runs and tests of the
// presale engine; production deployments plug a real settlement vault in its place.
package custody

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/gaze-network/presale-ledger/pkg/logger/slogx"
	"github.com/holiman/uint256"
)

var ErrInsufficientBalance = errors.New("insufficient balance")

// TransferHook runs after a transfer was applied, without the vault lock held.
// A non-nil error reverses the transfer and is returned to the caller.
type TransferHook func(ctx context.Context, token, from, to common.Address, amount *uint256.Int) error

type Vault struct {
	mu       sync.Mutex
	balances map[common.Address]map[common.Address]*uint256.Int
	hook     TransferHook
}

func New() *Vault {
	return &Vault{
		balances: make(map[common.Address]map[common.Address]*uint256.Int),
	}
}

// OnTransfer installs hook, replacing any previous one. A nil hook removes it.
func (v *Vault) OnTransfer(hook TransferHook) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.hook = hook
}

// Mint credits amount of token to holder out of thin air.
func (v *Vault) Mint(token, holder common.Address, amount *uint256.Int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	bal := v.balance(token, holder)
	bal.Add(bal, amount)
}

func (v *Vault) BalanceOf(_ context.Context, token, holder common.Address) (*uint256.Int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return new(uint256.Int).Set(v.balance(token, holder)), nil
}

func (v *Vault) Transfer(ctx context.Context, token, from, to common.Address, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return nil
	}
	if to == (common.Address{}) {
		return errors.Wrap(errs.InvalidArgument, "transfer to zero address")
	}

	hook, err := v.move(token, from, to, amount)
	if err != nil {
		return err
	}
	if hook == nil {
		return nil
	}
	if err := hook(ctx, token, from, to, amount); err != nil {
		if _, revertErr := v.move(token, to, from, amount); revertErr != nil {
			logger.CriticalContext(ctx, "Failed to revert vault transfer", revertErr,
				slogx.Address("token", token),
				slogx.Address("from", from),
				slogx.Address("to", to),
				slogx.Uint256("amount", amount),
			)
		}
		return errors.Wrap(err, "transfer rejected by receiver")
	}
	return nil
}

func (v *Vault) move(token, from, to common.Address, amount *uint256.Int) (TransferHook, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	src := v.balance(token, from)
	if src.Lt(amount) {
		return nil, errors.Wrapf(ErrInsufficientBalance, "%s holds %s of %s, needs %s", from.Hex(), src.Dec(), token.Hex(), amount.Dec())
	}
	dst := v.balance(token, to)
	src.Sub(src, amount)
	dst.Add(dst, amount)
	return v.hook, nil
}

// balance must be called with v.mu held.
func (v *Vault) balance(token, holder common.Address) *uint256.Int {
	holders, ok := v.balances[token]
	if !ok {
		holders = make(map[common.Address]*uint256.Int)
		v.balances[token] = holders
	}
	bal, ok := holders[holder]
	if !ok {
		bal = new(uint256.Int)
		holders[holder] = bal
	}
	return bal
}
