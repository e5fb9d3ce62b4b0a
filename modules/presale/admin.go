package presale

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/gaze-network/presale-ledger/pkg/logger/slogx"
	"github.com/holiman/uint256"
)

// UpdateTreasury hands the treasury role and future proceeds to treasury. Owner only.
func (p *Presale) UpdateTreasury(ctx context.Context, caller, treasury common.Address) error {
	ctx, release, err := p.enter(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := p.onlyOwner(caller); err != nil {
		return err
	}
	if treasury == (common.Address{}) {
		return errors.WithStack(ErrInvalidTreasury)
	}

	tx := p.begin(ctx)
	defer tx.rollback()

	old := p.treasury
	p.treasury = treasury
	tx.emit(entity.Event{
		Kind: entity.EventTreasuryUpdated,
		Payload: &entity.TreasuryUpdatedPayload{
			OldTreasury: old,
			NewTreasury: treasury,
		},
	})
	tx.commit()

	logger.InfoContext(ctx, "Treasury updated", slogx.Address("old", old), slogx.Address("new", treasury))
	return nil
}

// WithdrawNative sweeps the native balance held by the presale to the treasury. Owner only.
func (p *Presale) WithdrawNative(ctx context.Context, caller common.Address) (*uint256.Int, error) {
	return p.withdraw(ctx, caller, NativeCurrency, false)
}

// WithdrawStable sweeps the presale's balance of token to the treasury. Owner only.
// Once finalized, the sale asset stays in custody for claims.
func (p *Presale) WithdrawStable(ctx context.Context, caller, token common.Address) (*uint256.Int, error) {
	return p.withdraw(ctx, caller, token, true)
}

func (p *Presale) withdraw(ctx context.Context, caller, token common.Address, stable bool) (*uint256.Int, error) {
	ctx, release, err := p.enter(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := p.onlyOwner(caller); err != nil {
		return nil, err
	}
	if stable && token == NativeCurrency {
		return nil, errors.WithStack(ErrInvalidTokenAddress)
	}
	if p.finalized && token == p.asset {
		return nil, errors.WithStack(ErrCannotWithdrawAsset)
	}
	balance, err := p.vault.BalanceOf(ctx, token, p.address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read presale balance")
	}
	if balance.IsZero() {
		return nil, errors.WithStack(ErrNothingToWithdraw)
	}

	tx := p.begin(ctx)
	defer tx.rollback()

	if err := tx.transfer(token, p.address, p.treasury, balance, "failed to withdraw to treasury"); err != nil {
		return nil, err
	}
	tx.emit(entity.Event{
		Kind:   entity.EventFundsWithdrawn,
		Amount: *balance,
		Payload: &entity.FundsWithdrawnPayload{
			Token:  token,
			To:     p.treasury,
			Amount: *balance,
		},
	})
	tx.commit()

	logger.InfoContext(ctx, "Funds withdrawn", slogx.Address("token", token), slogx.Address("treasury", p.treasury), slogx.Uint256("amount", balance))
	return balance, nil
}
