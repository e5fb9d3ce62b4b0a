package presale

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/gaze-network/presale-ledger/pkg/logger/slogx"
	"github.com/holiman/uint256"
)

// Finalize locks the sale, pulls the whole sold supply of asset from caller into custody and
// schedules claims to open at claimStart. Treasury only, once.
func (p *Presale) Finalize(ctx context.Context, caller common.Address, claimStart time.Time, asset common.Address) error {
	ctx, release, err := p.enter(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := p.onlyTreasury(caller); err != nil {
		return err
	}
	if p.finalized {
		return errors.WithStack(ErrAlreadyFinalized)
	}
	if asset == (common.Address{}) {
		return errors.WithStack(ErrInvalidTokenAddress)
	}
	now := p.now()
	if n := len(p.stages); n > 0 {
		last := p.stages[n-1]
		if last.Started() && !now.After(last.EndTime) {
			return errors.WithStack(ErrLastStageActive)
		}
	}
	claimStart = claimStart.UTC().Truncate(time.Second)
	if !claimStart.After(now) {
		return errors.WithStack(ErrClaimStartNotFuture)
	}

	tx := p.begin(ctx)
	defer tx.rollback()

	p.finalized = true
	p.claimStart = claimStart
	p.asset = asset

	supply := p.totals.TotalAssetSold
	if err := tx.transfer(asset, caller, p.address, &supply, "failed to escrow sold asset supply"); err != nil {
		logger.ErrorContext(ctx, "Finalization aborted", err, slogx.Address("asset", asset), slogx.Uint256("supply", &supply))
		return err
	}

	tx.emit(entity.Event{
		Kind:      entity.EventPresaleFinalized,
		Timestamp: now,
		Amount:    supply,
		Payload: &entity.PresaleFinalizedPayload{
			ClaimStart:     claimStart,
			Asset:          asset,
			TotalAssetSold: supply,
		},
	})
	tx.commit()

	logger.InfoContext(ctx, "Presale finalized",
		slogx.Address("asset", asset),
		slogx.Time("claimStart", claimStart),
		slogx.Uint256("supply", &supply),
	)
	return nil
}

// Claim releases the whole unclaimed entitlement of caller. The balance is zeroed before the
// asset leaves custody and restored if the transfer fails.
func (p *Presale) Claim(ctx context.Context, caller common.Address) (*uint256.Int, error) {
	ctx, release, err := p.enter(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	if !p.finalized {
		return nil, errors.WithStack(ErrNotFinalized)
	}
	now := p.now()
	if now.Before(p.claimStart) {
		return nil, errors.WithStack(ErrClaimNotStarted)
	}
	if current := p.account(caller); current.AssetBalance.IsZero() {
		return nil, errors.WithStack(ErrNoTokensToClaim)
	}

	tx := p.begin(ctx)
	defer tx.rollback()

	acc := tx.account(caller)
	amount := acc.AssetBalance
	acc.AssetBalance.Clear()

	held, err := p.vault.BalanceOf(ctx, p.asset, p.address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read custody balance")
	}
	if held.Lt(&amount) {
		err := errors.Wrapf(ErrInsufficientCustody, "custody holds %s, claim needs %s", held.Dec(), amount.Dec())
		logger.CriticalContext(ctx, "Custody cannot cover claim", err,
			slogx.Address("account", caller),
			slogx.Address("asset", p.asset),
		)
		return nil, err
	}
	if err := tx.transfer(p.asset, p.address, caller, &amount, "failed to transfer claimed asset"); err != nil {
		return nil, err
	}

	tx.emit(entity.Event{
		Kind:      entity.EventTokensClaimed,
		Timestamp: now,
		Wallet:    caller,
		Amount:    amount,
		Payload: &entity.TokensClaimedPayload{
			Account: caller,
			Amount:  amount,
		},
	})
	tx.commit()

	logger.InfoContext(ctx, "Tokens claimed", slogx.Address("account", caller), slogx.Uint256("amount", &amount))
	return &amount, nil
}
