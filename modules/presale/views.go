package presale

import (
	"bytes"
	"context"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/holiman/uint256"
	"github.com/samber/lo"
)

func (p *Presale) Stages(ctx context.Context) []entity.Stage {
	var stages []entity.Stage
	p.read(ctx, func() {
		stages = slices.Clone(p.stages)
	})
	return stages
}

func (p *Presale) Stage(ctx context.Context, idx int) (entity.Stage, error) {
	var (
		stage entity.Stage
		err   error
	)
	p.read(ctx, func() {
		if idx < 0 || idx >= len(p.stages) {
			err = errors.WithStack(ErrInvalidStageIndex)
			return
		}
		stage = p.stages[idx]
	})
	return stage, err
}

// CurrentStage returns the stage whose window contains the current time.
// It fails with errs.NotFound between a concluded stage and the next activation.
func (p *Presale) CurrentStage(ctx context.Context) (entity.Stage, error) {
	var (
		stage entity.Stage
		found bool
	)
	p.read(ctx, func() {
		idx := FindCurrentStageIndex(p.stages, p.now())
		if idx < 0 {
			return
		}
		stage, found = p.stages[idx], true
	})
	if !found {
		return entity.Stage{}, errors.Wrap(errs.NotFound, "no active stage")
	}
	return stage, nil
}

func (p *Presale) ReferralTiers(ctx context.Context) []entity.ReferralTier {
	var tiers []entity.ReferralTier
	p.read(ctx, func() {
		tiers = slices.Clone(p.tiers)
	})
	return tiers
}

// Account returns the ledger state of addr. Unknown addresses have a zero state.
func (p *Presale) Account(ctx context.Context, addr common.Address) entity.Account {
	var acc entity.Account
	p.read(ctx, func() {
		acc = p.account(addr)
	})
	return acc
}

// Accounts returns every account with ledger state, ordered by address.
func (p *Presale) Accounts(ctx context.Context) []entity.Account {
	var accounts []entity.Account
	p.read(ctx, func() {
		accounts = lo.FilterMap(lo.Values(p.accounts), func(acc *entity.Account, _ int) (entity.Account, bool) {
			return *acc, !acc.IsEmpty()
		})
	})
	slices.SortFunc(accounts, func(a, b entity.Account) int {
		return bytes.Compare(a.Address.Bytes(), b.Address.Bytes())
	})
	return accounts
}

func (p *Presale) Totals(ctx context.Context) entity.Totals {
	var totals entity.Totals
	p.read(ctx, func() {
		totals = p.totals
	})
	return totals
}

func (p *Presale) Status(ctx context.Context) entity.Status {
	var status entity.Status
	p.read(ctx, func() {
		status = entity.Status{
			Owner:             p.owner,
			Treasury:          p.treasury,
			StagesInitialized: p.stagesInitialized,
			Finalized:         p.finalized,
			ClaimStart:        p.claimStart,
			Asset:             p.asset,
		}
	})
	return status
}

// Currencies returns the two stable settlement currencies.
func (p *Presale) Currencies() [2]entity.Currency {
	return [2]entity.Currency{p.stableA, p.stableB}
}

// Now is the current ledger time.
func (p *Presale) Now() time.Time {
	return p.now()
}

// Quote prices value (unit of account) at stage idx without buying.
func (p *Presale) Quote(ctx context.Context, idx int, value *uint256.Int) (*uint256.Int, error) {
	stage, err := p.Stage(ctx, idx)
	if err != nil {
		return nil, err
	}
	return AssetAmount(value, &stage.Price)
}

// QuoteNative values a native amount at the current price feed quote.
func (p *Presale) QuoteNative(ctx context.Context, amount *uint256.Int) (*uint256.Int, error) {
	return p.nativeValue(ctx, amount, p.now())
}

// CheckInvariants verifies the global totals against the per-stage counters.
func (p *Presale) CheckInvariants(ctx context.Context) error {
	var err error
	p.read(ctx, func() {
		var sold, raised uint256.Int
		for i := range p.stages {
			sold.Add(&sold, &p.stages[i].TotalAssetSold)
			raised.Add(&raised, &p.stages[i].TotalValueRaised)
		}
		if !sold.Eq(&p.totals.TotalAssetSold) {
			err = errors.Wrapf(errs.IntegrityViolation, "total asset sold %s, stages sum to %s", p.totals.TotalAssetSold.Dec(), sold.Dec())
			return
		}
		if !raised.Eq(&p.totals.TotalValueRaised) {
			err = errors.Wrapf(errs.IntegrityViolation, "total value raised %s, stages sum to %s", p.totals.TotalValueRaised.Dec(), raised.Dec())
		}
	})
	return err
}
