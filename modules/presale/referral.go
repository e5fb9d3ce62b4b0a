package presale

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/gaze-network/presale-ledger/pkg/logger/slogx"
	"github.com/holiman/uint256"
)

func (p *Presale) initializeReferralTiers() {
	p.tiers = make([]entity.ReferralTier, 0, len(defaultTiers))
	for _, t := range defaultTiers {
		tier := entity.ReferralTier{BonusPercentage: t.percentage}
		tier.AmountThreshold.SetUint64(t.threshold)
		p.tiers = append(p.tiers, tier)
	}
}

// BonusPercentage is the highest percentage among tiers whose threshold is met by cumulative.
// Tiers are not assumed to be sorted.
func BonusPercentage(tiers []entity.ReferralTier, cumulative *uint256.Int) uint64 {
	var best uint64
	threshold := new(uint256.Int)
	for _, t := range tiers {
		if _, overflow := threshold.MulOverflow(&t.AmountThreshold, unitScale); overflow {
			continue
		}
		if cumulative.Cmp(threshold) >= 0 && t.BonusPercentage > best {
			best = t.BonusPercentage
		}
	}
	return best
}

// ReferralBonus is floor(value * percentage / 100).
func ReferralBonus(value *uint256.Int, percentage uint64) *uint256.Int {
	if percentage == 0 {
		return new(uint256.Int)
	}
	// percentage <= 100 keeps the quotient within 256 bits.
	bonus, _ := new(uint256.Int).MulDivOverflow(value, uint256.NewInt(percentage), hundred)
	return bonus
}

// creditReferral records value brought in by referrer and returns the bonus percentage it earns.
// The tier lookup sees the cumulative total including value.
func (p *Presale) creditReferral(tx *stateTx, referrer common.Address, value *uint256.Int) (uint64, error) {
	acc := tx.account(referrer)
	if _, overflow := acc.CumulativeValueReferred.AddOverflow(&acc.CumulativeValueReferred, value); overflow {
		return 0, errors.WithStack(ErrAmountOverflow)
	}
	pct := BonusPercentage(p.tiers, &acc.CumulativeValueReferred)

	acc.ReferralCount++
	acc.ReferralRewardsEarned.Add(&acc.ReferralRewardsEarned, ReferralBonus(value, pct))
	return pct, nil
}

// UpdateReferralTier overwrites tier idx, or appends one when idx equals the number of tiers.
// Owner only.
func (p *Presale) UpdateReferralTier(ctx context.Context, caller common.Address, idx int, threshold *uint256.Int, percentage uint64) error {
	ctx, release, err := p.enter(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := p.onlyOwner(caller); err != nil {
		return err
	}
	if idx < 0 || idx > len(p.tiers) {
		return errors.WithStack(ErrInvalidTierIndex)
	}
	if threshold == nil {
		return errors.Wrap(errs.InvalidArgument, "referral tier threshold is required")
	}
	if percentage > maxBonusPercentage {
		return errors.WithStack(ErrInvalidBonusPercent)
	}

	tx := p.begin(ctx)
	defer tx.rollback()

	tier := entity.ReferralTier{AmountThreshold: *threshold, BonusPercentage: percentage}
	appended := idx == len(p.tiers)
	if appended {
		p.tiers = append(p.tiers, tier)
	} else {
		p.tiers[idx] = tier
	}
	tx.emit(entity.Event{
		Kind: entity.EventReferralTierUpdated,
		Payload: &entity.ReferralTierUpdatedPayload{
			Index:           idx,
			AmountThreshold: *threshold,
			BonusPercentage: percentage,
			Appended:        appended,
		},
	})
	tx.commit()

	logger.InfoContext(ctx, "Referral tier updated",
		slogx.Int("index", idx),
		slogx.Uint256("threshold", threshold),
		slogx.Uint64("percentage", percentage),
	)
	return nil
}
