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

// BuyWithNative buys asset at stage stageIndex with amount of native currency attached by buyer.
// The amount is valued at a fresh price feed quote. A zero referrer means no referrer.
func (p *Presale) BuyWithNative(ctx context.Context, buyer common.Address, stageIndex int, referrer common.Address, amount *uint256.Int) (entity.Purchase, error) {
	ctx, release, err := p.enter(ctx)
	if err != nil {
		return entity.Purchase{}, err
	}
	defer release()

	purchase, err := p.buy(ctx, buyer, NativeCurrency, stageIndex, referrer, amount)
	if err != nil {
		logger.DebugContext(ctx, "Native purchase rejected", slogx.Address("buyer", buyer), slogx.Int("stage", stageIndex), slogx.Error(err))
		return entity.Purchase{}, err
	}
	return purchase, nil
}

// BuyWithStable buys asset at stage stageIndex paying amount of one of the two settlement currencies.
func (p *Presale) BuyWithStable(ctx context.Context, buyer, currency common.Address, stageIndex int, referrer common.Address, amount *uint256.Int) (entity.Purchase, error) {
	ctx, release, err := p.enter(ctx)
	if err != nil {
		return entity.Purchase{}, err
	}
	defer release()

	if currency != p.stableA.Token && currency != p.stableB.Token {
		return entity.Purchase{}, errors.WithStack(ErrUnsupportedCurrency)
	}
	purchase, err := p.buy(ctx, buyer, currency, stageIndex, referrer, amount)
	if err != nil {
		logger.DebugContext(ctx, "Stable purchase rejected", slogx.Address("buyer", buyer), slogx.Address("currency", currency), slogx.Int("stage", stageIndex), slogx.Error(err))
		return entity.Purchase{}, err
	}
	return purchase, nil
}

func (p *Presale) buy(ctx context.Context, buyer, currency common.Address, stageIndex int, referrer common.Address, paid *uint256.Int) (entity.Purchase, error) {
	if stageIndex < 0 || stageIndex >= len(p.stages) {
		return entity.Purchase{}, errors.WithStack(ErrInvalidStageIndex)
	}
	if referrer == buyer {
		return entity.Purchase{}, errors.WithStack(ErrSelfReferral)
	}
	now := p.now()
	stage := &p.stages[stageIndex]
	if !stage.InWindow(now) {
		return entity.Purchase{}, errors.WithStack(ErrStageNotActive)
	}
	if stage.SoldOut {
		return entity.Purchase{}, errors.WithStack(ErrStageSoldOut)
	}
	if paid == nil {
		paid = new(uint256.Int)
	}

	native := currency == NativeCurrency
	value := new(uint256.Int).Set(paid)
	if native {
		v, err := p.nativeValue(ctx, paid, now)
		if err != nil {
			return entity.Purchase{}, err
		}
		value = v
	}
	if value.Lt(&stage.MinContribution) {
		return entity.Purchase{}, errors.WithStack(ErrBelowMinContribution)
	}
	assetAmount, err := AssetAmount(value, &stage.Price)
	if err != nil {
		return entity.Purchase{}, err
	}

	tx := p.begin(ctx)
	defer tx.rollback()

	// Referral and counters are settled before any value moves.
	bonus := new(uint256.Int)
	if referrer != (common.Address{}) {
		pct, err := p.creditReferral(tx, referrer, value)
		if err != nil {
			return entity.Purchase{}, err
		}
		bonus = ReferralBonus(paid, pct)
	}
	remainder := new(uint256.Int).Sub(paid, bonus)

	stage.TotalAssetSold.Add(&stage.TotalAssetSold, assetAmount)
	stage.TotalValueRaised.Add(&stage.TotalValueRaised, value)
	p.totals.TotalAssetSold.Add(&p.totals.TotalAssetSold, assetAmount)
	p.totals.TotalValueRaised.Add(&p.totals.TotalValueRaised, value)

	acc := tx.account(buyer)
	acc.AssetBalance.Add(&acc.AssetBalance, assetAmount)
	acc.TotalValueInvested.Add(&acc.TotalValueInvested, value)

	payer := buyer
	if native {
		if err := tx.transfer(NativeCurrency, buyer, p.address, paid, "failed to collect native payment"); err != nil {
			return entity.Purchase{}, err
		}
		payer = p.address
	}
	if err := tx.transfer(currency, payer, referrer, bonus, "failed to pay referral bonus"); err != nil {
		return entity.Purchase{}, err
	}
	if err := tx.transfer(currency, payer, p.treasury, remainder, "failed to pay treasury"); err != nil {
		return entity.Purchase{}, err
	}

	purchase := entity.Purchase{
		Buyer:         buyer,
		StageIndex:    stageIndex,
		Currency:      currency,
		PaidAmount:    *paid,
		ValueAmount:   *value,
		AssetAmount:   *assetAmount,
		Referrer:      referrer,
		ReferralBonus: *bonus,
	}
	payload := purchase
	tx.emit(entity.Event{
		Kind:       entity.EventTokensPurchased,
		Timestamp:  now,
		Wallet:     buyer,
		StageIndex: stageIndex,
		Amount:     *assetAmount,
		Payload:    &payload,
	})
	tx.commit()

	logger.InfoContext(ctx, "Tokens purchased",
		slogx.Address("buyer", buyer),
		slogx.Int("stage", stageIndex),
		slogx.Address("currency", currency),
		slogx.Uint256("paid", paid),
		slogx.Uint256("value", value),
		slogx.Uint256("asset", assetAmount),
		slogx.Address("referrer", referrer),
		slogx.Uint256("bonus", bonus),
	)
	return purchase, nil
}
