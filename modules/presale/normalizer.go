package presale

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/gaze-network/presale-ledger/pkg/decimals"
	"github.com/holiman/uint256"
)

// Normalize converts a native amount into unit of account at price (FeedDecimals fixed point),
// truncating any remainder.
func Normalize(nativeAmount, price *uint256.Int) (*uint256.Int, error) {
	v, err := decimals.MulDiv(nativeAmount, price, nativeScale)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "normalize native amount"), ErrAmountOverflow)
	}
	return v, nil
}

// AssetAmount is the number of indivisible asset units bought with value at stage price.
// Dust below one asset unit stays with the sale.
func AssetAmount(value, price *uint256.Int) (*uint256.Int, error) {
	v, err := decimals.MulDiv(value, assetScale, price)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "price asset amount"), ErrAmountOverflow)
	}
	return v, nil
}

// checkPrice applies the quote policy: a positive answer, in feed scale, no older than maxAge.
func checkPrice(price entity.Price, now time.Time, maxAge time.Duration) (*uint256.Int, error) {
	if price.Answer == nil || price.Answer.Sign() <= 0 {
		return nil, errors.WithStack(ErrInvalidPrice)
	}
	if price.Decimals != FeedDecimals {
		return nil, errors.Wrapf(ErrInvalidPrice, "quote has %d decimals, want %d", price.Decimals, FeedDecimals)
	}
	if maxAge > 0 && (price.UpdatedAt.IsZero() || now.Sub(price.UpdatedAt) > maxAge) {
		return nil, errors.WithStack(ErrStalePrice)
	}
	v, overflow := uint256.FromBig(price.Answer)
	if overflow {
		return nil, errors.WithStack(ErrInvalidPrice)
	}
	return v, nil
}

// nativeValue fetches a fresh quote and normalizes amount with it.
func (p *Presale) nativeValue(ctx context.Context, amount *uint256.Int, now time.Time) (*uint256.Int, error) {
	quote, err := p.feed.LatestPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch native price")
	}
	price, err := checkPrice(quote, now, p.priceMaxAge)
	if err != nil {
		return nil, err
	}
	return Normalize(amount, price)
}
