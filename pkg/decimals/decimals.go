package decimals

import (
	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/gaze-network/presale-ledger/pkg/logger/slogx"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

const (
	DefaultDivPrecision = 36

	// MaxDecimals is the largest n such that 10^n fits in 256 bits.
	MaxDecimals = 77
)

var powerOfTen [MaxDecimals + 1]uint256.Int

func init() {
	decimal.DivisionPrecision = DefaultDivPrecision

	powerOfTen[0].SetOne()
	ten := uint256.NewInt(10)
	for i := 1; i <= MaxDecimals; i++ {
		powerOfTen[i].Mul(&powerOfTen[i-1], ten)
	}
}

// PowerOfTen returns a fresh copy of 10^n. Panics if n > MaxDecimals.
func PowerOfTen(n uint8) *uint256.Int {
	if n > MaxDecimals {
		logger.Panic("PowerOfTen: exponent out of range", slogx.Int("n", int(n)))
	}
	return new(uint256.Int).Set(&powerOfTen[n])
}

// MustFromString convert string to decimal.Decimal. Panic if error
func MustFromString(s string) decimal.Decimal {
	return utils.Must(decimal.NewFromString(s))
}

// ToDecimal converts a fixed-point integer with the given decimals to decimal.Decimal.
// A nil value converts to zero.
func ToDecimal(v *uint256.Int, decimals uint8) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v.ToBig(), -int32(decimals))
}

// FromDecimal converts d to a fixed-point integer with the given decimals.
// Digits beyond the precision are truncated.
func FromDecimal(d decimal.Decimal, decimals uint8) (*uint256.Int, error) {
	if d.IsNegative() {
		return nil, errors.Wrapf(errs.InvalidArgument, "negative amount %s", d.String())
	}
	scaled := d.Shift(int32(decimals)).Truncate(0)
	v, overflow := uint256.FromBig(scaled.BigInt())
	if overflow {
		return nil, errors.Wrapf(errs.InvalidArgument, "amount %s overflows 256 bits", d.String())
	}
	return v, nil
}

// MulDiv returns floor(x * y / denom) using a 512-bit intermediate product.
func MulDiv(x, y, denom *uint256.Int) (*uint256.Int, error) {
	if denom.IsZero() {
		return nil, errors.Wrap(errs.InvalidArgument, "division by zero")
	}
	z, overflow := new(uint256.Int).MulDivOverflow(x, y, denom)
	if overflow {
		return nil, errors.Wrapf(errs.InvalidArgument, "%s * %s / %s overflows 256 bits", x.Dec(), y.Dec(), denom.Dec())
	}
	return z, nil
}
