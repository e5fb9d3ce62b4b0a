package pricefeed

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/gaze-network/presale-ledger/pkg/decimals"
	"github.com/shopspring/decimal"
)

// Static quotes a settable price, always stamped with the current time of now.
type Static struct {
	mu       sync.RWMutex
	answer   *big.Int
	decimals uint8
	now      func() time.Time
	err      error
}

func NewStatic(answer *big.Int, decimals uint8) *Static {
	return &Static{
		answer:   new(big.Int).Set(answer),
		decimals: decimals,
		now:      time.Now,
	}
}

// NewStaticFromString parses a human price such as "3500.25" at the given feed scale.
func NewStaticFromString(price string, feedDecimals uint8) (*Static, error) {
	d, err := decimal.NewFromString(price)
	if err != nil {
		return nil, errors.Wrapf(errs.InvalidArgument, "invalid static price %q", price)
	}
	v, err := decimals.FromDecimal(d, feedDecimals)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return NewStatic(v.ToBig(), feedDecimals), nil
}

// WithClock replaces the time source used to stamp quotes.
func (s *Static) WithClock(now func() time.Time) *Static {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

// Set replaces the quoted price.
func (s *Static) Set(answer *big.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answer = new(big.Int).Set(answer)
}

// Fail makes every following LatestPrice return err, until called with nil.
func (s *Static) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *Static) LatestPrice(context.Context) (entity.Price, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return entity.Price{}, s.err
	}
	return entity.Price{
		Answer:    new(big.Int).Set(s.answer),
		Decimals:  s.decimals,
		UpdatedAt: s.now(),
	}, nil
}

func (s *Static) Decimals() uint8 {
	return s.decimals
}
