package presale

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/gaze-network/presale-ledger/pkg/logger/slogx"
	"github.com/holiman/uint256"
)

// NativeCurrency is the token address standing for the native currency in Vault calls and events.
var NativeCurrency = common.Address{}

// Vault moves value between holders. Implementations may call back into arbitrary code.
type Vault interface {
	// Transfer must hand ctx, or a context derived from it, to any code it calls back into.
	// Re-entry is detected through ctx; a callback entering the presale with an unrelated
	// context blocks on the ledger lock held by the outer call and never returns.
	Transfer(ctx context.Context, token, from, to common.Address, amount *uint256.Int) error
	BalanceOf(ctx context.Context, token, holder common.Address) (*uint256.Int, error)
}

// PriceFeed quotes unit of account per native currency unit.
type PriceFeed interface {
	LatestPrice(ctx context.Context) (entity.Price, error)
	Decimals() uint8
}

// EventSink receives the events of each committed operation, in emission order.
type EventSink interface {
	Publish(ctx context.Context, events []entity.Event) error
}

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type nopSink struct{}

func (nopSink) Publish(context.Context, []entity.Event) error { return nil }

// Params are the required construction inputs.
type Params struct {
	// Address is the custody holder of the presale itself.
	Address  common.Address
	Owner    common.Address
	Treasury common.Address

	StableA entity.Currency
	StableB entity.Currency

	PriceFeed PriceFeed
	Vault     Vault
}

type Option func(*Presale)

func WithClock(c Clock) Option {
	return func(p *Presale) { p.clock = c }
}

func WithEventSink(s EventSink) Option {
	return func(p *Presale) { p.sink = s }
}

// WithPriceMaxAge sets the oldest accepted quote. Zero disables the staleness check.
func WithPriceMaxAge(d time.Duration) Option {
	return func(p *Presale) { p.priceMaxAge = d }
}

// WithStrictStageExtension rejects stage extensions that end in the past or before the stage start.
func WithStrictStageExtension(strict bool) Option {
	return func(p *Presale) { p.strictExtension = strict }
}

// Presale is the ledger aggregate. Every exported method is safe for concurrent use.
type Presale struct {
	mu sync.Mutex

	address common.Address
	stableA entity.Currency
	stableB entity.Currency
	feed    PriceFeed
	vault   Vault
	sink    EventSink
	clock   Clock

	priceMaxAge     time.Duration
	strictExtension bool

	owner             common.Address
	treasury          common.Address
	stages            []entity.Stage
	tiers             []entity.ReferralTier
	accounts          map[common.Address]*entity.Account
	totals            entity.Totals
	stagesInitialized bool
	finalized         bool
	claimStart        time.Time
	asset             common.Address
}

// NewPresale validates params, creates the stage schedule and referral tiers and opens stage 0.
func NewPresale(ctx context.Context, params Params, opts ...Option) (*Presale, error) {
	if err := params.validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	p := &Presale{
		address:     params.Address,
		owner:       params.Owner,
		treasury:    params.Treasury,
		stableA:     params.StableA,
		stableB:     params.StableB,
		feed:        params.PriceFeed,
		vault:       params.Vault,
		sink:        nopSink{},
		clock:       systemClock{},
		priceMaxAge: DefaultPriceMaxAge,
		accounts:    make(map[common.Address]*entity.Account),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.feed.Decimals() != FeedDecimals {
		return nil, errors.Wrapf(errs.InvalidArgument, "price feed reports %d decimals, want %d", p.feed.Decimals(), FeedDecimals)
	}

	ctx, release, err := p.enter(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	tx := p.begin(ctx)
	defer tx.rollback()

	p.initializeReferralTiers()
	p.initializeStages(tx)
	if err := p.activateFirstStage(tx, p.now()); err != nil {
		return nil, errors.WithStack(err)
	}
	tx.commit()

	logger.InfoContext(ctx, "Presale initialized",
		slogx.Address("presale", p.address),
		slogx.Address("owner", p.owner),
		slogx.Address("treasury", p.treasury),
		slogx.Int("stages", len(p.stages)),
		slogx.Int("tiers", len(p.tiers)),
	)
	return p, nil
}

func (params Params) validate() error {
	switch {
	case params.PriceFeed == nil:
		return errors.Wrap(errs.InvalidArgument, "price feed is required")
	case params.Vault == nil:
		return errors.Wrap(errs.InvalidArgument, "vault is required")
	case params.Treasury == common.Address{}:
		return errors.Wrap(errs.InvalidArgument, "treasury is required")
	case params.Owner == common.Address{}:
		return errors.Wrap(errs.InvalidArgument, "owner is required")
	case params.Address == common.Address{}:
		return errors.Wrap(errs.InvalidArgument, "presale address is required")
	}
	for _, c := range []entity.Currency{params.StableA, params.StableB} {
		if c.Token == NativeCurrency {
			return errors.Wrapf(errs.InvalidArgument, "stable currency %q has no token address", c.Symbol)
		}
		if c.Decimals != UnitDecimals {
			return errors.Wrapf(errs.InvalidArgument, "stable currency %q has %d decimals, want %d", c.Symbol, c.Decimals, UnitDecimals)
		}
	}
	if params.StableA.Token == params.StableB.Token {
		return errors.Wrap(errs.InvalidArgument, "stable currencies must differ")
	}
	return nil
}

// now is the ledger time, in whole seconds.
func (p *Presale) now() time.Time {
	return p.clock.Now().UTC().Truncate(time.Second)
}

func (p *Presale) onlyOwner(caller common.Address) error {
	if caller != p.owner {
		return errors.WithStack(ErrNotOwner)
	}
	return nil
}

func (p *Presale) onlyTreasury(caller common.Address) error {
	if caller != p.treasury {
		return errors.WithStack(ErrNotTreasury)
	}
	return nil
}

// account returns a copy of the state of addr, zero if it never interacted.
func (p *Presale) account(addr common.Address) entity.Account {
	if acc, ok := p.accounts[addr]; ok {
		return *acc
	}
	return entity.Account{Address: addr}
}
