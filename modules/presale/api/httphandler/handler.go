package httphandler

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/modules/presale/datagateway"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/holiman/uint256"
)

// Ledger is the read side of the presale engine.
type Ledger interface {
	Now() time.Time
	Status(ctx context.Context) entity.Status
	Totals(ctx context.Context) entity.Totals
	Stages(ctx context.Context) []entity.Stage
	Stage(ctx context.Context, idx int) (entity.Stage, error)
	CurrentStage(ctx context.Context) (entity.Stage, error)
	ReferralTiers(ctx context.Context) []entity.ReferralTier
	Account(ctx context.Context, addr common.Address) entity.Account
	Quote(ctx context.Context, idx int, value *uint256.Int) (*uint256.Int, error)
}

// Operator is the write side of the presale engine. Every call names the acting wallet.
type Operator interface {
	BuyWithNative(ctx context.Context, buyer common.Address, stageIndex int, referrer common.Address, amount *uint256.Int) (entity.Purchase, error)
	BuyWithStable(ctx context.Context, buyer, currency common.Address, stageIndex int, referrer common.Address, amount *uint256.Int) (entity.Purchase, error)
	Claim(ctx context.Context, caller common.Address) (*uint256.Int, error)
	Finalize(ctx context.Context, caller common.Address, claimStart time.Time, asset common.Address) error
	ConcludeStage(ctx context.Context, caller common.Address, idx int) error
	ExtendStage(ctx context.Context, caller common.Address, idx int, newEnd time.Time) error
	UpdateTreasury(ctx context.Context, caller, treasury common.Address) error
	UpdateReferralTier(ctx context.Context, caller common.Address, idx int, threshold *uint256.Int, percentage uint64) error
	WithdrawNative(ctx context.Context, caller common.Address) (*uint256.Int, error)
	WithdrawStable(ctx context.Context, caller, token common.Address) (*uint256.Int, error)
}

type handler struct {
	ledger    Ledger
	operator  Operator
	presaleDg datagateway.PresaleDataGateway
}

// New builds the read API. dg may be nil when no event log is configured.
func New(ledger Ledger, dg datagateway.PresaleDataGateway) *handler {
	return &handler{
		ledger:    ledger,
		presaleDg: dg,
	}
}

// WithOperator enables the write routes. The caller of each write is taken from
// [requestcontext.WithCaller], which must run ahead of the handler.
func (h *handler) WithOperator(op Operator) *handler {
	h.operator = op
	return h
}
