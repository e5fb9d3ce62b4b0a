package presale

import (
	"context"
	"slices"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/gaze-network/presale-ledger/pkg/logger/slogx"
	"github.com/holiman/uint256"
	"github.com/samber/lo"
)

type transfer struct {
	token  common.Address
	from   common.Address
	to     common.Address
	amount uint256.Int
}

// stateTx journals one entry point. Everything the operation touches is restored by rollback,
// including vault transfers already made, which are reversed newest first. Events are only
// published once the transaction commits.
type stateTx struct {
	ctx context.Context
	p   *Presale

	stages            []entity.Stage
	tiers             []entity.ReferralTier
	totals            entity.Totals
	owner             common.Address
	treasury          common.Address
	stagesInitialized bool
	finalized         bool
	claimStart        time.Time
	asset             common.Address

	// accounts holds the pre-image of every touched account, nil for accounts that did not exist.
	accounts map[common.Address]*entity.Account

	transfers []transfer
	events    []entity.Event
	done      bool
}

// begin must be called while holding p.mu.
func (p *Presale) begin(ctx context.Context) *stateTx {
	return &stateTx{
		ctx:               ctx,
		p:                 p,
		stages:            slices.Clone(p.stages),
		tiers:             slices.Clone(p.tiers),
		totals:            p.totals,
		owner:             p.owner,
		treasury:          p.treasury,
		stagesInitialized: p.stagesInitialized,
		finalized:         p.finalized,
		claimStart:        p.claimStart,
		asset:             p.asset,
		accounts:          make(map[common.Address]*entity.Account),
	}
}

// account returns the live account of addr for mutation, creating it if needed.
func (tx *stateTx) account(addr common.Address) *entity.Account {
	acc, ok := tx.p.accounts[addr]
	if _, saved := tx.accounts[addr]; !saved {
		if ok {
			tx.accounts[addr] = lo.ToPtr(*acc)
		} else {
			tx.accounts[addr] = nil
		}
	}
	if !ok {
		acc = &entity.Account{Address: addr}
		tx.p.accounts[addr] = acc
	}
	return acc
}

// transfer moves amount through the vault and records it for compensation. Zero amounts are skipped.
func (tx *stateTx) transfer(token, from, to common.Address, amount *uint256.Int, what string) error {
	if amount.IsZero() {
		return nil
	}
	if err := tx.p.vault.Transfer(tx.ctx, token, from, to, amount); err != nil {
		return transferFailed(err, what)
	}
	tx.transfers = append(tx.transfers, transfer{token: token, from: from, to: to, amount: *amount})
	return nil
}

func (tx *stateTx) emit(ev entity.Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = tx.p.now()
	}
	tx.events = append(tx.events, ev)
}

// commit keeps every change and publishes the buffered events. Sink failures are logged only.
func (tx *stateTx) commit() {
	if tx.done {
		return
	}
	tx.done = true
	if len(tx.events) == 0 {
		return
	}
	if err := tx.p.sink.Publish(tx.ctx, tx.events); err != nil {
		logger.ErrorContext(tx.ctx, "Failed to publish presale events", err, slogx.Int("events", len(tx.events)))
	}
}

// rollback undoes an uncommitted transaction. It is a no-op after commit, so it is always deferred.
func (tx *stateTx) rollback() {
	if tx.done {
		return
	}
	tx.done = true

	for i := len(tx.transfers) - 1; i >= 0; i-- {
		t := tx.transfers[i]
		if err := tx.p.vault.Transfer(tx.ctx, t.token, t.to, t.from, &t.amount); err != nil {
			logger.CriticalContext(tx.ctx, "Failed to reverse transfer while unwinding operation", err,
				slogx.Address("token", t.token),
				slogx.Address("from", t.to),
				slogx.Address("to", t.from),
				slogx.Uint256("amount", &t.amount),
			)
		}
	}

	p := tx.p
	p.stages = tx.stages
	p.tiers = tx.tiers
	p.totals = tx.totals
	p.owner = tx.owner
	p.treasury = tx.treasury
	p.stagesInitialized = tx.stagesInitialized
	p.finalized = tx.finalized
	p.claimStart = tx.claimStart
	p.asset = tx.asset
	for addr, saved := range tx.accounts {
		if saved == nil {
			delete(p.accounts, addr)
			continue
		}
		p.accounts[addr] = saved
	}
}
