package notifier

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/modules/presale/datagateway"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
)

// StoreSink appends events to the event log, one database transaction per batch.
type StoreSink struct {
	dg datagateway.PresaleDataGateway
}

func NewStoreSink(dg datagateway.PresaleDataGateway) *StoreSink {
	return &StoreSink{dg: dg}
}

func (s *StoreSink) Publish(ctx context.Context, events []entity.Event) (err error) {
	dgTx, err := s.dg.BeginPresaleTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if rollbackErr := dgTx.Rollback(ctx); rollbackErr != nil && err == nil {
			err = errors.Wrap(rollbackErr, "failed to rollback transaction")
		}
	}()

	for _, ev := range events {
		if err := dgTx.CreateEvent(ctx, ev); err != nil {
			return errors.Wrapf(err, "failed to store %s event", ev.Kind)
		}
	}
	if err := dgTx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}
