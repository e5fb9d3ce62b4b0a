package notifier

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"golang.org/x/sync/errgroup"
)

type Sink interface {
	Publish(ctx context.Context, events []entity.Event) error
}

// Multi delivers every batch to all sinks concurrently. A failing sink does not stop the others.
type Multi []Sink

func (m Multi) Publish(ctx context.Context, events []entity.Event) error {
	errs := make([]error, len(m))
	var eg errgroup.Group
	for i, sink := range m {
		i, sink := i, sink
		eg.Go(func() error {
			errs[i] = sink.Publish(ctx, events)
			return nil
		})
	}
	_ = eg.Wait()
	return errors.Join(errs...)
}
