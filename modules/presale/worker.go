package presale

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/gaze-network/presale-ledger/pkg/logger/slogx"
)

// Exporter writes a snapshot of the ledger accounts.
type Exporter interface {
	Export(ctx context.Context) (string, error)
}

// Worker runs the background duties of a presale: scheduled snapshot exports and, on shutdown,
// a last export followed by the module cleanups.
type Worker struct {
	Presale *Presale

	exporter     Exporter
	interval     time.Duration
	cleanupFuncs []func(context.Context) error

	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}
}

// NewWorker builds a worker. exporter may be nil; a zero interval exports only at shutdown.
func NewWorker(p *Presale, exporter Exporter, interval time.Duration, cleanupFuncs ...func(context.Context) error) *Worker {
	return &Worker{
		Presale:      p,
		exporter:     exporter,
		interval:     interval,
		cleanupFuncs: cleanupFuncs,
		quit:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

func (w *Worker) Shutdown() error {
	return w.ShutdownWithContext(context.Background())
}

func (w *Worker) ShutdownWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return w.ShutdownWithContext(ctx)
}

func (w *Worker) ShutdownWithContext(ctx context.Context) (err error) {
	w.quitOnce.Do(func() {
		close(w.quit)
		select {
		case <-w.done:
		case <-time.After(60 * time.Second):
			err = errors.Wrap(errs.Timeout, "presale worker shutdown timeout")
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "presale worker shutdown context canceled")
		}
	})
	return
}

// Run blocks until ctx is done or the worker is shut down.
func (w *Worker) Run(ctx context.Context) (err error) {
	defer close(w.done)

	ctx = logger.WithContext(ctx,
		slog.String("package", "presale"),
		slogx.Address("presale", w.Presale.address),
	)

	var tick <-chan time.Time
	if w.exporter != nil && w.interval > 0 {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-w.quit:
			logger.InfoContext(ctx, "Got quit signal, stopping presale worker")
			return w.stop(context.WithoutCancel(ctx))
		case <-ctx.Done():
			logger.InfoContext(ctx, "Context done, stopping presale worker")
			return w.stop(context.WithoutCancel(ctx))
		case <-tick:
			w.export(ctx)
		}
	}
}

func (w *Worker) export(ctx context.Context) {
	if w.exporter == nil {
		return
	}
	if _, err := w.exporter.Export(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to export account snapshot", err)
	}
}

func (w *Worker) stop(ctx context.Context) error {
	w.export(ctx)
	for _, cleanup := range w.cleanupFuncs {
		if err := cleanup(ctx); err != nil {
			return errors.Wrap(err, "cleanup function error")
		}
	}
	return nil
}
