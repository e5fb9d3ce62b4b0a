package presale

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingExporter struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (e *countingExporter) Export(context.Context) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	return "accounts.parquet", e.err
}

func (e *countingExporter) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls
}

func TestWorkerShutdown(t *testing.T) {
	f := newFixture(t)
	exporter := &countingExporter{}
	cleaned := false
	w := NewWorker(f.p, exporter, 10*time.Millisecond, func(context.Context) error {
		cleaned = true
		return nil
	})

	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(context.Background()) }()

	require.Eventually(t, func() bool { return exporter.count() >= 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, w.ShutdownWithTimeout(time.Second))
	require.NoError(t, <-errCh)

	assert.True(t, cleaned)
	final := exporter.count()
	assert.GreaterOrEqual(t, final, 3)

	// a second shutdown is a no-op
	require.NoError(t, w.Shutdown())
	assert.Equal(t, final, exporter.count())
}

func TestWorkerContextDone(t *testing.T) {
	f := newFixture(t)
	exporter := &countingExporter{err: errors.New("bucket unavailable")}
	w := NewWorker(f.p, exporter, 0, func(context.Context) error {
		return errors.New("close failed")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// export failures are logged, cleanup failures returned
	err := w.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "close failed")
	assert.Equal(t, 1, exporter.count())
}

func TestWorkerWithoutExporter(t *testing.T) {
	f := newFixture(t)
	w := NewWorker(f.p, nil, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, w.Run(ctx))
}
