package presale

import (
	"context"

	"github.com/cockroachdb/errors"
)

type guardKey struct{}

// holds reports whether ctx was derived from a context that entered p and is still inside it.
func (p *Presale) holds(ctx context.Context) bool {
	owner, _ := ctx.Value(guardKey{}).(*Presale)
	return owner == p
}

// enter acquires the single-writer lock for a state-touching entry point. The returned context
// carries the guard so collaborators invoked during the call cannot enter p again.
// release must be called on every exit path.
func (p *Presale) enter(ctx context.Context) (_ context.Context, release func(), err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if p.holds(ctx) {
		return ctx, func() {}, errors.WithStack(ErrReentrant)
	}
	p.mu.Lock()
	return context.WithValue(ctx, guardKey{}, p), p.mu.Unlock, nil
}

// read runs fn with a consistent view of the state. A call made from inside an entry point
// (the guard is in ctx) already owns the lock and reads directly.
func (p *Presale) read(ctx context.Context, fn func()) {
	if ctx != nil && p.holds(ctx) {
		fn()
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fn()
}
