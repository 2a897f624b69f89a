package oncebox

import (
	"context"
	"sync"
)

type contextKey struct{}

// Registry collects zero-argument one-shot boxes for a later drain.
// Create one per scope (typically per request) via WithRegistry and retrieve
// it via FromContext. A Registry only stores boxes; running them is always
// triggered explicitly by the caller through Drain.
type Registry struct {
	mu       sync.Mutex
	pending  []Box0[Unit]
	observer Observer
}

// WithRegistry returns a child context that carries a new Registry.
func WithRegistry(ctx context.Context, opts ...Option) context.Context {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return context.WithValue(ctx, contextKey{}, r)
}

// FromContext retrieves the Registry from ctx, or nil if none is present.
func FromContext(ctx context.Context) *Registry {
	r, _ := ctx.Value(contextKey{}).(*Registry)
	return r
}

// Defer boxes fn and adds it to the registry.
func (r *Registry) Defer(fn func()) {
	r.DeferBox(Action0(fn))
}

// DeferBox adds an already-boxed one-shot to the registry. The registry
// becomes the box's owner; the caller must not call the box afterwards.
func (r *Registry) DeferBox(b Box0[Unit]) {
	r.mu.Lock()
	r.pending = append(r.pending, b)
	n := len(r.pending)
	r.mu.Unlock()

	r.emit(EventDeferred, n)
}

// Len reports the number of boxes waiting to be drained.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Drain runs every pending box exactly once, most recently deferred first,
// synchronously in the calling goroutine. A panicking box does not stop the
// sweep: the remaining boxes still run, and the first panic value is
// re-raised once the sweep completes. Draining an empty registry is a no-op;
// boxes deferred while Drain runs are picked up by a later Drain.
func (r *Registry) Drain() {
	r.mu.Lock()
	pending := r.pending
	r.pending = nil
	r.mu.Unlock()

	var firstPanic any
	for i := len(pending) - 1; i >= 0; i-- {
		func() {
			defer func() {
				if p := recover(); p != nil && firstPanic == nil {
					firstPanic = p
				}
			}()
			pending[i].Call()
		}()
	}

	r.emit(EventDrained, len(pending))
	if firstPanic != nil {
		panic(firstPanic)
	}
}

func (r *Registry) emit(event Event, count int) {
	if r.observer == nil {
		return
	}
	r.observer.On(EventData{
		Event: event,
		Count: count,
	})
}
