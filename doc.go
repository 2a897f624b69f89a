// Package oncebox boxes functions that may be called at most once.
//
// A box owns a single function together with everything it captures. Calling
// the box takes the function out of its internal slot and runs it; after that
// the box is consumed and must not be touched again. A second call is a
// defect in the calling code and panics. A box that is never called simply
// releases its function when it becomes unreachable, without running it.
//
// One box type exists per arity from 0 to 10 ([Box0] through [Box10]), each
// with a constructor that infers argument and result types from the function
// it is given:
//
//	b := oncebox.New2(func(name string, n int) string {
//		return fmt.Sprintf("%s-%d", name, n)
//	})
//	s := b.Call("user", 42) // consumes b
//
// Functions that return nothing are boxed with [Action0] through [Action10]
// and yield a [Unit] result. Generic code that does not want to specialize
// per arity works against [Caller] and the ArgsN tuple types via CallTuple.
//
// The Send family ([SendBox0] through [SendBox10], built with [Send0] through
// [Send10]) is the same container for boxes that will be handed to another
// goroutine, e.g. over a channel to a worker. The hand-off itself must
// provide the usual happens-before edge; the box adds no synchronization of
// its own.
//
// A [Registry] collects zero-argument boxes on a context for a later drain,
// e.g. per-request cleanups registered anywhere below a middleware:
//
//	ctx := oncebox.WithRegistry(r.Context())
//	oncebox.FromContext(ctx).Defer(func() { f.Close() })
//	// ... later, once the request is done:
//	oncebox.FromContext(ctx).Drain()
package oncebox
