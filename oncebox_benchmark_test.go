package oncebox_test

import (
	"context"
	"sync"
	"testing"

	oncebox "github.com/probablyarth/oncebox-go"
)

// ---------------------------------------------------------------------------
// Box benchmarks: cost of boxing plus the single call, per arity.
// ---------------------------------------------------------------------------

// Construct and call a zero-argument box. One slot allocation per iteration.
func BenchmarkBox0(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		box := oncebox.New0(func() int { return i })
		_ = box.Call()
	}
}

// Construct and call a four-argument box: the tuple is built on the stack,
// destructured inside the slot.
func BenchmarkBox4(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		box := oncebox.New4(func(a1, a2, a3, a4 int) int { return a1 + a2 + a3 + a4 })
		_ = box.Call(i, i, i, i)
	}
}

// The tuple-taking entry point, with an already-built argument tuple.
func BenchmarkCallTuple2(b *testing.B) {
	args := oncebox.Args2[int, int]{A1: 1, A2: 2}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		box := oncebox.New2(func(a1, a2 int) int { return a1 + a2 })
		_ = box.CallTuple(args)
	}
}

// Action path: boxing a result-less function.
func BenchmarkAction0(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		box := oncebox.Action0(func() {})
		box.Call()
	}
}

// Send variant, same goroutine. Should match BenchmarkBox0: the Send family
// is structurally identical.
func BenchmarkSend0(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		box := oncebox.Send0(func() int { return i })
		_ = box.Call()
	}
}

// ---------------------------------------------------------------------------
// Registry benchmarks.
// ---------------------------------------------------------------------------

// Defer and drain a realistic per-request batch of one-shots.
func BenchmarkRegistryDeferDrain(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := oncebox.FromContext(oncebox.WithRegistry(context.Background()))
		for j := 0; j < 16; j++ {
			r.Defer(func() {})
		}
		r.Drain()
	}
}

// ---------------------------------------------------------------------------
// Baseline comparison: what the box costs over calling the function directly
// and over the stdlib's repeat-safe once wrapper.
// ---------------------------------------------------------------------------

// Raw closure call, no box.
func BenchmarkRawClosure(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		fn := func() int { return i }
		_ = fn()
	}
}

// sync.OnceValue memoizes instead of consuming; closest stdlib shape.
func BenchmarkSyncOnceValue(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		fn := sync.OnceValue(func() int { return i })
		_ = fn()
	}
}
