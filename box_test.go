package oncebox_test

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	oncebox "github.com/probablyarth/oncebox-go"
)

func TestCallEachArity(t *testing.T) {
	if got := oncebox.New0(func() int { return 0 }).Call(); got != 0 {
		t.Fatalf("arity 0: got %d, want 0", got)
	}
	if got := oncebox.New1(func(a1 int) int { return a1 }).Call(1); got != 1 {
		t.Fatalf("arity 1: got %d, want 1", got)
	}
	if got := oncebox.New2(func(a1, a2 int) int { return a1 + a2 }).Call(1, 2); got != 3 {
		t.Fatalf("arity 2: got %d, want 3", got)
	}
	if got := oncebox.New3(func(a1, a2, a3 int) int { return a1 + a2 + a3 }).Call(1, 2, 3); got != 6 {
		t.Fatalf("arity 3: got %d, want 6", got)
	}
	if got := oncebox.New4(func(a1, a2, a3, a4 int) int { return a1 + a2 + a3 + a4 }).Call(1, 2, 3, 4); got != 10 {
		t.Fatalf("arity 4: got %d, want 10", got)
	}
	if got := oncebox.New5(func(a1, a2, a3, a4, a5 int) int { return a1 + a2 + a3 + a4 + a5 }).Call(1, 2, 3, 4, 5); got != 15 {
		t.Fatalf("arity 5: got %d, want 15", got)
	}
	if got := oncebox.New6(func(a1, a2, a3, a4, a5, a6 int) int { return a1 + a2 + a3 + a4 + a5 + a6 }).Call(1, 2, 3, 4, 5, 6); got != 21 {
		t.Fatalf("arity 6: got %d, want 21", got)
	}
	if got := oncebox.New7(func(a1, a2, a3, a4, a5, a6, a7 int) int { return a1 + a2 + a3 + a4 + a5 + a6 + a7 }).Call(1, 2, 3, 4, 5, 6, 7); got != 28 {
		t.Fatalf("arity 7: got %d, want 28", got)
	}
	if got := oncebox.New8(func(a1, a2, a3, a4, a5, a6, a7, a8 int) int { return a1 + a2 + a3 + a4 + a5 + a6 + a7 + a8 }).Call(1, 2, 3, 4, 5, 6, 7, 8); got != 36 {
		t.Fatalf("arity 8: got %d, want 36", got)
	}
	if got := oncebox.New9(func(a1, a2, a3, a4, a5, a6, a7, a8, a9 int) int { return a1 + a2 + a3 + a4 + a5 + a6 + a7 + a8 + a9 }).Call(1, 2, 3, 4, 5, 6, 7, 8, 9); got != 45 {
		t.Fatalf("arity 9: got %d, want 45", got)
	}
	if got := oncebox.New10(func(a1, a2, a3, a4, a5, a6, a7, a8, a9, a10 int) int {
		return a1 + a2 + a3 + a4 + a5 + a6 + a7 + a8 + a9 + a10
	}).Call(1, 2, 3, 4, 5, 6, 7, 8, 9, 10); got != 55 {
		t.Fatalf("arity 10: got %d, want 55", got)
	}
}

func TestCallMixedArgumentTypes(t *testing.T) {
	b := oncebox.New3(func(name string, n int, ok bool) string {
		return fmt.Sprintf("%s/%d/%v", name, n, ok)
	})
	if got := b.Call("job", 7, true); got != "job/7/true" {
		t.Fatalf("got %q, want %q", got, "job/7/true")
	}
}

func TestSecondCallPanics(t *testing.T) {
	b := oncebox.New0(func() string { return "once" })
	if got := b.Call(); got != "once" {
		t.Fatalf("got %q, want %q", got, "once")
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on second call, got none")
		}
		if s := fmt.Sprint(r); !strings.Contains(s, "already consumed") {
			t.Fatalf("got panic %v, want it to contain %q", r, "already consumed")
		}
	}()
	b.Call()
}

func TestCopySharesConsumption(t *testing.T) {
	// Copies of a box are handles onto the same slot; calling one consumes
	// them all.
	b := oncebox.New0(func() int { return 1 })
	c := b
	if got := c.Call(); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling the original after its copy was called")
		}
	}()
	b.Call()
}

func TestZeroValueBoxPanics(t *testing.T) {
	var b oncebox.Box0[int]

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on zero-value box, got none")
		}
		if s := fmt.Sprint(r); !strings.Contains(s, "zero-value box") {
			t.Fatalf("got panic %v, want it to contain %q", r, "zero-value box")
		}
	}()
	b.Call()
}

func TestNilFunctionPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on nil function, got none")
		}
		if s := fmt.Sprint(r); !strings.Contains(s, "nil function") {
			t.Fatalf("got panic %v, want it to contain %q", r, "nil function")
		}
	}()
	oncebox.New0[int](nil)
}

func TestNeverCalledNeverRuns(t *testing.T) {
	var calls atomic.Int32

	func() {
		b := oncebox.New0(func() int {
			calls.Add(1)
			return 0
		})
		_ = b // goes out of scope without being called
	}()

	if n := calls.Load(); n != 0 {
		t.Fatalf("function ran %d times without a call, want 0", n)
	}
}

func TestCapturedValueRoundTrip(t *testing.T) {
	captured := strings.Repeat("payload-", 8)
	b := oncebox.New0(func() string { return captured })

	if got := b.Call(); got != captured {
		t.Fatalf("got %q, want %q", got, captured)
	}
}

func TestPanicPropagates(t *testing.T) {
	b := oncebox.New0(func() string {
		panic("kaboom")
	})

	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected panic, got none")
			}
			if s := fmt.Sprint(r); !strings.Contains(s, "kaboom") {
				t.Fatalf("got panic %v, want it to contain %q", r, "kaboom")
			}
		}()
		b.Call()
	}()

	// The call ran, so the box is consumed even though it panicked.
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected consumed panic after a panicking call, got none")
		}
		if s := fmt.Sprint(r); !strings.Contains(s, "already consumed") {
			t.Fatalf("got panic %v, want it to contain %q", r, "already consumed")
		}
	}()
	b.Call()
}

type marker struct {
	id int
}

func TestFourArgDiscard(t *testing.T) {
	var calls atomic.Int32
	captured := "context"

	b := oncebox.Action4(func(m1, m2, m3, m4 *marker) {
		calls.Add(1)
		_ = captured
	})
	b.Call(&marker{1}, &marker{2}, &marker{3}, &marker{4})

	if n := calls.Load(); n != 1 {
		t.Fatalf("function ran %d times, want 1", n)
	}
}

func TestTwoArgTriple(t *testing.T) {
	type triple struct {
		Text   string
		First  *marker
		Second *marker
	}

	captured := "hello"
	b := oncebox.New2(func(m1, m2 *marker) triple {
		return triple{Text: captured, First: m1, Second: m2}
	})

	m1, m2 := &marker{1}, &marker{2}
	got := b.Call(m1, m2)
	if got.Text != "hello" || got.First != m1 || got.Second != m2 {
		t.Fatalf("got %+v, want {hello %p %p}", got, m1, m2)
	}
}

// callThrough invokes any box through the arity-independent Caller surface.
func callThrough[A, R any](c oncebox.Caller[A, R], args A) R {
	return c.CallTuple(args)
}

func TestCallTupleGeneric(t *testing.T) {
	got := callThrough[oncebox.Args2[int, int], int](
		oncebox.New2(func(a1, a2 int) int { return a1*10 + a2 }),
		oncebox.Args2[int, int]{A1: 3, A2: 4},
	)
	if got != 34 {
		t.Fatalf("got %d, want 34", got)
	}

	unit := callThrough[oncebox.Args0, oncebox.Unit](
		oncebox.Action0(func() {}),
		oncebox.Args0{},
	)
	if unit != (oncebox.Unit{}) {
		t.Fatalf("got %v, want Unit{}", unit)
	}
}

func TestCallTupleConsumes(t *testing.T) {
	b := oncebox.New1(func(s string) string { return s })
	if got := b.CallTuple(oncebox.Args1[string]{A1: "x"}); got != "x" {
		t.Fatalf("got %q, want %q", got, "x")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling through Call after CallTuple")
		}
	}()
	b.Call("y")
}

func TestActionArities(t *testing.T) {
	var calls atomic.Int32

	oncebox.Action0(func() { calls.Add(1) }).Call()
	oncebox.Action1(func(a1 int) { calls.Add(1) }).Call(1)
	oncebox.Action10(func(a1, a2, a3, a4, a5, a6, a7, a8, a9, a10 int) {
		calls.Add(1)
	}).Call(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	if n := calls.Load(); n != 3 {
		t.Fatalf("functions ran %d times, want 3", n)
	}
}
