package oncebox

// slot holds the boxed function until its single permitted call. The
// function is removed from the slot before it runs, so a panicking function
// still consumes the box. Finding the slot already empty means the box's
// single-use contract was broken, which is a defect in the calling code,
// never a recoverable condition.
type slot[A, R any] struct {
	fn func(A) R
}

func newSlot[A, R any](fn func(A) R) *slot[A, R] {
	return &slot[A, R]{fn: fn}
}

func (s *slot[A, R]) call(args A) R {
	if s == nil {
		panic("oncebox: call on zero-value box")
	}
	fn := s.fn
	if fn == nil {
		panic("oncebox: box already consumed")
	}
	s.fn = nil
	return fn(args)
}

// Caller is the arity-independent view of a box: invocation with the
// argument tuple that is the box's identity. Every BoxN and SendBoxN with
// tuple shape A satisfies Caller[A, R], so generic code can store and invoke
// boxes of any arity without specializing per arity.
type Caller[A, R any] interface {
	CallTuple(A) R
}

// Box0 owns a zero-argument function that may be called at most once.
type Box0[R any] struct {
	s *slot[Args0, R]
}

// New0 boxes fn, inferring the result type from its signature.
// New0 panics if fn is nil.
func New0[R any](fn func() R) Box0[R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box0[R]{s: newSlot(func(Args0) R {
		return fn()
	})}
}

// Action0 boxes a function that returns nothing, producing a Unit result.
func Action0(fn func()) Box0[Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box0[Unit]{s: newSlot(func(Args0) Unit {
		fn()
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b Box0[R]) Call() R {
	return b.s.call(Args0{})
}

// CallTuple is Call taking the (empty) argument tuple.
func (b Box0[R]) CallTuple(args Args0) R {
	return b.s.call(args)
}

// Box1 owns a one-argument function that may be called at most once.
type Box1[T1, R any] struct {
	s *slot[Args1[T1], R]
}

// New1 boxes fn, inferring argument and result types from its signature.
// New1 panics if fn is nil.
func New1[T1, R any](fn func(T1) R) Box1[T1, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box1[T1, R]{s: newSlot(func(a Args1[T1]) R {
		return fn(a.A1)
	})}
}

// Action1 boxes a function that returns nothing, producing a Unit result.
func Action1[T1 any](fn func(T1)) Box1[T1, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box1[T1, Unit]{s: newSlot(func(a Args1[T1]) Unit {
		fn(a.A1)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b Box1[T1, R]) Call(a1 T1) R {
	return b.s.call(Args1[T1]{a1})
}

// CallTuple is Call taking the argument tuple.
func (b Box1[T1, R]) CallTuple(args Args1[T1]) R {
	return b.s.call(args)
}

// Box2 owns a two-argument function that may be called at most once.
type Box2[T1, T2, R any] struct {
	s *slot[Args2[T1, T2], R]
}

// New2 boxes fn, inferring argument and result types from its signature.
// New2 panics if fn is nil.
func New2[T1, T2, R any](fn func(T1, T2) R) Box2[T1, T2, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box2[T1, T2, R]{s: newSlot(func(a Args2[T1, T2]) R {
		return fn(a.A1, a.A2)
	})}
}

// Action2 boxes a function that returns nothing, producing a Unit result.
func Action2[T1, T2 any](fn func(T1, T2)) Box2[T1, T2, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box2[T1, T2, Unit]{s: newSlot(func(a Args2[T1, T2]) Unit {
		fn(a.A1, a.A2)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b Box2[T1, T2, R]) Call(a1 T1, a2 T2) R {
	return b.s.call(Args2[T1, T2]{a1, a2})
}

// CallTuple is Call taking the argument tuple.
func (b Box2[T1, T2, R]) CallTuple(args Args2[T1, T2]) R {
	return b.s.call(args)
}

// Box3 owns a three-argument function that may be called at most once.
type Box3[T1, T2, T3, R any] struct {
	s *slot[Args3[T1, T2, T3], R]
}

// New3 boxes fn, inferring argument and result types from its signature.
// New3 panics if fn is nil.
func New3[T1, T2, T3, R any](fn func(T1, T2, T3) R) Box3[T1, T2, T3, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box3[T1, T2, T3, R]{s: newSlot(func(a Args3[T1, T2, T3]) R {
		return fn(a.A1, a.A2, a.A3)
	})}
}

// Action3 boxes a function that returns nothing, producing a Unit result.
func Action3[T1, T2, T3 any](fn func(T1, T2, T3)) Box3[T1, T2, T3, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box3[T1, T2, T3, Unit]{s: newSlot(func(a Args3[T1, T2, T3]) Unit {
		fn(a.A1, a.A2, a.A3)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b Box3[T1, T2, T3, R]) Call(a1 T1, a2 T2, a3 T3) R {
	return b.s.call(Args3[T1, T2, T3]{a1, a2, a3})
}

// CallTuple is Call taking the argument tuple.
func (b Box3[T1, T2, T3, R]) CallTuple(args Args3[T1, T2, T3]) R {
	return b.s.call(args)
}

// Box4 owns a four-argument function that may be called at most once.
type Box4[T1, T2, T3, T4, R any] struct {
	s *slot[Args4[T1, T2, T3, T4], R]
}

// New4 boxes fn, inferring argument and result types from its signature.
// New4 panics if fn is nil.
func New4[T1, T2, T3, T4, R any](fn func(T1, T2, T3, T4) R) Box4[T1, T2, T3, T4, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box4[T1, T2, T3, T4, R]{s: newSlot(func(a Args4[T1, T2, T3, T4]) R {
		return fn(a.A1, a.A2, a.A3, a.A4)
	})}
}

// Action4 boxes a function that returns nothing, producing a Unit result.
func Action4[T1, T2, T3, T4 any](fn func(T1, T2, T3, T4)) Box4[T1, T2, T3, T4, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box4[T1, T2, T3, T4, Unit]{s: newSlot(func(a Args4[T1, T2, T3, T4]) Unit {
		fn(a.A1, a.A2, a.A3, a.A4)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b Box4[T1, T2, T3, T4, R]) Call(a1 T1, a2 T2, a3 T3, a4 T4) R {
	return b.s.call(Args4[T1, T2, T3, T4]{a1, a2, a3, a4})
}

// CallTuple is Call taking the argument tuple.
func (b Box4[T1, T2, T3, T4, R]) CallTuple(args Args4[T1, T2, T3, T4]) R {
	return b.s.call(args)
}

// Box5 owns a five-argument function that may be called at most once.
type Box5[T1, T2, T3, T4, T5, R any] struct {
	s *slot[Args5[T1, T2, T3, T4, T5], R]
}

// New5 boxes fn, inferring argument and result types from its signature.
// New5 panics if fn is nil.
func New5[T1, T2, T3, T4, T5, R any](fn func(T1, T2, T3, T4, T5) R) Box5[T1, T2, T3, T4, T5, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box5[T1, T2, T3, T4, T5, R]{s: newSlot(func(a Args5[T1, T2, T3, T4, T5]) R {
		return fn(a.A1, a.A2, a.A3, a.A4, a.A5)
	})}
}

// Action5 boxes a function that returns nothing, producing a Unit result.
func Action5[T1, T2, T3, T4, T5 any](fn func(T1, T2, T3, T4, T5)) Box5[T1, T2, T3, T4, T5, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box5[T1, T2, T3, T4, T5, Unit]{s: newSlot(func(a Args5[T1, T2, T3, T4, T5]) Unit {
		fn(a.A1, a.A2, a.A3, a.A4, a.A5)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b Box5[T1, T2, T3, T4, T5, R]) Call(a1 T1, a2 T2, a3 T3, a4 T4, a5 T5) R {
	return b.s.call(Args5[T1, T2, T3, T4, T5]{a1, a2, a3, a4, a5})
}

// CallTuple is Call taking the argument tuple.
func (b Box5[T1, T2, T3, T4, T5, R]) CallTuple(args Args5[T1, T2, T3, T4, T5]) R {
	return b.s.call(args)
}

// Box6 owns a six-argument function that may be called at most once.
type Box6[T1, T2, T3, T4, T5, T6, R any] struct {
	s *slot[Args6[T1, T2, T3, T4, T5, T6], R]
}

// New6 boxes fn, inferring argument and result types from its signature.
// New6 panics if fn is nil.
func New6[T1, T2, T3, T4, T5, T6, R any](fn func(T1, T2, T3, T4, T5, T6) R) Box6[T1, T2, T3, T4, T5, T6, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box6[T1, T2, T3, T4, T5, T6, R]{s: newSlot(func(a Args6[T1, T2, T3, T4, T5, T6]) R {
		return fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6)
	})}
}

// Action6 boxes a function that returns nothing, producing a Unit result.
func Action6[T1, T2, T3, T4, T5, T6 any](fn func(T1, T2, T3, T4, T5, T6)) Box6[T1, T2, T3, T4, T5, T6, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box6[T1, T2, T3, T4, T5, T6, Unit]{s: newSlot(func(a Args6[T1, T2, T3, T4, T5, T6]) Unit {
		fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b Box6[T1, T2, T3, T4, T5, T6, R]) Call(a1 T1, a2 T2, a3 T3, a4 T4, a5 T5, a6 T6) R {
	return b.s.call(Args6[T1, T2, T3, T4, T5, T6]{a1, a2, a3, a4, a5, a6})
}

// CallTuple is Call taking the argument tuple.
func (b Box6[T1, T2, T3, T4, T5, T6, R]) CallTuple(args Args6[T1, T2, T3, T4, T5, T6]) R {
	return b.s.call(args)
}

// Box7 owns a seven-argument function that may be called at most once.
type Box7[T1, T2, T3, T4, T5, T6, T7, R any] struct {
	s *slot[Args7[T1, T2, T3, T4, T5, T6, T7], R]
}

// New7 boxes fn, inferring argument and result types from its signature.
// New7 panics if fn is nil.
func New7[T1, T2, T3, T4, T5, T6, T7, R any](fn func(T1, T2, T3, T4, T5, T6, T7) R) Box7[T1, T2, T3, T4, T5, T6, T7, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box7[T1, T2, T3, T4, T5, T6, T7, R]{s: newSlot(func(a Args7[T1, T2, T3, T4, T5, T6, T7]) R {
		return fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6, a.A7)
	})}
}

// Action7 boxes a function that returns nothing, producing a Unit result.
func Action7[T1, T2, T3, T4, T5, T6, T7 any](fn func(T1, T2, T3, T4, T5, T6, T7)) Box7[T1, T2, T3, T4, T5, T6, T7, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box7[T1, T2, T3, T4, T5, T6, T7, Unit]{s: newSlot(func(a Args7[T1, T2, T3, T4, T5, T6, T7]) Unit {
		fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6, a.A7)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b Box7[T1, T2, T3, T4, T5, T6, T7, R]) Call(a1 T1, a2 T2, a3 T3, a4 T4, a5 T5, a6 T6, a7 T7) R {
	return b.s.call(Args7[T1, T2, T3, T4, T5, T6, T7]{a1, a2, a3, a4, a5, a6, a7})
}

// CallTuple is Call taking the argument tuple.
func (b Box7[T1, T2, T3, T4, T5, T6, T7, R]) CallTuple(args Args7[T1, T2, T3, T4, T5, T6, T7]) R {
	return b.s.call(args)
}

// Box8 owns an eight-argument function that may be called at most once.
type Box8[T1, T2, T3, T4, T5, T6, T7, T8, R any] struct {
	s *slot[Args8[T1, T2, T3, T4, T5, T6, T7, T8], R]
}

// New8 boxes fn, inferring argument and result types from its signature.
// New8 panics if fn is nil.
func New8[T1, T2, T3, T4, T5, T6, T7, T8, R any](fn func(T1, T2, T3, T4, T5, T6, T7, T8) R) Box8[T1, T2, T3, T4, T5, T6, T7, T8, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box8[T1, T2, T3, T4, T5, T6, T7, T8, R]{s: newSlot(func(a Args8[T1, T2, T3, T4, T5, T6, T7, T8]) R {
		return fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6, a.A7, a.A8)
	})}
}

// Action8 boxes a function that returns nothing, producing a Unit result.
func Action8[T1, T2, T3, T4, T5, T6, T7, T8 any](fn func(T1, T2, T3, T4, T5, T6, T7, T8)) Box8[T1, T2, T3, T4, T5, T6, T7, T8, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box8[T1, T2, T3, T4, T5, T6, T7, T8, Unit]{s: newSlot(func(a Args8[T1, T2, T3, T4, T5, T6, T7, T8]) Unit {
		fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6, a.A7, a.A8)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b Box8[T1, T2, T3, T4, T5, T6, T7, T8, R]) Call(a1 T1, a2 T2, a3 T3, a4 T4, a5 T5, a6 T6, a7 T7, a8 T8) R {
	return b.s.call(Args8[T1, T2, T3, T4, T5, T6, T7, T8]{a1, a2, a3, a4, a5, a6, a7, a8})
}

// CallTuple is Call taking the argument tuple.
func (b Box8[T1, T2, T3, T4, T5, T6, T7, T8, R]) CallTuple(args Args8[T1, T2, T3, T4, T5, T6, T7, T8]) R {
	return b.s.call(args)
}

// Box9 owns a nine-argument function that may be called at most once.
type Box9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R any] struct {
	s *slot[Args9[T1, T2, T3, T4, T5, T6, T7, T8, T9], R]
}

// New9 boxes fn, inferring argument and result types from its signature.
// New9 panics if fn is nil.
func New9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R any](fn func(T1, T2, T3, T4, T5, T6, T7, T8, T9) R) Box9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R]{s: newSlot(func(a Args9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) R {
		return fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6, a.A7, a.A8, a.A9)
	})}
}

// Action9 boxes a function that returns nothing, producing a Unit result.
func Action9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](fn func(T1, T2, T3, T4, T5, T6, T7, T8, T9)) Box9[T1, T2, T3, T4, T5, T6, T7, T8, T9, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box9[T1, T2, T3, T4, T5, T6, T7, T8, T9, Unit]{s: newSlot(func(a Args9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Unit {
		fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6, a.A7, a.A8, a.A9)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b Box9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R]) Call(a1 T1, a2 T2, a3 T3, a4 T4, a5 T5, a6 T6, a7 T7, a8 T8, a9 T9) R {
	return b.s.call(Args9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{a1, a2, a3, a4, a5, a6, a7, a8, a9})
}

// CallTuple is Call taking the argument tuple.
func (b Box9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R]) CallTuple(args Args9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) R {
	return b.s.call(args)
}

// Box10 owns a ten-argument function that may be called at most once.
type Box10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, R any] struct {
	s *slot[Args10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10], R]
}

// New10 boxes fn, inferring argument and result types from its signature.
// New10 panics if fn is nil.
func New10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, R any](fn func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10) R) Box10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, R]{s: newSlot(func(a Args10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) R {
		return fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6, a.A7, a.A8, a.A9, a.A10)
	})}
}

// Action10 boxes a function that returns nothing, producing a Unit result.
func Action10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](fn func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10)) Box10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return Box10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, Unit]{s: newSlot(func(a Args10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Unit {
		fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6, a.A7, a.A8, a.A9, a.A10)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b Box10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, R]) Call(a1 T1, a2 T2, a3 T3, a4 T4, a5 T5, a6 T6, a7 T7, a8 T8, a9 T9, a10 T10) R {
	return b.s.call(Args10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{a1, a2, a3, a4, a5, a6, a7, a8, a9, a10})
}

// CallTuple is Call taking the argument tuple.
func (b Box10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, R]) CallTuple(args Args10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) R {
	return b.s.call(args)
}
