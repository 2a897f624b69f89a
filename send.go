package oncebox

// The Send family mirrors Box0 through Box10 for boxes that will be handed
// to another goroutine before their single call: a handler builds a
// SendBox, ships it over a channel, and a worker calls it. The types are
// structurally identical to the plain boxes and add no synchronization —
// the hand-off (channel send, WaitGroup, errgroup) provides the
// happens-before edge, and the box is never reachable from two goroutines
// at once under its own contract. Keeping a distinct family makes that
// intent visible in the signatures of queues and workers.

// SendBox0 owns a zero-argument function destined for another goroutine.
type SendBox0[R any] struct {
	s *slot[Args0, R]
}

// Send0 boxes fn for hand-off. Send0 panics if fn is nil.
func Send0[R any](fn func() R) SendBox0[R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox0[R]{s: newSlot(func(Args0) R {
		return fn()
	})}
}

// SendAction0 boxes a function that returns nothing, producing a Unit result.
func SendAction0(fn func()) SendBox0[Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox0[Unit]{s: newSlot(func(Args0) Unit {
		fn()
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b SendBox0[R]) Call() R {
	return b.s.call(Args0{})
}

// CallTuple is Call taking the (empty) argument tuple.
func (b SendBox0[R]) CallTuple(args Args0) R {
	return b.s.call(args)
}

// SendBox1 owns a one-argument function destined for another goroutine.
type SendBox1[T1, R any] struct {
	s *slot[Args1[T1], R]
}

// Send1 boxes fn for hand-off. Send1 panics if fn is nil.
func Send1[T1, R any](fn func(T1) R) SendBox1[T1, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox1[T1, R]{s: newSlot(func(a Args1[T1]) R {
		return fn(a.A1)
	})}
}

// SendAction1 boxes a function that returns nothing, producing a Unit result.
func SendAction1[T1 any](fn func(T1)) SendBox1[T1, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox1[T1, Unit]{s: newSlot(func(a Args1[T1]) Unit {
		fn(a.A1)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b SendBox1[T1, R]) Call(a1 T1) R {
	return b.s.call(Args1[T1]{a1})
}

// CallTuple is Call taking the argument tuple.
func (b SendBox1[T1, R]) CallTuple(args Args1[T1]) R {
	return b.s.call(args)
}

// SendBox2 owns a two-argument function destined for another goroutine.
type SendBox2[T1, T2, R any] struct {
	s *slot[Args2[T1, T2], R]
}

// Send2 boxes fn for hand-off. Send2 panics if fn is nil.
func Send2[T1, T2, R any](fn func(T1, T2) R) SendBox2[T1, T2, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox2[T1, T2, R]{s: newSlot(func(a Args2[T1, T2]) R {
		return fn(a.A1, a.A2)
	})}
}

// SendAction2 boxes a function that returns nothing, producing a Unit result.
func SendAction2[T1, T2 any](fn func(T1, T2)) SendBox2[T1, T2, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox2[T1, T2, Unit]{s: newSlot(func(a Args2[T1, T2]) Unit {
		fn(a.A1, a.A2)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b SendBox2[T1, T2, R]) Call(a1 T1, a2 T2) R {
	return b.s.call(Args2[T1, T2]{a1, a2})
}

// CallTuple is Call taking the argument tuple.
func (b SendBox2[T1, T2, R]) CallTuple(args Args2[T1, T2]) R {
	return b.s.call(args)
}

// SendBox3 owns a three-argument function destined for another goroutine.
type SendBox3[T1, T2, T3, R any] struct {
	s *slot[Args3[T1, T2, T3], R]
}

// Send3 boxes fn for hand-off. Send3 panics if fn is nil.
func Send3[T1, T2, T3, R any](fn func(T1, T2, T3) R) SendBox3[T1, T2, T3, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox3[T1, T2, T3, R]{s: newSlot(func(a Args3[T1, T2, T3]) R {
		return fn(a.A1, a.A2, a.A3)
	})}
}

// SendAction3 boxes a function that returns nothing, producing a Unit result.
func SendAction3[T1, T2, T3 any](fn func(T1, T2, T3)) SendBox3[T1, T2, T3, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox3[T1, T2, T3, Unit]{s: newSlot(func(a Args3[T1, T2, T3]) Unit {
		fn(a.A1, a.A2, a.A3)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b SendBox3[T1, T2, T3, R]) Call(a1 T1, a2 T2, a3 T3) R {
	return b.s.call(Args3[T1, T2, T3]{a1, a2, a3})
}

// CallTuple is Call taking the argument tuple.
func (b SendBox3[T1, T2, T3, R]) CallTuple(args Args3[T1, T2, T3]) R {
	return b.s.call(args)
}

// SendBox4 owns a four-argument function destined for another goroutine.
type SendBox4[T1, T2, T3, T4, R any] struct {
	s *slot[Args4[T1, T2, T3, T4], R]
}

// Send4 boxes fn for hand-off. Send4 panics if fn is nil.
func Send4[T1, T2, T3, T4, R any](fn func(T1, T2, T3, T4) R) SendBox4[T1, T2, T3, T4, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox4[T1, T2, T3, T4, R]{s: newSlot(func(a Args4[T1, T2, T3, T4]) R {
		return fn(a.A1, a.A2, a.A3, a.A4)
	})}
}

// SendAction4 boxes a function that returns nothing, producing a Unit result.
func SendAction4[T1, T2, T3, T4 any](fn func(T1, T2, T3, T4)) SendBox4[T1, T2, T3, T4, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox4[T1, T2, T3, T4, Unit]{s: newSlot(func(a Args4[T1, T2, T3, T4]) Unit {
		fn(a.A1, a.A2, a.A3, a.A4)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b SendBox4[T1, T2, T3, T4, R]) Call(a1 T1, a2 T2, a3 T3, a4 T4) R {
	return b.s.call(Args4[T1, T2, T3, T4]{a1, a2, a3, a4})
}

// CallTuple is Call taking the argument tuple.
func (b SendBox4[T1, T2, T3, T4, R]) CallTuple(args Args4[T1, T2, T3, T4]) R {
	return b.s.call(args)
}

// SendBox5 owns a five-argument function destined for another goroutine.
type SendBox5[T1, T2, T3, T4, T5, R any] struct {
	s *slot[Args5[T1, T2, T3, T4, T5], R]
}

// Send5 boxes fn for hand-off. Send5 panics if fn is nil.
func Send5[T1, T2, T3, T4, T5, R any](fn func(T1, T2, T3, T4, T5) R) SendBox5[T1, T2, T3, T4, T5, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox5[T1, T2, T3, T4, T5, R]{s: newSlot(func(a Args5[T1, T2, T3, T4, T5]) R {
		return fn(a.A1, a.A2, a.A3, a.A4, a.A5)
	})}
}

// SendAction5 boxes a function that returns nothing, producing a Unit result.
func SendAction5[T1, T2, T3, T4, T5 any](fn func(T1, T2, T3, T4, T5)) SendBox5[T1, T2, T3, T4, T5, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox5[T1, T2, T3, T4, T5, Unit]{s: newSlot(func(a Args5[T1, T2, T3, T4, T5]) Unit {
		fn(a.A1, a.A2, a.A3, a.A4, a.A5)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b SendBox5[T1, T2, T3, T4, T5, R]) Call(a1 T1, a2 T2, a3 T3, a4 T4, a5 T5) R {
	return b.s.call(Args5[T1, T2, T3, T4, T5]{a1, a2, a3, a4, a5})
}

// CallTuple is Call taking the argument tuple.
func (b SendBox5[T1, T2, T3, T4, T5, R]) CallTuple(args Args5[T1, T2, T3, T4, T5]) R {
	return b.s.call(args)
}

// SendBox6 owns a six-argument function destined for another goroutine.
type SendBox6[T1, T2, T3, T4, T5, T6, R any] struct {
	s *slot[Args6[T1, T2, T3, T4, T5, T6], R]
}

// Send6 boxes fn for hand-off. Send6 panics if fn is nil.
func Send6[T1, T2, T3, T4, T5, T6, R any](fn func(T1, T2, T3, T4, T5, T6) R) SendBox6[T1, T2, T3, T4, T5, T6, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox6[T1, T2, T3, T4, T5, T6, R]{s: newSlot(func(a Args6[T1, T2, T3, T4, T5, T6]) R {
		return fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6)
	})}
}

// SendAction6 boxes a function that returns nothing, producing a Unit result.
func SendAction6[T1, T2, T3, T4, T5, T6 any](fn func(T1, T2, T3, T4, T5, T6)) SendBox6[T1, T2, T3, T4, T5, T6, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox6[T1, T2, T3, T4, T5, T6, Unit]{s: newSlot(func(a Args6[T1, T2, T3, T4, T5, T6]) Unit {
		fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b SendBox6[T1, T2, T3, T4, T5, T6, R]) Call(a1 T1, a2 T2, a3 T3, a4 T4, a5 T5, a6 T6) R {
	return b.s.call(Args6[T1, T2, T3, T4, T5, T6]{a1, a2, a3, a4, a5, a6})
}

// CallTuple is Call taking the argument tuple.
func (b SendBox6[T1, T2, T3, T4, T5, T6, R]) CallTuple(args Args6[T1, T2, T3, T4, T5, T6]) R {
	return b.s.call(args)
}

// SendBox7 owns a seven-argument function destined for another goroutine.
type SendBox7[T1, T2, T3, T4, T5, T6, T7, R any] struct {
	s *slot[Args7[T1, T2, T3, T4, T5, T6, T7], R]
}

// Send7 boxes fn for hand-off. Send7 panics if fn is nil.
func Send7[T1, T2, T3, T4, T5, T6, T7, R any](fn func(T1, T2, T3, T4, T5, T6, T7) R) SendBox7[T1, T2, T3, T4, T5, T6, T7, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox7[T1, T2, T3, T4, T5, T6, T7, R]{s: newSlot(func(a Args7[T1, T2, T3, T4, T5, T6, T7]) R {
		return fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6, a.A7)
	})}
}

// SendAction7 boxes a function that returns nothing, producing a Unit result.
func SendAction7[T1, T2, T3, T4, T5, T6, T7 any](fn func(T1, T2, T3, T4, T5, T6, T7)) SendBox7[T1, T2, T3, T4, T5, T6, T7, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox7[T1, T2, T3, T4, T5, T6, T7, Unit]{s: newSlot(func(a Args7[T1, T2, T3, T4, T5, T6, T7]) Unit {
		fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6, a.A7)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b SendBox7[T1, T2, T3, T4, T5, T6, T7, R]) Call(a1 T1, a2 T2, a3 T3, a4 T4, a5 T5, a6 T6, a7 T7) R {
	return b.s.call(Args7[T1, T2, T3, T4, T5, T6, T7]{a1, a2, a3, a4, a5, a6, a7})
}

// CallTuple is Call taking the argument tuple.
func (b SendBox7[T1, T2, T3, T4, T5, T6, T7, R]) CallTuple(args Args7[T1, T2, T3, T4, T5, T6, T7]) R {
	return b.s.call(args)
}

// SendBox8 owns an eight-argument function destined for another goroutine.
type SendBox8[T1, T2, T3, T4, T5, T6, T7, T8, R any] struct {
	s *slot[Args8[T1, T2, T3, T4, T5, T6, T7, T8], R]
}

// Send8 boxes fn for hand-off. Send8 panics if fn is nil.
func Send8[T1, T2, T3, T4, T5, T6, T7, T8, R any](fn func(T1, T2, T3, T4, T5, T6, T7, T8) R) SendBox8[T1, T2, T3, T4, T5, T6, T7, T8, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox8[T1, T2, T3, T4, T5, T6, T7, T8, R]{s: newSlot(func(a Args8[T1, T2, T3, T4, T5, T6, T7, T8]) R {
		return fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6, a.A7, a.A8)
	})}
}

// SendAction8 boxes a function that returns nothing, producing a Unit result.
func SendAction8[T1, T2, T3, T4, T5, T6, T7, T8 any](fn func(T1, T2, T3, T4, T5, T6, T7, T8)) SendBox8[T1, T2, T3, T4, T5, T6, T7, T8, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox8[T1, T2, T3, T4, T5, T6, T7, T8, Unit]{s: newSlot(func(a Args8[T1, T2, T3, T4, T5, T6, T7, T8]) Unit {
		fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6, a.A7, a.A8)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b SendBox8[T1, T2, T3, T4, T5, T6, T7, T8, R]) Call(a1 T1, a2 T2, a3 T3, a4 T4, a5 T5, a6 T6, a7 T7, a8 T8) R {
	return b.s.call(Args8[T1, T2, T3, T4, T5, T6, T7, T8]{a1, a2, a3, a4, a5, a6, a7, a8})
}

// CallTuple is Call taking the argument tuple.
func (b SendBox8[T1, T2, T3, T4, T5, T6, T7, T8, R]) CallTuple(args Args8[T1, T2, T3, T4, T5, T6, T7, T8]) R {
	return b.s.call(args)
}

// SendBox9 owns a nine-argument function destined for another goroutine.
type SendBox9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R any] struct {
	s *slot[Args9[T1, T2, T3, T4, T5, T6, T7, T8, T9], R]
}

// Send9 boxes fn for hand-off. Send9 panics if fn is nil.
func Send9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R any](fn func(T1, T2, T3, T4, T5, T6, T7, T8, T9) R) SendBox9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R]{s: newSlot(func(a Args9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) R {
		return fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6, a.A7, a.A8, a.A9)
	})}
}

// SendAction9 boxes a function that returns nothing, producing a Unit result.
func SendAction9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](fn func(T1, T2, T3, T4, T5, T6, T7, T8, T9)) SendBox9[T1, T2, T3, T4, T5, T6, T7, T8, T9, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox9[T1, T2, T3, T4, T5, T6, T7, T8, T9, Unit]{s: newSlot(func(a Args9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Unit {
		fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6, a.A7, a.A8, a.A9)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b SendBox9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R]) Call(a1 T1, a2 T2, a3 T3, a4 T4, a5 T5, a6 T6, a7 T7, a8 T8, a9 T9) R {
	return b.s.call(Args9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{a1, a2, a3, a4, a5, a6, a7, a8, a9})
}

// CallTuple is Call taking the argument tuple.
func (b SendBox9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R]) CallTuple(args Args9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) R {
	return b.s.call(args)
}

// SendBox10 owns a ten-argument function destined for another goroutine.
type SendBox10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, R any] struct {
	s *slot[Args10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10], R]
}

// Send10 boxes fn for hand-off. Send10 panics if fn is nil.
func Send10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, R any](fn func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10) R) SendBox10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, R] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, R]{s: newSlot(func(a Args10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) R {
		return fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6, a.A7, a.A8, a.A9, a.A10)
	})}
}

// SendAction10 boxes a function that returns nothing, producing a Unit result.
func SendAction10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](fn func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10)) SendBox10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, Unit] {
	if fn == nil {
		panic("oncebox: nil function")
	}
	return SendBox10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, Unit]{s: newSlot(func(a Args10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Unit {
		fn(a.A1, a.A2, a.A3, a.A4, a.A5, a.A6, a.A7, a.A8, a.A9, a.A10)
		return Unit{}
	})}
}

// Call invokes the boxed function and consumes the box.
func (b SendBox10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, R]) Call(a1 T1, a2 T2, a3 T3, a4 T4, a5 T5, a6 T6, a7 T7, a8 T8, a9 T9, a10 T10) R {
	return b.s.call(Args10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{a1, a2, a3, a4, a5, a6, a7, a8, a9, a10})
}

// CallTuple is Call taking the argument tuple.
func (b SendBox10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, R]) CallTuple(args Args10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) R {
	return b.s.call(args)
}
