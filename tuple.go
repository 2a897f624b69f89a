package oncebox

// Unit is the result type of a boxed function that returns nothing.
type Unit struct{}

// Args0 is the empty argument tuple, the degenerate shape of a
// zero-argument box.
type Args0 struct{}

// Args1 through Args10 are the argument tuples of the N-argument boxes.
// The tuple shape is a box's one stable identity across arities: a
// Box3[T1, T2, T3, R] and a SendBox3[T1, T2, T3, R] both satisfy
// Caller[Args3[T1, T2, T3], R].
type Args1[T1 any] struct {
	A1 T1
}

type Args2[T1, T2 any] struct {
	A1 T1
	A2 T2
}

type Args3[T1, T2, T3 any] struct {
	A1 T1
	A2 T2
	A3 T3
}

type Args4[T1, T2, T3, T4 any] struct {
	A1 T1
	A2 T2
	A3 T3
	A4 T4
}

type Args5[T1, T2, T3, T4, T5 any] struct {
	A1 T1
	A2 T2
	A3 T3
	A4 T4
	A5 T5
}

type Args6[T1, T2, T3, T4, T5, T6 any] struct {
	A1 T1
	A2 T2
	A3 T3
	A4 T4
	A5 T5
	A6 T6
}

type Args7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	A1 T1
	A2 T2
	A3 T3
	A4 T4
	A5 T5
	A6 T6
	A7 T7
}

type Args8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	A1 T1
	A2 T2
	A3 T3
	A4 T4
	A5 T5
	A6 T6
	A7 T7
	A8 T8
}

type Args9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any] struct {
	A1 T1
	A2 T2
	A3 T3
	A4 T4
	A5 T5
	A6 T6
	A7 T7
	A8 T8
	A9 T9
}

type Args10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any] struct {
	A1  T1
	A2  T2
	A3  T3
	A4  T4
	A5  T5
	A6  T6
	A7  T7
	A8  T8
	A9  T9
	A10 T10
}
