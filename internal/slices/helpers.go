package slices

import "fmt"

type MapFunc[IN, OUT any] interface {
	~func(int, IN) OUT | ~func(IN) OUT
}

// Map turns a []IN to a []OUT using a mapping function.
// Order is preserved.
func Map[IN, OUT any, F MapFunc[IN, OUT]](in []IN, fun F) []OUT {
	if in == nil {
		return nil
	}
	f := func(i int, item IN) OUT {
		switch typ := any(fun).(type) {
		case func(int, IN) OUT:
			return typ(i, item)
		case func(IN) OUT:
			return typ(item)
		}
		panic(fmt.Sprintf("unrecognized Map function type %T", fun))
	}
	out := make([]OUT, len(in))
	for i, item := range in {
		out[i] = f(i, item)
	}
	return out
}

type AccumulatorFunc[IN, OUT any] func(out OUT, i int, item IN) OUT

// Reduce reduces a []IN to a single value using an accumulator function.
func Reduce[IN, OUT any](
	in          []IN,
	initializer OUT,
	fun         AccumulatorFunc[IN, OUT],
) OUT {
	out := initializer
	for i, item := range in {
		out = fun(out, i, item)
	}
	return out
}
