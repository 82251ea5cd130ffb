package expect

import "reflect"

// Expression is a lazily evaluated accessor for the value under test.
// The first Evaluate runs the deferred computation and, unless caching
// is disabled, every later Evaluate returns the same value, presence
// and error.  Expressions are not safe for concurrent use.
type Expression[T any] struct {
	eval      func() (T, bool, error)
	location  Location
	cache     bool
	evaluated bool
	value     T
	present   bool
	err       error
}

// NewExpression creates an Expression from a computation that reports
// whether a value is present.
func NewExpression[T any](
	eval     func() (T, bool, error),
	location Location,
	cache    bool,
) *Expression[T] {
	if eval == nil {
		panic("eval cannot be nil")
	}
	return &Expression[T]{eval: eval, location: location, cache: cache}
}

// Expr creates a cached Expression from eval.
// The value is absent when eval returns a nil pointer, interface,
// map, slice, chan or func.
func Expr[T any](eval func() (T, error)) *Expression[T] {
	if eval == nil {
		panic("eval cannot be nil")
	}
	return NewExpression(func() (T, bool, error) {
		val, err := eval()
		if err != nil {
			var zero T
			return zero, false, err
		}
		return val, !IsNil(val), nil
	}, CallerLocation(1), true)
}

// Value creates an Expression over an already computed value.
func Value[T any](value T) *Expression[T] {
	return NewExpression(func() (T, bool, error) {
		return value, !IsNil(value), nil
	}, CallerLocation(1), true)
}

// Optional creates a cached Expression from eval which
// decides presence explicitly.
func Optional[T any](eval func() (T, bool, error)) *Expression[T] {
	return NewExpression(eval, CallerLocation(1), true)
}

func (e *Expression[T]) Location() Location {
	return e.location
}

func (e *Expression[T]) IsCached() bool {
	return e.cache
}

// Evaluate returns the value under test and whether it is present.
func (e *Expression[T]) Evaluate() (T, bool, error) {
	if e.cache && e.evaluated {
		return e.value, e.present, e.err
	}
	value, present, err := e.eval()
	if err != nil {
		var zero T
		value, present = zero, false
	}
	if e.cache {
		e.value, e.present, e.err = value, present, err
		e.evaluated = true
	}
	return value, present, err
}

// WithoutCaching returns an Expression that runs the computation
// on every Evaluate.
func (e *Expression[T]) WithoutCaching() *Expression[T] {
	return &Expression[T]{eval: e.eval, location: e.location}
}

// Cast derives an Expression of another type.  The source is
// evaluated through its own accessor so memoized values are shared.
func Cast[T, U any](
	expr *Expression[T],
	cast func(T, bool) (U, bool, error),
) *Expression[U] {
	if expr == nil {
		panic("expr cannot be nil")
	}
	if cast == nil {
		panic("cast cannot be nil")
	}
	return NewExpression(func() (U, bool, error) {
		val, present, err := expr.Evaluate()
		if err != nil {
			var zero U
			return zero, false, err
		}
		return cast(val, present)
	}, expr.location, expr.cache)
}

// IsNil reports if val is nil or a nil reference type.
func IsNil(val any) bool {
	if val == nil {
		return true
	}
	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
