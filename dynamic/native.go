package dynamic

import (
	"fmt"
	"reflect"

	"github.com/miruken-go/expect"
)

// native exposes an expect.Matcher to untyped callers.
type native[T any] struct {
	matcher expect.Matcher[T]
}

// FromNative returns a Predicate evaluating matcher against values
// of type T.  Present values of any other type Fail.
func FromNative[T any](matcher expect.Matcher[T]) ErrorPredicate {
	if matcher == nil {
		panic("matcher cannot be nil")
	}
	return &native[T]{matcher}
}

func (n *native[T]) Satisfies(actual Actual, location expect.Location) Result {
	result, err := n.SatisfiesE(actual, location)
	if err != nil {
		return Result{StatusFail, FailMessage(fmt.Sprintf("unexpected error: %v", err))}
	}
	return result
}

func (n *native[T]) SatisfiesE(actual Actual, location expect.Location) (Result, error) {
	var mismatch any
	expr := expect.NewExpression(func() (T, bool, error) {
		var zero T
		val, err := actual()
		if err != nil || val == nil {
			return zero, false, err
		}
		if typed, ok := val.(T); ok {
			return typed, !expect.IsNil(typed), nil
		}
		mismatch = val
		return zero, false, nil
	}, location, true)
	result, err := n.matcher.Satisfies(expr)
	if err != nil {
		return Result{}, err
	}
	if mismatch != nil {
		return Result{StatusFail, ExpectedCustomValueTo(
			"be of type "+reflect.TypeOf((*T)(nil)).Elem().String(),
			fmt.Sprintf("%T", mismatch))}, nil
	}
	return ResultFromNative(result), nil
}
