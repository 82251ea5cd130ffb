package expect

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Satisfy creates a Matcher from a plain boolean test.
// description completes "expected to ...".
func Satisfy[T any](description string, test func(T) bool) Matcher[T] {
	if test == nil {
		panic("test cannot be nil")
	}
	return RequireNonNil[T](Predicate[T](func(expr *Expression[T]) (Result, error) {
		value, present, err := expr.Evaluate()
		if err != nil {
			return Result{}, err
		}
		msg := ExpectedActualValueTo(description)
		if !present {
			return Result{Fail, msg}, nil
		}
		return ResultOf(test(value), msg), nil
	}))
}

// BeNil matches an absent value.
func BeNil[T any]() Matcher[T] {
	return Predicate[T](func(expr *Expression[T]) (Result, error) {
		_, present, err := expr.Evaluate()
		if err != nil {
			return Result{}, err
		}
		return ResultOf(!present, ExpectedActualValueTo("be nil")), nil
	})
}

// Equal matches values equal to expected according to cmp.Equal.
// A mismatch includes the cmp.Diff in the Message details.
func Equal[T any](expected T, opts ...cmp.Option) Matcher[T] {
	description := fmt.Sprintf("equal <%s>", Stringify(expected))
	return RequireNonNil[T](Predicate[T](func(expr *Expression[T]) (Result, error) {
		value, present, err := expr.Evaluate()
		if err != nil {
			return Result{}, err
		}
		msg := ExpectedActualValueTo(description)
		if !present {
			return Result{Fail, msg}, nil
		}
		if cmp.Equal(expected, value, opts...) {
			return Result{Matches, msg}, nil
		}
		diff := cmp.Diff(expected, value, opts...)
		return Result{DoesNotMatch, msg.WithDetails("(-expected +actual)\n" + diff)}, nil
	}))
}

func BeTrue() Matcher[bool] {
	return Satisfy("be true", func(b bool) bool { return b })
}

func BeFalse() Matcher[bool] {
	return Satisfy("be false", func(b bool) bool { return !b })
}
