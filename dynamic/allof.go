package dynamic

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/miruken-go/expect"
	"github.com/miruken-go/expect/internal/slices"
)

const emptyAllOf = "satisfyAllOf must be called with at least one matcher"

// allOf bridges untyped matchers onto expect.AllOf.
type allOf struct {
	matchers []any
}

// SatisfyAllOf returns a Predicate matching when every matcher does.
// Each element must implement Predicate or Matcher.  An empty list
// or a non-conforming element is reported as a Fail Result.
func SatisfyAllOf(matchers []any) ErrorPredicate {
	return &allOf{matchers}
}

func (a *allOf) Satisfies(actual Actual, location expect.Location) Result {
	result, err := a.SatisfiesE(actual, location)
	if err != nil {
		return Result{StatusFail, FailMessage(fmt.Sprintf("unexpected error: %v", err))}
	}
	return result
}

func (a *allOf) SatisfiesE(actual Actual, location expect.Location) (Result, error) {
	if len(a.matchers) == 0 {
		return Result{StatusFail, FailMessage(emptyAllOf)}, nil
	}
	if actual == nil {
		panic("actual cannot be nil")
	}
	if invalid := validate(a.matchers); invalid != nil {
		return Result{StatusFail, FailMessage(invalid.Error())}, nil
	}
	wrapped := slices.Map[any, expect.Matcher[any]](a.matchers,
		func(matcher any) expect.Matcher[any] {
			return wrap(matcher, location)
		})
	expr := expect.NewExpression(func() (any, bool, error) {
		val, err := actual()
		if err != nil {
			return nil, false, err
		}
		return val, !expect.IsNil(val), nil
	}, location, true)
	result, err := expect.AllOf(wrapped[0], wrapped[1:]...).Satisfies(expr)
	if err != nil {
		return Result{}, err
	}
	return ResultFromNative(result), nil
}

func validate(matchers []any) error {
	return slices.Reduce(matchers, error(nil),
		func(invalid error, i int, matcher any) error {
			switch matcher.(type) {
			case Predicate, Matcher:
				return invalid
			}
			return multierror.Append(invalid,
				fmt.Errorf("satisfyAllOf: matcher at index %d (%T) is not a Predicate or Matcher", i, matcher))
		})
}

// wrap normalizes an untyped matcher into an expect.Matcher.
// Evaluation failures observed through the accessor are returned
// even when the untyped matcher ignores them.
func wrap(matcher any, location expect.Location) expect.Matcher[any] {
	switch m := matcher.(type) {
	case ErrorPredicate:
		return expect.Predicate[any](func(expr *expect.Expression[any]) (expect.Result, error) {
			actual, failed := accessor(expr)
			result, err := m.SatisfiesE(actual, location)
			if err == nil {
				err = failed()
			}
			return result.ToNative(), err
		})
	case Predicate:
		return expect.Predicate[any](func(expr *expect.Expression[any]) (expect.Result, error) {
			actual, failed := accessor(expr)
			result := m.Satisfies(actual, location)
			return result.ToNative(), failed()
		})
	case Matcher:
		return expect.Predicate[any](func(expr *expect.Expression[any]) (expect.Result, error) {
			actual, failed := accessor(expr)
			failure := expect.NewFailureMessage()
			pass    := m.Matches(actual, failure, location)
			return expect.ResultOf(pass, failure.ToMessage()), failed()
		})
	}
	panic(fmt.Sprintf("unrecognized matcher type %T", matcher))
}

func accessor(expr *expect.Expression[any]) (Actual, func() error) {
	var failure error
	actual := func() (any, error) {
		val, present, err := expr.Evaluate()
		if err != nil {
			failure = err
			return nil, err
		}
		if !present {
			return nil, nil
		}
		return val, nil
	}
	return actual, func() error { return failure }
}
