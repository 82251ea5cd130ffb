package expect

type (
	// Matcher decides if the value of an Expression is acceptable and
	// explains the decision.  Matchers must not assume they are
	// evaluated only once.
	Matcher[T any] interface {
		Satisfies(expr *Expression[T]) (Result, error)
	}

	// Predicate is a Matcher returning its Result directly.
	Predicate[T any] func(expr *Expression[T]) (Result, error)
)

func (p Predicate[T]) Satisfies(expr *Expression[T]) (Result, error) {
	return p(expr)
}

// And matches when both p and other match.
func (p Predicate[T]) And(other Matcher[T]) Matcher[T] {
	return And[T](p, other)
}

// RequireNonNil fails matcher when the value under test is absent.
func RequireNonNil[T any](matcher Matcher[T]) Matcher[T] {
	if matcher == nil {
		panic("matcher cannot be nil")
	}
	return Predicate[T](func(expr *Expression[T]) (Result, error) {
		result, err := matcher.Satisfies(expr)
		if err != nil {
			return result, err
		}
		if _, present, err := expr.Evaluate(); err != nil {
			return result, err
		} else if !present {
			return Result{Fail, result.Message.AppendedBeNilHint()}, nil
		}
		return result, nil
	})
}
