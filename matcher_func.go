package expect

type (
	// LegacyMatcher records its explanation into a FailureMessage
	// instead of returning it.
	LegacyMatcher[T any] interface {
		Matches(expr *Expression[T], failure *FailureMessage) (bool, error)
	}

	// MatcherFunc is a callback style matcher.
	MatcherFunc[T any] func(expr *Expression[T], failure *FailureMessage) (bool, error)

	// NonNilMatcherFunc is a callback style matcher that never
	// matches an absent value.
	NonNilMatcherFunc[T any] func(expr *Expression[T], failure *FailureMessage) (bool, error)

	legacyMatcher[T any] struct {
		LegacyMatcher[T]
	}
)


// MatcherFunc

func (f MatcherFunc[T]) Matches(
	expr    *Expression[T],
	failure *FailureMessage,
) (bool, error) {
	return f(expr, failure)
}

func (f MatcherFunc[T]) Satisfies(expr *Expression[T]) (Result, error) {
	return satisfyLegacy[T](f, expr)
}

func (f MatcherFunc[T]) And(other Matcher[T]) Matcher[T] {
	return And[T](f, other)
}


// NonNilMatcherFunc

func (f NonNilMatcherFunc[T]) Matches(
	expr    *Expression[T],
	failure *FailureMessage,
) (bool, error) {
	pass, err := f(expr, failure)
	if err != nil {
		return false, err
	}
	if _, present, err := expr.Evaluate(); err != nil {
		return false, err
	} else if !present {
		failure.PostfixActual = beNilHint
		return false, nil
	}
	return pass, nil
}

func (f NonNilMatcherFunc[T]) Satisfies(expr *Expression[T]) (Result, error) {
	result, err := satisfyLegacy[T](f, expr)
	if err != nil {
		return result, err
	}
	if _, present, err := expr.Evaluate(); err != nil {
		return Result{}, err
	} else if !present {
		result.Status = Fail
	}
	return result, nil
}

func (f NonNilMatcherFunc[T]) And(other Matcher[T]) Matcher[T] {
	return And[T](f, other)
}


// legacyMatcher

func (m legacyMatcher[T]) Satisfies(expr *Expression[T]) (Result, error) {
	return satisfyLegacy(m.LegacyMatcher, expr)
}

// FromLegacy adapts a LegacyMatcher to the Matcher contract.
func FromLegacy[T any](matcher LegacyMatcher[T]) Matcher[T] {
	if matcher == nil {
		panic("matcher cannot be nil")
	}
	if m, ok := matcher.(Matcher[T]); ok {
		return m
	}
	return legacyMatcher[T]{matcher}
}

func satisfyLegacy[T any](
	matcher LegacyMatcher[T],
	expr    *Expression[T],
) (Result, error) {
	failure := NewFailureMessage()
	pass, err := matcher.Matches(expr, failure)
	if err != nil {
		return Result{Fail, failure.ToMessage()}, err
	}
	return ResultOf(pass, failure.ToMessage()), nil
}
