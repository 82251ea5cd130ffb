package expect

import "github.com/go-logr/logr"

type (
	// TestingT is the subset of testing.T used to report failures.
	TestingT interface {
		Helper()
		Errorf(format string, args ...any)
	}

	// Expectation verifies matchers against a single Expression
	// and reports failures to a TestingT.
	Expectation[T any] struct {
		t       TestingT
		expr    *Expression[T]
		options Options
	}
)

// That starts an Expectation over value.
func That[T any](
	t      TestingT,
	value  T,
	config ...func(*Options),
) *Expectation[T] {
	expr := NewExpression(func() (T, bool, error) {
		return value, !IsNil(value), nil
	}, CallerLocation(1), true)
	return ThatExpr(t, expr, config...)
}

// ThatExpr starts an Expectation over expr.
func ThatExpr[T any](
	t      TestingT,
	expr   *Expression[T],
	config ...func(*Options),
) *Expectation[T] {
	if t == nil {
		panic("t cannot be nil")
	}
	if expr == nil {
		panic("expr cannot be nil")
	}
	return &Expectation[T]{t, expr, buildOptions(config)}
}

// To reports a failure unless matcher matches.
func (e *Expectation[T]) To(matcher Matcher[T]) bool {
	e.t.Helper()
	return e.verify(matcher, Matches, "to")
}

// ToNot reports a failure unless matcher does not match.
// A Fail status fails in both directions.
func (e *Expectation[T]) ToNot(matcher Matcher[T]) bool {
	e.t.Helper()
	return e.verify(matcher, DoesNotMatch, "to not")
}

func (e *Expectation[T]) verify(
	matcher Matcher[T],
	want    Status,
	to      string,
) bool {
	e.t.Helper()
	if matcher == nil {
		panic("matcher cannot be nil")
	}
	location := e.expr.Location()
	logger   := e.options.Logger.V(e.options.Verbosity).
		WithValues("location", location.String())

	result, err := matcher.Satisfies(e.expr)
	if err != nil {
		logger.Error(err, "evaluation failed")
		e.t.Errorf("%s: unexpected error: %v", location, err)
		return false
	}
	passed := result.Status == want
	logger.Info("verified", "status", result.Status.String(), "passed", passed)
	if !passed {
		e.t.Errorf("%s: %s", location, result.Message.RenderTo(to, e.actual()))
	}
	return passed
}

func (e *Expectation[T]) actual() string {
	value, present, err := e.expr.Evaluate()
	if err != nil || !present {
		return nilText
	}
	return e.options.Render.Stringify(value)
}

// Logger returns the logger tracing this Expectation.
func (e *Expectation[T]) Logger() logr.Logger {
	return e.options.Logger
}
