package expect

import (
	"fmt"
	"strings"
)

const (
	allOfPrefix    = "match all of: "
	allOfSeparator = ", and "
)

// allOf is the conjunction of one or more matchers.
type allOf[T any] struct {
	matchers []Matcher[T]
}

// AllOf creates a Matcher that matches when every matcher matches.
// All matchers are evaluated against the same Expression, in order,
// and their descriptions and details are combined into a single Message.
// An absent value always Fails.
func AllOf[T any](first Matcher[T], rest ...Matcher[T]) Matcher[T] {
	if first == nil {
		panic("first cannot be nil")
	}
	matchers := make([]Matcher[T], 0, len(rest)+1)
	matchers = append(matchers, first)
	for i, matcher := range rest {
		if matcher == nil {
			panic(fmt.Sprintf("matcher at index %d cannot be nil", i+1))
		}
		matchers = append(matchers, matcher)
	}
	return &allOf[T]{matchers}
}

// And matches when both left and right match.
// It is identical to AllOf(left, right).
func And[T any](left, right Matcher[T]) Matcher[T] {
	return AllOf(left, right)
}

func (a *allOf[T]) Satisfies(expr *Expression[T]) (Result, error) {
	matches      := true
	descriptions := make([]string, 0, len(a.matchers))
	details      := make([]string, 0, len(a.matchers))
	for _, matcher := range a.matchers {
		result, err := matcher.Satisfies(expr)
		if err != nil {
			return Result{}, err
		}
		matches = matches && result.Matches()
		descriptions = append(descriptions, "{"+result.Message.ExpectedMessage()+"}")
		if d := result.Message.Details(); d != "" {
			details = append(details, d)
		}
	}
	description := allOfPrefix + strings.Join(descriptions, allOfSeparator)

	value, present, err := expr.Evaluate()
	if err != nil {
		return Result{}, err
	}
	if !present {
		msg := ExpectedActualValueTo(description).AppendedBeNilHint()
		return Result{Fail, msg.WithDetails(strings.Join(details, "\n"))}, nil
	}
	msg := ExpectedCustomValueTo(description, Stringify(value))
	return Result{StatusOf(matches), msg.WithDetails(strings.Join(details, "\n"))}, nil
}
