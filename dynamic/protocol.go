package dynamic

import (
	"fmt"

	"github.com/miruken-go/expect"
)

type (
	// Actual returns the value under test to an untyped matcher.
	// A nil value means absent.
	Actual func() (any, error)

	// Matcher is the untyped callback protocol.  The explanation is
	// recorded into the supplied FailureMessage.
	Matcher interface {
		Matches(
			actual   Actual,
			failure  *expect.FailureMessage,
			location expect.Location,
		) bool
	}

	// Predicate is the untyped protocol returning a Result.
	Predicate interface {
		Satisfies(actual Actual, location expect.Location) Result
	}

	// ErrorPredicate is a Predicate able to surface evaluation
	// failures instead of folding them into the Result.
	ErrorPredicate interface {
		Predicate
		SatisfiesE(actual Actual, location expect.Location) (Result, error)
	}

	// MatcherFunc adapts a function to Matcher.
	MatcherFunc func(
		actual   Actual,
		failure  *expect.FailureMessage,
		location expect.Location,
	) bool

	// PredicateFunc adapts a function to Predicate.
	PredicateFunc func(actual Actual, location expect.Location) Result

	// Status mirrors expect.Status for untyped callers.
	Status int

	// Message mirrors expect.Message for untyped callers.
	Message struct {
		msg expect.Message
	}

	// Result is the untyped outcome of a Predicate.
	Result struct {
		Status  Status
		Message Message
	}
)

const (
	StatusMatches Status = iota
	StatusDoesNotMatch
	StatusFail
)


// MatcherFunc

func (f MatcherFunc) Matches(
	actual   Actual,
	failure  *expect.FailureMessage,
	location expect.Location,
) bool {
	return f(actual, failure, location)
}


// PredicateFunc

func (f PredicateFunc) Satisfies(actual Actual, location expect.Location) Result {
	return f(actual, location)
}


// Status

func (s Status) String() string {
	switch s {
	case StatusMatches:      return "matches"
	case StatusDoesNotMatch: return "doesNotMatch"
	case StatusFail:         return "fail"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

func (s Status) ToNative() expect.Status {
	switch s {
	case StatusMatches:      return expect.Matches
	case StatusDoesNotMatch: return expect.DoesNotMatch
	default:                 return expect.Fail
	}
}

func StatusFromNative(status expect.Status) Status {
	switch status {
	case expect.Matches:      return StatusMatches
	case expect.DoesNotMatch: return StatusDoesNotMatch
	default:                  return StatusFail
	}
}


// Message

// FailMessage creates a Message rendered verbatim.
func FailMessage(text string) Message {
	return Message{expect.FailMessage(text)}
}

func ExpectedTo(description string) Message {
	return Message{expect.ExpectedTo(description)}
}

func ExpectedActualValueTo(description string) Message {
	return Message{expect.ExpectedActualValueTo(description)}
}

func ExpectedCustomValueTo(description, actual string) Message {
	return Message{expect.ExpectedCustomValueTo(description, actual)}
}

func (m Message) Description() string {
	return m.msg.ExpectedMessage()
}

func (m Message) Render(actual string) string {
	return m.msg.Render(actual)
}

func (m Message) ToNative() expect.Message {
	return m.msg
}


// Result

func (r Result) Matches() bool {
	return r.Status == StatusMatches
}

func (r Result) ToNative() expect.Result {
	return expect.Result{Status: r.Status.ToNative(), Message: r.Message.msg}
}

func ResultFromNative(result expect.Result) Result {
	return Result{StatusFromNative(result.Status), Message{result.Message}}
}
