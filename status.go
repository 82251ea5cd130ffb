package expect

import "fmt"

// Status is the outcome of a single Matcher evaluation.
type Status byte

const (
	// Matches means the value satisfied the matcher.
	Matches Status = iota
	// DoesNotMatch means the value was evaluated and rejected.
	DoesNotMatch
	// Fail means the matcher could not be evaluated meaningfully,
	// e.g. the value under test was absent.
	Fail
)

// StatusOf maps a boolean outcome to Matches or DoesNotMatch.
func StatusOf(matches bool) Status {
	if matches {
		return Matches
	}
	return DoesNotMatch
}

func (s Status) Bool() bool {
	return s == Matches
}

// And combines two statuses.  Fail dominates DoesNotMatch
// which dominates Matches.
func (s Status) And(other Status) Status {
	if s == Fail || other == Fail {
		return Fail
	} else if s == DoesNotMatch || other == DoesNotMatch {
		return DoesNotMatch
	}
	return Matches
}

func (s Status) String() string {
	switch s {
	case Matches:      return "matches"
	case DoesNotMatch: return "doesNotMatch"
	case Fail:         return "fail"
	default:
		return fmt.Sprintf("Status(%d)", byte(s))
	}
}
