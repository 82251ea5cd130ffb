package expect

// Result is the outcome of evaluating a Matcher against an
// Expression: a Status and the Message explaining it.
type Result struct {
	Status  Status
	Message Message
}

// ResultOf builds a Result from a boolean outcome.
func ResultOf(matches bool, message Message) Result {
	return Result{StatusOf(matches), message}
}

func (r Result) Matches() bool {
	return r.Status == Matches
}
