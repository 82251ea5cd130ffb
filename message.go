package expect

import "strings"

type (
	// MessageKind identifies how a Message is rendered.
	MessageKind byte

	// Message describes what a matcher expected.
	// It is immutable and carries enough structure to render
	// "expected to <description>, got <actual>".
	Message struct {
		kind    MessageKind
		expect  string
		actual  string
		appends string
		details string
	}
)

const (
	// KindFail renders the description verbatim.
	KindFail MessageKind = iota
	// KindExpectedTo omits the actual value entirely.
	KindExpectedTo
	// KindExpectedActualValueTo renders the actual value supplied by the reporter.
	KindExpectedActualValueTo
	// KindExpectedCustomValueTo renders the actual value captured by the matcher.
	KindExpectedCustomValueTo
)

const beNilHint = " (use BeNil() to match nils)"

// FailMessage builds a Message that renders text as is.
func FailMessage(text string) Message {
	return Message{kind: KindFail, expect: text}
}

// ExpectedTo builds a Message without any actual value.
func ExpectedTo(description string) Message {
	return Message{kind: KindExpectedTo, expect: description}
}

// ExpectedActualValueTo builds a Message whose actual value is
// rendered by the reporter.
func ExpectedActualValueTo(description string) Message {
	return Message{kind: KindExpectedActualValueTo, expect: description}
}

// ExpectedCustomValueTo builds a Message with a matcher supplied
// rendering of the actual value.
func ExpectedCustomValueTo(description, actual string) Message {
	return Message{kind: KindExpectedCustomValueTo, expect: description, actual: actual}
}

func (m Message) Kind() MessageKind {
	return m.kind
}

// ExpectedMessage returns the description used when composing
// this message into a larger one.
func (m Message) ExpectedMessage() string {
	return m.expect + m.appends
}

// Actual returns the custom actual value rendering, if any.
func (m Message) Actual() (string, bool) {
	return m.actual, m.kind == KindExpectedCustomValueTo
}

func (m Message) Details() string {
	return m.details
}

// Appended returns a copy with suffix appended to the description.
func (m Message) Appended(suffix string) Message {
	m.appends += suffix
	return m
}

// AppendedBeNilHint returns a copy hinting that nil requires BeNil.
func (m Message) AppendedBeNilHint() Message {
	if strings.HasSuffix(m.appends, beNilHint) {
		return m
	}
	return m.Appended(beNilHint)
}

// WithDetails returns a copy with extended details rendered
// on the lines following the message.
func (m Message) WithDetails(details string) Message {
	if m.details == "" {
		m.details = details
	} else if details != "" {
		m.details += "\n" + details
	}
	return m
}

// Render produces the final text using actual as the rendering
// of the value under test when the message did not capture one.
func (m Message) Render(actual string) string {
	return m.RenderTo("to", actual)
}

// RenderTo is Render with the verb joining "expected" and
// the description, e.g. "to not".
func (m Message) RenderTo(to, actual string) string {
	var b strings.Builder
	if m.kind == KindFail {
		b.WriteString(m.ExpectedMessage())
	} else {
		b.WriteString("expected ")
		b.WriteString(to)
		b.WriteString(" ")
		b.WriteString(m.ExpectedMessage())
		switch m.kind {
		case KindExpectedActualValueTo:
			b.WriteString(", got ")
			b.WriteString(actual)
		case KindExpectedCustomValueTo:
			b.WriteString(", got ")
			b.WriteString(m.actual)
		}
	}
	if m.details != "" {
		b.WriteString("\n")
		b.WriteString(m.details)
	}
	return b.String()
}
