package expect

import "strings"

// FailureMessage is the mutable carrier filled in by callback style
// matchers.  A fresh carrier is created for every evaluation and is
// converted into an immutable Message before the result escapes.
type FailureMessage struct {
	Expected        string
	To              string
	PostfixMessage  string
	PostfixActual   string
	ActualValue     *string
	ExtendedMessage string
	UserDescription string
	override        string
}

const (
	defaultExpected = "expected"
	defaultTo       = "to"
	defaultPostfix  = "match"
)

// NewFailureMessage returns a carrier with the default wording.
func NewFailureMessage() *FailureMessage {
	empty := ""
	return &FailureMessage{
		Expected:       defaultExpected,
		To:             defaultTo,
		PostfixMessage: defaultPostfix,
		ActualValue:    &empty,
	}
}

// SetActual records the rendering of the actual value.
func (f *FailureMessage) SetActual(actual string) {
	f.ActualValue = &actual
}

// ClearActual marks the actual value as not applicable.
func (f *FailureMessage) ClearActual() {
	f.ActualValue = nil
}

// Override replaces the rendered text entirely.
func (f *FailureMessage) Override(text string) {
	f.override = text
}

func (f *FailureMessage) String() string {
	if f.override != "" {
		return f.override
	}
	var b strings.Builder
	if f.UserDescription != "" {
		b.WriteString(f.UserDescription)
		b.WriteString("\n")
	}
	b.WriteString(f.Expected)
	b.WriteString(" ")
	b.WriteString(f.To)
	b.WriteString(" ")
	b.WriteString(f.PostfixMessage)
	if f.ActualValue != nil && *f.ActualValue != "" {
		b.WriteString(", got ")
		b.WriteString(*f.ActualValue)
	}
	b.WriteString(f.PostfixActual)
	if f.ExtendedMessage != "" {
		b.WriteString("\n")
		b.WriteString(f.ExtendedMessage)
	}
	return b.String()
}

// ToMessage converts the carrier contents into a Message.
func (f *FailureMessage) ToMessage() Message {
	if f.Expected != defaultExpected || f.override != "" {
		return FailMessage(f.String())
	}
	msg := FailMessage(f.UserDescription)
	if f.ActualValue != nil && *f.ActualValue != "" {
		msg = ExpectedCustomValueTo(f.PostfixMessage, *f.ActualValue)
	} else if f.PostfixMessage != defaultPostfix {
		if f.ActualValue == nil {
			msg = ExpectedTo(f.PostfixMessage)
		} else {
			msg = ExpectedActualValueTo(f.PostfixMessage)
		}
	}
	if f.PostfixActual != "" {
		msg = msg.Appended(f.PostfixActual)
	}
	if f.ExtendedMessage != "" {
		msg = msg.WithDetails(f.ExtendedMessage)
	}
	return msg
}
