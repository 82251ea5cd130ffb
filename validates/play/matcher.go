package play

import (
	"sort"
	"strings"

	ut "github.com/go-playground/universal-translator"
	play "github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/miruken-go/expect"
)

type (
	// Options control struct validation.
	Options struct {
		validate   *play.Validate
		translator ut.Translator
	}

	// Rules express the validation behavior explicitly
	// without depending on validation struct tags.
	Rules []struct{ Type any; Rules map[string]string }
)

// WithValidate uses an existing validator.
func WithValidate(validate *play.Validate) func(*Options) {
	return func(o *Options) {
		o.validate = validate
	}
}

// WithTranslator translates validation errors.
func WithTranslator(translator ut.Translator) func(*Options) {
	return func(o *Options) {
		o.translator = translator
	}
}

// WithRules builds a validator from explicit rules.
func WithRules(rules Rules) func(*Options) {
	if rules == nil {
		panic("rules cannot be nil")
	}
	return func(o *Options) {
		val := play.New()
		for _, rule := range rules {
			val.RegisterStructValidationMapRules(rule.Rules, rule.Type)
		}
		o.validate = val
	}
}

// BeValid matches structs passing go-playground validation.
// Each failed field is listed in the Message details.
func BeValid[T any](config ...func(*Options)) expect.Matcher[T] {
	var options Options
	for _, configure := range config {
		if configure != nil {
			configure(&options)
		}
	}
	if options.validate == nil {
		options.validate = play.New()
	}
	return expect.RequireNonNil[T](expect.Predicate[T](
		func(expr *expect.Expression[T]) (expect.Result, error) {
			value, present, err := expr.Evaluate()
			if err != nil {
				return expect.Result{}, err
			}
			msg := expect.ExpectedActualValueTo("be valid")
			if !present {
				return expect.Result{Status: expect.Fail, Message: msg}, nil
			}
			switch e := options.validate.Struct(value).(type) {
			case nil:
				return expect.Result{Status: expect.Matches, Message: msg}, nil
			case play.ValidationErrors:
				details := options.describe(e)
				return expect.Result{Status: expect.DoesNotMatch, Message: msg.WithDetails(details)}, nil
			default:
				return expect.Result{Status: expect.Fail, Message: msg.WithDetails(e.Error())}, nil
			}
		}))
}

func (o *Options) describe(fieldErrors play.ValidationErrors) string {
	var invalid *multierror.Error
	if o.translator == nil {
		for _, err := range fieldErrors {
			invalid = multierror.Append(invalid, err)
		}
	} else {
		translated := fieldErrors.Translate(o.translator)
		fields     := make([]string, 0, len(translated))
		for field := range translated {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			invalid = multierror.Append(invalid, fieldError{path(field), translated[field]})
		}
	}
	return invalid.Error()
}

type fieldError struct {
	field string
	msg   string
}

func (e fieldError) Error() string {
	return e.field + ": " + e.msg
}

func path(namespace string) string {
	if parts := strings.SplitN(namespace, ".", 2); len(parts) > 1 {
		return parts[1]
	}
	return namespace
}
