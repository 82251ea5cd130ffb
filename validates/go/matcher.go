package govalidator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/hashicorp/go-multierror"
	"github.com/miruken-go/expect"
)

// BeValid matches structs passing govalidator `valid` tags.
func BeValid[T any]() expect.Matcher[T] {
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
			if !isStruct(value) {
				return expect.Result{Status: expect.Fail, Message: msg.WithDetails("not a struct")}, nil
			}
			if ok, err := govalidator.ValidateStruct(value); !ok {
				var invalid *multierror.Error
				switch e := err.(type) {
				case govalidator.Errors:
					invalid = flatten(invalid, e)
				case nil:
					invalid = multierror.Append(invalid, errors.New("failed validation"))
				default:
					invalid = multierror.Append(invalid, e)
				}
				return expect.Result{Status: expect.DoesNotMatch, Message: msg.WithDetails(invalid.Error())}, nil
			}
			return expect.Result{Status: expect.Matches, Message: msg}, nil
		}))
}

// BeEmail matches strings that are email addresses.
func BeEmail() expect.Matcher[string] {
	return expect.Satisfy("be an email", govalidator.IsEmail)
}

// BeURL matches strings that are urls.
func BeURL() expect.Matcher[string] {
	return expect.Satisfy("be a url", govalidator.IsURL)
}

func flatten(
	invalid *multierror.Error,
	errs    govalidator.Errors,
) *multierror.Error {
	for _, err := range errs {
		switch actual := err.(type) {
		case govalidator.Error:
			invalid = multierror.Append(invalid, fieldError{actual})
		case govalidator.Errors:
			invalid = flatten(invalid, actual)
		default:
			invalid = multierror.Append(invalid, err)
		}
	}
	return invalid
}

type fieldError struct {
	err govalidator.Error
}

func (e fieldError) Error() string {
	field := e.err.Name
	if path := e.err.Path; len(path) > 0 {
		field = strings.Join(path, ".") + "." + e.err.Name
	}
	return field + ": " + e.err.Err.Error()
}

func isStruct(value any) bool {
	typ := reflect.TypeOf(value)
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ.Kind() == reflect.Struct
}
