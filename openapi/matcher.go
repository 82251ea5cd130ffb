package openapi

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/miruken-go/expect"
)

// MatchSchema matches values whose json representation
// satisfies schema.  Violations are listed in the Message details.
func MatchSchema[T any](schema *openapi3.Schema) expect.Matcher[T] {
	if schema == nil {
		panic("schema cannot be nil")
	}
	description := "match schema"
	if schema.Title != "" {
		description = fmt.Sprintf("match schema %q", schema.Title)
	}
	return expect.RequireNonNil[T](expect.Predicate[T](
		func(expr *expect.Expression[T]) (expect.Result, error) {
			value, present, err := expr.Evaluate()
			if err != nil {
				return expect.Result{}, err
			}
			msg := expect.ExpectedActualValueTo(description)
			if !present {
				return expect.Result{Status: expect.Fail, Message: msg}, nil
			}
			data, err := toJSON(value)
			if err != nil {
				return expect.Result{Status: expect.Fail, Message: msg.WithDetails(err.Error())}, nil
			}
			if err := schema.VisitJSON(data, openapi3.MultiErrors()); err != nil {
				return expect.Result{Status: expect.DoesNotMatch, Message: msg.WithDetails(err.Error())}, nil
			}
			return expect.Result{Status: expect.Matches, Message: msg}, nil
		}))
}

// MatchComponent matches values against a named component schema.
func MatchComponent[T any](doc *openapi3.T, name string) expect.Matcher[T] {
	if doc == nil {
		panic("doc cannot be nil")
	}
	ref, ok := doc.Components.Schemas[name]
	if !ok || ref.Value == nil {
		panic(fmt.Sprintf("schema %q not found", name))
	}
	schema := ref.Value
	if schema.Title == "" {
		titled      := *schema
		titled.Title = name
		schema = &titled
	}
	return MatchSchema[T](schema)
}

// toJSON converts value to the generic form expected by VisitJSON.
func toJSON(value any) (any, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var data any
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, err
	}
	return data, nil
}
