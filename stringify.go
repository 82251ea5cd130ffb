package expect

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/Rican7/conjson"
	"github.com/Rican7/conjson/transform"
)

const nilText = "<nil>"

// Stringify renders value with the default RenderOptions.
func Stringify(value any) string {
	return defaultOptions.Render.Stringify(value)
}

// Stringify renders value for inclusion in a Message.
func (r RenderOptions) Stringify(value any) string {
	return r.truncate(r.stringify(value))
}

func (r RenderOptions) stringify(value any) string {
	if IsNil(value) {
		return nilText
	}
	switch v := value.(type) {
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	case string:
		return v
	}
	if r.Format == FormatJSON && isComposite(value) {
		if text, err := r.marshal(value); err == nil {
			return text
		}
	}
	return fmt.Sprintf("%v", value)
}

func (r RenderOptions) marshal(value any) (string, error) {
	var target any = value
	if r.CamelCase == OptionTrue {
		target = conjson.NewMarshaler(value,
			transform.OnlyForDirection(
				transform.Marshal,
				transform.CamelCaseKeys(false)))
	}
	b, err := json.Marshal(target)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r RenderOptions) truncate(text string) string {
	if r.MaxLength <= 0 {
		return text
	}
	if runes := []rune(text); len(runes) > r.MaxLength {
		return string(runes[:r.MaxLength]) + "..."
	}
	return text
}

func isComposite(value any) bool {
	typ := reflect.TypeOf(value)
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	switch typ.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		return true
	}
	return false
}
