package expect

import (
	"github.com/go-logr/logr"
	"github.com/imdario/mergo"
)

// OptionBool should be used in option structs instead of bool to
// be able to represent a bool not set.  Otherwise, the Zero value
// for of a bool cannot be distinguished from false.
type OptionBool byte
const (
	OptionNone OptionBool = iota
	OptionFalse
	OptionTrue
)

func (b OptionBool) Bool() bool {
	switch b {
	case OptionFalse: return false
	case OptionTrue: return true
	default:
		panic("only OptionFalse and OptionTrue can convert to a bool")
	}
}

// Format selects how actual values are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type (
	// RenderOptions control how actual values are rendered.
	RenderOptions struct {
		Format    Format     `path:"format"`
		CamelCase OptionBool `path:"camelCase"`
		MaxLength int        `path:"maxLength"`
	}

	// Options control an Expectation.
	Options struct {
		Render    RenderOptions `path:"render"`
		Verbosity int           `path:"verbosity"`
		Logger    logr.Logger   `path:"-"`
	}
)

// MergeOptions merges the set fields of from into unset fields of into.
func MergeOptions(from, into any) bool {
	return mergo.Merge(into, from, mergo.WithAppendSlice) == nil
}

// WithRender sets the RenderOptions.
func WithRender(render RenderOptions) func(*Options) {
	return func(o *Options) {
		o.Render = render
	}
}

// WithLogger sets the logger used to trace verifications.
func WithLogger(logger logr.Logger) func(*Options) {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithVerbosity sets the log level used to trace verifications.
func WithVerbosity(verbosity int) func(*Options) {
	return func(o *Options) {
		o.Verbosity = verbosity
	}
}

// WithOptions merges options loaded elsewhere, e.g. from configuration,
// into fields not explicitly set.
func WithOptions(options Options) func(*Options) {
	return func(o *Options) {
		MergeOptions(&options, o)
	}
}

func buildOptions(config []func(*Options)) Options {
	var options Options
	for _, configure := range config {
		if configure != nil {
			configure(&options)
		}
	}
	MergeOptions(&defaultOptions, &options)
	if options.Logger.GetSink() == nil {
		options.Logger = logr.Discard()
	}
	return options
}

var defaultOptions = Options{
	Render: RenderOptions{
		Format:    FormatText,
		CamelCase: OptionTrue,
	},
}
