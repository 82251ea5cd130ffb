package log

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/miruken-go/expect"
)

type (
	// Tracer configures how matcher evaluations are logged.
	Tracer struct {
		verbosity int
		name      string
	}

	// traced logs the evaluation of a Matcher.
	traced[T any] struct {
		matcher expect.Matcher[T]
		logger  logr.Logger
		tracer  Tracer
	}
)

// Tracer

func (t *Tracer) SetVerbosity(verbosity int) {
	t.verbosity = verbosity
}

func (t *Tracer) SetName(name string) {
	t.name = name
}

// InitWithTag reads the verbosity from a `log:"verbosity=n"` tag value.
func (t *Tracer) InitWithTag(tag string) error {
	_, err := fmt.Sscanf(tag, "verbosity=%d", &t.verbosity)
	return err
}

// Verbosity sets the level used when logging.
func Verbosity(verbosity int) func(*Tracer) {
	return func(tracer *Tracer) {
		tracer.SetVerbosity(verbosity)
	}
}

// Name names the logger used when logging.
func Name(name string) func(*Tracer) {
	return func(tracer *Tracer) {
		tracer.SetName(name)
	}
}

// Trace decorates matcher to log every evaluation.
func Trace[T any](
	matcher expect.Matcher[T],
	logger  logr.Logger,
	config  ...func(*Tracer),
) expect.Matcher[T] {
	if matcher == nil {
		panic("matcher cannot be nil")
	}
	var tracer Tracer
	for _, configure := range config {
		if configure != nil {
			configure(&tracer)
		}
	}
	if tracer.name == "" {
		tracer.name = fmt.Sprintf("%T", matcher)
	}
	return &traced[T]{matcher, logger, tracer}
}

// traced

func (t *traced[T]) Satisfies(expr *expect.Expression[T]) (expect.Result, error) {
	logger := t.logger.V(t.tracer.verbosity)
	if !logger.Enabled() {
		return t.matcher.Satisfies(expr)
	}
	logger = logger.WithName(t.tracer.name).
		WithValues("location", expr.Location().String())
	start := time.Now()
	result, err := t.matcher.Satisfies(expr)
	if err != nil {
		logError(err, start, logger)
		return result, err
	}
	logger.Info("evaluated",
		"status", result.Status.String(),
		"expected", result.Message.ExpectedMessage(),
		"duration", time.Since(start).String())
	return result, nil
}

func logError(
	err    error,
	start  time.Time,
	logger logr.Logger,
) {
	logger.Error(err, "failed", "duration", time.Since(start).String())
}
