package config

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/miruken-go/expect"
)

type (
	// Settings is the configurable subset of expect.Options.
	Settings struct {
		Render    RenderSettings `path:"render"`
		Verbosity int            `path:"verbosity"`
	}

	// RenderSettings configure expect.RenderOptions.
	RenderSettings struct {
		Format    string `path:"format"`
		CamelCase *bool  `path:"camelCase"`
		MaxLength int    `path:"maxLength"`
	}
)

// Validate reports every invalid setting.
func (s Settings) Validate() error {
	var invalid error
	switch expect.Format(s.Render.Format) {
	case "", expect.FormatText, expect.FormatJSON:
	default:
		invalid = multierror.Append(invalid,
			fmt.Errorf("render.format %q must be %q or %q",
				s.Render.Format, expect.FormatText, expect.FormatJSON))
	}
	if s.Render.MaxLength < 0 {
		invalid = multierror.Append(invalid,
			fmt.Errorf("render.maxLength %d cannot be negative", s.Render.MaxLength))
	}
	if s.Verbosity < 0 {
		invalid = multierror.Append(invalid,
			fmt.Errorf("verbosity %d cannot be negative", s.Verbosity))
	}
	return invalid
}

// Options converts the settings into expect.Options.
func (s Settings) Options() expect.Options {
	camelCase := expect.OptionNone
	if c := s.Render.CamelCase; c != nil {
		if *c {
			camelCase = expect.OptionTrue
		} else {
			camelCase = expect.OptionFalse
		}
	}
	return expect.Options{
		Render: expect.RenderOptions{
			Format:    expect.Format(s.Render.Format),
			CamelCase: camelCase,
			MaxLength: s.Render.MaxLength,
		},
		Verbosity: s.Verbosity,
	}
}

// Load reads and validates the Settings at path.
func Load(provider Provider, path string) (expect.Options, error) {
	if provider == nil {
		panic("provider cannot be nil")
	}
	var settings Settings
	if err := provider.Unmarshal(path, false, &settings); err != nil {
		return expect.Options{}, fmt.Errorf("config: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return expect.Options{}, fmt.Errorf("config: %w", err)
	}
	return settings.Options(), nil
}
