// Package pipeline provides the load → layout → render pipeline.
//
// The pipeline takes a graph file, computes a layout for each connected
// component with the configured secondary algorithm, packs the
// components into a compact arrangement, and renders the result. CLI
// and API share this package so both behave identically.
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Engine:  "dot",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, file, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	apperrors "github.com/splitpack/splitpack/pkg/errors"
	"github.com/splitpack/splitpack/pkg/layout"
	"github.com/splitpack/splitpack/pkg/layout/graphviz"
)

// EngineCircular selects the builtin circular layout instead of a
// graphviz engine.
const EngineCircular = "circular"

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	Engine      string  `json:"engine,omitempty"`
	TargetRatio float64 `json:"target_ratio,omitempty"`
	Border      float64 `json:"border,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Margin  float64  `json:"margin,omitempty"`
	Labels  bool     `json:"labels,omitempty"`

	// Refresh bypasses the cache and recomputes.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperrors.New(apperrors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateEngine checks that an engine name is valid.
func ValidateEngine(engine string) error {
	if engine == EngineCircular || graphviz.ValidEngine(engine) {
		return nil
	}
	return apperrors.New(apperrors.ErrCodeInvalidEngine, "invalid engine: %q (must be a graphviz engine or %q)", engine, EngineCircular)
}

// ValidateAndSetDefaults checks fields and applies defaults. This
// method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Engine == "" {
		o.Engine = string(graphviz.Dot)
	}
	if err := ValidateEngine(o.Engine); err != nil {
		return err
	}
	if o.TargetRatio == 0 {
		o.TargetRatio = layout.DefaultTargetRatio
	}
	if o.TargetRatio < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidOptions, "invalid target_ratio: %v (must be positive)", o.TargetRatio)
	}
	if o.Border < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidOptions, "invalid border: %v (must be non-negative)", o.Border)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Margin == 0 {
		o.Margin = 10
	}
	if o.Margin < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidOptions, "invalid margin: %v (must be non-negative)", o.Margin)
	}
	for _, f := range o.Formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// border returns the configured border, falling back to the default.
// A zero border is representable in config but the zero value of
// Options means "unset".
func (o *Options) border() float64 {
	if o.Border == 0 {
		return layout.DefaultBorder
	}
	return o.Border
}

// keyOpts returns the option values that influence layout output, for
// cache key construction.
func (o *Options) keyOpts() []any {
	return []any{o.Engine, o.TargetRatio, o.border()}
}
