// Package pipeline provides the chart pipeline shared by the CLI and the API.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Plan: allocate and assign blocks for every panel of a figure
//  2. Layout: turn the plans into pixel geometry on one canvas
//  3. Render: generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
// Layouts and artifacts are cached; planning is cheap and never is.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	fig, err := chart.LoadFile("chart.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := runner.Execute(ctx, fig, pipeline.Options{Formats: []string{"svg"}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	plans, err := runner.Plan(ctx, fig)
//	l, err := runner.Layout(ctx, fig, opts)
//	artifacts, err := runner.Render(ctx, l, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/waffle/pkg/cache"
	"github.com/matzehuels/waffle/pkg/chart"
	"github.com/matzehuels/waffle/pkg/errors"
	"github.com/matzehuels/waffle/pkg/render/layout"
	"github.com/matzehuels/waffle/pkg/render/styles"
	"github.com/matzehuels/waffle/pkg/waffle"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 640.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 480.0

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0

	// DefaultBackground is the canvas color when the figure sets none.
	DefaultBackground = "#ffffff"

	// DefaultStyle is the default visual style.
	DefaultStyle = styles.NameSimple
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats lists the supported output formats.
var ValidFormats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains the run-time configuration of the pipeline. Chart options
// live in the figure; these only control the canvas and the outputs.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options. Zero width or height falls back to the figure's size,
	// then to the defaults.
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	Background string  `json:"background,omitempty"`
	Style      string  `json:"style,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`

	// NoCache skips cache reads; fresh results are still stored.
	NoCache bool `json:"no_cache,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Plans holds one block plan per panel, in figure order.
	Plans []*waffle.Result

	// FigureHash is the content hash of the figure.
	FigureHash string

	// Layout is the computed pixel geometry.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Panels     int
	Blocks     int
	PlanTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether layout result came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, ValidFormats)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	_, err := styles.ByName(style)
	return err
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks options and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "canvas size cannot be negative")
	}
	if o.Background != "" {
		if _, err := chart.ParseColor(o.Background); err != nil {
			return err
		}
	}
	return ValidateStyle(o.Style)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale cannot be negative")
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Style != "" {
		return ValidateStyle(o.Style)
	}
	return nil
}

// CanvasSize resolves the canvas size for fig: explicit options first, then
// the figure's own size, then the defaults.
func (o *Options) CanvasSize(fig *chart.Figure) (w, h float64) {
	w, h = o.Width, o.Height
	if w == 0 && fig != nil {
		w = fig.Width
	}
	if h == 0 && fig != nil {
		h = fig.Height
	}
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	return w, h
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts(fig *chart.Figure) cache.LayoutKeyOpts {
	w, h := o.CanvasSize(fig)
	return cache.LayoutKeyOpts{
		Width:      w,
		Height:     h,
		Style:      o.Style,
		Background: o.Background,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format, Style: o.Style}
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}
