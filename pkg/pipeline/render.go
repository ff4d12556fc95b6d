package pipeline

import (
	"github.com/matzehuels/waffle/pkg/errors"
	"github.com/matzehuels/waffle/pkg/render/layout"
	"github.com/matzehuels/waffle/pkg/render/sink"
	"github.com/matzehuels/waffle/pkg/render/styles"
)

// RenderFromLayout generates output artifacts in the requested formats.
// An empty opts.Style keeps the style recorded in the layout.
func RenderFromLayout(l layout.Layout, opts Options) (map[string][]byte, error) {
	opts = applyLayoutMetadata(opts, l)
	opts.SetRenderDefaults()

	style, err := styles.ByName(opts.Style)
	if err != nil {
		return nil, err
	}
	svgOpts := []sink.SVGOption{sink.WithStyle(style)}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithScale(opts.Scale), sink.WithPNGStyle(style))
		case FormatPDF:
			data, err = sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(l)
		default:
			return nil, ValidateFormat(format)
		}

		if err != nil {
			return nil, errors.Wrap(codeOf(err), err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// RenderFromLayoutData renders output from serialized layout data.
func RenderFromLayoutData(layoutData []byte, opts Options) (map[string][]byte, error) {
	l, err := layout.UnmarshalLayout(layoutData)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse layout")
	}
	return RenderFromLayout(l, opts)
}

// applyLayoutMetadata applies layout metadata to options if not already set.
// This ensures that serialized layouts keep their original rendering settings.
func applyLayoutMetadata(opts Options, l layout.Layout) Options {
	if opts.Style == "" && l.Style != "" {
		opts.Style = l.Style
	}
	return opts
}
