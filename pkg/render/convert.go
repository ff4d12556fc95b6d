package render

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/matzehuels/waffle/pkg/errors"
)

// PDFConverter is the librsvg command used for vector export.
var PDFConverter = "rsvg-convert"

// HasPDFConverter reports whether PDF export is available on this machine.
func HasPDFConverter() bool {
	_, err := exec.LookPath(PDFConverter)
	return err == nil
}

// ToPDF converts an SVG document to a single PDF page of the same size.
// Install librsvg to enable it (brew install librsvg, apt install librsvg2-bin).
func ToPDF(svg []byte) ([]byte, error) {
	if len(svg) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty svg document")
	}
	bin, err := exec.LookPath(PDFConverter)
	if err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"pdf export requires %s from librsvg (brew install librsvg, apt install librsvg2-bin)", PDFConverter)
	}

	var out, stderr bytes.Buffer
	cmd := exec.Command(bin, "--format", "pdf", "--keep-aspect-ratio")
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: %s", PDFConverter, strings.TrimSpace(stderr.String()))
	}
	if out.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInternal, "%s produced no output", PDFConverter)
	}
	return out.Bytes(), nil
}
