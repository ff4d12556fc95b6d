package source

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/waffle/pkg/chart"
	"github.com/matzehuels/waffle/pkg/errors"
)

// ReadXLSX reads values from an Excel workbook.
func ReadXLSX(r io.Reader, opts Options) (chart.Values, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return chart.Values{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "open workbook")
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return chart.Values{}, errors.New(errors.ErrCodeInvalidInput,
			"sheet %q not found (have: %v)", sheet, f.GetSheetList())
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return chart.Values{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read sheet %q", sheet)
	}
	return fromRows(rows, opts)
}
