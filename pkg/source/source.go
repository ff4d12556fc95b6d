// Package source reads chart values from tabular data files.
//
// Each data row contributes one category: a label column and a value column,
// named with spreadsheet letters ("A", "B", ...) in every format. A leading
// row whose value cell is not a number is treated as a header. Empty rows are
// skipped and row order becomes category order.
package source

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/waffle/pkg/chart"
	"github.com/matzehuels/waffle/pkg/errors"
)

// Supported data file formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Default columns.
const (
	DefaultLabelColumn = "A"
	DefaultValueColumn = "B"
)

// Options selects where values are read from.
type Options struct {
	// Sheet is the worksheet of an .xlsx file. Empty selects the first sheet.
	Sheet string
	// LabelColumn and ValueColumn are column letters.
	LabelColumn string
	ValueColumn string
}

func (o *Options) setDefaults() {
	if o.LabelColumn == "" {
		o.LabelColumn = DefaultLabelColumn
	}
	if o.ValueColumn == "" {
		o.ValueColumn = DefaultValueColumn
	}
}

// columns converts the column letters to zero-based indices.
func (o Options) columns() (label, value int, err error) {
	label, err = excelize.ColumnNameToNumber(strings.ToUpper(o.LabelColumn))
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid label column %q", o.LabelColumn)
	}
	value, err = excelize.ColumnNameToNumber(strings.ToUpper(o.ValueColumn))
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid value column %q", o.ValueColumn)
	}
	if label == value {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "label and value columns must differ")
	}
	return label - 1, value - 1, nil
}

// DetectFormat returns the data format implied by the file extension.
func DetectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unsupported data file %q (must be .csv or .xlsx)", filepath.Base(path))
}

// ReadValues loads labeled values from a .csv or .xlsx file.
func ReadValues(path string, opts Options) (chart.Values, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return chart.Values{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return chart.Values{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "open data file")
	}
	defer f.Close()

	if format == FormatXLSX {
		return ReadXLSX(f, opts)
	}
	return ReadCSV(f, opts)
}

// fromRows turns table rows into values.
func fromRows(rows [][]string, opts Options) (chart.Values, error) {
	opts.setDefaults()
	li, vi, err := opts.columns()
	if err != nil {
		return chart.Values{}, err
	}

	var v chart.Values
	for n, row := range rows {
		label, value := cell(row, li), cell(row, vi)
		if label == "" && value == "" {
			continue
		}
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			if len(v.Numbers) == 0 && isFirstRow(rows, n) {
				continue // header
			}
			return chart.Values{}, errors.New(errors.ErrCodeInvalidValues,
				"row %d: value %q is not a number", n+1, value)
		}
		v.Labels = append(v.Labels, label)
		v.Numbers = append(v.Numbers, num)
	}
	if len(v.Numbers) == 0 {
		return chart.Values{}, errors.New(errors.ErrCodeInvalidValues, "no values found")
	}
	return v, nil
}

// isFirstRow reports whether rows[n] is the first non-empty row.
func isFirstRow(rows [][]string, n int) bool {
	for i := range n {
		for _, c := range rows[i] {
			if strings.TrimSpace(c) != "" {
				return false
			}
		}
	}
	return true
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}
