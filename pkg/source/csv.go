package source

import (
	"encoding/csv"
	"io"

	"github.com/matzehuels/waffle/pkg/chart"
	"github.com/matzehuels/waffle/pkg/errors"
)

// ReadCSV reads values from comma separated data.
func ReadCSV(r io.Reader, opts Options) (chart.Values, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return chart.Values{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse csv")
	}
	return fromRows(rows, opts)
}
