package contracts

import (
	"github.com/xuri/excelize/v2"
	"strconv"
)

type GridDocument struct {
	Rows    int        `json:"rows"`
	Cols    int        `json:"cols"`
	Headers []string   `json:"headers"`
	Data    [][]string `json:"data"`
}

const DefaultRows = 5
const DefaultCols = 4

func DefaultGridDocument() *GridDocument {
	document := &GridDocument{
		Rows:    DefaultRows,
		Cols:    DefaultCols,
		Headers: DefaultHeaders(DefaultCols),
		Data:    make([][]string, DefaultRows),
	}

	for row := range document.Data {
		document.Data[row] = make([]string, DefaultCols)
		for col := range document.Data[row] {
			document.Data[row][col] = ColumnLabel(col) + strconv.Itoa(row+1)
		}
	}

	return document
}

// ColumnLabel returns the letter label of a zero based column: A, B, ... Z, AA, AB ...
func ColumnLabel(col int) string {
	label, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return ""
	}
	return label
}

func DefaultHeaders(cols int) []string {
	headers := make([]string, cols)
	for col := range headers {
		headers[col] = ColumnLabel(col)
	}
	return headers
}

// HeaderLabel is the header shown for col, falling back to the letter label
func (d *GridDocument) HeaderLabel(col int) string {
	if col >= 0 && col < len(d.Headers) && d.Headers[col] != "" {
		return d.Headers[col]
	}
	return ColumnLabel(col)
}

func (d *GridDocument) Clone() *GridDocument {
	if d == nil {
		return nil
	}

	clone := &GridDocument{
		Rows: d.Rows,
		Cols: d.Cols,
	}

	if d.Headers != nil {
		clone.Headers = append(make([]string, 0, len(d.Headers)), d.Headers...)
	}

	if d.Data != nil {
		clone.Data = make([][]string, len(d.Data))
		for row, cells := range d.Data {
			if cells != nil {
				clone.Data[row] = append(make([]string, 0, len(cells)), cells...)
			}
		}
	}

	return clone
}

// Normalize pads or truncates headers and data to exactly Rows x Cols.
// Missing headers become letter labels, missing cells become empty strings.
func (d *GridDocument) Normalize() {
	d.Rows = max(d.Rows, 0)
	d.Cols = max(d.Cols, 0)

	headers := make([]string, d.Cols)
	for col := range headers {
		headers[col] = d.HeaderLabel(col)
	}
	d.Headers = headers

	data := make([][]string, d.Rows)
	for row := range data {
		data[row] = make([]string, d.Cols)
		if row < len(d.Data) {
			copy(data[row], d.Data[row])
		}
	}
	d.Data = data
}
