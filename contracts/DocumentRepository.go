package contracts

import "errors"

type ReplaceDocumentCommand struct {
	Rows    *int
	Cols    *int
	Headers []string
	Data    *[][]string
}

type MergeDocumentCommand struct {
	Headers *[]string
	Rows    *int
	Cols    *int
	Data    *[][]string
}

type DocumentRepository interface {
	GetDocument() *GridDocument
	ReplaceDocument(command ReplaceDocumentCommand) error
	MergeDocument(command MergeDocumentCommand) error
	GetCell(row int, col int) (string, error)
	SetCell(row int, col int, value *string) error
	SetHeader(col int, header *string) error
}

var CellNotFoundError = errors.New("cell not found")

var ColumnNotFoundError = errors.New("column not found")

var InvalidFormatError = errors.New("invalid data format")

var MissingFieldError = errors.New("missing field")

var PersistenceError = errors.New("data save failed")
