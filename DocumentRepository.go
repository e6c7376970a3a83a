package main

import (
	"fmt"
	"github.com/BeiChenYi/webbapi/contracts"
	"log/slog"
	"sync"
)

type DocumentRepository struct {
	mu       sync.RWMutex
	document *contracts.GridDocument
	storage  contracts.DocumentStorage
}

func NewDocumentRepository(storage contracts.DocumentStorage) *DocumentRepository {
	document, err := storage.Load()
	if err != nil {
		slog.Error("Failed to load persisted document, using default", "error", err)
	}

	if document == nil {
		document = contracts.DefaultGridDocument()
	}

	return &DocumentRepository{
		document: document,
		storage:  storage,
	}
}

func (r *DocumentRepository) GetDocument() *contracts.GridDocument {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.document.Clone()
}

func (r *DocumentRepository) ReplaceDocument(command contracts.ReplaceDocumentCommand) error {
	if command.Rows == nil || command.Cols == nil || command.Data == nil || *command.Data == nil {
		return contracts.InvalidFormatError
	}

	if *command.Rows < 0 || *command.Cols < 0 {
		return fmt.Errorf("%w: negative size %dx%d", contracts.InvalidFormatError, *command.Rows, *command.Cols)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	headers := command.Headers
	if headers == nil {
		headers = r.document.Headers
	}

	r.document = &contracts.GridDocument{
		Rows:    *command.Rows,
		Cols:    *command.Cols,
		Headers: headers,
		Data:    *command.Data,
	}

	return r.persist("replace")
}

func (r *DocumentRepository) MergeDocument(command contracts.MergeDocumentCommand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if command.Headers != nil {
		r.document.Headers = *command.Headers
	}
	if command.Rows != nil {
		r.document.Rows = *command.Rows
	}
	if command.Cols != nil {
		r.document.Cols = *command.Cols
	}
	if command.Data != nil {
		r.document.Data = *command.Data
	}

	return r.persist("merge")
}

func (r *DocumentRepository) GetCell(row int, col int) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.cellExists(row, col) {
		return "", fmt.Errorf("(%d, %d): %w", row, col, contracts.CellNotFoundError)
	}

	// counters are trusted for bounds, cells beyond the real shape read as empty
	if row >= len(r.document.Data) || col >= len(r.document.Data[row]) {
		return "", nil
	}

	return r.document.Data[row][col], nil
}

func (r *DocumentRepository) SetCell(row int, col int, value *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.cellExists(row, col) {
		return fmt.Errorf("(%d, %d): %w", row, col, contracts.CellNotFoundError)
	}

	if value == nil {
		return fmt.Errorf("%w: value", contracts.MissingFieldError)
	}

	for len(r.document.Data) <= row {
		r.document.Data = append(r.document.Data, []string{})
	}
	for len(r.document.Data[row]) <= col {
		r.document.Data[row] = append(r.document.Data[row], "")
	}

	r.document.Data[row][col] = *value

	return r.persist("cell")
}

func (r *DocumentRepository) SetHeader(col int, header *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if col < 0 || col >= r.document.Cols {
		return fmt.Errorf("%d: %w", col, contracts.ColumnNotFoundError)
	}

	if header == nil {
		return fmt.Errorf("%w: header", contracts.MissingFieldError)
	}

	if r.document.Headers == nil {
		r.document.Headers = contracts.DefaultHeaders(r.document.Cols)
	}
	for len(r.document.Headers) <= col {
		r.document.Headers = append(r.document.Headers, contracts.ColumnLabel(len(r.document.Headers)))
	}

	r.document.Headers[col] = *header

	return r.persist("header")
}

func (r *DocumentRepository) cellExists(row int, col int) bool {
	return row >= 0 && row < r.document.Rows && col >= 0 && col < r.document.Cols
}

// persist flushes the document to storage. On failure the in-memory document keeps the new state.
func (r *DocumentRepository) persist(operation string) error {
	err := r.storage.Save(r.document)
	if err != nil {
		documentWrites.WithLabelValues(operation, "error").Inc()
		persistFailures.Inc()
		slog.Error("Failed to persist document", "operation", operation, "error", err)
		return fmt.Errorf("%w: %w", contracts.PersistenceError, err)
	}

	documentWrites.WithLabelValues(operation, "ok").Inc()
	return nil
}
