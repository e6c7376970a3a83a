package editor

import (
	"context"
	"errors"
	"fmt"
	"github.com/BeiChenYi/webbapi/contracts"
	"github.com/jonboulle/clockwork"
	"log/slog"
	"sync"
	"time"
)

const AutoSaveDelay = 2000 * time.Millisecond

const (
	NewRowLabel     = "新数据"
	NewColumnLabel  = "新列"
	NewHeaderPrefix = "列"
)

const ClearTablePrompt = "Clear the whole table? All data will be lost."

var ErrNoDownloader = errors.New("no downloader configured")

// Table owns the client side copy of the grid document. Mutations are applied to
// the local state immediately and pushed to the store after AutoSaveDelay of quiet.
type Table struct {
	mu sync.Mutex

	client     contracts.DocumentClient
	view       View
	confirmer  Confirmer
	downloader Downloader
	clock      clockwork.Clock
	status     *statusLine

	document        *contracts.GridDocument
	editing         map[EditTarget]*EditSession
	autoSaveEnabled bool
	pendingSave     clockwork.Timer
	saveGeneration  uint64
	lastSaved       time.Time
}

type Option func(t *Table)

func WithClock(clock clockwork.Clock) Option {
	return func(t *Table) {
		t.clock = clock
	}
}

func WithConfirmer(confirmer Confirmer) Option {
	return func(t *Table) {
		t.confirmer = confirmer
	}
}

func WithDownloader(downloader Downloader) Option {
	return func(t *Table) {
		t.downloader = downloader
	}
}

func NewTable(client contracts.DocumentClient, view View, options ...Option) *Table {
	t := &Table{
		client:          client,
		view:            view,
		clock:           clockwork.NewRealClock(),
		confirmer:       ConfirmFunc(func(string) bool { return false }),
		document:        contracts.DefaultGridDocument(),
		editing:         map[EditTarget]*EditSession{},
		autoSaveEnabled: true,
	}

	for _, option := range options {
		option(t)
	}

	t.status = &statusLine{mu: &t.mu, clock: t.clock, view: view, current: Status{Text: ReadyMessage}}

	return t
}

// Initialize loads the document from the store and renders it. A failed load keeps
// the built-in default document.
func (t *Table) Initialize(ctx context.Context) error {
	err := t.load(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.render()

	return err
}

// Load replaces the local state with the store's document.
func (t *Table) Load(ctx context.Context) error {
	err := t.load(ctx)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.render()

	return nil
}

func (t *Table) load(ctx context.Context) error {
	t.mu.Lock()
	t.status.success("Loading from server...")
	t.mu.Unlock()

	document, err := t.client.Fetch(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	if err == nil && document == nil {
		err = errors.New("empty document")
	}
	if err != nil {
		slog.WarnContext(ctx, "Failed to load document", "error", err)
		t.status.error("Load failed: " + err.Error())
		return err
	}

	document = document.Clone()
	document.Normalize()
	t.document = document
	t.status.success("Data loaded")

	return nil
}

// Save pushes the whole document right away, reporting progress in the status line.
func (t *Table) Save(ctx context.Context) error {
	t.mu.Lock()
	t.status.success("Saving to server...")
	document := t.document.Clone()
	t.mu.Unlock()

	return t.push(ctx, document, true)
}

// Flush pushes a pending auto-save immediately. It is a no-op without one.
func (t *Table) Flush(ctx context.Context) error {
	t.mu.Lock()
	if t.pendingSave == nil {
		t.mu.Unlock()
		return nil
	}

	t.pendingSave.Stop()
	t.pendingSave = nil
	t.saveGeneration++
	document := t.document.Clone()
	t.mu.Unlock()

	return t.push(ctx, document, false)
}

func (t *Table) push(ctx context.Context, document *contracts.GridDocument, interactive bool) error {
	message, err := t.client.Push(ctx, document)

	t.mu.Lock()
	defer t.mu.Unlock()

	if err != nil {
		slog.WarnContext(ctx, "Failed to save document", "interactive", interactive, "error", err)
		t.status.error("Save failed: " + err.Error())
		return err
	}

	t.lastSaved = t.clock.Now()
	t.view.ShowLastSaved(t.lastSaved)
	slog.DebugContext(ctx, "Document saved", "interactive", interactive, "rows", document.Rows, "cols", document.Cols)

	if interactive {
		if message == "" {
			message = "Data saved"
		}
		t.status.success(message)
	}

	return nil
}

// scheduleSave restarts the single auto-save timer. Callers hold mu.
func (t *Table) scheduleSave() {
	if !t.autoSaveEnabled {
		return
	}

	if t.pendingSave != nil {
		t.pendingSave.Stop()
	}

	t.saveGeneration++
	generation := t.saveGeneration
	t.pendingSave = t.clock.AfterFunc(AutoSaveDelay, func() {
		t.autoSave(generation)
	})
}

func (t *Table) autoSave(generation uint64) {
	t.mu.Lock()
	// a newer schedule or a flush already took over
	if generation != t.saveGeneration || t.pendingSave == nil {
		t.mu.Unlock()
		return
	}
	t.pendingSave = nil
	document := t.document.Clone()
	t.mu.Unlock()

	_ = t.push(context.Background(), document, false)
}

func (t *Table) BeginEditCell(row int, col int) (*EditSession, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if row < 0 || row >= t.document.Rows || col < 0 || col >= t.document.Cols {
		return nil, false
	}

	return t.beginEdit(CellTarget(row, col), t.document.Data[row][col], CellMaxLength)
}

func (t *Table) BeginEditHeader(col int) (*EditSession, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if col < 0 || col >= t.document.Cols {
		return nil, false
	}

	return t.beginEdit(HeaderTarget(col), t.document.HeaderLabel(col), HeaderMaxLength)
}

func (t *Table) beginEdit(target EditTarget, value string, maxLength int) (*EditSession, bool) {
	if session, ok := t.editing[target]; ok {
		return session, false
	}

	session := &EditSession{
		table:     t,
		target:    target,
		original:  value,
		text:      truncateRunes(value, maxLength),
		maxLength: maxLength,
	}
	t.editing[target] = session
	t.view.OpenEditor(target, session.text, maxLength)

	return session, true
}

func (t *Table) commitEdit(session *EditSession) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if session.closed {
		return false
	}
	t.closeSession(session)

	target := session.target
	if !t.targetExists(target) {
		// the grid shrank under the editor, nothing left to write into
		return false
	}

	if target.Header {
		value := session.text
		if value == "" {
			value = contracts.ColumnLabel(target.Col)
		}
		t.document.Headers[target.Col] = value

		t.view.CloseEditor(target, value)
		t.scheduleSave()
		t.status.success(fmt.Sprintf("Header %q updated", value))
	} else {
		t.document.Data[target.Row][target.Col] = session.text

		t.view.CloseEditor(target, session.text)
		t.scheduleSave()
		t.status.success(fmt.Sprintf("Cell (%d, %s) updated", target.Row+1, t.document.HeaderLabel(target.Col)))
	}

	return true
}

func (t *Table) cancelEdit(session *EditSession) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if session.closed {
		return false
	}
	t.closeSession(session)
	t.view.CloseEditor(session.target, session.original)

	return true
}

func (t *Table) closeSession(session *EditSession) {
	session.closed = true
	if t.editing[session.target] == session {
		delete(t.editing, session.target)
	}
}

func (t *Table) targetExists(target EditTarget) bool {
	if target.Col < 0 || target.Col >= t.document.Cols {
		return false
	}
	return target.Header || (target.Row >= 0 && target.Row < t.document.Rows)
}

func (t *Table) AddRow() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.document.Rows++
	row := make([]string, t.document.Cols)
	for col := range row {
		row[col] = fmt.Sprintf("%s %d-%d", NewRowLabel, t.document.Rows, col+1)
	}
	t.document.Data = append(t.document.Data, row)

	t.view.RenderBody(t.document.Clone().Data)
	t.view.RenderCounters(t.document.Rows, t.document.Cols)
	t.scheduleSave()
	t.status.success(fmt.Sprintf("Row %d added", t.document.Rows))
}

func (t *Table) AddColumn() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.document.Cols++
	t.document.Headers = append(t.document.Headers, fmt.Sprintf("%s%d", NewHeaderPrefix, t.document.Cols))
	for row := range t.document.Data {
		t.document.Data[row] = append(t.document.Data[row], fmt.Sprintf("%s %d", NewColumnLabel, row+1))
	}

	t.render()
	t.scheduleSave()
	t.status.success(fmt.Sprintf("Column %d added", t.document.Cols))
}

// ClearTable empties every cell after the user confirms. Counts and headers stay.
func (t *Table) ClearTable() bool {
	if !t.confirmer.Confirm(ClearTablePrompt) {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	data := make([][]string, t.document.Rows)
	for row := range data {
		data[row] = make([]string, t.document.Cols)
	}
	t.document.Data = data

	t.view.RenderBody(t.document.Clone().Data)
	t.scheduleSave()
	t.status.success("Table cleared")

	return true
}

// ToggleAutoSave flips auto-save and returns the new state. An already pending
// save still fires.
func (t *Table) ToggleAutoSave() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.autoSaveEnabled = !t.autoSaveEnabled
	if t.autoSaveEnabled {
		t.status.success("Auto-save enabled")
	} else {
		t.status.success("Auto-save disabled")
	}

	return t.autoSaveEnabled
}

func (t *Table) AutoSaveEnabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.autoSaveEnabled
}

func (t *Table) SavePending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.pendingSave != nil
}

func (t *Table) LastSaved() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.lastSaved
}

func (t *Table) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.status.current
}

// Snapshot returns a deep copy of the current state.
func (t *Table) Snapshot() *contracts.GridDocument {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.document.Clone()
}

// Close stops pending timers. A pending save is dropped, call Flush first to keep it.
func (t *Table) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pendingSave != nil {
		t.pendingSave.Stop()
		t.pendingSave = nil
		t.saveGeneration++
	}
	t.status.stop()
}

func (t *Table) render() {
	snapshot := t.document.Clone()
	t.view.RenderHeader(snapshot.Headers)
	t.view.RenderBody(snapshot.Data)
	t.view.RenderCounters(snapshot.Rows, snapshot.Cols)
}
