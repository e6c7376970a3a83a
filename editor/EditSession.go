package editor

import (
	"fmt"
	"unicode/utf8"
)

const CellMaxLength = 100

const HeaderMaxLength = 20

type EditTarget struct {
	Header bool
	Row    int
	Col    int
}

func CellTarget(row int, col int) EditTarget {
	return EditTarget{Row: row, Col: col}
}

func HeaderTarget(col int) EditTarget {
	return EditTarget{Header: true, Row: -1, Col: col}
}

func (t EditTarget) String() string {
	if t.Header {
		return fmt.Sprintf("header %d", t.Col)
	}
	return fmt.Sprintf("cell (%d, %d)", t.Row, t.Col)
}

// EditSession is one Display -> Editing -> Display round trip of a cell or header.
// Confirm (Enter) and Blur (focus loss) both commit; whichever comes first wins
// and the session is closed for the other one. Cancel (Escape) never commits.
type EditSession struct {
	table     *Table
	target    EditTarget
	original  string
	text      string
	maxLength int
	closed    bool
}

func (s *EditSession) Target() EditTarget {
	return s.target
}

func (s *EditSession) Original() string {
	return s.original
}

func (s *EditSession) MaxLength() int {
	return s.maxLength
}

func (s *EditSession) Text() string {
	s.table.mu.Lock()
	defer s.table.mu.Unlock()

	return s.text
}

// SetText replaces the input text, cut to the input's max length.
func (s *EditSession) SetText(text string) {
	s.table.mu.Lock()
	defer s.table.mu.Unlock()

	s.text = truncateRunes(text, s.maxLength)
}

func (s *EditSession) Confirm() bool {
	return s.table.commitEdit(s)
}

func (s *EditSession) Blur() bool {
	return s.table.commitEdit(s)
}

func (s *EditSession) Cancel() bool {
	return s.table.cancelEdit(s)
}

func (s *EditSession) Closed() bool {
	s.table.mu.Lock()
	defer s.table.mu.Unlock()

	return s.closed
}

func truncateRunes(text string, maxLength int) string {
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}

	runes := []rune(text)
	return string(runes[:maxLength])
}
