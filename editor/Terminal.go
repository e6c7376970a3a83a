package editor

import (
	"bufio"
	"fmt"
	"github.com/olekukonko/tablewriter"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// TextView keeps the last rendered grid and writes status changes as lines to out.
type TextView struct {
	mu        sync.Mutex
	out       io.Writer
	headers   []string
	data      [][]string
	rows      int
	cols      int
	lastSaved time.Time
}

func NewTextView(out io.Writer) *TextView {
	return &TextView{out: out}
}

func (v *TextView) RenderHeader(headers []string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.headers = headers
}

func (v *TextView) RenderBody(data [][]string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.data = data
}

func (v *TextView) RenderCounters(rows int, cols int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rows, v.cols = rows, cols
}

func (v *TextView) OpenEditor(EditTarget, string, int) {}

func (v *TextView) CloseEditor(target EditTarget, display string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if target.Header {
		if target.Col < len(v.headers) {
			v.headers[target.Col] = display
		}
		return
	}
	if target.Row < len(v.data) && target.Col < len(v.data[target.Row]) {
		v.data[target.Row][target.Col] = display
	}
}

func (v *TextView) ShowStatus(status Status) {
	if status.Level == StatusIdle {
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	_, _ = fmt.Fprintln(v.out, status.Text)
}

func (v *TextView) ShowLastSaved(at time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.lastSaved = at
	_, _ = fmt.Fprintf(v.out, "Saved at %s\n", at.Format(time.TimeOnly))
}

// Print writes the grid with row numbers and a counters line.
func (v *TextView) Print() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	table := tablewriter.NewWriter(v.out)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(append([]string{"#"}, v.headers...))

	for row, cells := range v.data {
		table.Append(append([]string{strconv.Itoa(row + 1)}, cells...))
	}
	table.Render()

	_, err := fmt.Fprintf(v.out, "rows: %d  cols: %d  cells: %d\n", v.rows, v.cols, v.rows*v.cols)
	return err
}

// DirectoryDownloader stores downloads as files in Dir.
type DirectoryDownloader struct {
	Dir string
}

func (d DirectoryDownloader) Download(filename string, _ string, content []byte) error {
	return os.WriteFile(filepath.Join(d.Dir, filepath.Base(filename)), content, 0o644)
}

// PromptConfirmer asks a y/N question on out and reads the answer from in.
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (p PromptConfirmer) Confirm(prompt string) bool {
	_, _ = fmt.Fprintf(p.Out, "%s [y/N] ", prompt)

	answer, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
