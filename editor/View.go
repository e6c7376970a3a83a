package editor

import "time"

// View is the rendering surface of a Table. All calls are serialized by the table.
type View interface {
	RenderHeader(headers []string)
	RenderBody(data [][]string)
	RenderCounters(rows int, cols int)
	// OpenEditor swaps the display of target for a focused input with value fully selected.
	OpenEditor(target EditTarget, value string, maxLength int)
	CloseEditor(target EditTarget, display string)
	ShowStatus(status Status)
	ShowLastSaved(at time.Time)
}

type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Downloader hands a generated file to the user, it never talks to the store service.
type Downloader interface {
	Download(filename string, contentType string, content []byte) error
}

type DownloadFunc func(filename string, contentType string, content []byte) error

func (f DownloadFunc) Download(filename string, contentType string, content []byte) error {
	return f(filename, contentType, content)
}
