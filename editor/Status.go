package editor

import (
	"github.com/jonboulle/clockwork"
	"sync"
	"time"
)

type StatusLevel int

const (
	StatusIdle StatusLevel = iota
	StatusSuccess
	StatusError
)

const ReadyMessage = "Ready"

const StatusRevertDelay = 3 * time.Second

const ErrorRevertDelay = 5 * time.Second

type Status struct {
	Text  string
	Level StatusLevel
}

// statusLine shows one transient message at a time. A newer message replaces the
// current one together with its revert timer. Callers hold mu.
type statusLine struct {
	mu         *sync.Mutex
	clock      clockwork.Clock
	view       View
	revert     clockwork.Timer
	generation uint64
	current    Status
}

func (s *statusLine) success(text string) {
	s.show(Status{Text: text, Level: StatusSuccess}, StatusRevertDelay)
}

func (s *statusLine) error(text string) {
	s.show(Status{Text: "Error: " + text, Level: StatusError}, ErrorRevertDelay)
}

func (s *statusLine) show(status Status, revertAfter time.Duration) {
	s.stop()

	s.generation++
	generation := s.generation
	s.current = status
	s.view.ShowStatus(status)

	s.revert = s.clock.AfterFunc(revertAfter, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if generation != s.generation {
			return
		}
		s.revert = nil
		s.current = Status{Text: ReadyMessage, Level: StatusIdle}
		s.view.ShowStatus(s.current)
	})
}

func (s *statusLine) stop() {
	if s.revert != nil {
		s.revert.Stop()
		s.revert = nil
	}
}
