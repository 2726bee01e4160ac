package ui

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var spinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// Spinner animates a progress indicator on stderr while a fetch runs.
// When stderr is not a terminal (piped or redirected output) it prints
// nothing, so JSON output stays clean.
type Spinner struct {
	mu   sync.Mutex
	msg  string
	done chan struct{}
	tty  bool
}

// NewSpinner creates an idle Spinner.
func NewSpinner() *Spinner {
	return &Spinner{tty: stderrIsTerminal()}
}

// Start begins the animation with the given message. Calling Start on
// a running spinner replaces the message and restarts the animation.
func (s *Spinner) Start(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.msg = msg
	if !s.tty {
		return
	}
	if s.done != nil {
		close(s.done)
	}
	s.done = make(chan struct{})
	go s.run(s.done)
}

// Update changes the message of a running spinner.
func (s *Spinner) Update(msg string) {
	s.mu.Lock()
	s.msg = msg
	s.mu.Unlock()
}

// Stop halts the animation and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done == nil {
		return
	}
	close(s.done)
	s.done = nil
	fmt.Fprint(os.Stderr, "\r\033[K")
}

func (s *Spinner) run(done <-chan struct{}) {
	tick := time.NewTicker(80 * time.Millisecond)
	defer tick.Stop()

	for i := 0; ; i++ {
		select {
		case <-done:
			return
		case <-tick.C:
			s.mu.Lock()
			msg := s.msg
			s.mu.Unlock()
			fmt.Fprintf(os.Stderr, "\r\033[K%c %s", spinnerFrames[i%len(spinnerFrames)], msg)
		}
	}
}

func stderrIsTerminal() bool {
	info, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
