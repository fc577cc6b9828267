package console

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fmreloaded/storelint/pkg/tty"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 100 * time.Millisecond

// Spinner shows an animated activity indicator on stderr while a slow
// operation (such as fetching releases) runs. It is disabled off-TTY and
// in accessible mode, where the message is printed once as a plain line.
type Spinner struct {
	mu      sync.Mutex
	message string
	enabled bool
	active  bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewSpinner creates a spinner with the given message.
func NewSpinner(message string) *Spinner {
	return &Spinner{
		message: message,
		enabled: !IsAccessibleMode() && tty.IsStderrTerminal(),
	}
}

// IsEnabled reports whether the spinner animates. A disabled spinner
// still prints its message once on Start.
func (s *Spinner) IsEnabled() bool {
	return s.enabled
}

// UpdateMessage changes the message shown next to the spinner.
func (s *Spinner) UpdateMessage(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// Start begins the animation. Calling Start on a running spinner is a
// no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	if !s.enabled {
		fmt.Fprintln(os.Stderr, s.message)
		s.mu.Unlock()
		return
	}
	s.done = make(chan struct{})
	s.mu.Unlock()

	s.wg.Add(1)
	go s.spin()
}

// Stop halts the animation and clears the spinner line. Safe to call on
// a stopped or disabled spinner.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	if !s.enabled {
		s.mu.Unlock()
		return
	}
	close(s.done)
	s.mu.Unlock()

	s.wg.Wait()
	fmt.Fprint(os.Stderr, "\r\033[K")
}

func (s *Spinner) spin() {
	defer s.wg.Done()

	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			message := s.message
			s.mu.Unlock()
			fmt.Fprintf(os.Stderr, "\r\033[K%s %s", progressStyle.Render(spinnerFrames[frame]), message)
			frame = (frame + 1) % len(spinnerFrames)
		}
	}
}
