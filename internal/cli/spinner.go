package cli

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// spinner is a minimal progress indicator for operations that block for a
// noticeable moment, such as SVG rendering. It writes to stderr so piped
// stdout output stays clean.
type spinner struct {
	message string
	done    chan struct{}
	stopped chan struct{}
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// newSpinner creates and starts a spinner with the given message.
func newSpinner(message string) *spinner {
	s := &spinner{
		message: message,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *spinner) run() {
	defer close(s.stopped)
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	i := 0
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			frame := spinnerFrames[i%len(spinnerFrames)]
			fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
			i++
		}
	}
}

// stop halts the animation and clears the line.
func (s *spinner) stop() {
	close(s.done)
	<-s.stopped
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}
