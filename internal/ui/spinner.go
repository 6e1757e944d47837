package ui

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Bar is the spinner animation: a short bar sliding across five cells.
var Bar = spinner.Spinner{
	Frames: []string{"==---", "-==--", "--==-", "---==", "=---="},
	FPS:    time.Second / 10,
}

// Spinner animates a single History line until dismissed.
type Spinner struct {
	line  *Line
	label string
	stop  chan struct{}
	done  chan struct{}
	once  sync.Once
}

// StartSpinner draws label with an animated bar. On a terminal the bar
// advances every Bar.FPS until Dismiss; elsewhere it is drawn once.
func StartSpinner(h *History, label string) *Spinner {
	if label == "" {
		label = "Loading"
	}

	s := &Spinner{
		label: label,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	s.line = h.Log("%s", s.frame(0))

	if !h.terminal {
		close(s.done)
		return s
	}

	go s.run()
	return s
}

func (s *Spinner) frame(i int) string {
	return s.label + " " + Bar.Frames[i%len(Bar.Frames)] + " "
}

func (s *Spinner) run() {
	defer close(s.done)

	ticker := time.NewTicker(Bar.FPS)
	defer ticker.Stop()

	for i := 1; ; i++ {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.line.Refresh("%s", s.frame(i))
		}
	}
}

// Dismiss stops the animation and removes the line. Safe to call twice.
func (s *Spinner) Dismiss() {
	s.once.Do(func() {
		close(s.stop)
		<-s.done
		s.line.Delete()
	})
}

// WithSpinner shows a spinner while fn runs.
func WithSpinner[T any](ctx context.Context, h *History, label string, fn func(context.Context) (T, error)) (T, error) {
	s := StartSpinner(h, label)
	defer s.Dismiss()
	return fn(ctx)
}
