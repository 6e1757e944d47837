package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/footprint-tools/scopes/internal/domain"
	"github.com/footprint-tools/scopes/internal/ui/style"
)

const spacesPerIndent = 2

// Indent tracks the current indentation level applied to new lines.
type Indent struct {
	mu    sync.Mutex
	level int
}

// Increase indents by one level.
func (i *Indent) Increase() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.level++
}

// Decrease outdents by one level, stopping at zero.
func (i *Indent) Decrease() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.level > 0 {
		i.level--
	}
}

// Set sets the level.
func (i *Indent) Set(level int) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.level = max(0, level)
}

// Reset returns to level zero.
func (i *Indent) Reset() {
	i.Set(0)
}

// Level returns the current level.
func (i *Indent) Level() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.level
}

// Wrap prefixes message with the current indentation.
func (i *Indent) Wrap(message string) string {
	return strings.Repeat(" ", spacesPerIndent*i.Level()) + message
}

// History prints lines and remembers them, so a line that is still on screen
// can be rewritten or removed later. Rewrites use cursor movement and only
// happen on a terminal; elsewhere the history is append-only.
type History struct {
	mu       sync.Mutex
	out      *termenv.Output
	lines    []*Line
	indent   *Indent
	styler   domain.Styler
	terminal bool
}

// HistoryOption configures a History.
type HistoryOption func(*History)

// WithTerminal overrides terminal detection.
func WithTerminal(terminal bool) HistoryOption {
	return func(h *History) {
		h.terminal = terminal
	}
}

// WithStyler sets the styler used for level prefixes.
func WithStyler(s domain.Styler) HistoryOption {
	return func(h *History) {
		h.styler = s
	}
}

// NewHistory creates a History writing to w.
func NewHistory(w io.Writer, opts ...HistoryOption) *History {
	h := &History{
		out:    termenv.NewOutput(w, termenv.WithProfile(style.Profile())),
		indent: &Indent{},
		styler: style.NopStyler{},
	}
	if f, ok := w.(*os.File); ok {
		h.terminal = term.IsTerminal(int(f.Fd()))
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Line is a handle on one printed line.
type Line struct {
	h       *History
	prefix  string
	message string
}

// Indent returns the indentation applied to new lines.
func (h *History) Indent() *Indent {
	return h.indent
}

// Log prints message on a new line at the current indentation.
func (h *History) Log(format string, args ...any) *Line {
	h.mu.Lock()
	defer h.mu.Unlock()

	l := &Line{
		h:       h,
		prefix:  h.indent.Wrap(""),
		message: fmt.Sprintf(format, args...),
	}
	h.lines = append(h.lines, l)
	h.draw(l)
	return l
}

// Info prints an informational line.
func (h *History) Info(format string, args ...any) *Line {
	return h.Log("%s%s", h.styler.Info("INFO: "), fmt.Sprintf(format, args...))
}

// Warn prints a warning line.
func (h *History) Warn(format string, args ...any) *Line {
	return h.Log("%s%s", h.styler.Warning("WARN: "), fmt.Sprintf(format, args...))
}

// Success prints a success line.
func (h *History) Success(format string, args ...any) *Line {
	return h.Log("%s%s", h.styler.Success("SUCCESS: "), fmt.Sprintf(format, args...))
}

// Error builds an error for the caller to return. Nothing is printed; the
// process boundary reports it.
func (h *History) Error(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// Lines returns the text of every line still in the history.
func (h *History) Lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, len(h.lines))
	for i, l := range h.lines {
		out[i] = l.text()
	}
	return out
}

// Message returns the line's text without indentation.
func (l *Line) Message() string {
	l.h.mu.Lock()
	defer l.h.mu.Unlock()
	return l.message
}

// Clear erases this line and every line after it, and forgets them.
func (l *Line) Clear() {
	h := l.h
	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.index(l)
	if i < 0 {
		return
	}
	h.erase(i)
	h.lines = h.lines[:i]
}

// Delete removes this line; the lines after it move up.
func (l *Line) Delete() {
	h := l.h
	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.index(l)
	if i < 0 {
		return
	}
	h.erase(i)
	h.lines = append(h.lines[:i], h.lines[i+1:]...)
	h.redraw(i)
}

// Refresh replaces the line's text in place.
func (l *Line) Refresh(format string, args ...any) {
	h := l.h
	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.index(l)
	if i < 0 {
		return
	}
	l.message = fmt.Sprintf(format, args...)
	if !h.terminal {
		h.draw(l)
		return
	}
	h.erase(i)
	h.redraw(i)
}

func (l *Line) text() string {
	return l.prefix + l.message
}

func (h *History) index(l *Line) int {
	for i, line := range h.lines {
		if line == l {
			return i
		}
	}
	return -1
}

func (h *History) draw(l *Line) {
	_, _ = fmt.Fprintln(h.out, l.text())
}

// erase moves the cursor up to lines[from] and clears it and everything below.
func (h *History) erase(from int) {
	if !h.terminal {
		return
	}
	if n := len(h.lines) - from; n > 0 {
		h.out.ClearLines(n)
	}
}

func (h *History) redraw(from int) {
	if !h.terminal {
		return
	}
	for _, l := range h.lines[from:] {
		h.draw(l)
	}
}
