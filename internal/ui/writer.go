// Package ui renders terminal output for scopes tools. History keeps the
// printed lines so spinners and progress bars can redraw them; Writer sends
// long output such as help through a pager.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"

	"github.com/footprint-tools/scopes/internal/domain"
)

const defaultPager = "less -FRSX"

// Writer implements domain.OutputWriter.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	config        domain.ConfigProvider
	envGetter     func(string) string
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithConfig reads the pager command from the "pager" config key.
func WithConfig(cfg domain.ConfigProvider) WriterOption {
	return func(w *Writer) {
		w.config = cfg
	}
}

// WithEnvGetter sets the environment variable getter function.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// NewWriter creates a Writer on stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a Writer on out.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:       out,
		envGetter: os.Getenv,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager pipes content through a pager when out is a terminal and the
// pager is enabled. Otherwise, or when the pager fails, content is printed
// directly.
func (w *Writer) Pager(content string) {
	argv := w.pagerArgv()
	if w.pagerDisabled || argv == nil || !w.isTerminal() {
		fmt.Fprint(w.out, content)
		return
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = w.out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprint(w.out, content)
	}
}

func (w *Writer) isTerminal() bool {
	f, ok := w.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// pagerArgv picks the first non-empty of the "pager" config key, $PAGER and
// less -FRSX. A "cat" pager means no pager and yields nil.
func (w *Writer) pagerArgv() []string {
	var candidates []string
	if w.config != nil {
		v, _ := w.config.Get("pager")
		candidates = append(candidates, v)
	}
	if w.envGetter != nil {
		candidates = append(candidates, w.envGetter("PAGER"))
	}
	candidates = append(candidates, defaultPager)

	for _, c := range candidates {
		argv := strings.Fields(c)
		if len(argv) == 0 {
			continue
		}
		if argv[0] == "cat" {
			return nil
		}
		return argv
	}
	return nil
}

var _ domain.OutputWriter = (*Writer)(nil)
