package ui

import (
	"context"
	"os"
)

type historyKey struct{}

// WithHistory returns a context carrying h.
func WithHistory(ctx context.Context, h *History) context.Context {
	return context.WithValue(ctx, historyKey{}, h)
}

// HistoryFrom returns the History carried by ctx, or a new one on stdout.
func HistoryFrom(ctx context.Context) *History {
	if h, ok := ctx.Value(historyKey{}).(*History); ok {
		return h
	}
	return NewHistory(os.Stdout)
}
