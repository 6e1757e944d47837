package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgress_Draw(t *testing.T) {
	h, _ := newTestHistory(true)

	NewProgress(h, 0)
	require.Equal(t, []string{"|" + strings.Repeat("-", 30) + "| 0%"}, h.Lines())
}

func TestProgress_SetWithLabels(t *testing.T) {
	h, _ := newTestHistory(true)
	h.Log("before")

	p := NewProgress(h, 0.1)
	p.Set(0.5, "ab", "cd")

	require.Equal(t, []string{
		"before",
		"|" + strings.Repeat("=", 15) + strings.Repeat("-", 15) + "| 50%",
		"... ab",
		"... cd",
	}, h.Lines())

	p.Set(1, "ef")
	require.Equal(t, []string{
		"before",
		"|" + strings.Repeat("=", 30) + "| 100%",
		"... ef",
	}, h.Lines())
}

func TestProgress_ClampsBarNotLabel(t *testing.T) {
	h, _ := newTestHistory(true)

	p := NewProgress(h, 0)
	p.Set(1.5)
	require.Equal(t, []string{"|" + strings.Repeat("=", 30) + "| 150%"}, h.Lines())

	p.Set(-0.25)
	require.Equal(t, []string{"|" + strings.Repeat("-", 30) + "| -25%"}, h.Lines())
}

func TestSpinner_DismissRemovesLine(t *testing.T) {
	h, _ := newTestHistory(true)
	h.Log("keep")

	s := StartSpinner(h, "Saving")
	lines := h.Lines()
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[1], "Saving "))

	s.Dismiss()
	s.Dismiss()
	require.Equal(t, []string{"keep"}, h.Lines())
}

func TestSpinner_DefaultLabelNotTerminal(t *testing.T) {
	h, _ := newTestHistory(false)

	s := StartSpinner(h, "")
	require.Equal(t, []string{"Loading ==--- "}, h.Lines())
	s.Dismiss()
	require.Empty(t, h.Lines())
}

func TestWithSpinner(t *testing.T) {
	h, _ := newTestHistory(true)

	got, err := WithSpinner(context.Background(), h, "Working", func(context.Context) (int, error) {
		require.Len(t, h.Lines(), 1)
		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, got)
	require.Empty(t, h.Lines())

	boom := errors.New("boom")
	_, err = WithSpinner(context.Background(), h, "Working", func(context.Context) (string, error) {
		return "", boom
	})
	require.ErrorIs(t, err, boom)
	require.Empty(t, h.Lines())
}
