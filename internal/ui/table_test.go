package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func animals() *Table {
	return NewTable(
		[]Column{
			{Key: "id", Title: "ID"},
			{Key: "name", Title: "Name"},
			{Key: "kind", Title: "Kind"},
		},
		[]map[string]any{
			{"id": "1", "name": "dolly", "kind": "sheep", "extra": "ignored"},
			{"id": "2", "name": "babe"},
		},
	)
}

func TestTable_Render(t *testing.T) {
	out := animals().Render()

	lines := strings.Split(out, "\n")
	require.Contains(t, out, "ID")
	require.Contains(t, out, "Name")
	require.Contains(t, out, "dolly")
	require.Contains(t, out, "sheep")
	require.Contains(t, out, "babe")
	require.NotContains(t, out, "ignored")

	// header row comes before data rows
	header := strings.Index(out, "Name")
	require.Less(t, header, strings.Index(out, "dolly"))
	require.Greater(t, len(lines), 3)
}

func TestTable_Filter(t *testing.T) {
	filtered := animals().Filter("kind", "id")

	require.Equal(t, []Column{{Key: "id", Title: "ID"}, {Key: "kind", Title: "Kind"}}, filtered.Columns())

	out := filtered.Render()
	require.Contains(t, out, "sheep")
	require.NotContains(t, out, "dolly")
	require.NotContains(t, out, "Name")
}

func TestTable_Print(t *testing.T) {
	h, _ := newTestHistory(false)

	animals().Print(h)

	rendered := strings.Split(animals().Render(), "\n")
	require.Equal(t, rendered, h.Lines())
}

func TestList(t *testing.T) {
	out := List("Animals", []any{"cow", 3}).Render()

	require.Contains(t, out, "Animals")
	require.Contains(t, out, "cow")
	require.Contains(t, out, "3")
}
