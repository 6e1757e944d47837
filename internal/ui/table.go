package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Column names a row key and the title shown for it.
type Column struct {
	Key   string
	Title string
}

// Table holds rows of values keyed by column key. Keys missing from a row
// render as empty cells; keys without a column are ignored.
type Table struct {
	columns []Column
	rows    []map[string]any
}

// NewTable creates a table with the given columns, in display order.
func NewTable(columns []Column, rows []map[string]any) *Table {
	return &Table{columns: columns, rows: rows}
}

// List is a single-column table titled title.
func List(title string, items []any) *Table {
	rows := make([]map[string]any, len(items))
	for i, item := range items {
		rows[i] = map[string]any{"item": item}
	}
	return NewTable([]Column{{Key: "item", Title: title}}, rows)
}

// Filter returns a table showing only the columns whose keys are listed.
// Column order is unchanged.
func (t *Table) Filter(keys ...string) *Table {
	var columns []Column
	for _, c := range t.columns {
		if slices.Contains(keys, c.Key) {
			columns = append(columns, c)
		}
	}
	return &Table{columns: columns, rows: t.rows}
}

// Columns returns the visible columns.
func (t *Table) Columns() []Column {
	return t.columns
}

// Render draws the table with right-aligned cells and a bold header.
func (t *Table) Render() string {
	headers := make([]string, len(t.columns))
	for i, c := range t.columns {
		headers[i] = c.Title
	}

	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		cells := make([]string, len(t.columns))
		for j, c := range t.columns {
			if v, ok := row[c.Key]; ok && v != nil {
				cells[j] = fmt.Sprint(v)
			}
		}
		rows[i] = cells
	}

	cell := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return cell.Bold(true)
			}
			return cell
		}).
		Render()
}

// Print logs each rendered line into h.
func (t *Table) Print(h *History) {
	for _, line := range strings.Split(t.Render(), "\n") {
		h.Log("%s", line)
	}
}
