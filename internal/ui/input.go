package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/footprint-tools/scopes/internal/ui/style"
)

// ErrCancelled is returned when the user aborts an interactive prompt.
var ErrCancelled = errors.New("selection cancelled")

// Item is one choice in a SelectList.
type Item struct {
	Value   any
	Display string
}

type listKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

var listKeys = listKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up", "navigate")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down", "navigate")),
	Toggle:  key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle")),
	Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Cancel:  key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl-c", "cancel")),
}

// SelectFunc matches SelectList, for callers that swap it out in tests.
type SelectFunc func(ctx context.Context, items []Item, multiple bool) ([]any, error)

// SelectList shows items as an arrow-key list and returns the values the
// user toggled, in item order. With multiple false, toggling an item clears
// any earlier selection.
func SelectList(ctx context.Context, items []Item, multiple bool) ([]any, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, errors.New("list input requires an interactive terminal")
	}

	p := tea.NewProgram(newListModel(items, multiple), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("list input: %w", err)
	}

	m := final.(listModel)
	if m.cancelled {
		return nil, ErrCancelled
	}
	return m.values(), nil
}

type listModel struct {
	items     []Item
	multiple  bool
	cursor    int
	selected  map[int]bool
	confirmed bool
	cancelled bool
}

func newListModel(items []Item, multiple bool) listModel {
	return listModel{
		items:    items,
		multiple: multiple,
		selected: make(map[int]bool),
	}
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, listKeys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(keyMsg, listKeys.Confirm):
		m.confirmed = true
		return m, tea.Quit
	case key.Matches(keyMsg, listKeys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(keyMsg, listKeys.Down):
		m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)
	case key.Matches(keyMsg, listKeys.Toggle):
		if len(m.items) == 0 {
			break
		}
		was := m.selected[m.cursor]
		if !m.multiple {
			clear(m.selected)
		}
		if was {
			delete(m.selected, m.cursor)
		} else {
			m.selected[m.cursor] = true
		}
	}
	return m, nil
}

func (m listModel) View() string {
	if m.confirmed || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(style.Muted("Use up/down to navigate, space to toggle, enter to confirm, ctrl-c to cancel."))
	b.WriteString("\n")
	for i, item := range m.items {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		box := "[ ]"
		if m.selected[i] {
			box = style.Success("[✓]")
		}
		fmt.Fprintf(&b, "%s %s %s\n", cursor, box, item.Display)
	}
	return b.String()
}

func (m listModel) values() []any {
	out := []any{}
	for i, item := range m.items {
		if m.selected[i] {
			out = append(out, item.Value)
		}
	}
	return out
}
