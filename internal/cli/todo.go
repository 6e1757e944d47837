package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/footprint-tools/scopes/internal/dispatchers"
	"github.com/footprint-tools/scopes/internal/flags"
	"github.com/footprint-tools/scopes/internal/flags/rules"
	"github.com/footprint-tools/scopes/internal/ui"
)

const todosPath = "todos"

const (
	StatusTodo   = "todo"
	StatusActive = "active"
	StatusDone   = "done"
)

var todoStatuses = []string{StatusTodo, StatusActive, StatusDone}

type todo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// TodoSpec describes the todo root.
var TodoSpec = dispatchers.RootSpec{
	Name:        "todo",
	Description: "A small todo list.",
}

// BuildTodo registers the todo commands under root.
func BuildTodo(root *dispatchers.Scope, deps Deps) {
	ids := deps.field(todosPath, "id")

	existingID := flags.Flag{
		Key:         "id",
		Type:        flags.String(),
		Description: "Todo id",
		Rules:       []flags.RuleFactory{rules.Required(), rules.OneOf(ids)},
	}

	dispatchers.NewCommand(dispatchers.CommandSpec{
		Key:         "add",
		Parent:      root,
		Description: "Add a todo.",
		Flags: flags.Set{
			Positional: []flags.Flag{{
				Key:         "id",
				Type:        flags.String(),
				Description: "Unique id name for todo.",
				Rules: []flags.RuleFactory{
					rules.Required(),
					rules.CustomMessage("Must be lowercase.", func(_ context.Context, value any, _ flags.Values) (bool, error) {
						s, _ := value.(string)
						return s == strings.ToLower(s), nil
					}),
					rules.NotPartOf(ids),
				},
			}},
			Named: []flags.Flag{{
				Key:     "description",
				Type:    flags.String(),
				Aliases: []string{"d"},
				Default: "",
			}},
		},
		Handler: deps.addTodo,
	})

	dispatchers.NewCommand(dispatchers.CommandSpec{
		Key:         "view",
		Parent:      root,
		Description: "Show every todo.",
		Flags: flags.Set{
			Named: []flags.Flag{{
				Key:         "status",
				Type:        flags.List(),
				Aliases:     []string{"s"},
				Description: "Only show these statuses",
				Rules:       []flags.RuleFactory{rules.AllOneOf(rules.Strings(todoStatuses...))},
			}},
		},
		Handler: deps.viewTodos,
	})

	dispatchers.NewCommand(dispatchers.CommandSpec{
		Key:         "edit",
		Parent:      root,
		Description: "Change a todo.",
		Flags: flags.Set{
			Positional: []flags.Flag{existingID},
			Named: []flags.Flag{
				{
					Key:     "description",
					Type:    flags.String(),
					Aliases: []string{"d"},
				},
				{
					Key:     "status",
					Type:    flags.String(),
					Aliases: []string{"s"},
					Rules:   []flags.RuleFactory{rules.OneOf(rules.Strings(todoStatuses...))},
				},
			},
		},
		Handler: deps.editTodo,
	})

	dispatchers.NewCommand(dispatchers.CommandSpec{
		Key:         "delete",
		Parent:      root,
		Description: "Delete a todo.",
		Flags:       flags.Set{Positional: []flags.Flag{existingID}},
		Handler:     deps.deleteTodo,
	})

	dispatchers.NewCommand(dispatchers.CommandSpec{
		Key:         "progress",
		Parent:      root,
		Description: "Show how many todos are done.",
		Handler:     deps.todoProgress,
	})
}

func byTodoID(id string) func(any) bool {
	return func(el any) bool {
		m, ok := el.(map[string]any)
		return ok && m["id"] == id
	}
}

func (deps Deps) addTodo(ctx context.Context, values flags.Values) error {
	err := deps.Store.Append(ctx, todosPath, todo{
		ID:          values.String("id", ""),
		Description: values.String("description", ""),
		Status:      StatusActive,
	})
	if err != nil {
		return err
	}

	ui.HistoryFrom(ctx).Success("Added new todo.")
	return nil
}

func (deps Deps) viewTodos(ctx context.Context, values flags.Values) error {
	todos, err := rows(ctx, deps.Store, todosPath)
	if err != nil {
		return err
	}

	if statuses := values.Strings("status"); len(statuses) > 0 {
		keep := make(map[string]bool, len(statuses))
		for _, s := range statuses {
			keep[s] = true
		}
		filtered := todos[:0]
		for _, t := range todos {
			if s, _ := t["status"].(string); keep[s] {
				filtered = append(filtered, t)
			}
		}
		todos = filtered
	}

	ui.NewTable([]ui.Column{
		{Key: "id", Title: "ID"},
		{Key: "description", Title: "Description"},
		{Key: "status", Title: "Status"},
	}, todos).Print(ui.HistoryFrom(ctx))
	return nil
}

func (deps Deps) editTodo(ctx context.Context, values flags.Values) error {
	description := values.String("description", "")
	status := values.String("status", "")

	err := deps.Store.UpdateElement(ctx, todosPath, byTodoID(values.String("id", "")), func(el any) (any, error) {
		m := el.(map[string]any)
		if description != "" {
			m["description"] = description
		}
		if status != "" {
			m["status"] = status
		}
		return m, nil
	})
	if err != nil {
		return err
	}

	ui.HistoryFrom(ctx).Success("Edited todo.")
	return nil
}

func (deps Deps) deleteTodo(ctx context.Context, values flags.Values) error {
	if _, err := deps.Store.DeleteElement(ctx, todosPath, byTodoID(values.String("id", ""))); err != nil {
		return err
	}

	ui.HistoryFrom(ctx).Success("Deleted todo.")
	return nil
}

func (deps Deps) todoProgress(ctx context.Context, _ flags.Values) error {
	var todos []todo
	if err := deps.Store.GetInto(ctx, todosPath, &todos); err != nil {
		return err
	}

	h := ui.HistoryFrom(ctx)
	if len(todos) == 0 {
		h.Info("Nothing to do.")
		return nil
	}

	var done int
	var open []string
	for _, t := range todos {
		if t.Status == StatusDone {
			done++
		} else {
			open = append(open, fmt.Sprintf("%s (%s)", t.ID, t.Status))
		}
	}

	ui.NewProgress(h, 0).Set(float64(done)/float64(len(todos)), open...)
	return nil
}
