package cli

import (
	"context"
	"fmt"

	"github.com/footprint-tools/scopes/internal/dispatchers"
	"github.com/footprint-tools/scopes/internal/flags"
	"github.com/footprint-tools/scopes/internal/flags/rules"
	"github.com/footprint-tools/scopes/internal/store"
	"github.com/footprint-tools/scopes/internal/ui"
)

const (
	animalsPath = "animals"
	buildsPath  = "builds"
)

var barnyardFields = []string{"id", "name"}

type animal struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type structure struct {
	Kind     string `json:"kind"`
	Material string `json:"material"`
	Size     int64  `json:"size,omitempty"`
	Rooms    int64  `json:"rooms,omitempty"`
}

// BarnyardSpec describes the barnyard root.
var BarnyardSpec = dispatchers.RootSpec{
	Name:        "barnyard",
	Description: "Tools for managing a barnyard.",
}

// BuildBarnyard registers the barnyard commands under root.
func BuildBarnyard(root *dispatchers.Scope, deps Deps) {
	dispatchers.NewCommand(dispatchers.CommandSpec{
		Key:         "list",
		Parent:      root,
		Description: "List animals in the barnyard.",
		Flags: flags.Set{
			Named: []flags.Flag{{
				Key:         "fields",
				Type:        flags.List(flags.WithElement(flags.String())),
				Default:     []any{"id", "name"},
				Description: "Columns to show",
				Rules:       []flags.RuleFactory{rules.AllOneOf(rules.Strings(barnyardFields...))},
			}},
		},
		Handler: deps.listAnimals,
	})

	dispatchers.NewCommand(dispatchers.CommandSpec{
		Key:         "add",
		Parent:      root,
		Description: "Add animal to the barnyard.",
		Flags: flags.Set{
			Named: []flags.Flag{{
				Key:         "name",
				Type:        flags.String(),
				Aliases:     []string{"n"},
				Description: "Animal name",
				Rules: []flags.RuleFactory{
					rules.Required(),
					rules.NotPartOf(deps.field(animalsPath, "name")),
				},
			}},
		},
		Handler: deps.addAnimal,
	})

	dispatchers.NewCommand(dispatchers.CommandSpec{
		Key:         "remove",
		Parent:      root,
		Description: "Remove animals from the barnyard.",
		Handler:     deps.removeAnimals,
	})

	build := dispatchers.NewGroup(dispatchers.GroupSpec{
		Key:         "build",
		Parent:      root,
		Description: "Build something in the barnyard.",
		Flags: flags.Set{
			Named: []flags.Flag{{
				Key:         "material",
				Type:        flags.String(),
				Aliases:     []string{"m"},
				Default:     "wood",
				Description: "Material used to build.",
				Rules:       []flags.RuleFactory{rules.OneOf(rules.Strings("wood", "stone", "metal"))},
			}},
		},
	})

	dispatchers.NewCommand(dispatchers.CommandSpec{
		Key:         "pen",
		Parent:      build,
		Description: "Build a new pen for animals.",
		Flags: flags.Set{
			Named: []flags.Flag{{
				Key:         "size",
				Type:        flags.Int(),
				Description: "Number of animals",
				Rules: []flags.RuleFactory{
					rules.Required(),
					rules.Positive(),
					rules.LessThan(rules.Const(10)),
				},
			}},
		},
		Handler: deps.buildPen,
	})

	dispatchers.NewCommand(dispatchers.CommandSpec{
		Key:         "house",
		Parent:      build,
		Description: "Build a new house for people.",
		Flags: flags.Set{
			Named: []flags.Flag{{
				Key:         "rooms",
				Type:        flags.Int(),
				Description: "Number of rooms",
				Rules:       []flags.RuleFactory{rules.Required(), rules.Positive()},
			}},
		},
		Handler: deps.buildHouse,
	})

	dispatchers.NewCommand(dispatchers.CommandSpec{
		Key:         "list",
		Parent:      build,
		Description: "List what has been built.",
		Handler:     deps.listBuilds,
	})

	dispatchers.NewCommand(dispatchers.CommandSpec{
		Key:         "demolish",
		Parent:      build,
		Description: "Tear down a structure.",
		Flags: flags.Set{
			Positional: []flags.Flag{{
				Key:         "key",
				Type:        flags.String(),
				Description: "Key shown by build list",
				Rules: []flags.RuleFactory{
					rules.Required(),
					rules.OneOf(deps.buildKeys),
				},
			}},
		},
		Handler: deps.demolish,
	})
}

func (deps Deps) listAnimals(ctx context.Context, values flags.Values) error {
	animals, err := rows(ctx, deps.Store, animalsPath)
	if err != nil {
		return err
	}

	ui.NewTable([]ui.Column{
		{Key: "id", Title: "ID"},
		{Key: "name", Title: "Animal"},
	}, animals).Filter(values.Strings("fields")...).Print(ui.HistoryFrom(ctx))
	return nil
}

func (deps Deps) addAnimal(ctx context.Context, values flags.Values) error {
	name := values.String("name", "")
	h := ui.HistoryFrom(ctx)

	_, err := ui.WithSpinner(ctx, h, fmt.Sprintf("Adding %s to the barnyard.", name), func(ctx context.Context) (struct{}, error) {
		var animals []animal
		if err := deps.Store.GetInto(ctx, animalsPath, &animals); err != nil {
			return struct{}{}, err
		}

		next := animal{Name: name}
		if len(animals) > 0 {
			next.ID = animals[len(animals)-1].ID + 1
		}
		return struct{}{}, deps.Store.Append(ctx, animalsPath, next)
	})
	if err != nil {
		return err
	}

	h.Success("Animal added.")
	return nil
}

func (deps Deps) removeAnimals(ctx context.Context, _ flags.Values) error {
	var animals []animal
	if err := deps.Store.GetInto(ctx, animalsPath, &animals); err != nil {
		return err
	}

	h := ui.HistoryFrom(ctx)
	if len(animals) == 0 {
		h.Warn("The barnyard is empty.")
		return nil
	}

	items := make([]ui.Item, len(animals))
	for i, a := range animals {
		items[i] = ui.Item{Value: a.ID, Display: a.Name}
	}

	picked, err := deps.Select(ctx, items, true)
	if err != nil {
		return err
	}

	gone := make(map[int]bool, len(picked))
	for _, id := range picked {
		gone[id.(int)] = true
	}

	removed, err := deps.Store.DeleteElement(ctx, animalsPath, func(el any) bool {
		m, ok := el.(map[string]any)
		if !ok {
			return false
		}
		id, ok := m["id"].(float64)
		return ok && gone[int(id)]
	})
	if err != nil {
		return err
	}

	h.Success("Done. Removed %d animal(s).", removed)
	return nil
}

func (deps Deps) buildPen(ctx context.Context, values flags.Values) error {
	pen := structure{
		Kind:     "pen",
		Material: values.String("material", "wood"),
		Size:     values.Int("size", 0),
	}
	ui.HistoryFrom(ctx).Log("Building a pen out of %s for %d animals.", pen.Material, pen.Size)
	return deps.record(ctx, pen)
}

func (deps Deps) buildHouse(ctx context.Context, values flags.Values) error {
	house := structure{
		Kind:     "house",
		Material: values.String("material", "wood"),
		Rooms:    values.Int("rooms", 0),
	}
	ui.HistoryFrom(ctx).Log("Building a house out of %s with %d rooms.", house.Material, house.Rooms)
	return deps.record(ctx, house)
}

func (deps Deps) record(ctx context.Context, s structure) error {
	key, err := deps.Store.Add(ctx, buildsPath, s, store.KeyLinear)
	if err != nil {
		return err
	}
	ui.HistoryFrom(ctx).Success("Built %s #%s.", s.Kind, key)
	return nil
}

func (deps Deps) buildKeys(ctx context.Context, _ flags.Values) ([]any, error) {
	builds, err := deps.Store.GetKeyed(ctx, buildsPath)
	if err != nil {
		return nil, err
	}

	keys := make([]any, len(builds))
	for i, b := range builds {
		keys[i] = b["key"]
	}
	return keys, nil
}

func (deps Deps) listBuilds(ctx context.Context, _ flags.Values) error {
	builds, err := deps.Store.GetKeyed(ctx, buildsPath)
	if err != nil {
		return err
	}

	h := ui.HistoryFrom(ctx)
	if len(builds) == 0 {
		h.Info("Nothing built yet.")
		return nil
	}

	ui.NewTable([]ui.Column{
		{Key: "key", Title: "#"},
		{Key: "kind", Title: "Kind"},
		{Key: "material", Title: "Material"},
		{Key: "size", Title: "Size"},
		{Key: "rooms", Title: "Rooms"},
	}, builds).Print(h)
	return nil
}

func (deps Deps) demolish(ctx context.Context, values flags.Values) error {
	key := values.String("key", "")

	removed, err := deps.Store.Delete(ctx, buildsPath+"."+key)
	if err != nil {
		return err
	}

	kind := "structure"
	if m, ok := removed.(map[string]any); ok {
		if k, ok := m["kind"].(string); ok {
			kind = k
		}
	}
	ui.HistoryFrom(ctx).Success("Demolished %s #%s.", kind, key)
	return nil
}
