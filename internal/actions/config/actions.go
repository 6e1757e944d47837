package config

import (
	"context"
	"errors"

	"github.com/footprint-tools/scopes/internal/domain"
	"github.com/footprint-tools/scopes/internal/flags"
	"github.com/footprint-tools/scopes/internal/ui"
	"github.com/footprint-tools/scopes/internal/ui/style"
	"github.com/footprint-tools/scopes/internal/usage"
)

func (deps Deps) list(ctx context.Context, values flags.Values) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	h := ui.HistoryFrom(ctx)
	bySection := domain.ConfigKeysBySection()
	showAll := values.Bool("all")

	for _, section := range domain.ConfigSections() {
		var shown []domain.ConfigKey
		for _, key := range bySection[section] {
			if key.HideIfEmpty && configMap[key.Name] == "" && !showAll {
				continue
			}
			shown = append(shown, key)
		}
		if len(shown) == 0 {
			continue
		}

		h.Log("[%s]", section)
		h.Indent().Increase()
		for _, key := range shown {
			h.Log("%s=%s", key.Name, configMap[key.Name])
		}
		h.Indent().Decrease()
	}

	return nil
}

func (deps Deps) get(ctx context.Context, values flags.Values) error {
	key := values.String("key", "")

	value, found := deps.Get(key)
	if !found {
		return usage.InvalidFlag("key", "No value for "+key)
	}

	ui.HistoryFrom(ctx).Log("%s", value)
	return nil
}

func (deps Deps) set(ctx context.Context, values flags.Values) error {
	key := values.String("key", "")
	value := values.String("value", "")

	updated, err := deps.write(func(lines []string) ([]string, bool) {
		return deps.Set(lines, key, value)
	})
	if err != nil {
		return err
	}

	action := "added"
	if updated {
		action = "updated"
	}
	ui.HistoryFrom(ctx).Success("%s %s=%s", action, key, value)
	return nil
}

func (deps Deps) unset(ctx context.Context, values flags.Values) error {
	key := values.String("key", "")
	all := values.Bool("all")
	h := ui.HistoryFrom(ctx)

	switch {
	case all && key != "":
		return usage.InvalidFlag("all", "--all does not take a key")
	case all:
		if err := deps.WithLock(func() error { return deps.WriteLines([]string{}) }); err != nil {
			return err
		}
		h.Success("all config entries removed")
		return nil
	case key == "":
		return usage.InvalidFlag("key", "Pass a key or --all")
	}

	removed, err := deps.write(func(lines []string) ([]string, bool) {
		return deps.Unset(lines, key)
	})
	if err != nil {
		return err
	}
	if !removed {
		h.Warn("%s was not set", key)
		return nil
	}

	h.Success("unset %s", key)
	return nil
}

func (deps Deps) theme(ctx context.Context, values flags.Values) error {
	name := values.String("name", "")

	if name == "" {
		current, _ := deps.Get("theme")
		items := make([]ui.Item, len(style.BaseThemeNames))
		for i, base := range style.BaseThemeNames {
			display := base
			if base == current {
				display += " (current)"
			}
			items[i] = ui.Item{Value: base, Display: display}
		}

		picked, err := deps.Select(ctx, items, false)
		if errors.Is(err, ui.ErrCancelled) {
			ui.HistoryFrom(ctx).Warn("theme unchanged")
			return nil
		}
		if err != nil {
			return err
		}
		if len(picked) == 0 {
			return nil
		}
		name = picked[0].(string)
	}

	if _, err := deps.write(func(lines []string) ([]string, bool) {
		return deps.Set(lines, "theme", name)
	}); err != nil {
		return err
	}

	ui.HistoryFrom(ctx).Success("theme set to %s", name)
	return nil
}

// write edits the rc file under the config lock.
func (deps Deps) write(edit func([]string) ([]string, bool)) (bool, error) {
	var changed bool
	err := deps.WithLock(func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}
		lines, changed = edit(lines)
		return deps.WriteLines(lines)
	})
	return changed, err
}
