package config

import (
	"context"
	"maps"
	"slices"
	"strings"

	"github.com/footprint-tools/scopes/internal/dispatchers"
	"github.com/footprint-tools/scopes/internal/domain"
	"github.com/footprint-tools/scopes/internal/flags"
	"github.com/footprint-tools/scopes/internal/flags/rules"
	"github.com/footprint-tools/scopes/internal/ui/style"
)

// Register adds the config group under parent.
func Register(parent *dispatchers.Scope, deps Deps) *dispatchers.Scope {
	group := dispatchers.NewGroup(dispatchers.GroupSpec{
		Key:         "config",
		Parent:      parent,
		Description: "Read and change settings in ~/.scopesrc",
	})

	knownKey := func(required bool) flags.Flag {
		f := flags.Flag{
			Key:         "key",
			Type:        flags.String(),
			Description: "Setting name",
			Rules:       []flags.RuleFactory{rules.OneOf(rules.Strings(domain.ConfigKeyNames()...))},
		}
		if required {
			f.Rules = append([]flags.RuleFactory{rules.Required()}, f.Rules...)
		}
		return f
	}

	dispatchers.NewCommand(dispatchers.CommandSpec{
		Key:         "list",
		Parent:      group,
		Description: "Show every setting by section",
		Flags: flags.Set{
			Named: []flags.Flag{{
				Key:         "all",
				Type:        flags.Presence(),
				Aliases:     []string{"a"},
				Description: "Include unset color overrides",
			}},
		},
		Handler: deps.list,
	})

	dispatchers.NewCommand(dispatchers.CommandSpec{
		Key:         "get",
		Parent:      group,
		Description: "Print one setting",
		Flags:       flags.Set{Positional: []flags.Flag{knownKey(true)}},
		Handler:     deps.get,
	})

	dispatchers.NewCommand(dispatchers.CommandSpec{
		Key:         "set",
		Parent:      group,
		Description: "Change one setting",
		Flags: flags.Set{
			Positional: []flags.Flag{
				knownKey(true),
				{
					Key:         "value",
					Type:        flags.String(),
					Description: "New value",
					Rules:       []flags.RuleFactory{rules.Required(), allowedValue},
				},
			},
		},
		Handler: deps.set,
	})

	dispatchers.NewCommand(dispatchers.CommandSpec{
		Key:         "unset",
		Parent:      group,
		Description: "Restore one setting, or all, to the default",
		Flags: flags.Set{
			Named: []flags.Flag{{
				Key:         "all",
				Type:        flags.Presence(),
				Description: "Remove every setting",
			}},
			Positional: []flags.Flag{knownKey(false)},
		},
		Handler: deps.unset,
	})

	themes := make([]string, 0, len(style.BaseThemeNames)+len(style.Themes))
	themes = append(themes, style.BaseThemeNames...)
	themes = append(themes, slices.Sorted(maps.Keys(style.Themes))...)

	dispatchers.NewCommand(dispatchers.CommandSpec{
		Key:         "theme",
		Parent:      group,
		Description: "Pick the color theme",
		Flags: flags.Set{
			Positional: []flags.Flag{{
				Key:         "name",
				Type:        flags.String(),
				Description: "Theme name; prompts when omitted",
				Rules:       []flags.RuleFactory{rules.OneOf(rules.Strings(themes...))},
			}},
		},
		Handler: deps.theme,
	})

	return group
}

// allowedValue rejects values the chosen key does not accept, so a bad
// log_level or store_backend never reaches the rc file.
func allowedValue(values flags.Values) flags.Rule {
	key, _ := domain.GetConfigKey(values.String("key", ""))
	return rules.CustomMessage(
		"Must be one of "+strings.Join(key.Allowed, ", "),
		func(_ context.Context, value any, _ flags.Values) (bool, error) {
			s, _ := value.(string)
			return key.Allows(s), nil
		},
	)(values)
}
