package dispatchers

import (
	"context"
	"errors"
	"fmt"

	"github.com/footprint-tools/scopes/internal/flags"
	"github.com/footprint-tools/scopes/internal/usage"
)

// validate runs every rule of every declared flag against values. Rules of
// one flag stop at its first failure; all flags are checked and failures
// are joined.
func validate(ctx context.Context, scope *Scope, declared []flags.Flag, values flags.Values) error {
	var errs []error

	for _, f := range declared {
		value, ok := values[f.Key]
		for _, factory := range f.Rules {
			if err := ctx.Err(); err != nil {
				return err
			}

			rule := factory(values)
			passed, err := rule.Check(ctx, value, ok)
			if err != nil {
				errs = append(errs, usage.RuleFailed(f.Key, err))
				break
			}
			if passed {
				continue
			}

			message, err := rule.Message(ctx)
			if err != nil {
				errs = append(errs, usage.RuleFailed(f.Key, err))
				break
			}
			errs = append(errs, invalid(scope, f, value, message))
			break
		}
	}

	return errors.Join(errs...)
}

func invalid(scope *Scope, f flags.Flag, value any, message string) error {
	if f.Key == ScopeKey && scope.Kind() == KindScope {
		name := fmt.Sprint(value)
		return usage.UnknownScope(f.Key, name, message, FindSimilarScopes(name, scope, defaultSuggestionsCount)...)
	}
	return usage.InvalidFlag(f.Key, message)
}
