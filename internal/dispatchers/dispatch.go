package dispatchers

import (
	"context"
	"slices"
	"strings"

	"github.com/footprint-tools/scopes/internal/domain"
	"github.com/footprint-tools/scopes/internal/flags"
	"github.com/footprint-tools/scopes/internal/flags/rules"
	"github.com/footprint-tools/scopes/internal/log"
	"github.com/footprint-tools/scopes/internal/ui"
	"github.com/footprint-tools/scopes/internal/ui/style"
)

// Reserved flag keys.
const (
	HelpKey  = "help"
	ScopeKey = "scope"
)

// helpFlag is added to the root's named flags and inherited from there.
var helpFlag = flags.Flag{
	Key:         HelpKey,
	Type:        flags.Presence(),
	Description: "See help for this command.",
}

// scopeFlag is the positional that selects a child of s. The empty default
// means "no child".
func scopeFlag(s *Scope) flags.Flag {
	names := append(s.ChildNames(), "")
	return flags.Flag{
		Key:     ScopeKey,
		Type:    flags.String(),
		Default: "",
		Rules:   []flags.RuleFactory{rules.OneOf(rules.Strings(names...))},
	}
}

// Dispatcher resolves argument vectors against a scope tree.
type Dispatcher struct {
	out    domain.OutputWriter
	styler domain.Styler
	logger domain.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithOutput sets where help is written.
func WithOutput(w domain.OutputWriter) Option {
	return func(d *Dispatcher) {
		d.out = w
	}
}

// WithStyler sets the styler used for help headings.
func WithStyler(s domain.Styler) Option {
	return func(d *Dispatcher) {
		d.styler = s
	}
}

// WithLogger sets the logger that traces resolution.
func WithLogger(l domain.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// New creates a Dispatcher writing help to stdout.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		out:    ui.NewWriter(),
		styler: style.NopStyler{},
		logger: log.NopLogger{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run resolves args against root and runs the selected handler, or renders
// help. Parse and validation failures are *usage.Error values; handler
// errors are returned unchanged.
func (d *Dispatcher) Run(ctx context.Context, root *Scope, args []string) error {
	return d.resolve(ctx, root, args, flags.Values{}, nil)
}

func (d *Dispatcher) resolve(
	ctx context.Context,
	scope *Scope,
	tokens []string,
	prior flags.Values,
	inherited []flags.Flag,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.logger.Debug("resolve %s %s: tokens=%q inherited=%d", scope.Kind(), scope.Name, tokens, len(inherited))

	named := slices.Concat(inherited, scope.Flags.Named)
	if len(inherited) == 0 {
		named = append(named, helpFlag)
	}

	positional := slices.Clone(scope.Flags.Positional)
	if scope.Kind() == KindScope {
		positional = append(positional, scopeFlag(scope))
	}

	acc, err := flags.Chain(tokens, prior,
		flags.Step{Parser: flags.NamedParser{}, Flags: named},
		flags.Step{Parser: flags.PositionalParser{}, Flags: positional},
		flags.Step{Parser: flags.NamedParser{}, Flags: named},
	)
	if err != nil {
		return err
	}

	values := acc.Values
	resolved := values.Without(HelpKey, ScopeKey)
	child := values.String(ScopeKey, "")

	// A child selection wins over help, so both "parent child --help" and
	// "parent --help child" show the child's help.
	if child != "" {
		if err := validate(ctx, scope, positional, values); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		next := resolved.Clone()
		if help, ok := values[HelpKey]; ok {
			next[HelpKey] = help
		}
		d.logger.Debug("descend into %s, remaining=%q", child, acc.Remaining)
		return d.resolve(ctx, scope.Scopes[child], acc.Remaining, next, named)
	}

	if values.Bool(HelpKey) {
		d.logger.Debug("render help for %s", scope.Name)
		var b strings.Builder
		if err := RenderHelp(&b, scope, inherited, d.styler); err != nil {
			return err
		}
		d.out.Pager(b.String())
		return nil
	}

	if scope.Handler != nil {
		if err := validate(ctx, scope, slices.Concat(named, positional), values); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		d.logger.Debug("run handler for %s with %d flag(s), ignoring %q", scope.Name, len(resolved), acc.Remaining)
		return scope.Handler(ctx, resolved)
	}

	d.logger.Debug("no handler for %s, falling back to help", scope.Name)
	return d.resolve(ctx, scope, []string{"--" + HelpKey}, flags.Values{}, inherited)
}
