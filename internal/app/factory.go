// Package app assembles a scopes tool: logger, styling, output, store and
// the dispatcher, plus the shared config scope under the tool's root.
package app

import (
	"context"
	"io"
	"os"

	configactions "github.com/footprint-tools/scopes/internal/actions/config"
	"github.com/footprint-tools/scopes/internal/config"
	"github.com/footprint-tools/scopes/internal/dispatchers"
	"github.com/footprint-tools/scopes/internal/domain"
	"github.com/footprint-tools/scopes/internal/log"
	"github.com/footprint-tools/scopes/internal/paths"
	"github.com/footprint-tools/scopes/internal/store"
	"github.com/footprint-tools/scopes/internal/ui"
	"github.com/footprint-tools/scopes/internal/ui/style"
)

// App is a ready-to-run tool. Register commands on Root, then call Run.
type App struct {
	Root       *dispatchers.Scope
	Dispatcher *dispatchers.Dispatcher
	History    *ui.History
	Store      *store.Store
	Config     domain.ConfigProvider
	Logger     domain.Logger
	Output     domain.OutputWriter
	Styler     domain.Styler
}

// New creates an App with all dependencies wired up.
func New(ctx context.Context, spec dispatchers.RootSpec, opts Options) (*App, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		// a broken log file never stops the tool
		if l, err := log.New(paths.LogFilePath(), log.ParseLevel(opts.LogLevel)); err == nil {
			logger = l
		}
	}

	backend, err := openBackend(ctx, opts)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	s, err := store.Register(ctx, opts.Name, store.WithBackend(backend), store.WithLogger(logger))
	if err != nil {
		_ = backend.Close()
		_ = logger.Close()
		return nil, err
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)
	styler := style.NewStyler()

	cfg := config.NewProvider()
	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	writerOpts = append(writerOpts, ui.WithConfig(cfg))
	output := ui.NewWriter(writerOpts...)

	logger.Debug("app: %s ready (store=%s)", opts.Name, opts.StoreBackend)

	a := assemble(spec, appParts{
		store:  s,
		config: cfg,
		logger: logger,
		output: output,
		styler: styler,
		stdout: os.Stdout,
	})
	for _, w := range opts.Warnings {
		logger.Warn("app: %s", w)
		a.History.Warn("%s", w)
	}
	return a, nil
}

// NewForTesting creates an App that writes history to w, stores name on
// backend and does no logging or styling.
func NewForTesting(ctx context.Context, spec dispatchers.RootSpec, name string, w io.Writer, backend domain.DocumentBackend) (*App, error) {
	s, err := store.Register(ctx, name, store.WithBackend(backend))
	if err != nil {
		return nil, err
	}

	return assemble(spec, appParts{
		store:  s,
		config: config.NewProvider(),
		logger: log.NopLogger{},
		output: ui.NewWriterTo(w, ui.WithPagerDisabled()),
		styler: style.NopStyler{},
		stdout: w,
	}), nil
}

type appParts struct {
	store  *store.Store
	config domain.ConfigProvider
	logger domain.Logger
	output domain.OutputWriter
	styler domain.Styler
	stdout io.Writer
}

func assemble(spec dispatchers.RootSpec, p appParts) *App {
	root := dispatchers.NewRoot(spec)
	configactions.Register(root, configactions.DefaultDeps())

	return &App{
		Root: root,
		Dispatcher: dispatchers.New(
			dispatchers.WithOutput(p.output),
			dispatchers.WithStyler(p.styler),
			dispatchers.WithLogger(p.logger),
		),
		History: ui.NewHistory(p.stdout, ui.WithStyler(p.styler)),
		Store:   p.store,
		Config:  p.config,
		Logger:  p.logger,
		Output:  p.output,
		Styler:  p.styler,
	}
}

func openBackend(ctx context.Context, opts Options) (domain.DocumentBackend, error) {
	if opts.StoreBackend == "sqlite" {
		return store.OpenSQLite(ctx, paths.DatabasePath())
	}

	root := opts.StoreDir
	if root == "" {
		root = paths.StoreRoot()
	}
	return store.NewFileBackend(root), nil
}

// Run resolves args against Root with History carried in ctx.
func (a *App) Run(ctx context.Context, args []string) error {
	return a.Dispatcher.Run(ui.WithHistory(ctx, a.History), a.Root, args)
}

// Close releases the store and the logger.
func (a *App) Close() error {
	var err error
	if a.Store != nil {
		err = a.Store.Close()
	}
	if a.Logger != nil {
		_ = a.Logger.Close()
	}
	return err
}
