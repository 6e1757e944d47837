package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/footprint-tools/scopes/internal/app"
	"github.com/footprint-tools/scopes/internal/cli"
	"github.com/footprint-tools/scopes/internal/ui"
	"github.com/footprint-tools/scopes/internal/usage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	a, err := app.New(ctx, cli.TodoSpec, app.DefaultOptions(cli.TodoSpec.Name))
	if err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		return 1
	}
	defer func() { _ = a.Close() }()

	cli.BuildTodo(a.Root, cli.Deps{Store: a.Store, Select: ui.SelectList})

	if err := a.Run(ctx, args); err != nil {
		a.Logger.Error("todo: %v", err)
		fmt.Fprintln(stderr, a.Styler.Error("ERROR: ")+err.Error())
		return usage.ExitCode(err)
	}
	return 0
}
