package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ether/internal/app/generate"
	"github.com/alexisbeaulieu97/ether/internal/watch"
)

type watchOptions struct {
	debounce time.Duration
}

func newWatchCmd(flags *rootFlags) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate themes whenever a base palette changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, flags, opts)
		},
	}

	cmd.Flags().DurationVar(&opts.debounce, "debounce", watch.DefaultDebounce, "Quiet period before regenerating")

	return cmd
}

func runWatch(cmd *cobra.Command, flags *rootFlags, opts *watchOptions) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := app.generator()
	if _, err := svc.Run(ctx, generate.Request{Parallel: app.cfg.Parallel}); err != nil {
		return newCommandError("generate themes", app.cfg.BaseDir, err, "Check that the base directory exists and is readable.")
	}

	return watch.New(app.cfg.BaseDir, opts.debounce, app.log).Run(ctx, func(ctx context.Context, names []string) {
		regenerate(ctx, app, svc, names)
	})
}

// regenerate rebuilds the changed palettes that still exist. Deleted
// palettes only lead to orphan cleanup.
func regenerate(ctx context.Context, app *appContext, svc *generate.Service, changed []string) {
	all, err := app.store.List(ctx)
	if err != nil {
		app.log.Error(err, "list base themes")
		return
	}

	present := make(map[string]struct{}, len(all))
	for _, name := range all {
		present[name] = struct{}{}
	}
	var names []string
	for _, name := range changed {
		if _, ok := present[name]; ok {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		for _, path := range cleanupOrphans(ctx, app, all) {
			app.out.line(markInfo, "Removed orphaned theme: %s", path)
		}
		return
	}

	summary, err := svc.Run(ctx, generate.Request{Names: names, Parallel: app.cfg.Parallel})
	if err != nil {
		app.log.Error(err, "regenerate themes")
		return
	}
	for _, path := range summary.Removed {
		app.out.line(markInfo, "Removed orphaned theme: %s", path)
	}
	for _, outcome := range summary.Outcomes {
		if outcome.Status == generate.StatusFailed {
			app.out.line(markFailure, "Failed to generate %s: %v", outcome.Name, outcome.Err)
			continue
		}
		app.out.line(markSuccess, "Generated: %s", outcome.Path)
	}
}

func cleanupOrphans(ctx context.Context, app *appContext, valid []string) []string {
	removed, err := app.store.CleanupOrphans(ctx, valid)
	if err != nil {
		app.log.Warn("orphan cleanup failed", "error", err.Error())
	}
	return removed
}
