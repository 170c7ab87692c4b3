package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ether/internal/app/generate"
)

type generateOptions struct {
	all bool
}

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [theme...]",
		Short: "Generate themes from base palettes",
		Long: "Generate editor themes for the named base palettes, or for every palette when no names\n" +
			"are given. Generated files whose palette no longer exists are removed.",
		Example: "  ether generate\n  ether generate eerie gray\n  ether generate --all -o ./dist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags, opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Generate every base palette")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags *rootFlags, opts *generateOptions, args []string) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}

	names := args
	if opts.all {
		names = nil
	}

	summary, err := app.generator().Run(cmd.Context(), generate.Request{
		Names:    names,
		Parallel: app.cfg.Parallel,
	})
	if err != nil {
		return newCommandError("generate themes", app.cfg.BaseDir, err, "Check that the base directory exists and is readable.")
	}
	if summary.Total == 0 {
		return newCommandError("generate themes", app.cfg.BaseDir, fmt.Errorf("no base themes found"), "Add a palette such as eerie.json to the base directory.")
	}

	app.out.title("Generating themes")
	for _, path := range summary.Removed {
		app.out.line(markInfo, "Removed orphaned theme: %s", path)
	}
	for _, outcome := range summary.Outcomes {
		switch outcome.Status {
		case generate.StatusFailed:
			app.out.line(markFailure, "Failed to generate %s: %v", outcome.Name, outcome.Err)
			for _, issue := range outcome.Issues {
				app.out.line(markWarning, "  %s", issue)
			}
		default:
			app.out.line(markSuccess, "Generated: %s", outcome.Path)
		}
	}

	printSummary(app.out, summary)
	if !summary.OK() {
		return errReported
	}
	return nil
}

func printSummary(p *printer, summary generate.Summary) {
	p.title("Summary")
	p.line(markInfo, "Total: %d", summary.Total)
	p.line(markSuccess, "Successful: %d", summary.Successful)
	if summary.Check {
		m := markSuccess
		if summary.Drifted > 0 {
			m = markWarning
		}
		p.line(m, "Out of date: %d", summary.Drifted)
	}
	if summary.Failed > 0 {
		p.line(markFailure, "Failed: %d", summary.Failed)
		for _, name := range summary.Failures {
			p.line(markFailure, "  %s", name)
		}
	}
}
