package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ether/internal/app/generate"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [theme...]",
		Short: "Report generated themes that are out of date",
		Long:  "Regenerate themes in memory and print a unified diff for every file on disk that differs.\nNothing is written.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, flags, args)
		},
	}
}

func runCheck(cmd *cobra.Command, flags *rootFlags, args []string) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}

	summary, err := app.generator().Run(cmd.Context(), generate.Request{
		Names:    args,
		Parallel: app.cfg.Parallel,
		Check:    true,
	})
	if err != nil {
		return newCommandError("check themes", app.cfg.BaseDir, err, "Check that the base directory exists and is readable.")
	}

	app.out.title("Checking generated themes")
	for _, outcome := range summary.Outcomes {
		switch outcome.Status {
		case generate.StatusUnchanged:
			app.out.line(markSuccess, "%s is up to date", outcome.Name)
		case generate.StatusDrifted:
			app.out.line(markWarning, "%s is out of date", outcome.Name)
			app.out.raw(outcome.Diff)
		case generate.StatusFailed:
			app.out.line(markFailure, "%s: %v", outcome.Name, outcome.Err)
		}
	}

	printSummary(app.out, summary)
	if !summary.OK() {
		return errReported
	}
	return nil
}
