package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ether/internal/validation"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [theme...]",
		Short: "Validate base palettes without generating",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, flags, args)
		},
	}
}

func runValidate(cmd *cobra.Command, flags *rootFlags, args []string) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	names := args
	if len(names) == 0 {
		names, err = app.store.List(ctx)
		if err != nil {
			return newCommandError("validate themes", app.cfg.BaseDir, err, "Check that the base directory exists and is readable.")
		}
	}

	app.out.title("Validating base palettes")
	invalid := 0
	for _, name := range names {
		base, err := app.store.Load(ctx, name)
		if err != nil {
			invalid++
			app.out.line(markFailure, "%s: %v", name, err)
			continue
		}

		report := validation.ValidateBaseTokens(base)
		if report.Valid {
			app.out.line(markSuccess, "%s", name)
			continue
		}

		invalid++
		app.out.line(markFailure, "%s (%d issues)", name, len(report.Issues))
		for _, message := range report.Messages() {
			app.out.line(markWarning, "  %s", message)
		}
	}

	if invalid > 0 {
		app.out.line(markFailure, "%d of %d palettes are invalid", invalid, len(names))
		return errReported
	}
	app.out.line(markSuccess, "All %d palettes are valid", len(names))
	return nil
}
