package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ether/internal/manifest"
)

func newManifestCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "manifest",
		Short: "Update the theme contributions in package.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runManifest(cmd, flags)
		},
	}
}

func runManifest(cmd *cobra.Command, flags *rootFlags) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}

	entries, err := manifest.Entries(cmd.Context(), app.store, app.cfg.LabelPrefix, app.cfg.GeneratedPath)
	if err != nil {
		return newCommandError("update manifest", app.cfg.BaseDir, err, "Run 'ether validate' to find the broken palette.")
	}

	changed, err := manifest.Update(app.cfg.Manifest, entries)
	if err != nil {
		return newCommandError("update manifest", app.cfg.Manifest, err, "Ensure package.json exists and contains a JSON object.")
	}

	for _, entry := range entries {
		app.out.line(markInfo, "%s (%s) -> %s", entry.Label, entry.UITheme, entry.Path)
	}
	if !changed {
		app.out.line(markSuccess, "%s is up to date with %d themes", app.cfg.Manifest, len(entries))
		return nil
	}
	app.out.line(markSuccess, "Updated %s with %d themes", app.cfg.Manifest, len(entries))
	return nil
}
