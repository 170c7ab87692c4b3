package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ether/internal/generator"
	"github.com/alexisbeaulieu97/ether/internal/preview"
	"github.com/alexisbeaulieu97/ether/internal/validation"
)

type previewOptions struct {
	code     bool
	language string
	file     string
}

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <theme>",
		Short: "Show a palette and its derived colors as terminal swatches",
		Example: "  ether preview eerie\n" +
			"  ether preview eerie --file main.go\n" +
			"  ether preview eerie --code=false",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.code, "code", true, "Highlight a code sample with the theme's token colors")
	cmd.Flags().StringVarP(&opts.language, "language", "l", "go", "Lexer used for the code sample")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Highlight this file instead of the built-in sample")

	return cmd
}

func runPreview(cmd *cobra.Command, flags *rootFlags, opts *previewOptions, name string) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}

	base, err := app.store.Load(cmd.Context(), name)
	if err != nil {
		return newCommandError("preview", name, err, "Run 'ether validate' to list available palettes.")
	}
	if err := validation.ValidateBaseTokens(base).Err(name); err != nil {
		return newCommandError("preview", name, err, "Fix the palette and try again.")
	}

	th, err := generator.BuildTheme(base)
	if err != nil {
		return newCommandError("preview", name, err, "")
	}

	previewer := preview.New(lipgloss.NewRenderer(cmd.OutOrStdout()))
	out, err := previewer.Render(base, th)
	if err != nil {
		return newCommandError("preview", name, err, "")
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	if !opts.code {
		return nil
	}

	language, source := opts.language, ""
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return newCommandError("preview", opts.file, err, "Pass a readable file to --file.")
		}
		source = string(data)
		if detected := preview.LanguageFor(opts.file); detected != "" && !cmd.Flags().Changed("language") {
			language = detected
		}
	}

	code, err := previewer.Code(th, language, source)
	if err != nil {
		return newCommandError("preview", name, err, "Pass a language chroma knows with --language.")
	}
	app.out.title("Sample")
	fmt.Fprint(cmd.OutOrStdout(), code)
	return nil
}
