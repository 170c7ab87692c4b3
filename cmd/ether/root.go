package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ether/internal/config"
)

type rootFlags struct {
	configPath string
	verbose    bool
	baseDir    string
	outputDir  string
	parallel   int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	genOpts := &generateOptions{}

	cmd := &cobra.Command{
		Use:           "ether [theme...]",
		Short:         "Ether generates editor color themes from compact base palettes",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags, genOpts, args)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", config.DefaultFile, "Path to the project configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.baseDir, "base-dir", "", "Directory containing base palettes")
	cmd.PersistentFlags().StringVarP(&flags.outputDir, "output", "o", "", "Directory for generated themes")
	cmd.PersistentFlags().IntVarP(&flags.parallel, "parallel", "p", 0, "Maximum themes generated concurrently")
	cmd.Flags().BoolVarP(&genOpts.all, "all", "a", false, "Generate every base palette")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newManifestCmd(flags))
	cmd.AddCommand(newWatchCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
