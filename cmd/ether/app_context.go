package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/ether/internal/app/generate"
	"github.com/alexisbeaulieu97/ether/internal/config"
	"github.com/alexisbeaulieu97/ether/internal/logger"
	"github.com/alexisbeaulieu97/ether/internal/store"
)

// appContext bundles what every command needs once flags are parsed.
type appContext struct {
	cfg    *config.Config
	log    *logger.Logger
	store  *store.FileStore
	out    *printer
	errOut io.Writer
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	explicit := cmd.Flags().Changed("config")
	cfg, err := config.Load(flags.configPath, explicit)
	if err != nil {
		return nil, newCommandError("load configuration", flags.configPath, err, "Fix the configuration file or pass --config with a valid path.")
	}

	overrides := config.Overrides{
		BaseDir:   flags.baseDir,
		OutputDir: flags.outputDir,
		Parallel:  flags.parallel,
		Verbose:   flags.verbose,
	}
	if err := cfg.Apply(overrides); err != nil {
		return nil, newCommandError("apply flags", "command-line overrides", err, "Check --base-dir, --output and --parallel.")
	}

	errOut := cmd.ErrOrStderr()
	log, err := logger.New(logger.Options{
		Level:         cfg.LogLevel,
		HumanReadable: isTerminal(errOut),
		Writer:        errOut,
	})
	if err != nil {
		return nil, err
	}

	return &appContext{
		cfg:    cfg,
		log:    log,
		store:  store.New(cfg.BaseDir, cfg.OutputDir, log),
		out:    newPrinter(cmd.OutOrStdout()),
		errOut: errOut,
	}, nil
}

func (a *appContext) generator() *generate.Service {
	return generate.NewService(a.store, generate.WithLogger(a.log))
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
