package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/stlsplit/internal/app"
	"github.com/philipparndt/stlsplit/internal/config"
	"github.com/philipparndt/stlsplit/internal/logger"
)

var (
	cfgFile string
	debug   bool
	logFile string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write diagnostics to a log file")
}

func runSplit(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts := app.Options{
		InputDir:  cfg.Dirs.Input,
		OutputDir: cfg.Dirs.Output,
	}
	if len(args) == 1 {
		opts.InputPath = args[0]
	}

	return app.Run(opts)
}

// setup loads the configuration, applies flag overrides and initializes
// logging.
func setup() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if debug {
		cfg.Logging.Level = "debug"
	}
	if logFile != "" {
		cfg.Logging.LogFile = logFile
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, err
	}
	return cfg, nil
}
