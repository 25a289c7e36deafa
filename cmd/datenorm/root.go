package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/config"
	"github.com/gyeh/datenorm/internal/exitcode"
	"github.com/gyeh/datenorm/internal/logging"
	"github.com/gyeh/datenorm/internal/resolve"
)

var (
	cfg        = config.Default()
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "datenorm",
	Short: "Resolve scraped date strings to canonical timestamps",
	Long: "Resolves free-text date strings from scraped metadata into ISO-8601 timestamps, " +
		"one string at a time or in bulk over Parquet datasets loaded into Postgres via COPY.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", "", "Postgres connection string (or set "+config.DSNEnv+")")
	pf.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	pf.StringVar(&configPath, "config", "", "Optional YAML config file (languages, workers, debug)")
	pf.IntVar(&cfg.Workers, "workers", cfg.Workers, "Parallel resolver goroutines")
}

// loadConfig merges the config file and environment into cfg. Flags set on
// the command line win over the file.
func loadConfig(cmd *cobra.Command, args []string) error {
	if cfg.DSN == "" {
		cfg.DSN = os.Getenv(config.DSNEnv)
	}
	if configPath == "" {
		return nil
	}

	flagWorkers, flagDebug := cfg.Workers, cfg.Debug
	if err := cfg.LoadFromFile(configPath); err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = flagWorkers
	}
	if f := cmd.Flags().Lookup("debug"); f != nil && f.Changed {
		cfg.Debug = flagDebug
	}
	return nil
}

// setup returns the logger for a command and a resolver configured from cfg.
// With --debug the logger is lowered to debug level so resolver diagnostics
// are visible.
func setup() (zerolog.Logger, *resolve.Resolver) {
	level := cfg.LogLevel
	if cfg.Debug {
		level = "debug"
	}
	log := logging.Setup(cfg.LogFormat, level)
	if err := cfg.ValidateResolve(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	r := resolve.New(
		resolve.WithPermissive(resolve.NewPermissive(cfg.Languages, nil)),
		resolve.WithLogger(log),
	)
	return log, r
}
