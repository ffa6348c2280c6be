package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/arborio/suffixtree/internal/config"
	"github.com/arborio/suffixtree/internal/slogpretty"
	"github.com/spf13/cobra"
)

const (
	exitOK      = 0
	exitUsage   = 1
	exitIO      = 2
	exitCoreErr = 3
)

// cliError pairs an error with the exit code it should produce, letting
// RunE report failures without main inspecting error strings.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func usageErr(err error) error { return &cliError{code: exitUsage, err: err} }
func ioErr(err error) error    { return &cliError{code: exitIO, err: err} }
func coreErr(err error) error  { return &cliError{code: exitCoreErr, err: err} }

var (
	flagSentinel string
	flagJSON     bool
	flagLogLevel string
	flagConfig   string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "suffixtree",
		Short:         "Query a suffix-tree index of a text file for frequent substrings and tandem repeats",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagSentinel, "sentinel", "", "sentinel byte appended to the text (default from config, else '$')")
	root.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit results as newline-delimited JSON instead of plain result lines")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (default from config, else 'info')")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "optional TOML config file supplying defaults for --sentinel, --log-level, --json")

	root.AddCommand(newTopKCmd(), newRepeatCmd())
	return root
}

func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		var ce *cliError
		if as, ok := err.(*cliError); ok {
			ce = as
		} else {
			ce = &cliError{code: exitUsage, err: err}
		}
		fmt.Fprintf(os.Stderr, "suffixtree: %s\n", ce.err)
		return ce.code
	}
	return exitOK
}

// resolveConfig merges config-file defaults with any explicitly set flags,
// flags winning. Loaded once per invocation, grounded on citar's
// MustParseConfig/ParseConfig split but error-returning instead of fatal.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("sentinel") {
		cfg.Sentinel = flagSentinel
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if cmd.Flags().Changed("json") {
		cfg.JSON = flagJSON
	}
	return cfg, nil
}

func sentinelByte(s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("--sentinel must be exactly one byte, got %q", s)
	}
	return s[0], nil
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(&slogpretty.Handler{
		We:  os.Stderr,
		Wo:  os.Stdout,
		Lvl: lvl,
	})
}
