package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"apperror/internal/cli"
	"apperror/internal/config"
	"apperror/pkg/apperr"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	debug   = false
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newConsoleLogger(cfg.Debug || hasDebugFlag(os.Args[1:]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := initCatalog(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", apperr.UserString(err))
		logger.Debug("Catalog initialization failed", zap.String("chain", apperr.DebugString(err)))
		os.Exit(1)
	}

	debug = cfg.Debug
	initCommands(logger, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", apperr.UserString(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "apperror",
	Short: "Application error catalog CLI",
	Long: `apperror inspects the application error message catalog:
- List message keys and their format strings
- Render messages with arguments in any catalog language
- Export a language as YAML or as a TOML catalog file`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode globally so logStructuredError can check it
		cli.SetDebugMode(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug mode with structured error logging")
}

func initCommands(logger *zap.Logger, cfg config.Config) {
	rootCmd.AddCommand(cli.NewCatalogCmd(logger, cfg.Output))
}

// initCatalog loads the default catalog in the configured language, with
// catalog files from CatalogDir overriding the built-in entries.
func initCatalog(cfg config.Config, logger *zap.Logger) error {
	tag, err := cfg.Language()
	if err != nil {
		return err
	}
	apperr.SetLogger(apperr.ZapLogger(logger))

	opts := []apperr.Option{apperr.WithLanguage(tag)}
	if cfg.CatalogDir != "" {
		opts = append(opts, apperr.WithCatalogFS(os.DirFS(cfg.CatalogDir)))
	}
	return apperr.Init(opts...)
}

// hasDebugFlag reports whether --debug is on the command line. The logger is
// built before cobra parses flags.
func hasDebugFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--debug" || arg == "--debug=true" {
			return true
		}
	}
	return false
}

// newConsoleLogger returns a human-friendly console logger with timestamps.
// If debug is true, sets log level to Debug to enable all debug logs.
// Otherwise, sets to ErrorLevel so structured error logs (when debug flag is enabled) will show.
func newConsoleLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	level := zap.ErrorLevel // Error level allows Error logs to show
	if debug {
		level = zap.DebugLevel // Debug level shows all logs
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "",
		CallerKey:      "",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}
