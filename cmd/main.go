package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/garlicgarrison/knights-tour/config"
)

var (
	configPath string
	logLevel   string
)

var mainCommand = &cobra.Command{
	Use:   "knights-tour",
	Short: "Attempt an open knight's tour using Warnsdorff's algorithm",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTour(cmd.InOrStdin(), cmd.OutOrStdout(), tourFlags)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	mainCommand.PersistentFlags().StringVarP(&configPath, "config", "c", "", "set configuration file path")
	mainCommand.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError logs a fatal command error. An unusable --log-level still
// gets the error out at error level.
func reportError(w io.Writer, err error) {
	logger, lerr := newLogger(w)
	if lerr != nil {
		logger = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(w),
			zap.ErrorLevel,
		))
		logger.Error("invalid log level", zap.Error(lerr))
	}
	defer logger.Sync()

	logger.Error("knights-tour failed", zap.Error(err))
}

func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func newLogger(w io.Writer) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", logLevel, err)
	}

	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)), nil
}
