package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gostonefire/hashmap/internal/selftest"
	"go.uber.org/zap"
)

func main() {
	configFile := flag.String("config", "", "optional TOML file with hash map parameters")
	format := flag.String("format", selftest.FormatText, "report format, text or json")
	verbose := flag.Bool("v", false, "debug logging to stderr")
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error while creating logger: %v\n", err)
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	run(*configFile, *format, logger)
}

// run - Runs all suites. Problems are logged but never change the exit status.
func run(configFile, format string, logger *zap.Logger) {
	conf, err := selftest.LoadConfig(configFile)
	if err != nil {
		logger.Error("invalid configuration, using defaults", zap.Error(err))
		conf = selftest.DefaultConfig()
	}

	suites, err := selftest.Suites(conf, logger)
	if err != nil {
		logger.Error("failed to build suites", zap.Error(err))
		return
	}

	runner, err := selftest.NewRunner(os.Stdout, format, logger)
	if err != nil {
		logger.Error("failed to create runner", zap.Error(err))
		return
	}

	report, err := runner.Run(suites...)
	if err != nil {
		logger.Error("failed to write report", zap.Error(err))
		return
	}

	logger.Info("self-test done", zap.Int("passed", report.Passed), zap.Int("total", report.Total))
}

// newLogger - Builds a console logger writing to stderr, at debug level if verbose and info level otherwise
func newLogger(verbose bool) (logger *zap.Logger, err error) {
	loggerConfig := zap.NewDevelopmentConfig()
	loggerConfig.OutputPaths = []string{"stderr"}
	loggerConfig.ErrorOutputPaths = []string{"stderr"}
	loggerConfig.DisableStacktrace = true
	if !verbose {
		loggerConfig.Level.SetLevel(zap.InfoLevel)
	}

	return loggerConfig.Build()
}
