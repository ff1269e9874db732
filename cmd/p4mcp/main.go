package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/rs/zerolog"

	"p4mcp/internal/config"
	"p4mcp/internal/mcp"
	"p4mcp/internal/p4"
	"p4mcp/internal/tools"
)

var (
	debugMode  = flag.Bool("d", false, "Enable debug mode")
	logFile    = flag.String("log-file", "", "Log file path (logs go to stderr in debug mode, disabled otherwise)")
	mockMode   = flag.Bool("mock", false, "Use the mock backend instead of the p4 binary")
	configPath = flag.String("config", "", "Path to a JSON config file")
)

func main() {
	flag.Parse()

	logger := initLogger(*debugMode, *logFile)
	logger.Info().Msg("p4mcp server starting")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot load configuration")
	}
	if *mockMode {
		cfg.MockMode = true
	}

	var runner p4.Runner
	if cfg.MockMode {
		logger.Info().Msg("using mock backend")
		runner = p4.NewMockRunner(logger)
	} else {
		logger.Info().Str("binary", cfg.P4Binary).Msg("using p4 binary")
		runner = p4.NewExecRunner(cfg.P4Binary, cfg.CommandTimeout(), logger)
	}

	server := mcp.NewServer(tools.NewRegistry(), runner, logger)
	if err := server.Serve(context.Background(), os.Stdin, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("server terminated")
	}

	logger.Info().Msg("p4mcp server shutting down")
}

func initLogger(debug bool, logFilePath string) zerolog.Logger {
	// Set log level
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Stdout carries the protocol, so diagnostics may only ever go to a
	// file or stderr.
	var output io.Writer
	switch {
	case logFilePath != "":
		file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		output = file
	case debug:
		output = os.Stderr
	default:
		output = io.Discard
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
