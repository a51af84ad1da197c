// Package cmd provides CLI commands for marc-transform.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "marc-transform",
	Short: "Transform harvested catalog records into repository metadata",
	Long: `marc-transform turns raw MARC-like catalog records, harvested as
JSON lines, into normalized repository metadata documents.

Field rules map tagged fields to document properties, free-text
institution names are fuzzy-matched against the institutions vocabulary,
and controlled values (countries, rights, resource types, funders) are
validated against a live vocabulary service with a TTL cache in front.

Examples:
  marc-transform transform -i records.jsonl -o documents.jsonl --base-url https://repo.example.org
  cat records.jsonl | marc-transform transform --base-url https://repo.example.org
  marc-transform fields`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	_ = godotenv.Load()
	setupLogger()
	rootCmd.AddCommand(transformCmd)
	rootCmd.AddCommand(fieldsCmd)
}
