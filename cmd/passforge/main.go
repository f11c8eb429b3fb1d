// Command passforge generates random passwords, scores them, and serves the
// password generator widget to a local browser.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/passforge/passforge-go/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "passforge",
	Short:         "Random password generator with a strength meter",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// loadConfig reads the environment and installs the process logger.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	slog.SetDefault(cfg.NewLogger())
	return cfg, nil
}

// loadEnvFile loads variables from the given .env files, or ./.env when none
// are named. A missing file is logged and otherwise ignored.
func loadEnvFile(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}
}

func main() {
	loadEnvFile()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
