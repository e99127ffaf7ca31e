package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qamp/internal/logger"
)

// log is shared by all subcommands; configured in PersistentPreRun.
var log zerolog.Logger

var rootCmd = &cobra.Command{
	Use:           "qamp",
	Short:         "Quantum amplitude-amplification playground",
	Long:          "qamp demonstrates a classical Grover-search simulator, a BB84-style key sift with an ECDH backup channel, and synthetic quantum-sensor models.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// Optional .env for local overrides; absence is fine.
		_ = godotenv.Load()

		log = logger.New(logger.Config{
			Level:  envOr("QAMP_LOG_LEVEL", "info"),
			Pretty: envOr("QAMP_LOG_PRETTY", "true") == "true",
		})
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
