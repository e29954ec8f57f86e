package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saiprakashreddy2023-maker/faultscope/pkg/common/logger"
)

var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
	CommitSHA = "unknown"
)

var (
	logLevel  string
	logFormat string
	verbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "fscope",
		Short:   "faultscope - typed fault propagation with guaranteed cleanup",
		Long:    getBanner(),
		Version: fmt.Sprintf("%s (built: %s, commit: %s)", Version, BuildTime, CommitSHA),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (sets log level to debug)")

	rootCmd.AddCommand(newDivideCmd())
	rootCmd.AddCommand(newValidateAgeCmd())
	rootCmd.AddCommand(newReadFileCmd())
	rootCmd.AddCommand(newProcessCmd())
	rootCmd.AddCommand(newNamesCmd())
	rootCmd.AddCommand(newDemoCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func getBanner() string {
	return `
╔═══════════════════════════════════════════════════╗
║                                                   ║
║   ███████╗███████╗ ██████╗ ██████╗ ██████╗ ███████╗
║   ██╔════╝██╔════╝██╔════╝██╔═══██╗██╔══██╗██╔════╝
║   █████╗  ███████╗██║     ██║   ██║██████╔╝█████╗
║   ██╔══╝  ╚════██║██║     ██║   ██║██╔═══╝ ██╔══╝
║   ██║     ███████║╚██████╗╚██████╔╝██║     ███████╗
║   ╚═╝     ╚══════╝ ╚═════╝ ╚═════╝ ╚═╝     ╚══════╝
║                                                   ║
╚═══════════════════════════════════════════════════╝

  🧯 Typed fault propagation with guaranteed cleanup

  ⚡ Faults routed to the most specific handler
  ⟳  Cleanup runs exactly once on every exit path
  🔎 Unhandled faults ascend with kind and message intact

  Try:  fscope divide 10 0
        fscope process abc 0 25
        fscope demo

`
}

func setupLogging() {
	level := logger.ParseLevel(logLevel)
	if verbose {
		level = logger.LevelDebug
	}

	format := logger.FormatText
	if logFormat == "json" {
		format = logger.FormatJSON
	}

	logger.Default = logger.New(logger.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
	})
}
