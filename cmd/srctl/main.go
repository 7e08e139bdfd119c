package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mindwell-labs/support-router/cmd/srctl/commands"
	"github.com/mindwell-labs/support-router/pkg/observability/logging"
)

var (
	// Version information (set by build flags)
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	if _, err := logging.InitLoggerFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
	}

	rootCmd := &cobra.Command{
		Use:   "srctl",
		Short: "Support Router Control CLI",
		Long: `srctl is a developer tool for exercising the support-router
classification engine from the command line.

The engine itself is a library invoked once per conversational turn; srctl
wraps it so lexicon and threshold changes can be tried without wiring up the
surrounding system.

Common workflows:
  srctl route "I'm feeling anxious"   # Classify a single message
  srctl repl                          # Interactive session with menu replies
  srctl config validate               # Validate a configuration file`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file")

	rootCmd.AddCommand(commands.NewRouteCmd())
	rootCmd.AddCommand(commands.NewReplCmd())
	rootCmd.AddCommand(commands.NewConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
