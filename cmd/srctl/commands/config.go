package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindwell-labs/support-router/pkg/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and validate router configuration",
	}
	cmd.AddCommand(newConfigValidateCmd())
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			if path == "" {
				return fmt.Errorf("no configuration file given, use --config")
			}
			if _, err := config.Parse(path); err != nil {
				return fmt.Errorf("configuration invalid: %w", err)
			}
			cmd.Printf("%s: OK\n", path)
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cmd.Printf("logging.level:                    %s\n", cfg.Logging.Level)
			cmd.Printf("distress.high_threshold:          %.1f\n", cfg.Distress.HighThreshold)
			cmd.Printf("distress.intensifier_multiplier:  %.2f\n", cfg.Distress.IntensifierMultiplier)
			cmd.Printf("distress.exclamation_weight:      %.1f\n", cfg.Distress.ExclamationWeight)
			cmd.Printf("distress.caps_weight:             %.1f\n", cfg.Distress.CapsWeight)
			cmd.Printf("distress.negation_window:         %d\n", cfg.Distress.NegationWindow)
			cmd.Printf("high table size:                  %d\n", len(cfg.HighTable()))
			cmd.Printf("mild table size:                  %d\n", len(cfg.MildTable()))
			cmd.Printf("crisis phrases:                   %d\n", len(cfg.CrisisPhrases()))
			return nil
		},
	}
}
