package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/mindwell-labs/support-router/pkg/config"
	"github.com/mindwell-labs/support-router/pkg/decision"
	"github.com/mindwell-labs/support-router/pkg/session"
)

// NewRouteCmd creates the route command: one-shot classification of a single
// message with a fresh session.
func NewRouteCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "route <message>",
		Short: "Classify a single message and print the routing decision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			engine, err := decision.NewEngine(cfg)
			if err != nil {
				return err
			}

			d := engine.Route(args[0], session.NewState())
			return printDecision(cmd, d, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the decision as JSON")
	return cmd
}

// loadConfig resolves the --config persistent flag, falling back to
// defaults when unset.
func loadConfig(cmd *cobra.Command) (*config.RouterConfig, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.Parse(path)
}

func printDecision(cmd *cobra.Command, d decision.RoutingDecision, asJSON bool) error {
	if asJSON {
		out, err := json.MarshalIndent(decisionView(d), "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(out))
		return nil
	}

	cmd.Printf("target:   %s\n", d.TargetAgent)
	cmd.Printf("tier:     %s\n", d.Tier)
	cmd.Printf("crisis:   %v\n", d.CrisisDetected)
	cmd.Printf("distress: %s (score %.1f)\n", d.DistressLevel, d.DistressScore)
	if d.MenuSelection != "" {
		cmd.Printf("selected: %s\n", d.MenuSelection)
	}
	return nil
}

type decisionJSON struct {
	TargetAgent    string  `json:"target_agent"`
	Tier           string  `json:"tier"`
	CrisisDetected bool    `json:"crisis_detected"`
	DistressLevel  string  `json:"distress_level"`
	DistressScore  float64 `json:"distress_score"`
	MenuSelection  string  `json:"menu_selection,omitempty"`
}

func decisionView(d decision.RoutingDecision) decisionJSON {
	return decisionJSON{
		TargetAgent:    string(d.TargetAgent),
		Tier:           d.Tier,
		CrisisDetected: d.CrisisDetected,
		DistressLevel:  string(d.DistressLevel),
		DistressScore:  d.DistressScore,
		MenuSelection:  d.MenuSelection,
	}
}
