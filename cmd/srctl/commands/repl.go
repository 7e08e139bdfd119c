package commands

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mindwell-labs/support-router/pkg/decision"
	"github.com/mindwell-labs/support-router/pkg/session"
)

// NewReplCmd creates the repl command: an interactive loop over one session.
// It stands in for the dispatch layer, so menu publication — normally the
// presenting handler's job — is simulated with /menu.
func NewReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively route messages within one session",
		Long: `Starts an interactive loop routing each line through the engine with a
single shared session.

Commands:
  /menu a | b | c   Publish a numbered menu (what a handler would do)
  /clear            Discard the pending menu
  /session          Show session state
  /quit             Exit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			engine, err := decision.NewEngine(cfg)
			if err != nil {
				return err
			}

			sess := session.NewState()
			cmd.Printf("session %s — type /quit to exit\n", sess.ID())

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				cmd.Print("> ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				if strings.HasPrefix(line, "/") {
					if quit := runReplCommand(cmd, line, sess); quit {
						return nil
					}
					continue
				}

				d := engine.Route(line, sess)
				if err := printDecision(cmd, d, false); err != nil {
					return err
				}
			}
		},
	}
}

func runReplCommand(cmd *cobra.Command, line string, sess *session.State) (quit bool) {
	name, rest, _ := strings.Cut(line, " ")
	switch name {
	case "/quit", "/exit":
		return true
	case "/menu":
		options := splitOptions(rest)
		if len(options) == 0 {
			cmd.Println("usage: /menu option one | option two | ...")
			return false
		}
		sess.SetMenuOptions(options)
		for i, opt := range options {
			cmd.Printf("%d. %s\n", i+1, opt)
		}
	case "/clear":
		sess.ClearMenuOptions()
		cmd.Println("menu cleared")
	case "/session":
		cmd.Printf("id=%s turns=%d menu=%v\n", sess.ID(), sess.TurnCount(), sess.MenuOptions())
	default:
		cmd.Printf("unknown command %q\n", name)
	}
	return false
}

func splitOptions(raw string) []string {
	var options []string
	for _, part := range strings.Split(raw, "|") {
		if part = strings.TrimSpace(part); part != "" {
			options = append(options, part)
		}
	}
	return options
}
