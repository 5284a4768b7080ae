package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/global-mysterysnailrevolution/Borg/internal/approval"
	"github.com/global-mysterysnailrevolution/Borg/internal/gate"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [command...]",
	Short: "Evaluate a shell command without executing it",
	Long: `Run a command string through the command gate and report the verdict.

  borg check rm -rf /tmp/build
  borg check -- git push origin main

Exit codes: 0 = allowed (or approved at the prompt), 2 = denied.
ASK verdicts prompt for confirmation when stdin is a terminal and deny
otherwise.`,
	Args: cobra.MinimumNArgs(1),
	RunE: checkCommand,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkCommand(cmd *cobra.Command, args []string) error {
	command := strings.Join(args, " ")

	g, audit := loadGate()
	if audit != nil {
		defer func() {
			_ = audit.Close()
		}()
	}

	decision := g.CheckCommand(command)
	logDecision(audit, gate.ActionRequest{
		Type:    gate.ActionExec,
		Payload: map[string]any{"command": command},
	}, decision)

	switch decision.Verdict {
	case gate.VerdictDeny:
		fmt.Fprintln(os.Stderr, decision.Reason)
		os.Exit(2)
	case gate.VerdictAsk:
		result := approval.Ask(approval.Prompt{
			Command: gate.Preview(command),
			Reason:  decision.Reason,
		})
		if !result.Approved {
			fmt.Fprintln(os.Stderr, "Denied.")
			os.Exit(2)
		}
		fmt.Println("Approved.")
	default:
		fmt.Println("Allowed.")
	}
	return nil
}
