// Package approval prompts a human when a command lands on ASK_USER in
// an interactive session.
package approval

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type Result struct {
	Approved   bool
	UserAction string
}

type Prompt struct {
	Command string
	Reason  string
}

// IsInteractive reports whether stdin is a terminal a human can answer on.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Ask prompts for approval on stderr. Non-interactive sessions auto-deny:
// with nobody to confirm, ASK_USER collapses to the safe side.
func Ask(p Prompt) Result {
	if !IsInteractive() {
		return Result{Approved: false, UserAction: "auto_deny_non_interactive"}
	}

	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "⚠  Confirmation required")
	fmt.Fprintf(os.Stderr, "Command: %s\n", p.Command)
	if p.Reason != "" {
		fmt.Fprintf(os.Stderr, "Reason:  %s\n", p.Reason)
	}
	fmt.Fprintln(os.Stderr, "")

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Fprint(os.Stderr, "Proceed? [y/n]: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return Result{Approved: false, UserAction: "error_reading_input"}
		}

		switch strings.TrimSpace(strings.ToLower(input)) {
		case "y", "yes", "a", "approve":
			return Result{Approved: true, UserAction: "approve_once"}
		case "n", "no", "d", "deny":
			return Result{Approved: false, UserAction: "deny"}
		default:
			fmt.Fprintln(os.Stderr, "Please answer 'y' or 'n'.")
		}
	}
}
