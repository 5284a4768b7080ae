package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/global-mysterysnailrevolution/Borg/internal/config"
	"github.com/global-mysterysnailrevolution/Borg/internal/gate"
	"github.com/global-mysterysnailrevolution/Borg/internal/logger"
	"github.com/global-mysterysnailrevolution/Borg/internal/rules"
	"github.com/spf13/cobra"
)

// hookInput is the JSON payload the agent runtime pipes to the hook.
// Claude Code sends {"hook_event_name": "PreToolUse", "tool_name": "...",
// "tool_input": {...}}.
type hookInput struct {
	HookEventName string         `json:"hook_event_name"`
	ToolName      string         `json:"tool_name"`
	ToolInput     map[string]any `json:"tool_input"`
}

// decisionRecord is the single structured record written for non-ALLOW
// verdicts. ALLOW emits nothing: empty output plus exit 0 means proceed.
type decisionRecord struct {
	EventName string `json:"eventName"`
	Decision  string `json:"decision"` // "deny" or "ask_user"
	Reason    string `json:"reason"`
}

// writeTools are the host tools whose payloads carry file content.
var writeTools = map[string]bool{
	"Write":        true,
	"Edit":         true,
	"MultiEdit":    true,
	"NotebookEdit": true,
}

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Evaluate one intercepted agent action from stdin",
	Long: `Reads a single PreToolUse JSON payload from stdin and evaluates it.

Bash tool calls run through the command gate; Write/Edit tool calls run
through the secret-scan gate. Other tools pass through untouched.

On ALLOW nothing is printed. Otherwise one JSON record with the decision
and reason is written to stdout. The process always exits 0 — the verdict
lives in the payload, never in the exit code. Unparseable input is
treated as ALLOW (fail open).

Setup:
  borg setup claude-code`,
	RunE: hookCommand,
}

func init() {
	rootCmd.AddCommand(hookCmd)
}

func hookCommand(cmd *cobra.Command, args []string) error {
	// Bypass: consume stdin and allow everything when disabled.
	if os.Getenv("BORG_BYPASS") == "1" {
		_, _ = io.ReadAll(os.Stdin)
		return nil
	}

	g, audit := loadGate()
	if audit != nil {
		defer func() {
			_ = audit.Close()
		}()
	}

	return runHook(g, audit, os.Stdin, os.Stdout)
}

// loadGate builds the gate and audit logger from configuration. Every
// failure degrades: bad rules file → built-in catalogs, no logger → no
// audit trail. The hook must never abort the host's call.
func loadGate() (*gate.Gate, *logger.AuditLogger) {
	var set rules.RuleSet

	cfg, err := config.Load(rulesPath, logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[borg] warning: config load failed: %v\n", err)
		return gate.New(rules.Defaults()), nil
	}

	set, err = rules.Load(cfg.RulesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[borg] warning: rules load failed: %v\n", err)
		set = rules.Defaults()
	}

	audit, err := logger.New(cfg.LogPath, set.Secrets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[borg] warning: audit logger init failed: %v\n", err)
		audit = nil
	}

	return gate.New(set), audit
}

// runHook is the transport: one message in, at most one decision out.
func runHook(g *gate.Gate, audit *logger.AuditLogger, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[borg] warning: could not read hook input: %v\n", err)
		return nil // fail open
	}

	var input hookInput
	if err := json.Unmarshal(data, &input); err != nil {
		fmt.Fprintf(os.Stderr, "[borg] warning: could not parse hook input: %v\n", err)
		return nil // fail open
	}

	req, ok := requestForTool(input)
	if !ok {
		return nil // unguarded tool, pass through
	}

	decision := g.Check(req)
	logDecision(audit, req, decision)

	if decision.Allowed() {
		return nil
	}

	record := decisionRecord{
		EventName: "PreToolUse",
		Decision:  string(decision.Verdict),
		Reason:    decision.Reason,
	}
	return json.NewEncoder(out).Encode(record)
}

func requestForTool(input hookInput) (gate.ActionRequest, bool) {
	switch {
	case input.ToolName == "Bash":
		return gate.ActionRequest{Type: gate.ActionExec, Payload: input.ToolInput}, true
	case writeTools[input.ToolName]:
		return gate.ActionRequest{Type: gate.ActionWrite, Payload: input.ToolInput}, true
	default:
		return gate.ActionRequest{}, false
	}
}

func logDecision(audit *logger.AuditLogger, req gate.ActionRequest, decision gate.Decision) {
	if audit == nil {
		return
	}

	event := logger.AuditEvent{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Action:    string(req.Type),
		Verdict:   string(decision.Verdict),
		Reason:    decision.Reason,
		Source:    "hook",
	}

	switch req.Type {
	case gate.ActionExec:
		event.Preview = gate.Preview(gate.ExtractCommand(req))
	case gate.ActionWrite:
		_, path := gate.ExtractWrite(req)
		event.Target = path
	}

	for _, f := range decision.Findings {
		event.Labels = append(event.Labels, f.Rule.Label)
	}

	if err := audit.Log(event); err != nil {
		fmt.Fprintf(os.Stderr, "[borg] warning: audit log failed: %v\n", err)
	}
}
