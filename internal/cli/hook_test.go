package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/global-mysterysnailrevolution/Borg/internal/gate"
	"github.com/global-mysterysnailrevolution/Borg/internal/rules"
)

func runHookString(t *testing.T, input string) string {
	t.Helper()
	g := gate.New(rules.Defaults())
	var out bytes.Buffer
	if err := runHook(g, nil, strings.NewReader(input), &out); err != nil {
		t.Fatalf("runHook: %v", err)
	}
	return out.String()
}

func TestRunHook_DeniesDangerousCommand(t *testing.T) {
	out := runHookString(t, `{"hook_event_name":"PreToolUse","tool_name":"Bash","tool_input":{"command":"rm -rf /"}}`)

	var rec decisionRecord
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("output not a decision record: %q", out)
	}
	if rec.EventName != "PreToolUse" {
		t.Errorf("eventName = %q", rec.EventName)
	}
	if rec.Decision != "deny" {
		t.Errorf("decision = %q, want deny", rec.Decision)
	}
	if !strings.Contains(rec.Reason, "rm -rf /") {
		t.Errorf("reason missing command: %q", rec.Reason)
	}
}

func TestRunHook_AsksOnSecretWrite(t *testing.T) {
	out := runHookString(t, `{"hook_event_name":"PreToolUse","tool_name":"Write","tool_input":{"file_path":"src/config.js","content":"api_key: \"abcdef0123456789abcdef0123456789\""}}`)

	var rec decisionRecord
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("output not a decision record: %q", out)
	}
	if rec.Decision != "ask_user" {
		t.Errorf("decision = %q, want ask_user", rec.Decision)
	}
	if !strings.Contains(rec.Reason, "API Key") {
		t.Errorf("reason missing label: %q", rec.Reason)
	}
}

// MultiEdit nests its content under edits[].new_string rather than a
// top-level content field; a secret in any edit must still be caught.
func TestRunHook_AsksOnMultiEditSecret(t *testing.T) {
	out := runHookString(t, `{"hook_event_name":"PreToolUse","tool_name":"MultiEdit","tool_input":{"file_path":"src/config.js","edits":[{"old_string":"key: \"\"","new_string":"api_key: \"abcdef0123456789abcdef0123456789\""},{"old_string":"a","new_string":"b"}]}}`)

	var rec decisionRecord
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("output not a decision record: %q", out)
	}
	if rec.Decision != "ask_user" {
		t.Errorf("decision = %q, want ask_user", rec.Decision)
	}
	if !strings.Contains(rec.Reason, "API Key") {
		t.Errorf("reason missing label: %q", rec.Reason)
	}
}

func TestRunHook_SilentOnAllow(t *testing.T) {
	inputs := []string{
		`{"hook_event_name":"PreToolUse","tool_name":"Bash","tool_input":{"command":"ls -la"}}`,
		`{"hook_event_name":"PreToolUse","tool_name":"Write","tool_input":{"file_path":".env.example","content":"API_KEY=abcdef0123456789abcdef0123456789"}}`,
		`{"hook_event_name":"PreToolUse","tool_name":"Read","tool_input":{"file_path":"/etc/passwd"}}`,
	}
	for _, input := range inputs {
		if out := runHookString(t, input); out != "" {
			t.Errorf("input %s produced output %q, want none", input, out)
		}
	}
}

// Malformed or empty input must not block the host call: no output, nil
// error, exit 0.
func TestRunHook_FailsOpen(t *testing.T) {
	inputs := []string{
		``,
		`not json at all`,
		`{"tool_name": 42}`,
		`{"hook_event_name":"PreToolUse","tool_name":"Bash"}`,
		`{"hook_event_name":"PreToolUse","tool_name":"Bash","tool_input":{"command":""}}`,
	}
	for _, input := range inputs {
		if out := runHookString(t, input); out != "" {
			t.Errorf("input %q produced output %q, want none", input, out)
		}
	}
}

func TestRequestForTool(t *testing.T) {
	tests := []struct {
		tool     string
		wantType gate.ActionType
		wantOK   bool
	}{
		{"Bash", gate.ActionExec, true},
		{"Write", gate.ActionWrite, true},
		{"Edit", gate.ActionWrite, true},
		{"MultiEdit", gate.ActionWrite, true},
		{"NotebookEdit", gate.ActionWrite, true},
		{"Read", "", false},
		{"Glob", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		req, ok := requestForTool(hookInput{ToolName: tt.tool, ToolInput: map[string]any{}})
		if ok != tt.wantOK {
			t.Errorf("tool %q: ok = %v, want %v", tt.tool, ok, tt.wantOK)
			continue
		}
		if ok && req.Type != tt.wantType {
			t.Errorf("tool %q: type = %s, want %s", tt.tool, req.Type, tt.wantType)
		}
	}
}
