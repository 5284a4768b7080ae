// Package gate implements the pre-execution decision pipeline: extract
// the text to inspect from an action request, evaluate it against a rule
// catalog, and synthesize an allow/deny/ask verdict.
package gate

import "strings"

// ActionType distinguishes the two guarded action kinds.
type ActionType string

const (
	// ActionWrite is a proposed file write (or edit).
	ActionWrite ActionType = "write"
	// ActionExec is a proposed shell command.
	ActionExec ActionType = "exec"
)

// ActionRequest is one intercepted tool invocation. The payload is the
// host's loosely-typed tool input, taken as-is.
type ActionRequest struct {
	Type    ActionType
	Payload map[string]any
}

// Field aliases accepted when extracting from a write payload. Different
// host tools name the same thing differently (Write sends content, Edit
// sends new_string, notebook tools send file_text).
var (
	contentFields = []string{"content", "new_string", "file_text", "body", "text"}
	pathFields    = []string{"file_path", "path", "notebook_path", "target_file"}
)

// ExtractWrite isolates the content and target path from a write payload.
// Missing or non-string fields degrade to "", never an error: an empty
// string yields no findings and therefore ALLOW.
func ExtractWrite(req ActionRequest) (content, path string) {
	content = firstString(req.Payload, contentFields)
	if content == "" {
		content = editsContent(req.Payload)
	}
	return content, firstString(req.Payload, pathFields)
}

// editsContent flattens a MultiEdit-style edits array. Each entry's
// new_string is concatenated so one scan covers every edit in the batch;
// entries of the wrong shape are skipped.
func editsContent(payload map[string]any) string {
	if payload == nil {
		return ""
	}
	edits, ok := payload["edits"].([]any)
	if !ok {
		return ""
	}

	var parts []string
	for _, entry := range edits {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if s, ok := m["new_string"].(string); ok && s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// ExtractCommand isolates the command string from an exec payload,
// degrading to "" when absent or malformed.
func ExtractCommand(req ActionRequest) string {
	return firstString(req.Payload, []string{"command"})
}

func firstString(payload map[string]any, keys []string) string {
	if payload == nil {
		return ""
	}
	for _, key := range keys {
		if v, ok := payload[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
