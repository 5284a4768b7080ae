// Package logger appends one JSONL audit event per gate invocation.
package logger

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/global-mysterysnailrevolution/Borg/internal/redact"
	"github.com/global-mysterysnailrevolution/Borg/internal/rules"
)

// AuditEvent is one gate decision as recorded in the audit log.
type AuditEvent struct {
	Timestamp string   `json:"timestamp"`
	Action    string   `json:"action"` // "write" or "exec"
	Target    string   `json:"target,omitempty"`
	Preview   string   `json:"preview,omitempty"`
	Verdict   string   `json:"verdict"`
	Reason    string   `json:"reason,omitempty"`
	Labels    []string `json:"labels,omitempty"`
	Source    string   `json:"source,omitempty"`
}

// AuditLogger writes events to an append-only JSONL file, redacting
// with the same secret catalog its gate detects with.
type AuditLogger struct {
	file    *os.File
	secrets rules.Catalog
	mu      sync.Mutex
}

func New(path string, secrets rules.Catalog) (*AuditLogger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}
	return &AuditLogger{file: file, secrets: secrets}, nil
}

// Log appends one event. Secret-shaped text in the preview and reason is
// redacted first; the audit log must never become the leak it guards
// against.
func (l *AuditLogger) Log(event AuditEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	event.Preview = redact.Apply(l.secrets, event.Preview)
	event.Reason = redact.Apply(l.secrets, event.Reason)

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = l.file.Write(data)
	return err
}

func (l *AuditLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
