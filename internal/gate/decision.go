package gate

import (
	"fmt"
	"strings"

	"github.com/global-mysterysnailrevolution/Borg/internal/rules"
)

// Verdict is the three-way gate outcome.
type Verdict string

const (
	VerdictAllow Verdict = "allow"
	VerdictDeny  Verdict = "deny"
	VerdictAsk   Verdict = "ask_user"
)

// Decision is the single result produced for an action request.
type Decision struct {
	Verdict  Verdict
	Reason   string
	Findings []Finding
}

// Allowed reports whether the action may proceed without host involvement.
func (d Decision) Allowed() bool {
	return d.Verdict == VerdictAllow
}

// maxPreview bounds any user-controlled text echoed into a reason, so
// output size is independent of input size.
const maxPreview = 80

// Preview returns text bounded to maxPreview runes with newlines
// flattened, safe to embed in reasons and audit events.
func Preview(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	r := []rune(text)
	if len(r) <= maxPreview {
		return text
	}
	return string(r[:maxPreview]) + "..."
}

func allowDecision() Decision {
	return Decision{Verdict: VerdictAllow}
}

// synthesizeWrite maps secret-scan findings to a decision. Any finding at
// all escalates to ASK_USER — the reason enumerates every matched label
// so the reviewer sees the full picture, not just the first hit.
func synthesizeWrite(path string, findings []Finding) Decision {
	if len(findings) == 0 {
		return allowDecision()
	}

	labels := make([]string, len(findings))
	for i, f := range findings {
		labels[i] = fmt.Sprintf("%s (%s)", f.Rule.Label, matchCount(f.Count))
	}

	target := Preview(path)
	if target == "" {
		target = "(unknown path)"
	}

	return Decision{
		Verdict:  VerdictAsk,
		Reason:   fmt.Sprintf("Potential secrets detected in `%s`: %s.", target, strings.Join(labels, ", ")),
		Findings: findings,
	}
}

// synthesizeCommand maps a first-match command finding to a decision.
func synthesizeCommand(command string, findings []Finding) Decision {
	if len(findings) == 0 {
		return allowDecision()
	}

	f := findings[0]
	reason := f.Rule.Reason
	if reason == "" {
		reason = f.Rule.Label
	}

	switch f.Rule.Category {
	case rules.CategoryBlock:
		return Decision{
			Verdict:  VerdictDeny,
			Reason:   fmt.Sprintf("Blocked dangerous command `%s`: %s (%s)", Preview(command), f.Rule.Label, reason),
			Findings: findings,
		}
	default:
		return Decision{
			Verdict:  VerdictAsk,
			Reason:   fmt.Sprintf("Command `%s` requires confirmation: %s (%s)", Preview(command), f.Rule.Label, reason),
			Findings: findings,
		}
	}
}

func matchCount(n int) string {
	if n == 1 {
		return "1 match"
	}
	return fmt.Sprintf("%d matches", n)
}
