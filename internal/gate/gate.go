package gate

import (
	"fmt"

	"github.com/global-mysterysnailrevolution/Borg/internal/rules"
	"github.com/global-mysterysnailrevolution/Borg/internal/shellscan"
	"github.com/global-mysterysnailrevolution/Borg/internal/unicode"
)

// Gate holds the immutable rule state for one process. Construct it once
// at startup; it is safe for concurrent use because evaluation never
// mutates it.
type Gate struct {
	set rules.RuleSet
}

// New builds a gate over a rule set.
func New(set rules.RuleSet) *Gate {
	return &Gate{set: set}
}

// RuleSet returns the gate's rule state, for inspection.
func (g *Gate) RuleSet() rules.RuleSet {
	return g.set
}

// Check runs the pipeline for one action request and returns exactly one
// decision.
func (g *Gate) Check(req ActionRequest) Decision {
	switch req.Type {
	case ActionWrite:
		content, path := ExtractWrite(req)
		return g.CheckWrite(content, path)
	case ActionExec:
		return g.CheckCommand(ExtractCommand(req))
	default:
		return allowDecision()
	}
}

// CheckWrite scans proposed file content for credential-shaped text.
// Allow-listed target paths short-circuit to ALLOW regardless of content.
// Otherwise every secret rule runs and all matches are reported.
func (g *Gate) CheckWrite(content, path string) Decision {
	if g.set.Allow.Contains(path) {
		return allowDecision()
	}
	findings := Evaluate(g.set.Secrets, content, AggregateAll)
	return synthesizeWrite(path, findings)
}

// CheckCommand classifies a shell command. BLOCK rules run first in
// catalog order and the first match wins; only when none fires do the
// ASK rules run, again first-match. A command matching nothing is safe.
func (g *Gate) CheckCommand(command string) Decision {
	if command == "" {
		return allowDecision()
	}

	// Invisible-character smuggling makes the displayed command differ
	// from the executed one, so no pattern verdict can be trusted.
	if threat := unicode.Scan(command); threat != nil {
		return Decision{
			Verdict: VerdictDeny,
			Reason: fmt.Sprintf("Blocked command `%s`: %s (%s)",
				Preview(command), "Unicode smuggling", threat.Description),
		}
	}

	if findings := Evaluate(g.set.Blocks, command, FirstMatch); len(findings) > 0 {
		return synthesizeCommand(command, findings)
	}

	// Structural pass: the regex pipe rule only sees literal
	// downloader|shell text. Parsing the command catches interpreter
	// variants and sudo wrapping the regex misses.
	if shellscan.PipesDownloadToInterpreter(command) {
		if rule := g.set.Blocks.ByID("block-pipe-to-shell"); rule != nil {
			return synthesizeCommand(command, []Finding{{Rule: rule, Count: 1}})
		}
	}

	if findings := Evaluate(g.set.Asks, command, FirstMatch); len(findings) > 0 {
		return synthesizeCommand(command, findings)
	}

	return allowDecision()
}
