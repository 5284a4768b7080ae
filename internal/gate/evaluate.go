package gate

import "github.com/global-mysterysnailrevolution/Borg/internal/rules"

// EvalMode selects how a catalog is evaluated against text.
type EvalMode int

const (
	// FirstMatch stops at the first matching rule in catalog order. Rule
	// order encodes priority: reordering the catalog changes behavior.
	FirstMatch EvalMode = iota
	// AggregateAll evaluates every rule and reports all matches with
	// occurrence counts, in catalog order.
	AggregateAll
)

// Finding is one matched rule with its occurrence count.
type Finding struct {
	Rule  *rules.Rule
	Count int
}

// Evaluate runs a catalog over text under the given mode. It is a pure
// function of its inputs: no shared state is read or written, so
// repeating a call always yields the same findings.
func Evaluate(cat rules.Catalog, text string, mode EvalMode) []Finding {
	if text == "" {
		return nil
	}

	var findings []Finding
	for i := range cat {
		rule := &cat[i]
		if mode == FirstMatch {
			if rule.Matches(text) {
				return []Finding{{Rule: rule, Count: 1}}
			}
			continue
		}
		if n := rule.Count(text); n > 0 {
			findings = append(findings, Finding{Rule: rule, Count: n})
		}
	}
	return findings
}
