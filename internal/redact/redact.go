// Package redact strips secret-shaped values from text before it is
// written to the audit log. The log records what the gate decided, never
// the credential that triggered the decision.
package redact

import "github.com/global-mysterysnailrevolution/Borg/internal/rules"

const placeholder = "[REDACTED]"

// Apply replaces every occurrence of a catalog pattern with a
// placeholder. Callers pass the same catalog the gate detects with —
// built-in and user-defined rules alike — so anything the gate can flag
// it will also refuse to log.
func Apply(cat rules.Catalog, input string) string {
	result := input
	for i := range cat {
		result = cat[i].ReplaceAll(result, placeholder)
	}
	return result
}
