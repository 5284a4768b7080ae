// Package rules defines the immutable rule catalogs the gates evaluate
// against: credential-shaped patterns for file writes, and BLOCK/ASK
// classifications for shell commands.
//
// All patterns are Go regexp (RE2), so matching is linear in the input —
// there is no backtracking engine to feed adversarial input to.
package rules

import (
	"fmt"
	"regexp"
)

// Category classifies what a matching rule means for the verdict.
type Category string

const (
	// CategorySecret marks credential-shaped content in a file write.
	CategorySecret Category = "secret"
	// CategoryBlock marks an irreversible or catastrophic command.
	CategoryBlock Category = "block"
	// CategoryAsk marks a reversible-but-risky command.
	CategoryAsk Category = "ask"
)

// Rule is a single compiled classifier. Rules are built once at process
// start and never mutated afterwards.
type Rule struct {
	ID       string
	Label    string
	Category Category
	// Reason is a short human explanation used in command-gate decisions.
	Reason string

	re *regexp.Regexp
}

// Matches reports whether the rule's pattern occurs in text.
func (r *Rule) Matches(text string) bool {
	return r.re.MatchString(text)
}

// Count returns the number of non-overlapping occurrences of the rule's
// pattern in text.
func (r *Rule) Count(text string) int {
	return len(r.re.FindAllStringIndex(text, -1))
}

// Pattern returns the rule's pattern source, for display.
func (r *Rule) Pattern() string {
	return r.re.String()
}

// ReplaceAll substitutes every occurrence of the rule's pattern in text.
func (r *Rule) ReplaceAll(text, replacement string) string {
	return r.re.ReplaceAllString(text, replacement)
}

// Catalog is an ordered rule set. Order encodes priority: under
// first-match-wins evaluation, reordering a catalog changes behavior.
type Catalog []Rule

// ByID returns the rule with the given id, or nil.
func (c Catalog) ByID(id string) *Rule {
	for i := range c {
		if c[i].ID == id {
			return &c[i]
		}
	}
	return nil
}

// mustRule compiles a built-in rule. Built-in patterns are static, so a
// compile failure is a programmer error.
func mustRule(id, label string, cat Category, reason, pattern string) Rule {
	return Rule{
		ID:       id,
		Label:    label,
		Category: cat,
		Reason:   reason,
		re:       regexp.MustCompile(pattern),
	}
}

// NewRule compiles a user-supplied rule, propagating pattern errors.
func NewRule(id, label string, cat Category, reason, pattern string) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("compile rule %q: %w", id, err)
	}
	if id == "" {
		return Rule{}, fmt.Errorf("rule with pattern %q has no id", pattern)
	}
	switch cat {
	case CategorySecret, CategoryBlock, CategoryAsk:
	default:
		return Rule{}, fmt.Errorf("rule %q has invalid category %q", id, cat)
	}
	if label == "" {
		label = id
	}
	return Rule{ID: id, Label: label, Category: cat, Reason: reason, re: re}, nil
}
