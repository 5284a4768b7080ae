package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RuleSet is the complete, immutable rule state a gate runs with. It is
// built exactly once at process start.
type RuleSet struct {
	Secrets Catalog
	Blocks  Catalog
	Asks    Catalog
	Allow   AllowList
}

// ruleFile mirrors the YAML rules-file structure. All sections are
// optional; entries extend the built-in catalogs.
type ruleFile struct {
	Version   string     `yaml:"version"`
	AllowList []string   `yaml:"allowlist"`
	Secrets   []fileRule `yaml:"secrets"`
	Blocks    []fileRule `yaml:"blocks"`
	Asks      []fileRule `yaml:"asks"`
}

type fileRule struct {
	ID      string `yaml:"id"`
	Label   string `yaml:"label,omitempty"`
	Pattern string `yaml:"pattern"`
	Reason  string `yaml:"reason,omitempty"`
}

// Defaults returns the built-in rule set.
func Defaults() RuleSet {
	return RuleSet{
		Secrets: SecretCatalog(),
		Blocks:  CommandBlockCatalog(),
		Asks:    CommandAskCatalog(),
		Allow:   DefaultAllowList(),
	}
}

// Load reads a YAML rules file and appends its entries to the built-in
// catalogs. A missing file yields the defaults. Custom rules that fail to
// compile are skipped with a warning rather than aborting the gate: a bad
// user rule must not take the whole gate down with it.
func Load(path string) (RuleSet, error) {
	set := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return set, nil
		}
		return set, fmt.Errorf("read rules file: %w", err)
	}

	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return set, fmt.Errorf("parse rules YAML: %w", err)
	}

	set.Allow = append(set.Allow, file.AllowList...)
	set.Secrets = appendFileRules(set.Secrets, file.Secrets, CategorySecret)
	set.Blocks = appendFileRules(set.Blocks, file.Blocks, CategoryBlock)
	set.Asks = appendFileRules(set.Asks, file.Asks, CategoryAsk)

	return set, nil
}

func appendFileRules(cat Catalog, entries []fileRule, category Category) Catalog {
	for _, e := range entries {
		rule, err := NewRule(e.ID, e.Label, category, e.Reason, e.Pattern)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[borg] warning: skipping rule: %v\n", err)
			continue
		}
		cat = append(cat, rule)
	}
	return cat
}
