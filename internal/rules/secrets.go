package rules

// SecretCatalog returns the built-in credential detectors for the write
// gate. Evaluation over this catalog is aggregate-all: every matching
// rule is reported, so a reviewer sees the full list of what tripped.
//
// The catalog over-flags on purpose. The hex-literal rule in particular
// fires on any long hex string (commit hashes, digests) — surfacing a
// false positive for confirmation is preferred to silently allowing a
// leaked key through.
func SecretCatalog() Catalog {
	return Catalog{
		mustRule("secret-api-key", "API Key", CategorySecret, "",
			`(?i)(api[_-]?key|apikey)['"]?\s*[:=]\s*['"]?[A-Za-z0-9_\-]{16,}`),
		mustRule("secret-aws-access-key", "AWS Access Key", CategorySecret, "",
			`(AKIA|ASIA)[0-9A-Z]{16}`),
		mustRule("secret-private-key", "Private Key", CategorySecret, "",
			`-----BEGIN (RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY-----`),
		mustRule("secret-github-token", "GitHub Token", CategorySecret, "",
			`gh[pousr]_[A-Za-z0-9]{36,}`),
		mustRule("secret-slack-token", "Slack Token", CategorySecret, "",
			`xox[baprs]-[0-9A-Za-z-]{10,}`),
		mustRule("secret-anthropic-key", "Anthropic API Key", CategorySecret, "",
			`sk-ant-[A-Za-z0-9_\-]{20,}`),
		mustRule("secret-openai-key", "OpenAI API Key", CategorySecret, "",
			`\bsk-[A-Za-z0-9]{40,}`),
		mustRule("secret-stripe-key", "Stripe Key", CategorySecret, "",
			`[rs]k_(live|test)_[0-9a-zA-Z]{24,}`),
		mustRule("secret-jwt", "JWT", CategorySecret, "",
			`eyJ[A-Za-z0-9_-]{8,}\.eyJ[A-Za-z0-9_-]{8,}\.[A-Za-z0-9_-]+`),
		mustRule("secret-generic-assignment", "Generic Secret", CategorySecret, "",
			`(?i)(secret|password|passwd|pwd|auth[_-]?token|access[_-]?token)['"]?\s*[:=]\s*['"]?[^\s'"]{8,}`),
		// Low-confidence heuristic: long hex literals look like keys but
		// are often just hashes. Kept anyway; the verdict is ASK, not DENY.
		mustRule("secret-hex-literal", "Hex Literal", CategorySecret, "",
			`\b[0-9a-fA-F]{32,}\b`),
	}
}
