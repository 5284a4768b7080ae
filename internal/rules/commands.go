package rules

// CommandBlockCatalog returns the built-in BLOCK rules for the command
// gate, in priority order. Evaluation is first-match-wins: the first rule
// that fires decides the verdict and nothing after it runs.
func CommandBlockCatalog() Catalog {
	return Catalog{
		mustRule("block-rm-root", "Recursive delete of root or home", CategoryBlock,
			"Recursively deletes the filesystem root or the home directory.",
			`(?i)\brm\s+(--?[a-z-]+\s+)*-[a-z]*(r[a-z]*f|f[a-z]*r)[a-z]*\s+(--no-preserve-root\s+)*(/|~|\$HOME|/home/[A-Za-z0-9._-]+|/Users/[A-Za-z0-9._-]+)[/*]{0,2}(\s|$)`),
		mustRule("block-disk-format", "Disk formatting", CategoryBlock,
			"Formats a filesystem, destroying its contents.",
			`(?i)\b(mkfs(\.[a-z0-9]+)?|mke2fs|mkswap)\b`),
		mustRule("block-raw-device-write", "Raw write to block device", CategoryBlock,
			"Writes directly to a raw block device.",
			`(?i)(\bdd\b[^|;&]*\bof=/dev/|>\s*/dev/(sd|hd|nvme|disk))`),
		mustRule("block-fork-bomb", "Fork bomb", CategoryBlock,
			"Shell fork bomb; exhausts system resources.",
			`:\(\)\s*\{\s*:\s*\|\s*:\s*&\s*\}\s*;?\s*:?`),
		mustRule("block-pipe-to-shell", "Remote script piped into shell", CategoryBlock,
			"Pipes a downloaded script straight into a shell interpreter.",
			`(?i)\b(curl|wget)\b[^|]*\|\s*(sudo\s+)?(ba|z|da)?sh\b`),
	}
}

// CommandAskCatalog returns the built-in ASK rules, in priority order.
// These commands are reversible but risky enough to require an explicit
// human confirmation before the agent proceeds.
func CommandAskCatalog() Catalog {
	return Catalog{
		mustRule("ask-git-push", "git push", CategoryAsk,
			"Pushes local commits to a remote repository.",
			`(?i)\bgit\s+push\b`),
		mustRule("ask-git-hard-reset", "git hard reset", CategoryAsk,
			"Discards local changes and moves the branch pointer.",
			`(?i)\bgit\s+reset\s+(\S+\s+)*--hard\b`),
		mustRule("ask-git-clean", "git clean", CategoryAsk,
			"Deletes untracked files from the working tree.",
			`(?i)\bgit\s+clean\b`),
		mustRule("ask-destructive-sql", "Destructive SQL", CategoryAsk,
			"Drops, truncates, or bulk-deletes database data.",
			`(?i)(\bdrop\s+(table|database|schema|index)\b|\btruncate\s+table\b|\bdelete\s+from\b)`),
		mustRule("ask-rm-recursive", "Recursive delete", CategoryAsk,
			"Recursively deletes a directory tree.",
			`(?i)\brm\s+(--?[a-z-]+\s+)*-[a-z]*r[a-z]*\b|\brm\s+--recursive\b`),
		mustRule("ask-sudo", "Elevated privileges", CategoryAsk,
			"Runs a command with elevated privileges.",
			`(?i)(^|[\s;&|])sudo\s`),
		mustRule("ask-publish-deploy", "Publish or deploy", CategoryAsk,
			"Publishes a package or deploys to an environment.",
			`(?i)\b(npm\s+publish|yarn\s+publish|pnpm\s+publish|cargo\s+publish|gem\s+push|twine\s+upload|docker\s+push|kubectl\s+(apply|delete)|terraform\s+(apply|destroy)|fly\s+deploy|vercel\s+deploy|gcloud\s+\S+\s+deploy)\b`),
		mustRule("ask-chmod-widening", "Permission widening", CategoryAsk,
			"Widens file permissions (world-writable or similar).",
			`(?i)\bchmod\s+(-[a-z]+\s+)*(0?[0-7]?77\b|[goa]*\+[rxst]*w)`),
	}
}
