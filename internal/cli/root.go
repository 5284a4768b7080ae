package cli

import (
	"github.com/spf13/cobra"
)

var (
	rulesPath string
	logPath   string
)

var rootCmd = &cobra.Command{
	Use:   "borg",
	Short: "Borg - pre-execution policy gate for agent actions",
	Long: `Borg intercepts proposed agent actions before they execute: file
writes are scanned for leaked credentials, and shell commands are checked
against ordered catalogs of catastrophic (DENY) and risky (ASK) patterns.
Decisions are returned to the host agent runtime; Borg itself never
executes anything.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "Path to rules YAML file (default: ~/.borg/rules.yaml)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Path to audit log file (default: ~/.borg/audit.jsonl)")
}

func Execute() error {
	return rootCmd.Execute()
}
