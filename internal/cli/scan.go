package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/global-mysterysnailrevolution/Borg/internal/gate"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan <file>...",
	Short: "Scan files for credential-shaped content",
	Long: `Run the write gate's secret scan over existing files.

  borg scan src/config.js deploy/settings.yaml

Allow-listed paths (templates, examples, fixtures) are skipped, same as
in the hook. Exit code 1 when any file has findings.`,
	Args: cobra.MinimumNArgs(1),
	RunE: scanCommand,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func scanCommand(cmd *cobra.Command, args []string) error {
	g, _ := loadGate()

	if flagged := scanFiles(g, args, os.Stdout); flagged > 0 {
		fmt.Printf("\n%d of %d file(s) flagged.\n", flagged, len(args))
		os.Exit(1)
	}
	return nil
}

// scanFiles runs the write gate over each file, printing per-file
// results to out, and returns how many files were flagged. Unreadable
// files are skipped with a warning.
func scanFiles(g *gate.Gate, paths []string, out io.Writer) int {
	flagged := 0
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[borg] warning: %v\n", err)
			continue
		}

		decision := g.CheckWrite(string(data), path)
		if decision.Allowed() {
			fmt.Fprintf(out, "✅ %s: clean\n", path)
			continue
		}

		flagged++
		fmt.Fprintf(out, "⚠  %s\n", path)
		for _, f := range decision.Findings {
			fmt.Fprintf(out, "     %s ×%d  (%s)\n", f.Rule.Label, f.Count, f.Rule.ID)
		}
	}
	return flagged
}
