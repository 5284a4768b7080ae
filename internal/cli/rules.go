package cli

import (
	"fmt"

	"github.com/global-mysterysnailrevolution/Borg/internal/rules"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the effective rule catalogs and allow-list",
	RunE:  rulesCommand,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func rulesCommand(cmd *cobra.Command, args []string) error {
	g, _ := loadGate()
	set := g.RuleSet()

	printCatalog("Secret rules (write gate, aggregate-all)", set.Secrets)
	printCatalog("BLOCK rules (command gate, first-match)", set.Blocks)
	printCatalog("ASK rules (command gate, first-match)", set.Asks)

	fmt.Println("Allow-listed path substrings (exempt from secret scanning):")
	for _, entry := range set.Allow {
		fmt.Printf("  %s\n", entry)
	}
	return nil
}

func printCatalog(title string, cat rules.Catalog) {
	fmt.Printf("%s — %d rules\n", title, len(cat))
	for i := range cat {
		r := &cat[i]
		fmt.Printf("  %-28s %-24s %s\n", r.ID, r.Label, r.Pattern())
	}
	fmt.Println()
}
