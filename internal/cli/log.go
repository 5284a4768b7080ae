package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/global-mysterysnailrevolution/Borg/internal/config"
	"github.com/global-mysterysnailrevolution/Borg/internal/logger"
	"github.com/spf13/cobra"
)

var (
	logFilterVerdict string
	logLast          int
	logSummary       bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View and filter the audit log",
	Long: `View recorded gate decisions.

Examples:
  borg log                     # all entries
  borg log --last 20           # last 20 entries
  borg log --verdict deny      # denied actions only
  borg log --summary           # counts per verdict`,
	RunE: logCommand,
}

func init() {
	logCmd.Flags().StringVar(&logFilterVerdict, "verdict", "", "Filter by verdict (allow, deny, ask_user)")
	logCmd.Flags().IntVar(&logLast, "last", 0, "Show last N entries")
	logCmd.Flags().BoolVar(&logSummary, "summary", false, "Show summary statistics")
	rootCmd.AddCommand(logCmd)
}

func logCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(rulesPath, logPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	events, err := readAuditLog(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("failed to read audit log: %w", err)
	}

	if len(events) == 0 {
		fmt.Println("No audit log entries found.")
		return nil
	}

	if logSummary {
		printSummary(events)
		return nil
	}

	filtered := events
	if logFilterVerdict != "" {
		filtered = nil
		for _, e := range events {
			if strings.EqualFold(e.Verdict, logFilterVerdict) {
				filtered = append(filtered, e)
			}
		}
	}

	if logLast > 0 && logLast < len(filtered) {
		filtered = filtered[len(filtered)-logLast:]
	}

	printEvents(filtered)
	return nil
}

func readAuditLog(path string) ([]logger.AuditEvent, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var events []logger.AuditEvent
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var event logger.AuditEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			continue // skip malformed lines
		}
		events = append(events, event)
	}
	return events, scanner.Err()
}

func printEvents(events []logger.AuditEvent) {
	for _, e := range events {
		subject := e.Preview
		if e.Target != "" {
			subject = e.Target
		}
		fmt.Printf("%s %s [%s] %s\n", verdictIcon(e.Verdict), formatTimestamp(e.Timestamp), e.Action, subject)
		if len(e.Labels) > 0 {
			fmt.Printf("     Labels: %s\n", strings.Join(e.Labels, ", "))
		}
		if e.Reason != "" {
			fmt.Printf("     Reason: %s\n", e.Reason)
		}
	}
}

func printSummary(events []logger.AuditEvent) {
	counts := map[string]int{}
	for _, e := range events {
		counts[e.Verdict]++
	}

	fmt.Println("═══════════════════════════════")
	fmt.Println("  Borg Audit Summary")
	fmt.Println("═══════════════════════════════")
	fmt.Printf("  Total events: %d\n", len(events))
	fmt.Printf("  allow:        %d\n", counts["allow"])
	fmt.Printf("  ask_user:     %d\n", counts["ask_user"])
	fmt.Printf("  deny:         %d\n", counts["deny"])
	fmt.Println("═══════════════════════════════")

	if len(events) > 0 {
		fmt.Printf("  First event:  %s\n", formatTimestamp(events[0].Timestamp))
		fmt.Printf("  Last event:   %s\n", formatTimestamp(events[len(events)-1].Timestamp))
	}
}

func verdictIcon(verdict string) string {
	switch verdict {
	case "deny":
		return "🛑"
	case "ask_user":
		return "⚠ "
	default:
		return "✅"
	}
}

func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
