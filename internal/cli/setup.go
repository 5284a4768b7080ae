package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var setupDisableFlag bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install Borg as a pre-execution hook",
	Long: `Set up Borg integration with an agent runtime.

  borg setup claude-code             # install PreToolUse hooks
  borg setup claude-code --disable   # remove them`,
}

var setupClaudeCodeCmd = &cobra.Command{
	Use:   "claude-code",
	Short: "Install the PreToolUse hooks in ~/.claude/settings.json",
	Long: `Install two PreToolUse hook entries so that every Bash command and
every file write the agent proposes is evaluated by Borg first.

  borg setup claude-code             # enable hooks
  borg setup claude-code --disable   # disable hooks`,
	RunE: setupClaudeCodeCommand,
}

func init() {
	setupClaudeCodeCmd.Flags().BoolVar(&setupDisableFlag, "disable", false, "Remove Borg hooks")
	setupCmd.AddCommand(setupClaudeCodeCmd)
	rootCmd.AddCommand(setupCmd)
}

const hookCommandLine = "borg hook"

func setupClaudeCodeCommand(cmd *cobra.Command, args []string) error {
	settingsPath := filepath.Join(os.Getenv("HOME"), ".claude", "settings.json")

	if setupDisableFlag {
		return removeHooks(settingsPath)
	}

	if _, err := exec.LookPath("borg"); err != nil {
		fmt.Println("⚠  borg not found in PATH. Install the binary first:")
		fmt.Println("   go install github.com/global-mysterysnailrevolution/Borg/cmd/borg@latest")
		return nil
	}

	settings, err := readSettings(settingsPath)
	if err != nil {
		return err
	}

	if settingsContainHook(settings) {
		fmt.Printf("✅ Borg hooks already configured: %s\n", settingsPath)
		return nil
	}

	installHookEntries(settings)

	if err := writeSettings(settingsPath, settings); err != nil {
		return err
	}

	fmt.Printf("✅ PreToolUse hooks installed: %s\n", settingsPath)
	fmt.Println()
	fmt.Println("Every Bash command and file write now runs through Borg first.")
	fmt.Println("Test it by asking the agent to run:  rm -rf /")
	fmt.Println()
	fmt.Println("To disable: borg setup claude-code --disable")
	return nil
}

func readSettings(path string) (map[string]any, error) {
	settings := map[string]any{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return settings, nil
}

func writeSettings(path string, settings map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func settingsContainHook(settings map[string]any) bool {
	data, err := json.Marshal(settings)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), hookCommandLine)
}

// installHookEntries appends two PreToolUse matchers to the hooks
// section, preserving whatever else the settings file contains.
func installHookEntries(settings map[string]any) {
	hooks, _ := settings["hooks"].(map[string]any)
	if hooks == nil {
		hooks = map[string]any{}
		settings["hooks"] = hooks
	}

	pre, _ := hooks["PreToolUse"].([]any)
	for _, matcher := range []string{"Bash", "Write|Edit|MultiEdit|NotebookEdit"} {
		pre = append(pre, map[string]any{
			"matcher": matcher,
			"hooks": []any{
				map[string]any{"type": "command", "command": hookCommandLine},
			},
		})
	}
	hooks["PreToolUse"] = pre
}

func removeHooks(settingsPath string) error {
	settings, err := readSettings(settingsPath)
	if err != nil {
		return err
	}

	hooks, _ := settings["hooks"].(map[string]any)
	pre, _ := hooks["PreToolUse"].([]any)
	if len(pre) == 0 {
		fmt.Println("ℹ  No Borg hooks found — nothing to disable.")
		return nil
	}

	var kept []any
	for _, entry := range pre {
		data, err := json.Marshal(entry)
		if err != nil || !strings.Contains(string(data), hookCommandLine) {
			kept = append(kept, entry)
		}
	}

	if len(kept) == len(pre) {
		fmt.Println("ℹ  No Borg hooks found — nothing to disable.")
		return nil
	}

	hooks["PreToolUse"] = kept
	if err := writeSettings(settingsPath, settings); err != nil {
		return err
	}

	fmt.Println("✅ Borg hooks disabled.")
	fmt.Println("Re-enable anytime with: borg setup claude-code")
	return nil
}
