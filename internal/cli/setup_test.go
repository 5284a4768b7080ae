package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInstallHookEntries(t *testing.T) {
	settings := map[string]any{
		"model": "opus",
		"hooks": map[string]any{
			"PostToolUse": []any{map[string]any{"matcher": "Bash"}},
		},
	}

	installHookEntries(settings)

	if settings["model"] != "opus" {
		t.Error("unrelated settings key clobbered")
	}
	hooks := settings["hooks"].(map[string]any)
	if _, ok := hooks["PostToolUse"]; !ok {
		t.Error("unrelated hook section clobbered")
	}

	pre, _ := hooks["PreToolUse"].([]any)
	if len(pre) != 2 {
		t.Fatalf("installed %d PreToolUse entries, want 2", len(pre))
	}
	matchers := map[string]bool{}
	for _, entry := range pre {
		m := entry.(map[string]any)
		matchers[m["matcher"].(string)] = true
	}
	if !matchers["Bash"] || !matchers["Write|Edit|MultiEdit|NotebookEdit"] {
		t.Errorf("unexpected matchers: %v", matchers)
	}

	if !settingsContainHook(settings) {
		t.Error("settingsContainHook should report true after install")
	}
}

func TestInstallHookEntries_EmptySettings(t *testing.T) {
	settings := map[string]any{}
	installHookEntries(settings)
	if !settingsContainHook(settings) {
		t.Error("hooks not installed into empty settings")
	}
}

func TestRemoveHooks_PreservesForeignEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	settings := map[string]any{}
	installHookEntries(settings)
	hooks := settings["hooks"].(map[string]any)
	pre := hooks["PreToolUse"].([]any)
	pre = append(pre, map[string]any{
		"matcher": "Bash",
		"hooks":   []any{map[string]any{"type": "command", "command": "other-tool check"}},
	})
	hooks["PreToolUse"] = pre

	if err := writeSettings(path, settings); err != nil {
		t.Fatal(err)
	}
	if err := removeHooks(path); err != nil {
		t.Fatal(err)
	}

	got, err := readSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if settingsContainHook(got) {
		t.Error("borg hook entries survived removal")
	}

	gotHooks := got["hooks"].(map[string]any)
	kept, _ := gotHooks["PreToolUse"].([]any)
	if len(kept) != 1 {
		t.Fatalf("kept %d entries, want the 1 foreign entry", len(kept))
	}
	data, _ := json.Marshal(kept[0])
	if !strings.Contains(string(data), "other-tool check") {
		t.Errorf("foreign entry lost: %s", data)
	}
}

func TestReadSettings_Missing(t *testing.T) {
	settings, err := readSettings(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("missing settings file should yield empty map: %v", err)
	}
	if len(settings) != 0 {
		t.Errorf("expected empty settings, got %v", settings)
	}
}

func TestWriteSettings_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude", "settings.json")
	if err := writeSettings(path, map[string]any{"hooks": map[string]any{}}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("settings file not written: %v", err)
	}
}
