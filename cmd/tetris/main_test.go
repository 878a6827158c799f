package main

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("tetris %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	out := execute(t, "config")
	for _, want := range []string{"timing:", "tick_rate:", "keys:", "theme:"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q", want)
		}
	}
}

func TestKeysCommandListsBindings(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	out := execute(t, "keys")
	for _, want := range []string{"a/left", "move left", "ctrl+s", "screenshot"} {
		if !strings.Contains(out, want) {
			t.Errorf("keys output missing %q:\n%s", want, out)
		}
	}
}
