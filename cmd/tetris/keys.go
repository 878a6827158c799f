package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List key bindings",
	Long:  `Shows the key bindings from the active configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runKeys,
}

func runKeys(cmd *cobra.Command, _ []string) error {
	cfg, _, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	rows := tui.ControlRows(tui.NewKeyMap(cfg.Keys))

	// Calculate column widths
	maxKeyLen := len("Keys")
	for _, r := range rows {
		maxKeyLen = max(maxKeyLen, len(r[0]))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Key bindings:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, "Keys", "Action")
	fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, "----", "------")
	for _, r := range rows {
		fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, r[0], r[1])
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Rebind keys in the keys section of tetris.yaml ('tetris config' prints one).")
	return nil
}
