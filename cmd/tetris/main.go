// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Title screen, then play until you quit
//	tetris play              - Start a game directly
//	tetris keys              - List key bindings
//	tetris config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>      - Frame rate (default: from config)
//	--seed <value>    - RNG seed for a reproducible piece sequence
//	--config <path>   - Custom config YAML
//	--speed <preset>  - Fall speed: easy, normal, hard, fixed
//	--debug           - Write a debug log
//	--log <path>      - Log file (default: ~/.tetris/tetris.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
	flagSpeed  string
	flagDebug  bool
	flagLog    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - stack falling blocks in your terminal",
	Long: `Tetris drops tetrominoes into a 10x20 well. Move and rotate them to
fill rows; full rows vanish and score points. The game speeds up every
ten rows and ends when a new piece has no room to spawn.

Running tetris without a subcommand opens the title screen. After a game
ends you can restart or go back to the title screen to play again.

Examples:
  tetris
  tetris play --speed hard
  tetris play --seed 42
  tetris --config ./my-tetris.yaml --debug`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Speed preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Log file path (implies --debug)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}

// runMenu shows the title screen and loops until the player quits.
func runMenu(_ *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	for {
		res, err := tui.RunMenu(s.cfg.Timing.Speed, s.runtime.ScreenW, s.runtime.ScreenH)
		if err != nil {
			return err
		}
		if res.Width > 0 && res.Height > 0 {
			s.runtime.ScreenW, s.runtime.ScreenH = res.Width, res.Height
		}
		s.cfg.Timing.Speed = res.Speed

		switch res.Choice {
		case tui.MenuPlay:
			out, err := s.play()
			if err != nil {
				return err
			}
			if !out.BackToMenu {
				return nil
			}

		case tui.MenuControls:
			goBack, err := tui.RunControls(tui.NewKeyMap(s.cfg.Keys), s.runtime.ScreenW, s.runtime.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
