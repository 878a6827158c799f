package main

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game directly",
	Long: `Start a game without the title screen.

Controls (defaults, see 'tetris keys'):
  A/Left     - Move left
  D/Right    - Move right
  S/Down     - Soft drop
  W/Up       - Rotate
  P          - Pause
  Esc        - End the game
  R          - Restart (after game over)
  Q/Ctrl+C   - Exit

Speed options:
  easy   - 25% slower than the level's fall speed
  normal - The level's fall speed
  hard   - 25% faster than the level's fall speed
  fixed  - Level 1 speed for the whole game

Examples:
  tetris play
  tetris play --speed easy
  tetris play --seed 42 --fps 60`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	_, err = s.play()
	return err
}
