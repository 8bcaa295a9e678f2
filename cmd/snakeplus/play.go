package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snakeplus/internal/config"
	"github.com/vovakirdan/snakeplus/internal/core"
	"github.com/vovakirdan/snakeplus/internal/game"
	"github.com/vovakirdan/snakeplus/internal/platform/audio"
	"github.com/vovakirdan/snakeplus/internal/platform/tui"
	"github.com/vovakirdan/snakeplus/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWrap       bool
	flagMaze       bool
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a snake session in the local terminal.

Controls:
  Arrows/WASD - Steer the snake
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

The menu lets you toggle wrap, maze, difficulty, and sound before each
round; the flags below just pick the starting values.

Examples:
  snakeplus play
  snakeplus play --difficulty hard
  snakeplus play --wrap --maze
  snakeplus play --config ./my-snake.yaml --mute`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagWrap, "wrap", false, "Wrap around the edges instead of dying on walls")
	playCmd.Flags().BoolVar(&flagMaze, "maze", false, "Scatter obstacle walls across the grid")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	preset, err := config.NormalizePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Audio is best-effort: a headless box or missing audio device just
	// means a silent game.
	var sounds *audio.Player
	if !flagMute {
		sounds = audio.NewPlayer()
		if initErr := sounds.Init(); initErr != nil {
			sounds = nil
		}
	}

	opts := game.Options{
		Difficulty: preset,
		Wrap:       flagWrap,
		Maze:       flagMaze,
		Sound:      sounds != nil,
	}

	runErr := tui.Run(gameCfg, opts, rt, store, sounds)

	if sounds != nil {
		sounds.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
