// snakeplus is a terminal snake game with power-ups, poison food, and mazes.
//
// Usage:
//
//	snakeplus play              - Play in the local terminal
//	snakeplus scores            - Show highscores and round history
//	snakeplus serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.snakeplus/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakeplus",
	Short: "Snake+ - grid snake with power-ups, poison and mazes",
	Long: `Snake+ is a terminal snake game. Eat food to grow and score, dodge
poison and obstacles, and grab power-ups that slow time, let you pass
through walls, or double your points.

Available commands:
  play     - Play in the local terminal
  scores   - View highscores and round history
  serve    - Start SSH server for remote play

Examples:
  snakeplus play
  snakeplus play --difficulty hard --wrap
  snakeplus scores
  snakeplus serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snakeplus/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
