package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakeplus/internal/config"
	"github.com/vovakirdan/snakeplus/internal/game"
	"github.com/vovakirdan/snakeplus/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresWrap       bool
	flagScoresMaze       bool
	flagRecent           int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show highscores and round history",
	Long: `Display the best score per ruleset, round counts, and averages.
With --difficulty, show the recent round history for one specific
rule combination instead.

Examples:
  snakeplus scores
  snakeplus scores --difficulty hard
  snakeplus scores --difficulty easy --wrap --maze --recent 25`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Show round history for this preset: easy, normal, hard")
	scoresCmd.Flags().BoolVar(&flagScoresWrap, "wrap", false, "Select the wrap variant (with --difficulty)")
	scoresCmd.Flags().BoolVar(&flagScoresMaze, "maze", false, "Select the maze variant (with --difficulty)")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent rounds to show (with --difficulty)")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresDifficulty != "" {
		showRulesetHistory(store)
		return
	}
	showSummary(store)
}

// showSummary prints one line per ruleset that has ever been played.
func showSummary(store *storage.Store) {
	highs, err := store.AllHighscores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	stats, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(highs) == 0 && len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snakeplus play' to set the first highscore!")
		return
	}

	// Merge: a ruleset may have rounds but no highscore row, or vice versa.
	best := make(map[string]int, len(highs))
	keys := make(map[string]bool, len(highs)+len(stats))
	for _, h := range highs {
		best[h.Ruleset] = h.Score
		keys[h.Ruleset] = true
	}
	for k := range stats {
		keys[k] = true
	}

	ordered := make([]string, 0, len(keys))
	for k := range keys {
		ordered = append(ordered, k)
	}
	sort.Strings(ordered)

	fmt.Println("Highscores")
	fmt.Println()
	fmt.Printf("  %-22s  %-8s  %-8s  %s\n", "Ruleset", "Best", "Rounds", "Avg")
	fmt.Printf("  %-22s  %-8s  %-8s  %s\n", "-------", "----", "------", "---")

	for _, k := range ordered {
		rounds, avg := 0, 0.0
		if s, ok := stats[k]; ok {
			rounds = s.Rounds
			avg = s.AvgScore
		}
		fmt.Printf("  %-22s  %-8d  %-8d  %.0f\n", k, best[k], rounds, avg)
	}
}

// showRulesetHistory prints the recent rounds for one option combination.
func showRulesetHistory(store *storage.Store) {
	preset, err := config.NormalizePreset(flagScoresDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := game.Options{Difficulty: preset, Wrap: flagScoresWrap, Maze: flagScoresMaze}
	key := opts.RulesetKey()

	rounds, err := store.RecentRounds(key, flagRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent rounds - %s\n", key)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet for these rules.")
		return
	}

	fmt.Printf("  %-8s  %-10s  %-8s  %s\n", "Score", "End", "Time", "Date")
	fmt.Printf("  %-8s  %-10s  %-8s  %s\n", "-----", "---", "----", "----")

	for _, r := range rounds {
		dur := time.Duration(r.DurationSecs) * time.Second
		fmt.Printf("  %-8d  %-10s  %-8s  %s\n",
			r.Score, r.EndReason, dur, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if bestScore, err := store.Highscore(key); err == nil && bestScore > 0 {
		fmt.Printf("Best: %d\n", bestScore)
	}
}
