package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blur/internal/platform/tui"
	"github.com/vovakirdan/blur/internal/registry"
	"github.com/vovakirdan/blur/internal/storage"
)

var (
	flagRunID string
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [scene]",
	Short: "Show stored runs",
	Long: `Display the best runs of a scene, or the most recent runs of
every scene when no scene is given.

A run records its seed, so replaying it with --seed gives the same
spawns and targets.

Examples:
  blur scores
  blur scores turret
  blur scores turret --clear
  blur scores --run 5f0c1d8e-8a51-4d0e-9d0a-0d4f6b3c2a11`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by id")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs of the scene")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagRunID != "" {
		return showRun(out, store, flagRunID)
	}

	if len(args) == 0 {
		runs, err := store.RecentRuns(flagLimit)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Recent runs")
		fmt.Fprintln(out)
		printRuns(out, runs, true)
		return nil
	}

	sceneID := args[0]
	scene, err := registry.Create(sceneID)
	if err != nil {
		return fmt.Errorf("%w, run 'blur list' to see available scenes", err)
	}

	if flagClear {
		if err := store.ClearScores(sceneID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared runs of %s.\n", scene.Title())
		return nil
	}

	scores, err := store.TopScores(sceneID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", scene.Title())
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'blur play %s' to set the first high score!\n", sceneID)
		return nil
	}

	printRuns(out, scores, false)

	fmt.Fprintln(out)
	if best, err := store.HighScore(sceneID); err == nil {
		fmt.Fprintf(out, "Best: %d\n", best)
	}
	return nil
}

func showRun(out io.Writer, store *storage.Store, raw string) error {
	id, err := uuid.Parse(raw)
	if err != nil {
		return fmt.Errorf("--run: %w", err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		return err
	}
	if run == nil {
		return errors.New("run not found")
	}

	fmt.Fprintf(out, "Run     %s\n", run.RunID)
	fmt.Fprintf(out, "Scene   %s\n", run.SceneID)
	fmt.Fprintf(out, "Score   %d\n", run.Score)
	fmt.Fprintf(out, "Length  %s (%d ticks at %d/s)\n", run.Duration().Round(time.Second), run.Ticks, run.TickRate)
	fmt.Fprintf(out, "Seed    %d\n", run.Seed)
	fmt.Fprintf(out, "Date    %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Replay with: %s\n", tui.ReplayCommand(*run))
	return nil
}

func printRuns(out io.Writer, runs []storage.ScoreEntry, withScene bool) {
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return
	}

	if withScene {
		fmt.Fprintf(out, "  %-8s  %-10s  %-8s  %s\n", "Scene", "Score", "Run", "Date")
		fmt.Fprintf(out, "  %-8s  %-10s  %-8s  %s\n", "-----", "-----", "---", "----")
	} else {
		fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Run", "Date")
		fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %s\n", "----", "-----", "---", "----")
	}

	for i, r := range runs {
		date := r.CreatedAt.Format("2006-01-02 15:04")
		short := r.RunID.String()[:8]
		if withScene {
			fmt.Fprintf(out, "  %-8s  %-10d  %-8s  %s\n", r.SceneID, r.Score, short, date)
		} else {
			fmt.Fprintf(out, "  %-4d  %-10d  %-8s  %s\n", i+1, r.Score, short, date)
		}
	}
}
