package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dacci/sudoku-solver/internal/solver"
	"github.com/dacci/sudoku-solver/internal/storage"
	"github.com/dacci/sudoku-solver/internal/types"
	"github.com/dacci/sudoku-solver/internal/visualizer"
)

var (
	verbose    bool
	pretty     bool
	outFile    string
	upload     bool
	cpuProfile bool
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sudoku PATH",
		Short: "Solve a 9x9 Sudoku puzzle",
		Long: `Reads 81 digits from the given file (any other bytes are skipped),
solves the puzzle and prints the solved grid, one row per line.
A '0' digit marks an unknown cell.`,
		Version:      "1.0.0",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log the solve trace at debug level")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "render the grid with block borders")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write the puzzle and its solution as JSON to this file")
	cmd.Flags().BoolVar(&upload, "upload", false, "archive the solution to PocketBase (see POCKETBASE_* env)")
	cmd.Flags().BoolVar(&cpuProfile, "cpuprofile", false, "write a CPU profile to the current directory")

	cmd.AddCommand(newArchiveCommand())

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string) error {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else if lvl := os.Getenv("SUDOKU_LOG"); lvl != "" {
		parsed, err := logrus.ParseLevel(lvl)
		if err != nil {
			return fmt.Errorf("invalid SUDOKU_LOG %q: %w", lvl, err)
		}
		logrus.SetLevel(parsed)
	}

	if cpuProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	givens, err := types.FromFile(path)
	if err != nil {
		return err
	}

	board := *givens // the solver mutates its input; keep the givens for export
	solved, err := solver.New().Solve(&board)
	if err != nil {
		return err
	}
	if !solved.Valid() {
		logrus.Warn("solver produced an inconsistent grid")
	}

	if pretty {
		visualizer.NewVisualizer(solved).Print()
	} else {
		fmt.Print(solved.String())
	}

	if outFile != "" || upload {
		puzzle := types.NewPuzzle(givens, solved)

		if outFile != "" {
			data, err := puzzle.ToJSON()
			if err != nil {
				return err
			}
			if err := os.WriteFile(outFile, data, 0644); err != nil {
				return err
			}
		}

		if upload {
			archive, err := storage.NewFromEnv()
			if err != nil {
				return err
			}
			id, err := archive.Upload(puzzle)
			if err != nil {
				return err
			}
			logrus.WithField("id", id).Info("solution uploaded")
		}
	}

	return nil
}
