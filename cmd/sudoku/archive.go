package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dacci/sudoku-solver/internal/storage"
	"github.com/dacci/sudoku-solver/internal/types"
	"github.com/dacci/sudoku-solver/internal/visualizer"
)

func newArchiveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Browse solutions stored in PocketBase",
	}
	cmd.AddCommand(newArchiveListCommand(), newArchiveShowCommand())
	return cmd
}

func openArchive() (*storage.Archive, error) {
	_ = godotenv.Load()
	return storage.NewFromEnv()
}

func newArchiveListCommand() *cobra.Command {
	var (
		page    int
		perPage int
		size    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored solutions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, err := openArchive()
			if err != nil {
				return err
			}

			result, err := archive.List(page, perPage, size)
			if err != nil {
				return err
			}

			for _, item := range result.Items {
				fmt.Printf("%v\t%v\t%v\n", item["id"], item["size"], item["created"])
			}
			fmt.Printf("page %d of %d (%d solutions)\n", result.Page, result.TotalPages, result.TotalItems)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page to fetch")
	cmd.Flags().IntVar(&perPage, "per-page", 20, "solutions per page")
	cmd.Flags().StringVar(&size, "size", "", "filter by grid size, e.g. 9x9")

	return cmd
}

func newArchiveShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print a stored solution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, err := openArchive()
			if err != nil {
				return err
			}

			puzzle, err := archive.Get(args[0])
			if err != nil {
				return err
			}

			solution, err := types.FromRows(puzzle.Solution)
			if err != nil {
				return err
			}
			visualizer.NewVisualizer(solution).Print()
			return nil
		},
	}
}
