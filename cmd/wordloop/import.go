package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordloop/internal/importer"
)

func newImportCommand() *cobra.Command {
	var dryRun bool

	command := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import words from a CSV file with a term,meaning,secondary_meaning,example,topic header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			repo, closeRepo, err := openRepository(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			existing, err := repo.FindAll(ctx)
			if err != nil {
				return fmt.Errorf("repository.FindAll() > %w", err)
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("os.Open(%s) > %w", args[0], err)
			}
			defer func() {
				_ = file.Close()
			}()

			result, err := importer.ReadCSV(file, existing, now())
			if err != nil {
				return fmt.Errorf("importer.ReadCSV(%s) > %w", args[0], err)
			}

			for _, term := range result.Skipped {
				_, _ = fmt.Fprintf(out, "  [SKIP]  %q\n", term)
			}
			for i := range result.Items {
				item := &result.Items[i]
				if !dryRun {
					if err := repo.Create(ctx, item); err != nil {
						return fmt.Errorf("repository.Create(%s) > %w", item.Term, err)
					}
				}
				_, _ = fmt.Fprintf(out, "  [NEW]  %q\n", item.Term)
			}
			_, _ = fmt.Fprintf(out, "Imported %d words, skipped %d\n", len(result.Items), len(result.Skipped))
			return nil
		},
	}
	command.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be imported without writing")
	return command
}
