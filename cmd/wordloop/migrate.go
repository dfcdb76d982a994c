package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordloop/internal/config"
	"github.com/at-ishikawa/wordloop/internal/database"
	"github.com/at-ishikawa/wordloop/internal/datasync"
	"github.com/at-ishikawa/wordloop/internal/storage"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migration commands",
	}

	migrateCmd.AddCommand(
		newMigrateSchemaCommand(),
		newMigrateImportDBCommand(),
		newMigrateExportYAMLCommand(),
	)
	return migrateCmd
}

func newMigrateSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create the words table in the configured database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cfg.Storage.Driver == config.DriverYAML {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "storage.driver is yaml, nothing to migrate")
				return nil
			}

			var db *sqlx.DB
			if cfg.Storage.Driver == config.DriverSQLite {
				db, err = database.OpenSQLite(cfg.Database.SQLitePath)
			} else {
				db, err = database.Open(cfg.Database)
			}
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() { _ = db.Close() }()

			if err := database.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Schema applied")
			return nil
		},
	}
}

func newMigrateImportDBCommand() *cobra.Command {
	var dryRun bool
	var updateExisting bool

	cmd := &cobra.Command{
		Use:   "import-db",
		Short: "Copy words from the YAML file into the configured database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return syncWords(cmd, true, datasync.SyncOptions{DryRun: dryRun, UpdateExisting: updateExisting})
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be copied without writing")
	cmd.Flags().BoolVar(&updateExisting, "update-existing", false, "overwrite words that already exist")
	return cmd
}

func newMigrateExportYAMLCommand() *cobra.Command {
	var dryRun bool
	var updateExisting bool

	cmd := &cobra.Command{
		Use:   "export-yaml",
		Short: "Copy words from the configured database into the YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return syncWords(cmd, false, datasync.SyncOptions{DryRun: dryRun, UpdateExisting: updateExisting})
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be copied without writing")
	cmd.Flags().BoolVar(&updateExisting, "update-existing", false, "overwrite words that already exist")
	return cmd
}

// syncWords copies between the YAML file and the database selected by storage.driver
func syncWords(cmd *cobra.Command, toDatabase bool, opts datasync.SyncOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Storage.Driver == config.DriverYAML {
		return fmt.Errorf("storage.driver must be mysql or sqlite, got %s", cfg.Storage.Driver)
	}

	dbRepo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()
	yamlRepo := storage.NewYAMLRepository(cfg.Storage.YAMLFile)

	source, destination := storage.Repository(dbRepo), storage.Repository(yamlRepo)
	if toDatabase {
		source, destination = yamlRepo, dbRepo
	}

	result, err := datasync.NewSyncer(source, destination, out).Sync(ctx, opts)
	if err != nil {
		return fmt.Errorf("datasync.Sync() > %w", err)
	}
	_, _ = fmt.Fprintf(out, "new: %d, updated: %d, skipped: %d\n", result.New, result.Updated, result.Skipped)
	if opts.DryRun {
		_, _ = fmt.Fprintln(out, "dry run, nothing was written")
	}
	return nil
}
