package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/database"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/migration"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/cli/bootstrap"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/config"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

var (
	opts  bootstrap.Options
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.Resolve()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending migrations, or auto migrate on drivers without SQL scripts, then apply column patches.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new SQL migration file with the specified name.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, log, db, err := bootstrap.Open(opts)
	if err != nil {
		return err
	}
	defer database.Close(db)

	log.Infow("running up migrations", "environment", opts.Env)

	dbCfg := cfg.Database
	if dbCfg.ScriptsPath, err = absScriptsPath(&cfg.Database); err != nil {
		return err
	}

	if err := migration.NewManager(&dbCfg, log).Migrate(db, models.All()...); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, log, db, err := bootstrap.Open(opts)
	if err != nil {
		return err
	}
	defer database.Close(db)

	strategy, err := gooseStrategy(&cfg.Database, log)
	if err != nil {
		return err
	}

	log.Infow("running down migrations", "environment", opts.Env, "steps", steps)
	if err := strategy.MigrateDown(db, steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, log, db, err := bootstrap.Open(opts)
	if err != nil {
		return err
	}
	defer database.Close(db)

	strategy, err := gooseStrategy(&cfg.Database, log)
	if err != nil {
		return err
	}

	version, err := strategy.GetVersion(db)
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", opts.Env)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := strategy.Status(db); err != nil {
		log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.LoadConfig(opts)
	if err != nil {
		return err
	}

	strategy, err := gooseStrategy(&cfg.Database, log)
	if err != nil {
		return err
	}

	log.Infow("creating new migration", "name", name)
	if err := strategy.Create(name); err != nil {
		log.Errorw("failed to create migration", "error", err)
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created successfully\n", name)
	return nil
}

// gooseStrategy is used by the commands that only make sense with
// versioned scripts.
func gooseStrategy(cfg *config.DatabaseConfig, log logger.Interface) (*migration.GooseStrategy, error) {
	if cfg.Driver != "" && cfg.Driver != "mysql" {
		return nil, fmt.Errorf("versioned migrations are only available for mysql, got %q", cfg.Driver)
	}
	path, err := absScriptsPath(cfg)
	if err != nil {
		return nil, err
	}
	return migration.NewGooseStrategy(path, log), nil
}

func absScriptsPath(cfg *config.DatabaseConfig) (string, error) {
	path, err := filepath.Abs(cfg.ScriptsPath)
	if err != nil {
		return "", fmt.Errorf("failed to get scripts path: %w", err)
	}
	return path, nil
}
