package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/database"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/seeds"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/repository"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/cli/bootstrap"
)

var (
	opts      bootstrap.Options
	plansFile string
	overwrite bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.Resolve()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newPlansCommand())
	return cmd
}

func newPlansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Seed the plan catalogue",
		Long:  `Insert the plans defined in the catalogue file. Existing plans are kept unless --overwrite is given.`,
		RunE:  runPlans,
	}

	cmd.Flags().StringVarP(&plansFile, "file", "f", "configs/plans.yaml", "Plan catalogue file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace plans that already exist")

	return cmd
}

func runPlans(cmd *cobra.Command, args []string) error {
	plans, err := seeds.LoadPlansFile(plansFile)
	if err != nil {
		return err
	}

	_, log, db, err := bootstrap.Open(opts)
	if err != nil {
		return err
	}
	defer database.Close(db)

	repo := repository.NewPlanRepository(db, log)
	res, err := seeds.SeedPlans(cmd.Context(), repo, plans, overwrite, log)
	if err != nil {
		log.Errorw("failed to seed plans", "error", err, "file", plansFile)
		return fmt.Errorf("failed to seed plans: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Plans seeded: %d created, %d updated, %d skipped\n",
		res.Created, res.Updated, res.Skipped)
	return nil
}
