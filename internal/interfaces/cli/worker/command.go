package worker

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/subscription/usecases"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/database"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/repository"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/scheduler"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/cli/bootstrap"
)

var (
	opts bootstrap.Options
	once bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run background jobs without the HTTP server",
		Long:  `Run the subscription expiry job on its configured interval until interrupted.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&once, "once", false, "Run every job a single time and exit")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	opts.Resolve()

	cfg, log, db, err := bootstrap.Open(opts)
	if err != nil {
		return err
	}
	defer database.Close(db)

	expirer := usecases.NewExpireSubscriptionsUseCase(repository.NewSubscriptionRepository(db, log), log)
	jobs := scheduler.NewSubscriptionScheduler(expirer, cfg.Scheduler.ExpireInterval(), log)

	if once {
		jobs.RunOnce(cmd.Context())
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Infow("worker started", "environment", opts.Env, "interval", cfg.Scheduler.ExpireInterval())
	jobs.Start(ctx)

	<-ctx.Done()
	jobs.Stop()
	log.Infow("worker stopped")
	return nil
}
