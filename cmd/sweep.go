package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "taskdesk.com/taskdesk/internal/configs"
	repository "taskdesk.com/taskdesk/internal/repositories"
	"taskdesk.com/taskdesk/internal/services"
)

// sweepCmd runs a single expiry cycle; useful for manual reconciliation
// or external schedulers.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run one expiry sweep cycle and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		if err := godotenv.Load(); err != nil {
			logger.Info().Msg(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)
		taskRepo := repository.NewTaskRepository(database)

		sweepService := services.NewSweepService(logger, taskRepo, nil, cfg.SweepInterval)

		count, err := sweepService.RunOnce(cmd.Context())
		if err != nil {
			return err
		}

		logger.Info().Int("count", count).Msg("sweep cycle finished")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}
