package cmd

import (
	"context"
	"fmt"

	"github.com/checkmarble/todo-backend/repositories"
	"github.com/checkmarble/todo-backend/utils"
)

func RunMigrations(compiledConfig CompiledConfig) error {
	if err := loadConfigFile(); err != nil {
		return err
	}
	pgConfig := pgConfigFromEnv(utils.GetEnv("ENV", "development"))

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"), compiledConfig.Version)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	migrater := repositories.NewMigrater(pgConfig)
	if err := migrater.Run(ctx); err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("error running migrations: %v", err))
		return err
	}

	logger.InfoContext(ctx, "Migrations completed")
	return nil
}
