package usecases

import (
	"context"

	"github.com/checkmarble/todo-backend/repositories"
	"github.com/checkmarble/todo-backend/usecases/executor_factory"
)

type healthRepository interface {
	Liveness(ctx context.Context, exec repositories.Executor) error
}

type HealthUsecase struct {
	executorFactory  executor_factory.ExecutorFactory
	healthRepository healthRepository
}

func (u HealthUsecase) Liveness(ctx context.Context) error {
	return u.executorFactory.WithExecutor(ctx, func(exec repositories.Executor) error {
		return u.healthRepository.Liveness(ctx, exec)
	})
}
