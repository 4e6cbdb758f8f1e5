package usecases

import (
	"github.com/checkmarble/todo-backend/repositories"
	"github.com/checkmarble/todo-backend/usecases/executor_factory"
)

type Usecases struct {
	executorFactory  executor_factory.ExecutorFactory
	todoRepository   *repositories.TodoRepository
	healthRepository *repositories.HealthRepository
}

func NewUsecases(executorFactory executor_factory.ExecutorFactory) Usecases {
	return Usecases{
		executorFactory:  executorFactory,
		todoRepository:   &repositories.TodoRepository{},
		healthRepository: &repositories.HealthRepository{},
	}
}

func (usecases *Usecases) NewTodoUsecase() TodoUsecase {
	return NewTodoUsecase(usecases.executorFactory, usecases.todoRepository)
}

func (usecases *Usecases) NewHealthUsecase() HealthUsecase {
	return HealthUsecase{
		executorFactory:  usecases.executorFactory,
		healthRepository: usecases.healthRepository,
	}
}
