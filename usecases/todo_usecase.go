package usecases

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/checkmarble/todo-backend/models"
	"github.com/checkmarble/todo-backend/repositories"
	"github.com/checkmarble/todo-backend/usecases/executor_factory"
	"github.com/checkmarble/todo-backend/utils"
)

type todoRepository interface {
	CreateTodoList(ctx context.Context, exec repositories.Executor, title string) (models.TodoList, error)
	ListTodoLists(ctx context.Context, exec repositories.Executor) ([]models.TodoList, error)
	GetTodoList(ctx context.Context, exec repositories.Executor, listId int64) (models.TodoList, error)
	CreateTodoItem(ctx context.Context, exec repositories.Executor, listId int64, title string) (models.TodoItem, error)
	ListTodoItems(ctx context.Context, exec repositories.Executor, listId int64) ([]models.TodoItem, error)
	GetTodoItem(ctx context.Context, exec repositories.Executor, key models.TodoItemKey) (models.TodoItem, error)
	CheckTodoItem(ctx context.Context, exec repositories.Executor, key models.TodoItemKey) (bool, error)
}

// TodoUsecase borrows one connection per call and runs exactly one repository
// operation on it.
type TodoUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	todoRepository  todoRepository
}

func NewTodoUsecase(executorFactory executor_factory.ExecutorFactory, todoRepository todoRepository) TodoUsecase {
	return TodoUsecase{
		executorFactory: executorFactory,
		todoRepository:  todoRepository,
	}
}

func (usecase TodoUsecase) ListTodoLists(ctx context.Context) ([]models.TodoList, error) {
	var lists []models.TodoList
	err := usecase.executorFactory.WithExecutor(ctx, func(exec repositories.Executor) (err error) {
		lists, err = usecase.todoRepository.ListTodoLists(ctx, exec)
		return err
	})
	if lists == nil {
		lists = []models.TodoList{}
	}
	return lists, err
}

func (usecase TodoUsecase) CreateTodoList(ctx context.Context, input models.CreateTodoListInput) (models.TodoList, error) {
	ctx, span := utils.OpenTelemetryTracerFromContext(ctx).Start(ctx, "TodoUsecase.CreateTodoList")
	defer span.End()

	var list models.TodoList
	err := usecase.executorFactory.WithExecutor(ctx, func(exec repositories.Executor) (err error) {
		list, err = usecase.todoRepository.CreateTodoList(ctx, exec, input.Title)
		return err
	})
	return list, err
}

func (usecase TodoUsecase) GetTodoList(ctx context.Context, listId int64) (models.TodoList, error) {
	var list models.TodoList
	err := usecase.executorFactory.WithExecutor(ctx, func(exec repositories.Executor) (err error) {
		list, err = usecase.todoRepository.GetTodoList(ctx, exec, listId)
		return err
	})
	return list, err
}

func (usecase TodoUsecase) ListTodoItems(ctx context.Context, listId int64) ([]models.TodoItem, error) {
	var items []models.TodoItem
	err := usecase.executorFactory.WithExecutor(ctx, func(exec repositories.Executor) (err error) {
		items, err = usecase.todoRepository.ListTodoItems(ctx, exec, listId)
		return err
	})
	if items == nil {
		items = []models.TodoItem{}
	}
	return items, err
}

func (usecase TodoUsecase) CreateTodoItem(ctx context.Context, input models.CreateTodoItemInput) (models.TodoItem, error) {
	ctx, span := utils.OpenTelemetryTracerFromContext(ctx).Start(ctx, "TodoUsecase.CreateTodoItem",
		trace.WithAttributes(attribute.Int64("list_id", input.ListId)))
	defer span.End()

	var item models.TodoItem
	err := usecase.executorFactory.WithExecutor(ctx, func(exec repositories.Executor) (err error) {
		item, err = usecase.todoRepository.CreateTodoItem(ctx, exec, input.ListId, input.Title)
		return err
	})
	return item, err
}

func (usecase TodoUsecase) GetTodoItem(ctx context.Context, key models.TodoItemKey) (models.TodoItem, error) {
	var item models.TodoItem
	err := usecase.executorFactory.WithExecutor(ctx, func(exec repositories.Executor) (err error) {
		item, err = usecase.todoRepository.GetTodoItem(ctx, exec, key)
		return err
	})
	return item, err
}

func (usecase TodoUsecase) CheckTodoItem(ctx context.Context, key models.TodoItemKey) (bool, error) {
	ctx, span := utils.OpenTelemetryTracerFromContext(ctx).Start(ctx, "TodoUsecase.CheckTodoItem",
		trace.WithAttributes(
			attribute.Int64("list_id", key.ListId),
			attribute.Int64("item_id", key.ItemId),
		))
	defer span.End()

	var changed bool
	err := usecase.executorFactory.WithExecutor(ctx, func(exec repositories.Executor) (err error) {
		changed, err = usecase.todoRepository.CheckTodoItem(ctx, exec, key)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return false, err
	}
	span.SetAttributes(attribute.Bool("changed", changed))
	utils.MetricTodoItemsChecked.WithLabelValues(strconv.FormatBool(changed)).Inc()
	return changed, nil
}
