package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/checkmarble/todo-backend/models"
	"github.com/checkmarble/todo-backend/repositories"
)

type TodoRepository struct {
	mock.Mock
}

func (m *TodoRepository) CreateTodoList(ctx context.Context, exec repositories.Executor, title string) (models.TodoList, error) {
	args := m.Called(ctx, exec, title)
	return args.Get(0).(models.TodoList), args.Error(1)
}

func (m *TodoRepository) ListTodoLists(ctx context.Context, exec repositories.Executor) ([]models.TodoList, error) {
	args := m.Called(ctx, exec)
	return args.Get(0).([]models.TodoList), args.Error(1)
}

func (m *TodoRepository) GetTodoList(ctx context.Context, exec repositories.Executor, listId int64) (models.TodoList, error) {
	args := m.Called(ctx, exec, listId)
	return args.Get(0).(models.TodoList), args.Error(1)
}

func (m *TodoRepository) CreateTodoItem(ctx context.Context, exec repositories.Executor, listId int64, title string) (models.TodoItem, error) {
	args := m.Called(ctx, exec, listId, title)
	return args.Get(0).(models.TodoItem), args.Error(1)
}

func (m *TodoRepository) ListTodoItems(ctx context.Context, exec repositories.Executor, listId int64) ([]models.TodoItem, error) {
	args := m.Called(ctx, exec, listId)
	return args.Get(0).([]models.TodoItem), args.Error(1)
}

func (m *TodoRepository) GetTodoItem(ctx context.Context, exec repositories.Executor, key models.TodoItemKey) (models.TodoItem, error) {
	args := m.Called(ctx, exec, key)
	return args.Get(0).(models.TodoItem), args.Error(1)
}

func (m *TodoRepository) CheckTodoItem(ctx context.Context, exec repositories.Executor, key models.TodoItemKey) (bool, error) {
	args := m.Called(ctx, exec, key)
	return args.Bool(0), args.Error(1)
}

type HealthRepository struct {
	mock.Mock
}

func (m *HealthRepository) Liveness(ctx context.Context, exec repositories.Executor) error {
	args := m.Called(ctx, exec)
	return args.Error(0)
}
