package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/checkmarble/todo-backend/models"
)

type TodoUsecase struct {
	mock.Mock
}

func (m *TodoUsecase) ListTodoLists(ctx context.Context) ([]models.TodoList, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.TodoList), args.Error(1)
}

func (m *TodoUsecase) CreateTodoList(ctx context.Context, input models.CreateTodoListInput) (models.TodoList, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(models.TodoList), args.Error(1)
}

func (m *TodoUsecase) GetTodoList(ctx context.Context, listId int64) (models.TodoList, error) {
	args := m.Called(ctx, listId)
	return args.Get(0).(models.TodoList), args.Error(1)
}

func (m *TodoUsecase) ListTodoItems(ctx context.Context, listId int64) ([]models.TodoItem, error) {
	args := m.Called(ctx, listId)
	return args.Get(0).([]models.TodoItem), args.Error(1)
}

func (m *TodoUsecase) CreateTodoItem(ctx context.Context, input models.CreateTodoItemInput) (models.TodoItem, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(models.TodoItem), args.Error(1)
}

func (m *TodoUsecase) GetTodoItem(ctx context.Context, key models.TodoItemKey) (models.TodoItem, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(models.TodoItem), args.Error(1)
}

func (m *TodoUsecase) CheckTodoItem(ctx context.Context, key models.TodoItemKey) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type HealthUsecase struct {
	mock.Mock
}

func (m *HealthUsecase) Liveness(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
