package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/checkmarble/todo-backend/dto"
	"github.com/checkmarble/todo-backend/models"
	"github.com/checkmarble/todo-backend/pure_utils"
	"github.com/checkmarble/todo-backend/utils"
)

type todoUsecase interface {
	ListTodoLists(ctx context.Context) ([]models.TodoList, error)
	CreateTodoList(ctx context.Context, input models.CreateTodoListInput) (models.TodoList, error)
	GetTodoList(ctx context.Context, listId int64) (models.TodoList, error)
	ListTodoItems(ctx context.Context, listId int64) ([]models.TodoItem, error)
	CreateTodoItem(ctx context.Context, input models.CreateTodoItemInput) (models.TodoItem, error)
	GetTodoItem(ctx context.Context, key models.TodoItemKey) (models.TodoItem, error)
	CheckTodoItem(ctx context.Context, key models.TodoItemKey) (bool, error)
}

func handleListTodoLists(uc todoUsecase) func(c *gin.Context) {
	return func(c *gin.Context) {
		utils.EnrichContextLogger(c, "handler", "todos")

		lists, err := uc.ListTodoLists(c.Request.Context())
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, pure_utils.Map(lists, dto.AdaptTodoListDto))
	}
}

func handleCreateTodoList(uc todoUsecase) func(c *gin.Context) {
	return func(c *gin.Context) {
		utils.EnrichContextLogger(c, "handler", "create_todo")

		var body dto.CreateTodoListBody
		if err := c.ShouldBindJSON(&body); presentError(c, bindingErrorOrNil(err)) {
			return
		}
		utils.EnrichContextLogger(c, "todo_list", body.Title)

		list, err := uc.CreateTodoList(c.Request.Context(), models.CreateTodoListInput{Title: body.Title})
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptTodoListDto(list))
	}
}

func handleGetTodoList(uc todoUsecase) func(c *gin.Context) {
	return func(c *gin.Context) {
		utils.EnrichContextLogger(c, "handler", "get_todo")

		var params dto.TodoListPathParams
		if err := c.ShouldBindUri(&params); presentError(c, bindingErrorOrNil(err)) {
			return
		}
		utils.EnrichContextLogger(c, "list_id", params.ListId)

		list, err := uc.GetTodoList(c.Request.Context(), params.ListId)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptTodoListDto(list))
	}
}

func bindingErrorOrNil(err error) error {
	if err == nil {
		return nil
	}
	return bindingError(err)
}
