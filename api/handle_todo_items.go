package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/checkmarble/todo-backend/dto"
	"github.com/checkmarble/todo-backend/models"
	"github.com/checkmarble/todo-backend/pure_utils"
	"github.com/checkmarble/todo-backend/utils"
)

func handleListTodoItems(uc todoUsecase) func(c *gin.Context) {
	return func(c *gin.Context) {
		utils.EnrichContextLogger(c, "handler", "items")

		var params dto.TodoListPathParams
		if err := c.ShouldBindUri(&params); presentError(c, bindingErrorOrNil(err)) {
			return
		}
		utils.EnrichContextLogger(c, "list_id", params.ListId)

		items, err := uc.ListTodoItems(c.Request.Context(), params.ListId)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, pure_utils.Map(items, dto.AdaptTodoItemDto))
	}
}

func handleCreateTodoItem(uc todoUsecase) func(c *gin.Context) {
	return func(c *gin.Context) {
		utils.EnrichContextLogger(c, "handler", "create_item")

		var params dto.TodoListPathParams
		if err := c.ShouldBindUri(&params); presentError(c, bindingErrorOrNil(err)) {
			return
		}
		var body dto.CreateTodoItemBody
		if err := c.ShouldBindJSON(&body); presentError(c, bindingErrorOrNil(err)) {
			return
		}
		utils.EnrichContextLogger(c, "list_id", params.ListId, "todo_item", body.Title)

		item, err := uc.CreateTodoItem(c.Request.Context(), models.CreateTodoItemInput{
			ListId: params.ListId,
			Title:  body.Title,
		})
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptTodoItemDto(item))
	}
}

func handleGetTodoItem(uc todoUsecase) func(c *gin.Context) {
	return func(c *gin.Context) {
		utils.EnrichContextLogger(c, "handler", "get_item")

		var params dto.TodoItemPathParams
		if err := c.ShouldBindUri(&params); presentError(c, bindingErrorOrNil(err)) {
			return
		}
		utils.EnrichContextLogger(c, "list_id", params.ListId, "item_id", params.ItemId)

		item, err := uc.GetTodoItem(c.Request.Context(), params.Key())
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptTodoItemDto(item))
	}
}

func handleCheckTodoItem(uc todoUsecase) func(c *gin.Context) {
	return func(c *gin.Context) {
		utils.EnrichContextLogger(c, "handler", "check_todo")

		var params dto.TodoItemPathParams
		if err := c.ShouldBindUri(&params); presentError(c, bindingErrorOrNil(err)) {
			return
		}
		utils.EnrichContextLogger(c, "list_id", params.ListId, "item_id", params.ItemId)

		changed, err := uc.CheckTodoItem(c.Request.Context(), params.Key())
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.ResultResponse{Result: changed})
	}
}
