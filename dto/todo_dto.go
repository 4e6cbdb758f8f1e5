package dto

import "github.com/checkmarble/todo-backend/models"

type APITodoList struct {
	Id    int64  `json:"id"`
	Title string `json:"title"`
}

func AdaptTodoListDto(list models.TodoList) APITodoList {
	return APITodoList{
		Id:    list.Id,
		Title: list.Title,
	}
}

type APITodoItem struct {
	Id      int64  `json:"id"`
	ListId  int64  `json:"list_id"`
	Title   string `json:"title"`
	Checked bool   `json:"checked"`
}

func AdaptTodoItemDto(item models.TodoItem) APITodoItem {
	return APITodoItem{
		Id:      item.Id,
		ListId:  item.ListId,
		Title:   item.Title,
		Checked: item.Checked,
	}
}

type CreateTodoListBody struct {
	Title string `json:"title" binding:"required,max=150"`
}

type CreateTodoItemBody struct {
	Title string `json:"title" binding:"required,max=150"`
}

// ids are postgres integers: anything that does not fit is rejected, anything
// that fits but does not exist is a not found.
type TodoListPathParams struct {
	ListId int64 `uri:"list_id" binding:"min=-2147483648,max=2147483647"`
}

type TodoItemPathParams struct {
	ListId int64 `uri:"list_id" binding:"min=-2147483648,max=2147483647"`
	ItemId int64 `uri:"item_id" binding:"min=-2147483648,max=2147483647"`
}

func (p TodoItemPathParams) Key() models.TodoItemKey {
	return models.TodoItemKey{ListId: p.ListId, ItemId: p.ItemId}
}

type Status struct {
	Status string `json:"status"`
}

type ResultResponse struct {
	Result bool `json:"result"`
}
