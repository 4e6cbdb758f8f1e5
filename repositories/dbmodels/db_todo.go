package dbmodels

import (
	"github.com/guregu/null/v5"

	"github.com/checkmarble/todo-backend/models"
)

const (
	TABLE_TODO_LIST = "todo_list"
	TABLE_TODO_ITEM = "todo_item"
)

var (
	ColumnsSelectTodoList = []string{"id", "title"}
	ColumnsSelectTodoItem = []string{"id", "list_id", "title", "checked"}
)

type DBTodoList struct {
	Id int64 `db:"id"`
	// nullable in the schema
	Title null.String `db:"title"`
}

type DBTodoItem struct {
	Id      int64  `db:"id"`
	ListId  int64  `db:"list_id"`
	Title   string `db:"title"`
	Checked bool   `db:"checked"`
}

func AdaptTodoList(db DBTodoList) models.TodoList {
	return models.TodoList{
		Id:    db.Id,
		Title: db.Title.ValueOrZero(),
	}
}

func AdaptTodoItem(db DBTodoItem) models.TodoItem {
	return models.TodoItem{
		Id:      db.Id,
		ListId:  db.ListId,
		Title:   db.Title,
		Checked: db.Checked,
	}
}
