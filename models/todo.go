package models

type TodoList struct {
	Id    int64
	Title string
}

type TodoItem struct {
	Id      int64
	ListId  int64
	Title   string
	Checked bool
}

type CreateTodoListInput struct {
	Title string
}

type CreateTodoItemInput struct {
	ListId int64
	Title  string
}

type TodoItemKey struct {
	ListId int64
	ItemId int64
}
