package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/checkmarble/todo-backend/models"
	"github.com/checkmarble/todo-backend/repositories/dbmodels"
)

const (
	errCreatingTodoList = "Error creating TODO list"
	errCreatingTodoItem = "Error creating TODO item"
)

type TodoRepository struct{}

func NewQueryBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func scanTodoList(row pgx.Row) (models.TodoList, error) {
	var db dbmodels.DBTodoList
	if err := row.Scan(&db.Id, &db.Title); err != nil {
		return models.TodoList{}, err
	}
	return dbmodels.AdaptTodoList(db), nil
}

func scanTodoItem(row pgx.Row) (models.TodoItem, error) {
	var db dbmodels.DBTodoItem
	if err := row.Scan(&db.Id, &db.ListId, &db.Title, &db.Checked); err != nil {
		return models.TodoItem{}, err
	}
	return dbmodels.AdaptTodoItem(db), nil
}

func sqlBuildError(err error) error {
	return models.DataAccessFailure(errors.Wrap(err, "squirrel.ToSql error"), "")
}

func (repo *TodoRepository) CreateTodoList(ctx context.Context, exec Executor, title string) (models.TodoList, error) {
	sql, args, err := NewQueryBuilder().
		Insert(dbmodels.TABLE_TODO_LIST).
		Columns("title").
		Values(title).
		Suffix(returning(dbmodels.ColumnsSelectTodoList)).
		ToSql()
	if err != nil {
		return models.TodoList{}, sqlBuildError(err)
	}

	list, err := scanTodoList(exec.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.TodoList{}, models.DataAccessFailure(
			errors.New("insert into todo_list returned no row"), errCreatingTodoList)
	}
	if err != nil {
		return models.TodoList{}, models.DataAccessFailure(errors.Wrap(err, "row.Scan error"), "")
	}
	return list, nil
}

func (repo *TodoRepository) ListTodoLists(ctx context.Context, exec Executor) ([]models.TodoList, error) {
	sql, args, err := NewQueryBuilder().
		Select(dbmodels.ColumnsSelectTodoList...).
		From(dbmodels.TABLE_TODO_LIST).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, sqlBuildError(err)
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, models.DataAccessFailure(errors.Wrap(err, "exec.Query error"), "")
	}

	lists, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TodoList, error) {
		return scanTodoList(row)
	})
	if err != nil {
		return nil, models.DataAccessFailure(errors.Wrap(err, "pgx.CollectRows error"), "")
	}
	return lists, nil
}

func (repo *TodoRepository) GetTodoList(ctx context.Context, exec Executor, listId int64) (models.TodoList, error) {
	sql, args, err := NewQueryBuilder().
		Select(dbmodels.ColumnsSelectTodoList...).
		From(dbmodels.TABLE_TODO_LIST).
		Where(squirrel.Eq{"id": listId}).
		ToSql()
	if err != nil {
		return models.TodoList{}, sqlBuildError(err)
	}

	list, err := scanTodoList(exec.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.TodoList{}, models.NotFound(fmt.Sprintf("Todo list %d not found.", listId))
	}
	if err != nil {
		return models.TodoList{}, models.DataAccessFailure(errors.Wrap(err, "row.Scan error"), "")
	}
	return list, nil
}

func (repo *TodoRepository) CreateTodoItem(ctx context.Context, exec Executor, listId int64, title string) (models.TodoItem, error) {
	sql, args, err := NewQueryBuilder().
		Insert(dbmodels.TABLE_TODO_ITEM).
		Columns("list_id", "title").
		Values(listId, title).
		Suffix(returning(dbmodels.ColumnsSelectTodoItem)).
		ToSql()
	if err != nil {
		return models.TodoItem{}, sqlBuildError(err)
	}

	item, err := scanTodoItem(exec.QueryRow(ctx, sql, args...))
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return models.TodoItem{}, models.DataAccessFailure(
			errors.New("insert into todo_item returned no row"), errCreatingTodoItem)
	case IsForeignKeyViolationError(err):
		return models.TodoItem{}, models.DataAccessFailure(
			errors.Wrapf(err, "todo list %d does not exist", listId), errCreatingTodoItem)
	case err != nil:
		return models.TodoItem{}, models.DataAccessFailure(errors.Wrap(err, "row.Scan error"), "")
	}
	return item, nil
}

func (repo *TodoRepository) ListTodoItems(ctx context.Context, exec Executor, listId int64) ([]models.TodoItem, error) {
	sql, args, err := NewQueryBuilder().
		Select(dbmodels.ColumnsSelectTodoItem...).
		From(dbmodels.TABLE_TODO_ITEM).
		Where(squirrel.Eq{"list_id": listId}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, sqlBuildError(err)
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, models.DataAccessFailure(errors.Wrap(err, "exec.Query error"), "")
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TodoItem, error) {
		return scanTodoItem(row)
	})
	if err != nil {
		return nil, models.DataAccessFailure(errors.Wrap(err, "pgx.CollectRows error"), "")
	}
	return items, nil
}

func (repo *TodoRepository) GetTodoItem(ctx context.Context, exec Executor, key models.TodoItemKey) (models.TodoItem, error) {
	sql, args, err := NewQueryBuilder().
		Select(dbmodels.ColumnsSelectTodoItem...).
		From(dbmodels.TABLE_TODO_ITEM).
		Where(squirrel.Eq{"list_id": key.ListId}).
		Where(squirrel.Eq{"id": key.ItemId}).
		ToSql()
	if err != nil {
		return models.TodoItem{}, sqlBuildError(err)
	}

	item, err := scanTodoItem(exec.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.TodoItem{}, models.NotFound(
			fmt.Sprintf("Todo item %d from list %d not found.", key.ItemId, key.ListId))
	}
	if err != nil {
		return models.TodoItem{}, models.DataAccessFailure(errors.Wrap(err, "row.Scan error"), "")
	}
	return item, nil
}

// CheckTodoItem flips checked from false to true. The guard in the WHERE clause makes
// the transition happen at most once, concurrent callers included: the losers see
// zero updated rows and get false.
func (repo *TodoRepository) CheckTodoItem(ctx context.Context, exec Executor, key models.TodoItemKey) (bool, error) {
	sql, args, err := NewQueryBuilder().
		Update(dbmodels.TABLE_TODO_ITEM).
		Set("checked", squirrel.Expr("TRUE")).
		Where(squirrel.Eq{"list_id": key.ListId}).
		Where(squirrel.Eq{"id": key.ItemId}).
		Where("checked = FALSE").
		ToSql()
	if err != nil {
		return false, sqlBuildError(err)
	}

	tag, err := exec.Exec(ctx, sql, args...)
	if err != nil {
		return false, models.DataAccessFailure(errors.Wrap(err, "exec.Exec error"), "")
	}
	return tag.RowsAffected() == 1, nil
}
