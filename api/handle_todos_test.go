package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/checkmarble/todo-backend/mocks"
	"github.com/checkmarble/todo-backend/models"
)

func newTodoRouter(uc *mocks.TodoUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	addTodoRoutes(router.Group("/todos"), uc)
	return router
}

func serve(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody(t *testing.T, r *httptest.ResponseRecorder) any {
	t.Helper()
	var body any
	require.NoError(t, json.Unmarshal(r.Body.Bytes(), &body))
	return body
}

func TestHandleListTodoLists(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		uc := new(mocks.TodoUsecase)
		uc.On("ListTodoLists", mock.Anything).
			Return([]models.TodoList{{Id: 2, Title: "work"}, {Id: 1, Title: "home"}}, nil)

		r := serve(newTodoRouter(uc), http.MethodGet, "/todos", "")

		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `[{"id":2,"title":"work"},{"id":1,"title":"home"}]`, r.Body.String())
		uc.AssertExpectations(t)
	})

	t.Run("no list is an empty array", func(t *testing.T) {
		uc := new(mocks.TodoUsecase)
		uc.On("ListTodoLists", mock.Anything).Return([]models.TodoList{}, nil)

		r := serve(newTodoRouter(uc), http.MethodGet, "/todos", "")

		assert.Equal(t, http.StatusOK, r.Code)
		assert.Equal(t, "[]", r.Body.String())
	})

	t.Run("database failure", func(t *testing.T) {
		uc := new(mocks.TodoUsecase)
		uc.On("ListTodoLists", mock.Anything).
			Return([]models.TodoList(nil), models.DataAccessFailure(assert.AnError, ""))

		r := serve(newTodoRouter(uc), http.MethodGet, "/todos", "")

		assert.Equal(t, http.StatusInternalServerError, r.Code)
		assert.Equal(t, map[string]any{"error": "An unexpected error has occurred"}, decodeBody(t, r))
	})
}

func TestHandleCreateTodoList(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		uc := new(mocks.TodoUsecase)
		uc.On("CreateTodoList", mock.Anything, models.CreateTodoListInput{Title: "groceries"}).
			Return(models.TodoList{Id: 1, Title: "groceries"}, nil)

		r := serve(newTodoRouter(uc), http.MethodPost, "/todos", `{"title":"groceries"}`)

		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"id":1,"title":"groceries"}`, r.Body.String())
		uc.AssertExpectations(t)
	})

	badBodies := map[string]string{
		"malformed json":  `{"title":`,
		"missing title":   `{}`,
		"empty title":     `{"title":""}`,
		"title too long":  `{"title":"` + strings.Repeat("a", 151) + `"}`,
		"title not a str": `{"title":12}`,
	}
	for name, body := range badBodies {
		t.Run(name, func(t *testing.T) {
			uc := new(mocks.TodoUsecase)

			r := serve(newTodoRouter(uc), http.MethodPost, "/todos", body)

			assert.Equal(t, http.StatusBadRequest, r.Code)
			assert.Contains(t, decodeBody(t, r), "error")
			uc.AssertNotCalled(t, "CreateTodoList", mock.Anything, mock.Anything)
		})
	}

	t.Run("title of 150 characters", func(t *testing.T) {
		title := strings.Repeat("é", 150)
		uc := new(mocks.TodoUsecase)
		uc.On("CreateTodoList", mock.Anything, models.CreateTodoListInput{Title: title}).
			Return(models.TodoList{Id: 1, Title: title}, nil)

		r := serve(newTodoRouter(uc), http.MethodPost, "/todos", `{"title":"`+title+`"}`)

		assert.Equal(t, http.StatusOK, r.Code)
	})
}

func TestHandleGetTodoList(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		uc := new(mocks.TodoUsecase)
		uc.On("GetTodoList", mock.Anything, int64(1)).
			Return(models.TodoList{Id: 1, Title: "groceries"}, nil)

		r := serve(newTodoRouter(uc), http.MethodGet, "/todos/1", "")

		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"id":1,"title":"groceries"}`, r.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		uc := new(mocks.TodoUsecase)
		uc.On("GetTodoList", mock.Anything, int64(999)).
			Return(models.TodoList{}, models.NotFound("Todo list 999 not found."))

		r := serve(newTodoRouter(uc), http.MethodGet, "/todos/999", "")

		assert.Equal(t, http.StatusNotFound, r.Code)
		assert.Equal(t, map[string]any{"error": "Todo list 999 not found."}, decodeBody(t, r))
	})

	for _, id := range []string{"abc", "1.5", "99999999999"} {
		t.Run("invalid id "+id, func(t *testing.T) {
			uc := new(mocks.TodoUsecase)

			r := serve(newTodoRouter(uc), http.MethodGet, "/todos/"+id, "")

			assert.Equal(t, http.StatusBadRequest, r.Code)
			uc.AssertNotCalled(t, "GetTodoList", mock.Anything, mock.Anything)
		})
	}
}

func TestHandleListTodoItems(t *testing.T) {
	uc := new(mocks.TodoUsecase)
	uc.On("ListTodoItems", mock.Anything, int64(1)).
		Return([]models.TodoItem{{Id: 1, ListId: 1, Title: "milk", Checked: true}}, nil)

	r := serve(newTodoRouter(uc), http.MethodGet, "/todos/1/items", "")

	assert.Equal(t, http.StatusOK, r.Code)
	assert.JSONEq(t, `[{"id":1,"list_id":1,"title":"milk","checked":true}]`, r.Body.String())
	uc.AssertExpectations(t)
}

func TestHandleCreateTodoItem(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		uc := new(mocks.TodoUsecase)
		uc.On("CreateTodoItem", mock.Anything, models.CreateTodoItemInput{ListId: 1, Title: "milk"}).
			Return(models.TodoItem{Id: 3, ListId: 1, Title: "milk"}, nil)

		r := serve(newTodoRouter(uc), http.MethodPost, "/todos/1/items", `{"title":"milk"}`)

		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"id":3,"list_id":1,"title":"milk","checked":false}`, r.Body.String())
	})

	t.Run("missing list", func(t *testing.T) {
		uc := new(mocks.TodoUsecase)
		uc.On("CreateTodoItem", mock.Anything, models.CreateTodoItemInput{ListId: 999, Title: "milk"}).
			Return(models.TodoItem{}, models.DataAccessFailure(assert.AnError, "Error creating TODO item"))

		r := serve(newTodoRouter(uc), http.MethodPost, "/todos/999/items", `{"title":"milk"}`)

		assert.Equal(t, http.StatusInternalServerError, r.Code)
		assert.Equal(t, map[string]any{"error": "Error creating TODO item"}, decodeBody(t, r))
	})

	t.Run("missing title", func(t *testing.T) {
		uc := new(mocks.TodoUsecase)

		r := serve(newTodoRouter(uc), http.MethodPost, "/todos/1/items", `{"name":"milk"}`)

		assert.Equal(t, http.StatusBadRequest, r.Code)
		uc.AssertNotCalled(t, "CreateTodoItem", mock.Anything, mock.Anything)
	})
}

func TestCollectionRoutesWithTrailingSlash(t *testing.T) {
	uc := new(mocks.TodoUsecase)
	uc.On("ListTodoLists", mock.Anything).Return([]models.TodoList{{Id: 1, Title: "home"}}, nil)
	uc.On("CreateTodoList", mock.Anything, models.CreateTodoListInput{Title: "groceries"}).
		Return(models.TodoList{Id: 2, Title: "groceries"}, nil)
	uc.On("ListTodoItems", mock.Anything, int64(2)).Return([]models.TodoItem{}, nil)
	uc.On("CreateTodoItem", mock.Anything, models.CreateTodoItemInput{ListId: 2, Title: "milk"}).
		Return(models.TodoItem{Id: 1, ListId: 2, Title: "milk"}, nil)
	router := newTodoRouter(uc)

	cases := []struct {
		method string
		target string
		body   string
		want   string
	}{
		{http.MethodGet, "/todos/", "", `[{"id":1,"title":"home"}]`},
		{http.MethodPost, "/todos/", `{"title":"groceries"}`, `{"id":2,"title":"groceries"}`},
		{http.MethodGet, "/todos/2/items/", "", `[]`},
		{http.MethodPost, "/todos/2/items/", `{"title":"milk"}`, `{"id":1,"list_id":2,"title":"milk","checked":false}`},
	}
	for _, c := range cases {
		t.Run(c.method+" "+c.target, func(t *testing.T) {
			r := serve(router, c.method, c.target, c.body)

			assert.Equal(t, http.StatusOK, r.Code)
			assert.Empty(t, r.Header().Get("Location"))
			assert.JSONEq(t, c.want, r.Body.String())
		})
	}
	uc.AssertExpectations(t)
}

func TestHandleGetTodoItem(t *testing.T) {
	key := models.TodoItemKey{ListId: 1, ItemId: 2}

	t.Run("nominal", func(t *testing.T) {
		uc := new(mocks.TodoUsecase)
		uc.On("GetTodoItem", mock.Anything, key).
			Return(models.TodoItem{Id: 2, ListId: 1, Title: "eggs"}, nil)

		r := serve(newTodoRouter(uc), http.MethodGet, "/todos/1/items/2", "")

		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"id":2,"list_id":1,"title":"eggs","checked":false}`, r.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		uc := new(mocks.TodoUsecase)
		uc.On("GetTodoItem", mock.Anything, key).
			Return(models.TodoItem{}, models.NotFound("Todo item 2 from list 1 not found."))

		r := serve(newTodoRouter(uc), http.MethodGet, "/todos/1/items/2", "")

		assert.Equal(t, http.StatusNotFound, r.Code)
		assert.Equal(t, map[string]any{"error": "Todo item 2 from list 1 not found."}, decodeBody(t, r))
	})
}

func TestHandleCheckTodoItem(t *testing.T) {
	key := models.TodoItemKey{ListId: 1, ItemId: 2}

	t.Run("first check", func(t *testing.T) {
		uc := new(mocks.TodoUsecase)
		uc.On("CheckTodoItem", mock.Anything, key).Return(true, nil)

		r := serve(newTodoRouter(uc), http.MethodPut, "/todos/1/items/2", "")

		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"result":true}`, r.Body.String())
	})

	t.Run("already checked", func(t *testing.T) {
		uc := new(mocks.TodoUsecase)
		uc.On("CheckTodoItem", mock.Anything, key).Return(false, nil)

		r := serve(newTodoRouter(uc), http.MethodPut, "/todos/1/items/2", "")

		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"result":false}`, r.Body.String())
	})

	t.Run("invalid item id", func(t *testing.T) {
		uc := new(mocks.TodoUsecase)

		r := serve(newTodoRouter(uc), http.MethodPut, "/todos/1/items/x", "")

		assert.Equal(t, http.StatusBadRequest, r.Code)
		uc.AssertNotCalled(t, "CheckTodoItem", mock.Anything, mock.Anything)
	})
}

func TestHandleHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("database up", func(t *testing.T) {
		uc := new(mocks.HealthUsecase)
		uc.On("Liveness", mock.Anything).Return(nil)
		router := gin.New()
		router.GET("/health", handleHealth(uc))

		r := serve(router, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"status":"Up"}`, r.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		uc := new(mocks.HealthUsecase)
		uc.On("Liveness", mock.Anything).Return(models.DataAccessFailure(assert.AnError, ""))
		router := gin.New()
		router.GET("/health", handleHealth(uc))

		r := serve(router, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusInternalServerError, r.Code)
	})
}
