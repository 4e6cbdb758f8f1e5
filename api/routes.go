package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	timeout "github.com/vearne/gin-timeout"

	"github.com/checkmarble/todo-backend/usecases"
)

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.Timeout(
		timeout.WithTimeout(duration),
		timeout.WithErrorHttpCode(http.StatusRequestTimeout),
		timeout.WithDefaultMsg(`{"error":"Request timeout"}`),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases) {
	r.GET("/", handleStatus)
	r.GET("/health", handleHealth(uc.NewHealthUsecase()))
	if conf.EnablePrometheus {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router := r.Group("/todos")
	if conf.DefaultTimeout > 0 {
		router.Use(timeoutMiddleware(conf.DefaultTimeout))
	}
	addTodoRoutes(router, uc.NewTodoUsecase())
}

// Collection routes answer with and without a trailing slash.
func addTodoRoutes(router gin.IRoutes, uc todoUsecase) {
	for _, path := range []string{"", "/"} {
		router.GET(path, handleListTodoLists(uc))
		router.POST(path, handleCreateTodoList(uc))
	}
	router.GET("/:list_id", handleGetTodoList(uc))
	for _, path := range []string{"/:list_id/items", "/:list_id/items/"} {
		router.GET(path, handleListTodoItems(uc))
		router.POST(path, handleCreateTodoItem(uc))
	}
	router.GET("/:list_id/items/:item_id", handleGetTodoItem(uc))
	router.PUT("/:list_id/items/:item_id", handleCheckTodoItem(uc))
}
