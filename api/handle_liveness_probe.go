package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/checkmarble/todo-backend/dto"
	"github.com/checkmarble/todo-backend/utils"
)

// handleStatus answers without touching the database, for liveness probes.
func handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, dto.Status{Status: "Up"})
}

type healthUsecase interface {
	Liveness(ctx context.Context) error
}

func handleHealth(uc healthUsecase) func(c *gin.Context) {
	return func(c *gin.Context) {
		utils.EnrichContextLogger(c, "handler", "health")
		if presentError(c, uc.Liveness(c.Request.Context())) {
			return
		}
		c.JSON(http.StatusOK, dto.Status{Status: "Up"})
	}
}
