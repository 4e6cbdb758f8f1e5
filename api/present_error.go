package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/checkmarble/todo-backend/dto"
	"github.com/checkmarble/todo-backend/models"
	"github.com/checkmarble/todo-backend/utils"
)

// StatusCodeFromError maps an error to the http status code it is rendered with.
func StatusCodeFromError(err error) int {
	switch models.KindOf(err) {
	case models.KindNotFound:
		return http.StatusNotFound
	case models.KindBadParameter:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func presentError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	ctx := c.Request.Context()
	logger := utils.LoggerFromContext(ctx)
	status := StatusCodeFromError(err)
	message := models.PublicMessage(err)

	var args []any
	if cause := models.Cause(err); cause != "" {
		args = append(args, "cause", cause)
	}

	switch {
	case status >= http.StatusInternalServerError:
		logger.ErrorContext(ctx, message, args...)
		utils.ReportSentryError(ctx, err)
	case status == http.StatusBadRequest:
		logger.WarnContext(ctx, message, args...)
	default:
		logger.ErrorContext(ctx, message, args...)
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.APIErrorResponse{Error: message})
	return true
}

// bindingError turns a gin binding failure into a bad parameter error with a
// message that only refers to the request, never to internals.
func bindingError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields = append(fields, fmt.Sprintf("field '%s' failed on the '%s' rule",
				strings.ToLower(fieldErr.Field()), fieldErr.Tag()))
		}
		return models.BadParameter("Invalid request: "+strings.Join(fields, ", "), err)
	}
	return models.BadParameter("Invalid request: could not parse the request", err)
}
