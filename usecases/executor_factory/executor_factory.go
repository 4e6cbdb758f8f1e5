package executor_factory

import (
	"context"

	"github.com/checkmarble/todo-backend/repositories"
)

// ExecutorFactory lends a database executor for the duration of a callback and
// takes it back afterwards.
type ExecutorFactory interface {
	WithExecutor(ctx context.Context, fn func(exec repositories.Executor) error) error
}
