package executor_factory

import (
	"context"

	"github.com/pashagolub/pgxmock/v4"

	"github.com/checkmarble/todo-backend/repositories"
)

type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
	// AcquireError simulates a pool that cannot hand out a connection.
	AcquireError error
	// Acquired and Released count the executors lent by the stub.
	Acquired *int
	Released *int
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock:     pool,
		Acquired: new(int),
		Released: new(int),
	}
}

func (stub ExecutorFactoryStub) WithExecutor(ctx context.Context, fn func(exec repositories.Executor) error) error {
	if stub.AcquireError != nil {
		return stub.AcquireError
	}
	*stub.Acquired++
	defer func() { *stub.Released++ }()
	return fn(stub.Mock)
}
