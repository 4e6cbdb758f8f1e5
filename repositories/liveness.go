package repositories

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/checkmarble/todo-backend/models"
)

type HealthRepository struct{}

func (repo *HealthRepository) Liveness(ctx context.Context, exec Executor) error {
	sql := "SELECT 1"
	row := exec.QueryRow(ctx, sql)
	var result int
	if err := row.Scan(&result); err != nil {
		return models.DataAccessFailure(errors.Wrap(err, "liveness query error"), "")
	}
	return nil
}
