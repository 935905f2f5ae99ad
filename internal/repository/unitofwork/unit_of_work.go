package unitofwork

import (
	"context"

	"lab-notebook-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NotebookRepository() contract.NotebookRepository
	ExperimentRepository() contract.ExperimentRepository
}
