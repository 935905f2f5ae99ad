package contract

import (
	"context"

	"lab-notebook-be/internal/entity"
	"lab-notebook-be/internal/repository/specification"
)

type NotebookRepository interface {
	// Create assigns Id and CreatedAt and fills notebook with the stored row.
	Create(ctx context.Context, notebook *entity.Notebook) error
	// Delete is a no-op when the notebook does not exist.
	Delete(ctx context.Context, id int64) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notebook, error)
}
