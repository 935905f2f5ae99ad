package contract

import (
	"context"

	"lab-notebook-be/internal/entity"
	"lab-notebook-be/internal/repository/specification"
)

type ExperimentRepository interface {
	// Create assigns Id and CreatedAt and fills experiment with the stored row.
	Create(ctx context.Context, experiment *entity.Experiment) error
	// Update writes every mutable column of experiment. It returns an
	// apperror NotFound error when no row has experiment.Id.
	Update(ctx context.Context, experiment *entity.Experiment) error
	// Delete is a no-op when the experiment does not exist.
	Delete(ctx context.Context, id int64) error
	DeleteByNotebookID(ctx context.Context, notebookID int64) (int64, error)
	// FindOne returns (nil, nil) when nothing matches.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Experiment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Experiment, error)
}
