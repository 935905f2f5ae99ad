package service

import (
	"context"
	"fmt"

	"lab-notebook-be/internal/dto"
	"lab-notebook-be/internal/entity"
	"lab-notebook-be/internal/pkg/apperror"
	"lab-notebook-be/internal/pkg/logger"
	"lab-notebook-be/internal/pkg/validation"
	"lab-notebook-be/internal/repository/specification"
	"lab-notebook-be/internal/repository/unitofwork"
)

type IExperimentService interface {
	List(ctx context.Context, req *dto.ListExperimentsRequest) ([]*dto.ExperimentResponse, error)
	Create(ctx context.Context, req *dto.CreateExperimentRequest) (*dto.ExperimentResponse, error)
	Show(ctx context.Context, id int64) (*dto.ExperimentResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateExperimentRequest) (*dto.ExperimentResponse, error)
	Delete(ctx context.Context, id int64) error
}

type experimentService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewExperimentService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
) IExperimentService {
	return &experimentService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (c *experimentService) List(ctx context.Context, req *dto.ListExperimentsRequest) ([]*dto.ExperimentResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	experiments, err := uow.ExperimentRepository().FindAll(ctx, specification.ExperimentListing(entity.ExperimentFilter{
		NotebookId: *req.NotebookId,
		Date:       req.Date,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Title:      req.Title,
	})...)
	if err != nil {
		return nil, fmt.Errorf("list experiments: %w", err)
	}

	result := make([]*dto.ExperimentResponse, 0, len(experiments))
	for _, e := range experiments {
		result = append(result, toExperimentResponse(e))
	}
	return result, nil
}

// Create does not check that the notebook exists; the foreign key is stored as given.
func (c *experimentService) Create(ctx context.Context, req *dto.CreateExperimentRequest) (*dto.ExperimentResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	experiment := entity.Experiment{
		NotebookId:    *req.NotebookId,
		Title:         req.Title,
		Date:          req.Date,
		Objective:     req.Objective,
		Materials:     req.Materials,
		Procedure:     req.Procedure,
		Results:       req.Results,
		Notes:         req.Notes,
		ReactionImage: req.ReactionImage,
	}

	if err := uow.ExperimentRepository().Create(ctx, &experiment); err != nil {
		return nil, fmt.Errorf("create experiment: %w", err)
	}

	c.logger.Info("EXPERIMENT", "Experiment created", map[string]interface{}{
		"experiment_id": experiment.Id,
		"notebook_id":   experiment.NotebookId,
	})

	return toExperimentResponse(&experiment), nil
}

func (c *experimentService) Show(ctx context.Context, id int64) (*dto.ExperimentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	experiment, err := uow.ExperimentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("get experiment %d: %w", id, err)
	}
	if experiment == nil {
		return nil, experimentNotFound(id)
	}

	return toExperimentResponse(experiment), nil
}

func (c *experimentService) Update(ctx context.Context, id int64, req *dto.UpdateExperimentRequest) (*dto.ExperimentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ExperimentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("get experiment %d: %w", id, err)
	}
	if existing == nil {
		return nil, experimentNotFound(id)
	}

	merged := entity.MergeExperiment(*existing, entity.ExperimentPatch{
		Title:         req.Title,
		Date:          req.Date,
		Objective:     req.Objective,
		Materials:     req.Materials,
		Procedure:     req.Procedure,
		Results:       req.Results,
		Notes:         req.Notes,
		ReactionImage: req.ReactionImage,
	})

	if err := uow.ExperimentRepository().Update(ctx, &merged); err != nil {
		// a concurrent delete between the read and the write surfaces as NotFound
		if apperror.IsNotFound(err) {
			return nil, experimentNotFound(id)
		}
		return nil, fmt.Errorf("update experiment %d: %w", id, err)
	}

	c.logger.Info("EXPERIMENT", "Experiment updated", map[string]interface{}{
		"experiment_id": id,
	})

	return toExperimentResponse(&merged), nil
}

func (c *experimentService) Delete(ctx context.Context, id int64) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := uow.ExperimentRepository().Delete(ctx, id); err != nil {
		return fmt.Errorf("delete experiment %d: %w", id, err)
	}

	c.logger.Info("EXPERIMENT", "Experiment deleted", map[string]interface{}{
		"experiment_id": id,
	})
	return nil
}

func experimentNotFound(id int64) error {
	return apperror.NotFound(fmt.Sprintf("experiment %d does not exist", id))
}

func toExperimentResponse(e *entity.Experiment) *dto.ExperimentResponse {
	return &dto.ExperimentResponse{
		Id:            e.Id,
		NotebookId:    e.NotebookId,
		Title:         e.Title,
		Date:          e.Date,
		Objective:     e.Objective,
		Materials:     e.Materials,
		Procedure:     e.Procedure,
		Results:       e.Results,
		Notes:         e.Notes,
		ReactionImage: e.ReactionImage,
		CreatedAt:     e.CreatedAt,
	}
}
