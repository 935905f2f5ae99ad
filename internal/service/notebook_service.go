package service

import (
	"context"
	"fmt"

	"lab-notebook-be/internal/dto"
	"lab-notebook-be/internal/entity"
	"lab-notebook-be/internal/pkg/logger"
	"lab-notebook-be/internal/pkg/validation"
	"lab-notebook-be/internal/repository/scope"
	"lab-notebook-be/internal/repository/specification"
	"lab-notebook-be/internal/repository/unitofwork"
)

type INotebookService interface {
	GetAll(ctx context.Context) ([]*dto.NotebookResponse, error)
	Create(ctx context.Context, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error)
	Delete(ctx context.Context, id int64) error
}

type notebookService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewNotebookService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
) INotebookService {
	return &notebookService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (c *notebookService) GetAll(ctx context.Context) ([]*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebooks, err := uow.NotebookRepository().FindAll(ctx, specification.Scope(scope.OrderByIDAsc))
	if err != nil {
		return nil, fmt.Errorf("list notebooks: %w", err)
	}

	result := make([]*dto.NotebookResponse, 0, len(notebooks))
	for _, notebook := range notebooks {
		result = append(result, toNotebookResponse(notebook))
	}
	return result, nil
}

func (c *notebookService) Create(ctx context.Context, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	notebook := entity.Notebook{
		Name: req.Name,
	}

	if err := uow.NotebookRepository().Create(ctx, &notebook); err != nil {
		return nil, fmt.Errorf("create notebook: %w", err)
	}

	c.logger.Info("NOTEBOOK", "Notebook created", map[string]interface{}{
		"notebook_id": notebook.Id,
	})

	return toNotebookResponse(&notebook), nil
}

// Delete removes the notebook and every experiment that references it in one
// transaction. Deleting a notebook that does not exist succeeds.
func (c *notebookService) Delete(ctx context.Context, id int64) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("begin notebook delete: %w", err)
	}
	defer uow.Rollback()

	// 1. Experiments first so none are orphaned if the notebook delete fails
	removed, err := uow.ExperimentRepository().DeleteByNotebookID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete experiments of notebook %d: %w", id, err)
	}

	// 2. The notebook itself
	if err := uow.NotebookRepository().Delete(ctx, id); err != nil {
		return fmt.Errorf("delete notebook %d: %w", id, err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("commit notebook delete: %w", err)
	}

	c.logger.Info("NOTEBOOK", "Notebook deleted", map[string]interface{}{
		"notebook_id":         id,
		"experiments_removed": removed,
	})
	return nil
}

func toNotebookResponse(n *entity.Notebook) *dto.NotebookResponse {
	return &dto.NotebookResponse{
		Id:        n.Id,
		Name:      n.Name,
		CreatedAt: n.CreatedAt,
	}
}
