package implementation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lab-notebook-be/internal/entity"
	"lab-notebook-be/internal/mapper"
	"lab-notebook-be/internal/model"
	"lab-notebook-be/internal/pkg/apperror"
	"lab-notebook-be/internal/repository/contract"
	"lab-notebook-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ExperimentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ExperimentMapper
	now    func() time.Time
}

func NewExperimentRepository(db *gorm.DB) contract.ExperimentRepository {
	return &ExperimentRepositoryImpl{
		db:     db,
		mapper: mapper.NewExperimentMapper(),
		now:    time.Now,
	}
}

func (r *ExperimentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ExperimentRepositoryImpl) Create(ctx context.Context, experiment *entity.Experiment) error {
	m := r.mapper.ToModel(experiment)
	m.Id = 0
	m.CreatedAt = entity.FormatTimestamp(r.now())
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*experiment = *r.mapper.ToEntity(m)
	return nil
}

func (r *ExperimentRepositoryImpl) Update(ctx context.Context, experiment *entity.Experiment) error {
	// Map-based Updates writes nil pointers as NULL, unlike struct-based Updates.
	res := r.db.WithContext(ctx).
		Model(&model.Experiment{}).
		Where("id = ?", experiment.Id).
		Updates(r.mapper.ToColumns(experiment))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound(fmt.Sprintf("experiment %d not found", experiment.Id))
	}

	var m model.Experiment
	if err := r.db.WithContext(ctx).First(&m, experiment.Id).Error; err != nil {
		return err
	}
	*experiment = *r.mapper.ToEntity(&m)
	return nil
}

func (r *ExperimentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Experiment{}, id).Error
}

func (r *ExperimentRepositoryImpl) DeleteByNotebookID(ctx context.Context, notebookID int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("notebook_id = ?", notebookID).Delete(&model.Experiment{})
	return res.RowsAffected, res.Error
}

func (r *ExperimentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Experiment, error) {
	var m model.Experiment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ExperimentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Experiment, error) {
	var models []*model.Experiment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
