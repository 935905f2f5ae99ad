package mapper

import (
	"lab-notebook-be/internal/entity"
	"lab-notebook-be/internal/model"
)

type ExperimentMapper struct{}

func NewExperimentMapper() *ExperimentMapper {
	return &ExperimentMapper{}
}

func (m *ExperimentMapper) ToEntity(e *model.Experiment) *entity.Experiment {
	if e == nil {
		return nil
	}
	return &entity.Experiment{
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

func (m *ExperimentMapper) ToModel(e *entity.Experiment) *model.Experiment {
	if e == nil {
		return nil
	}
	return &model.Experiment{
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

func (m *ExperimentMapper) ToEntities(experiments []*model.Experiment) []*entity.Experiment {
	entities := make([]*entity.Experiment, len(experiments))
	for i, e := range experiments {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

// ToColumns returns the mutable columns of e keyed by column name. Nil pointers
// map to NULL so a map-based gorm Updates writes every column.
func (m *ExperimentMapper) ToColumns(e *entity.Experiment) map[string]interface{} {
	return map[string]interface{}{
		"title":          e.Title,
		"date":           e.Date,
		"objective":      e.Objective,
		"materials":      e.Materials,
		"procedure":      e.Procedure,
		"results":        e.Results,
		"notes":          e.Notes,
		"reaction_image": e.ReactionImage,
	}
}
