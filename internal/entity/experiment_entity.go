package entity

type Experiment struct {
	Id            int64
	NotebookId    int64
	Title         string
	Date          string
	Objective     *string
	Materials     *string
	Procedure     *string
	Results       *string
	Notes         *string
	ReactionImage *string
	CreatedAt     string
}

// ExperimentPatch carries a partial update. A nil field means "keep the stored value".
type ExperimentPatch struct {
	Title         *string
	Date          *string
	Objective     *string
	Materials     *string
	Procedure     *string
	Results       *string
	Notes         *string
	ReactionImage *string
}

// ExperimentFilter narrows an experiment listing inside one notebook.
// An exact Date takes priority over the StartDate/EndDate range.
type ExperimentFilter struct {
	NotebookId int64
	Date       string
	StartDate  string
	EndDate    string
	Title      string
}

// MergeExperiment applies patch on top of existing and returns the result.
// Non-nil patch values replace the stored ones; a field can never be cleared back to nil.
// Id, NotebookId and CreatedAt are never touched.
func MergeExperiment(existing Experiment, patch ExperimentPatch) Experiment {
	merged := existing
	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Date != nil {
		merged.Date = *patch.Date
	}
	merged.Objective = pick(patch.Objective, existing.Objective)
	merged.Materials = pick(patch.Materials, existing.Materials)
	merged.Procedure = pick(patch.Procedure, existing.Procedure)
	merged.Results = pick(patch.Results, existing.Results)
	merged.Notes = pick(patch.Notes, existing.Notes)
	merged.ReactionImage = pick(patch.ReactionImage, existing.ReactionImage)
	return merged
}

func pick(override, current *string) *string {
	if override != nil {
		v := *override
		return &v
	}
	return current
}
