package dto

// NotebookId is a pointer in the request types: 0 is a valid id, only an absent value is rejected.
type ListExperimentsRequest struct {
	NotebookId *int64 `query:"notebook_id" validate:"required"`
	Date       string `query:"date"`
	StartDate  string `query:"start_date"`
	EndDate    string `query:"end_date"`
	Title      string `query:"title"`
}

type CreateExperimentRequest struct {
	NotebookId    *int64  `json:"notebook_id" validate:"required"`
	Title         string  `json:"title" validate:"required"`
	Date          string  `json:"date" validate:"required"`
	Objective     *string `json:"objective"`
	Materials     *string `json:"materials"`
	Procedure     *string `json:"procedure"`
	Results       *string `json:"results"`
	Notes         *string `json:"notes"`
	ReactionImage *string `json:"reaction_image"`
}

// UpdateExperimentRequest is a partial update: omitted or null fields keep their stored value.
type UpdateExperimentRequest struct {
	Title         *string `json:"title"`
	Date          *string `json:"date"`
	Objective     *string `json:"objective"`
	Materials     *string `json:"materials"`
	Procedure     *string `json:"procedure"`
	Results       *string `json:"results"`
	Notes         *string `json:"notes"`
	ReactionImage *string `json:"reaction_image"`
}

type ExperimentResponse struct {
	Id            int64   `json:"id"`
	NotebookId    int64   `json:"notebook_id"`
	Title         string  `json:"title"`
	Date          string  `json:"date"`
	Objective     *string `json:"objective"`
	Materials     *string `json:"materials"`
	Procedure     *string `json:"procedure"`
	Results       *string `json:"results"`
	Notes         *string `json:"notes"`
	ReactionImage *string `json:"reaction_image"`
	CreatedAt     string  `json:"created_at"`
}
