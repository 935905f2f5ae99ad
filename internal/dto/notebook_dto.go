package dto

type CreateNotebookRequest struct {
	Name string `json:"name" validate:"required"`
}

type NotebookResponse struct {
	Id        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type OkResponse struct {
	Ok bool `json:"ok"`
}
