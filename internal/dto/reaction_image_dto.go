package dto

import "io"

type UploadReactionImageRequest struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type UploadReactionImageResponse struct {
	Url string `json:"url"`
}
