package controller

import (
	"lab-notebook-be/internal/dto"
	"lab-notebook-be/internal/pkg/apperror"
	"lab-notebook-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReactionImageController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Serve(ctx *fiber.Ctx) error
}

type reactionImageController struct {
	service service.IReactionImageService
}

func NewReactionImageController(service service.IReactionImageService) IReactionImageController {
	return &reactionImageController{service: service}
}

// RegisterRoutes must run before the app's /static handler so stored images
// are resolved through the blob store.
func (c *reactionImageController) RegisterRoutes(r fiber.Router) {
	r.Post("/upload-reaction-image", c.Upload)
	r.Get("/static/reactions/:name", c.Serve)
}

func (c *reactionImageController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return apperror.Validation("file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	res, err := c.service.Upload(ctx.UserContext(), &dto.UploadReactionImageRequest{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *reactionImageController) Serve(ctx *fiber.Ctx) error {
	info, body, err := c.service.Open(ctx.UserContext(), ctx.Params("name"))
	if err != nil {
		return err
	}

	if info.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, info.ContentType)
	}
	// fasthttp closes the stream once the response is written.
	return ctx.SendStream(body, int(info.Size))
}
