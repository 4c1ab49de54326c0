package handler

import (
	"errors"
	"io"

	"github.com/daypanel/daypanel-backend/internal/middleware"
	"github.com/daypanel/daypanel-backend/internal/models"
	"github.com/daypanel/daypanel-backend/internal/service"
	"github.com/daypanel/daypanel-backend/pkg/ai"
	"github.com/gofiber/fiber/v2"
)

var supportedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload takes a photographed note and returns the extracted (date,
// event) candidates. Authenticated callers get the candidates persisted
// and their full event list back.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No image uploaded"))
	}

	mimeType := file.Header.Get("Content-Type")
	if !supportedImageTypes[mimeType] {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Unsupported image type"))
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal Server Error"))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal Server Error"))
	}

	result, err := h.uploadService.ProcessImage(
		c.Context(), file.Filename, mimeType, data, middleware.PrincipalFromCtx(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExtractionDisabled):
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
		case errors.Is(err, ai.ErrUnparsable):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Failed to parse image"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal Server Error"))
		}
	}

	if result.Authenticated {
		return c.JSON(fiber.Map{"authenticated": true, "data": result.Events})
	}
	return c.JSON(fiber.Map{"authenticated": false, "data": result.Candidates})
}
