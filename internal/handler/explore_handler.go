package handler

import (
	"context"
	"encoding/json"

	"github.com/daypanel/daypanel-backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

// APODClient fetches the astronomy picture of the day.
type APODClient interface {
	PictureOfTheDay(ctx context.Context) (json.RawMessage, error)
}

// QuoteClient fetches one random inspirational quote.
type QuoteClient interface {
	RandomQuote(ctx context.Context) (json.RawMessage, error)
}

// ExploreHandler proxies the two decorative dashboard feeds. Upstream
// payloads pass through verbatim.
type ExploreHandler struct {
	nasa   APODClient // nil when NASA_API_KEY is absent
	quotes QuoteClient
}

func NewExploreHandler(nasa APODClient, quotes QuoteClient) *ExploreHandler {
	return &ExploreHandler{nasa: nasa, quotes: quotes}
}

func (h *ExploreHandler) GetAPOD(c *fiber.Ctx) error {
	if h.nasa == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal Server Error"))
	}

	payload, err := h.nasa.PictureOfTheDay(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal Server Error"))
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(payload)
}

func (h *ExploreHandler) GetQuote(c *fiber.Ctx) error {
	payload, err := h.quotes.RandomQuote(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal Server Error"))
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(payload)
}
