package handler

import (
	"errors"
	"strconv"

	"github.com/daypanel/daypanel-backend/internal/middleware"
	"github.com/daypanel/daypanel-backend/internal/models"
	"github.com/daypanel/daypanel-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *Validator
}

func NewEventHandler(eventService *service.EventService, validator *Validator) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

func (h *EventHandler) GetEvents(c *fiber.Ctx) error {
	principal := middleware.PrincipalFromCtx(c)

	events, err := h.eventService.GetUserEvents(principal.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal Server Error"))
	}

	return c.JSON(models.SuccessResponse(events, ""))
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	principal := middleware.PrincipalFromCtx(c)

	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Date and event are required"))
	}

	event, err := h.eventService.CreateEvent(principal.ID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(event, "Event created"))
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	principal := middleware.PrincipalFromCtx(c)

	if err := h.eventService.DeleteEvent(uint(eventID), principal.ID); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal Server Error"))
	}

	return c.JSON(models.SuccessResponse(nil, "Event deleted"))
}
