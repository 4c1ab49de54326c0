package handler

import (
	"github.com/daypanel/daypanel-backend/internal/models"
	"github.com/daypanel/daypanel-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *Validator
}

func NewAuthHandler(authService *service.AuthService, validator *Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(registerValidationMessage(err)))
	}

	user, err := h.authService.Register(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(user, "User created"))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Email and password are required"))
	}

	// Every login failure collapses to the same 401; a missing signing
	// secret fails closed here too.
	resp, err := h.authService.Login(req)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(service.ErrInvalidCredentials.Error()))
	}

	return c.JSON(models.SuccessResponse(resp, "Login successful"))
}

func registerValidationMessage(err error) string {
	for _, fieldErr := range FieldErrors(err) {
		switch fieldErr.Field() {
		case "Email":
			if fieldErr.Tag() == "required" {
				return "Email and password are required"
			}
			return "Invalid email"
		case "Password":
			if fieldErr.Tag() == "required" {
				return "Email and password are required"
			}
			return "Password must be at least 8 characters"
		}
	}
	return "Invalid request"
}
