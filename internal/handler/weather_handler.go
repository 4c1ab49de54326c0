package handler

import (
	"github.com/daypanel/daypanel-backend/internal/middleware"
	"github.com/daypanel/daypanel-backend/internal/models"
	"github.com/daypanel/daypanel-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type WeatherHandler struct {
	weatherService  *service.WeatherService
	locationService *service.LocationService
}

func NewWeatherHandler(weatherService *service.WeatherService, locationService *service.LocationService) *WeatherHandler {
	return &WeatherHandler{
		weatherService:  weatherService,
		locationService: locationService,
	}
}

func (h *WeatherHandler) GetWeather(c *fiber.Ctx) error {
	query := service.CoordinateQuery{
		Lat:    c.Query("lat"),
		Lon:    c.Query("lon"),
		City:   c.Query("city"),
		Region: c.Query("region"),
	}

	coords, err := h.locationService.ResolveCoordinates(
		c.Context(), query, middleware.PrincipalFromCtx(c), clientIP(c))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	summary := h.weatherService.GetWeather(c.Context(), coords.Lat, coords.Lon, coords.City, coords.Region)
	if summary == nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Failed to get weather"))
	}

	return c.JSON(models.SuccessResponse(summary, ""))
}

// clientIP prefers the proxy headers the dashboard deploys behind and
// falls back to the socket address.
func clientIP(c *fiber.Ctx) string {
	if ip := c.Get("X-Real-Ip"); ip != "" {
		return ip
	}
	if ip := c.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	return c.IP()
}
