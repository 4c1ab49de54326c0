package handler

import (
	"strconv"
	"time"

	"github.com/daypanel/daypanel-backend/internal/geodata"
	"github.com/daypanel/daypanel-backend/internal/middleware"
	"github.com/daypanel/daypanel-backend/internal/models"
	"github.com/daypanel/daypanel-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

// Handler-level year bound. Looser than the lookup's own [2021, 2030]
// range; requests must pass both checks.
const (
	handlerMinYear = 2000
	handlerMaxYear = 2030
)

type HolidayHandler struct {
	holidayService  *service.HolidayService
	locationService *service.LocationService
}

func NewHolidayHandler(holidayService *service.HolidayService, locationService *service.LocationService) *HolidayHandler {
	return &HolidayHandler{
		holidayService:  holidayService,
		locationService: locationService,
	}
}

func (h *HolidayHandler) GetHolidays(c *fiber.Ctx) error {
	year := c.Query("year")
	if year == "" {
		year = strconv.Itoa(time.Now().Year())
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Year must be a number"))
	}
	if y < handlerMinYear || y > handlerMaxYear {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Year must be between 2000 and 2030"))
	}

	country, err := h.locationService.ResolveCountry(
		c.Context(), c.Query("country"), middleware.PrincipalFromCtx(c), clientIP(c))
	if err != nil {
		// Geolocation failures forward the upstream message when present.
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if !geodata.SupportedCountry(country) && !geodata.HasOverride(country) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Sorry, we don't support this country"))
	}

	holidays := h.holidayService.GetHolidays(c.Context(), country, year)
	if holidays == nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Failed to get holidays"))
	}

	return c.JSON(models.SuccessResponse(holidays, ""))
}
