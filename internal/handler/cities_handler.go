package handler

import (
	"github.com/daypanel/daypanel-backend/internal/geodata"
	"github.com/daypanel/daypanel-backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

type CitiesHandler struct{}

func NewCitiesHandler() *CitiesHandler {
	return &CitiesHandler{}
}

// GetCities progressively narrows over the bundled tree: no country →
// countries, country only → its regions, both → the city list.
func (h *CitiesHandler) GetCities(c *fiber.Ctx) error {
	country := c.Query("country")
	region := c.Query("region")

	if country == "" {
		return c.JSON(models.SuccessResponse(geodata.Countries(), ""))
	}

	if region == "" {
		regions := geodata.Regions(country)
		if regions == nil {
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal Server Error"))
		}
		return c.JSON(models.SuccessResponse(regions, ""))
	}

	cities := geodata.Cities(country, region)
	if cities == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal Server Error"))
	}
	return c.JSON(models.SuccessResponse(cities, ""))
}
