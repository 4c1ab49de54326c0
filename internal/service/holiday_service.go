package service

import (
	"context"
	"strconv"

	"github.com/daypanel/daypanel-backend/internal/geodata"
	"github.com/daypanel/daypanel-backend/internal/models"
	"go.uber.org/zap"
)

// Years the lookup itself accepts. The handler layer applies a looser
// [2000, 2030] bound first; both checks are deliberate (the two ranges
// evolved independently and requests must pass both).
const (
	holidayMinYear = 2021
	holidayMaxYear = 2030
)

// HolidayRegistry is the upstream public-holiday dependency.
type HolidayRegistry interface {
	PublicHolidays(ctx context.Context, year int, country string) ([]models.Holiday, error)
}

type HolidayService struct {
	registry HolidayRegistry
	logger   *zap.SugaredLogger
}

func NewHolidayService(registry HolidayRegistry, logger *zap.SugaredLogger) *HolidayService {
	return &HolidayService{registry: registry, logger: logger}
}

// GetHolidays returns the holidays for (country, year), or nil when the
// country is unsupported, the year is out of range, or the upstream
// fetch fails. It never returns an error: every failure collapses to
// nil by contract.
func (s *HolidayService) GetHolidays(ctx context.Context, country, year string) []models.Holiday {
	if !geodata.SupportedCountry(country) && !geodata.HasOverride(country) {
		return nil
	}

	y, err := strconv.Atoi(year)
	if err != nil || y < holidayMinYear || y > holidayMaxYear {
		return nil
	}

	if geodata.HasOverride(country) {
		return geodata.OverrideHolidays(country, year)
	}

	holidays, err := s.registry.PublicHolidays(ctx, y, country)
	if err != nil {
		s.logger.Warnw("holiday registry fetch failed", "country", country, "year", y, "error", err)
		return nil
	}

	return holidays
}
