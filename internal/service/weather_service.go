package service

import (
	"context"
	"strconv"
	"time"

	"github.com/daypanel/daypanel-backend/internal/geodata"
	"github.com/daypanel/daypanel-backend/internal/models"
	"github.com/daypanel/daypanel-backend/pkg/openmeteo"
	"go.uber.org/zap"
)

// ForecastClient is the upstream forecast dependency.
type ForecastClient interface {
	GetForecast(ctx context.Context, lat, lon string) (*openmeteo.Forecast, error)
}

type WeatherService struct {
	forecast ForecastClient
	logger   *zap.SugaredLogger
	now      func() time.Time
}

func NewWeatherService(forecast ForecastClient, logger *zap.SugaredLogger) *WeatherService {
	return &WeatherService{
		forecast: forecast,
		logger:   logger,
		now:      time.Now,
	}
}

// GetWeather fetches the forecast for the coordinates and flattens it
// into the dashboard summary, or nil when the upstream call fails or
// flags an error. "Today" is located by exact match between the
// upstream ISO date list and the current UTC date; a miss (possible
// around day boundaries) drops temp_max/temp_min from the summary
// rather than failing.
func (s *WeatherService) GetWeather(ctx context.Context, lat, lon, city, region string) *models.WeatherSummary {
	forecast, err := s.forecast.GetForecast(ctx, lat, lon)
	if err != nil {
		s.logger.Warnw("forecast fetch failed", "lat", lat, "lon", lon, "error", err)
		return nil
	}
	if forecast.Error {
		s.logger.Warnw("forecast upstream error", "lat", lat, "lon", lon, "reason", forecast.Reason)
		return nil
	}

	summary := &models.WeatherSummary{
		Temperature:         formatNumber(forecast.Current.Temperature2m) + " " + forecast.CurrentUnits.Temperature2m,
		ApparentTemperature: formatNumber(forecast.Current.ApparentTemperature) + " " + forecast.CurrentUnits.Temperature2m,
		Weather:             geodata.WeatherLabel(forecast.Current.WeatherCode),
		WindSpeed:           formatNumber(forecast.Current.WindSpeed10m) + " " + forecast.CurrentUnits.WindSpeed10m,
		Humidity:            formatNumber(forecast.Current.RelativeHumidity2m) + " " + forecast.CurrentUnits.RelativeHumidity2m,
		City:                city,
		Region:              region,
		Weekly:              make([]models.WeeklyEntry, 0, len(forecast.Daily.Time)),
	}

	today := s.now().UTC().Format("2006-01-02")
	for i, day := range forecast.Daily.Time {
		entry := models.WeeklyEntry{Time: day}
		if i < len(forecast.Daily.Temperature2mMax) {
			entry.Max = formatNumber(forecast.Daily.Temperature2mMax[i])
		}
		if i < len(forecast.Daily.Temperature2mMin) {
			entry.Min = formatNumber(forecast.Daily.Temperature2mMin[i])
		}
		summary.Weekly = append(summary.Weekly, entry)

		if day == today {
			summary.TempMax = entry.Max + " " + forecast.DailyUnits.Temperature2mMax
			summary.TempMin = entry.Min + " " + forecast.DailyUnits.Temperature2mMin
		}
	}

	return summary
}

// formatNumber renders upstream numbers without trailing zeros, the way
// they appear in the upstream JSON.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
