package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/daypanel/daypanel-backend/internal/middleware"
	"github.com/daypanel/daypanel-backend/pkg/geoip"
)

// ErrNoLocation means every resolution tier came up empty.
var ErrNoLocation = errors.New("failed to get location")

// GeoIPClient is the upstream geolocation dependency.
type GeoIPClient interface {
	Lookup(ctx context.Context, clientIP string) (*geoip.Location, error)
}

// CoordinateQuery carries the explicit weather query params. It only
// wins the first tier when all four fields are present.
type CoordinateQuery struct {
	Lat    string
	Lon    string
	City   string
	Region string
}

func (q CoordinateQuery) Complete() bool {
	return q.Lat != "" && q.Lon != "" && q.City != "" && q.Region != ""
}

type ResolvedCoordinates struct {
	Lat    string
	Lon    string
	City   string
	Region string
}

// LocationService resolves the location driving holiday and weather
// lookups: explicit params first, then the authenticated profile, then
// IP geolocation. Read-only; the geolocation call is a single blocking
// request with no retry.
type LocationService struct {
	geo GeoIPClient
}

func NewLocationService(geo GeoIPClient) *LocationService {
	return &LocationService{geo: geo}
}

// ResolveCountry picks the country code for a holiday lookup. Explicit
// values pass through unvalidated; the lookup layer owns the
// supported-country check.
func (s *LocationService) ResolveCountry(ctx context.Context, explicit string, principal *middleware.Principal, clientIP string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if principal != nil && principal.HasCountry() {
		return *principal.Country, nil
	}

	loc, err := s.geo.Lookup(ctx, clientIP)
	if err != nil {
		return "", err
	}
	return loc.CountryCode, nil
}

// ResolveCoordinates picks the location quadruple for a weather lookup.
func (s *LocationService) ResolveCoordinates(ctx context.Context, query CoordinateQuery, principal *middleware.Principal, clientIP string) (*ResolvedCoordinates, error) {
	if query.Complete() {
		return &ResolvedCoordinates{
			Lat:    query.Lat,
			Lon:    query.Lon,
			City:   query.City,
			Region: query.Region,
		}, nil
	}

	if principal != nil && principal.HasCoordinates() {
		return &ResolvedCoordinates{
			Lat:    formatCoordinate(*principal.Latitude),
			Lon:    formatCoordinate(*principal.Longitude),
			City:   *principal.City,
			Region: *principal.Region,
		}, nil
	}

	loc, err := s.geo.Lookup(ctx, clientIP)
	if err != nil {
		return nil, err
	}
	return &ResolvedCoordinates{
		Lat:    formatCoordinate(loc.Lat),
		Lon:    formatCoordinate(loc.Lon),
		City:   loc.City,
		Region: loc.RegionName,
	}, nil
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
