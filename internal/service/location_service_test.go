package service

import (
	"context"
	"errors"
	"testing"

	"github.com/daypanel/daypanel-backend/internal/middleware"
	"github.com/daypanel/daypanel-backend/pkg/geoip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGeo struct {
	loc   *geoip.Location
	err   error
	calls int
}

func (f *fakeGeo) Lookup(ctx context.Context, clientIP string) (*geoip.Location, error) {
	f.calls++
	return f.loc, f.err
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func locatedPrincipal() *middleware.Principal {
	return &middleware.Principal{
		ID:        1,
		Email:     "user@example.com",
		City:      strPtr("Munich"),
		Region:    strPtr("Bavaria"),
		Country:   strPtr("DE"),
		Latitude:  floatPtr(48.1351),
		Longitude: floatPtr(11.582),
	}
}

func TestResolveCountryExplicitWins(t *testing.T) {
	geo := &fakeGeo{}
	svc := NewLocationService(geo)

	country, err := svc.ResolveCountry(context.Background(), "US", locatedPrincipal(), "1.2.3.4")

	require.NoError(t, err)
	assert.Equal(t, "US", country)
	assert.Zero(t, geo.calls)
}

func TestResolveCountryFromProfile(t *testing.T) {
	geo := &fakeGeo{}
	svc := NewLocationService(geo)

	country, err := svc.ResolveCountry(context.Background(), "", locatedPrincipal(), "1.2.3.4")

	require.NoError(t, err)
	assert.Equal(t, "DE", country)
	assert.Zero(t, geo.calls)
}

func TestResolveCountryFallsBackToGeoIP(t *testing.T) {
	geo := &fakeGeo{loc: &geoip.Location{Status: "success", CountryCode: "TR"}}
	svc := NewLocationService(geo)

	country, err := svc.ResolveCountry(context.Background(), "", nil, "1.2.3.4")

	require.NoError(t, err)
	assert.Equal(t, "TR", country)
	assert.Equal(t, 1, geo.calls)
}

func TestResolveCountryEmptyProfileFallsThrough(t *testing.T) {
	geo := &fakeGeo{loc: &geoip.Location{Status: "success", CountryCode: "GB"}}
	svc := NewLocationService(geo)

	principal := &middleware.Principal{ID: 2, Email: "new@example.com"}
	country, err := svc.ResolveCountry(context.Background(), "", principal, "1.2.3.4")

	require.NoError(t, err)
	assert.Equal(t, "GB", country)
}

func TestResolveCountryGeoIPFailure(t *testing.T) {
	geo := &fakeGeo{err: errors.New("private range")}
	svc := NewLocationService(geo)

	_, err := svc.ResolveCountry(context.Background(), "", nil, "10.0.0.1")

	// The upstream message survives to the caller.
	require.EqualError(t, err, "private range")
}

func TestResolveCoordinatesExplicitNeedsAllFour(t *testing.T) {
	geo := &fakeGeo{loc: &geoip.Location{
		Status: "success", City: "Ankara", RegionName: "Ankara", Lat: 39.93, Lon: 32.86,
	}}
	svc := NewLocationService(geo)

	// Partial explicit params do not win the first tier.
	query := CoordinateQuery{Lat: "1", Lon: "2"}
	coords, err := svc.ResolveCoordinates(context.Background(), query, nil, "1.2.3.4")

	require.NoError(t, err)
	assert.Equal(t, "Ankara", coords.City)
	assert.Equal(t, 1, geo.calls)
}

func TestResolveCoordinatesExplicitWins(t *testing.T) {
	geo := &fakeGeo{}
	svc := NewLocationService(geo)

	query := CoordinateQuery{Lat: "37.77", Lon: "-122.42", City: "San Francisco", Region: "California"}
	coords, err := svc.ResolveCoordinates(context.Background(), query, locatedPrincipal(), "1.2.3.4")

	require.NoError(t, err)
	assert.Equal(t, "37.77", coords.Lat)
	assert.Equal(t, "San Francisco", coords.City)
	assert.Zero(t, geo.calls)
}

func TestResolveCoordinatesFromProfile(t *testing.T) {
	geo := &fakeGeo{}
	svc := NewLocationService(geo)

	coords, err := svc.ResolveCoordinates(context.Background(), CoordinateQuery{}, locatedPrincipal(), "1.2.3.4")

	require.NoError(t, err)
	assert.Equal(t, "48.1351", coords.Lat)
	assert.Equal(t, "11.582", coords.Lon)
	assert.Equal(t, "Munich", coords.City)
	assert.Equal(t, "Bavaria", coords.Region)
	assert.Zero(t, geo.calls)
}
