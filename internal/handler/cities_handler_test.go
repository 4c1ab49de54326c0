package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringSlice(t *testing.T, data interface{}) []string {
	t.Helper()
	raw, ok := data.([]interface{})
	require.True(t, ok)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		require.True(t, ok)
		out = append(out, s)
	}
	return out
}

func TestCitiesProgressiveNarrowing(t *testing.T) {
	env := newTestEnv(t)

	// No params: all countries.
	resp := env.request(t, http.MethodGet, "/api/cities", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	countries := stringSlice(t, decodeResponse(t, resp).Data)
	assert.Contains(t, countries, "US")
	assert.Contains(t, countries, "DE")

	// Country only: its regions.
	resp = env.request(t, http.MethodGet, "/api/cities?country=US", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	regions := stringSlice(t, decodeResponse(t, resp).Data)
	assert.Contains(t, regions, "California")
	assert.Contains(t, regions, "Texas")

	// Country and region: the city list.
	resp = env.request(t, http.MethodGet, "/api/cities?country=US&region=California", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cities := stringSlice(t, decodeResponse(t, resp).Data)
	assert.Contains(t, cities, "Los Angeles")
	assert.Contains(t, cities, "San Francisco")
}

func TestCitiesUnknownCountry(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/api/cities?country=ZZ", "", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/api/cities?country=US&region=Atlantis", "", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
