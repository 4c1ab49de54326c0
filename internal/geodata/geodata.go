// Package geodata exposes the bundled lookup tables: the supported
// public-holiday countries, the holiday override table, the weather
// code→label map and the country→region→city tree.
package geodata

import (
	"embed"
	"encoding/json"
	"sort"
	"strconv"
	"sync"

	"github.com/daypanel/daypanel-backend/internal/models"
)

//go:embed countries.json holidays.json weathers.json cities.json
var files embed.FS

var (
	loadOnce  sync.Once
	countries map[string]bool
	overrides map[string]map[string][]models.Holiday
	weathers  map[string]string
	cityTree  map[string]map[string][]string
)

func load() {
	loadOnce.Do(func() {
		var codes []string
		mustUnmarshal("countries.json", &codes)
		countries = make(map[string]bool, len(codes))
		for _, code := range codes {
			countries[code] = true
		}

		mustUnmarshal("holidays.json", &overrides)
		mustUnmarshal("weathers.json", &weathers)
		mustUnmarshal("cities.json", &cityTree)
	})
}

func mustUnmarshal(name string, v interface{}) {
	data, err := files.ReadFile(name)
	if err != nil {
		panic("geodata: " + name + ": " + err.Error())
	}
	if err := json.Unmarshal(data, v); err != nil {
		panic("geodata: " + name + ": " + err.Error())
	}
}

// SupportedCountry reports whether the upstream registry covers code.
func SupportedCountry(code string) bool {
	load()
	return countries[code]
}

// HasOverride reports whether code has a bundled holiday table.
func HasOverride(code string) bool {
	load()
	_, ok := overrides[code]
	return ok
}

// OverrideHolidays returns the bundled array for (code, year). The array
// may be empty for a covered year; a missing year comes back nil.
func OverrideHolidays(code, year string) []models.Holiday {
	load()
	byYear, ok := overrides[code]
	if !ok {
		return nil
	}
	return byYear[year]
}

// WeatherLabel maps an upstream weather code to its display label.
// Unmapped codes map to the empty string, not an error.
func WeatherLabel(code int) string {
	load()
	return weathers[strconv.Itoa(code)]
}

// Countries lists every country in the city tree, sorted.
func Countries() []string {
	load()
	out := make([]string, 0, len(cityTree))
	for code := range cityTree {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Regions lists the regions of a country, sorted; nil for an unknown
// country.
func Regions(country string) []string {
	load()
	regions, ok := cityTree[country]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(regions))
	for name := range regions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Cities lists the bundled cities of (country, region) in table order;
// nil when either is unknown.
func Cities(country, region string) []string {
	load()
	regions, ok := cityTree[country]
	if !ok {
		return nil
	}
	return regions[region]
}
