package models

// WeatherSummary is the flattened per-request weather payload. Current
// readings carry their unit suffix; weekly entries stay unit-less.
// TempMax/TempMin are omitted when today's date is absent from the
// upstream daily series.
type WeatherSummary struct {
	Temperature         string        `json:"temperature"`
	ApparentTemperature string        `json:"apparent_temperature"`
	Weather             string        `json:"weather"`
	WindSpeed           string        `json:"wind_speed"`
	Humidity            string        `json:"humidity"`
	TempMax             string        `json:"temp_max,omitempty"`
	TempMin             string        `json:"temp_min,omitempty"`
	City                string        `json:"city"`
	Region              string        `json:"region"`
	Weekly              []WeeklyEntry `json:"weekly"`
}

type WeeklyEntry struct {
	Time string `json:"time"`
	Max  string `json:"max"`
	Min  string `json:"min"`
}
