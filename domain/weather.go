package domain

import "time"

// Single point-in-time weather reading for a stop. Field names carry the
// units: RainMM is accumulated rain in millimeters, WindSpeedMS is meters per
// second, VisibilityM is meters.
type ForecastEntry struct {
	At          time.Time
	RainMM      float64
	WindSpeedMS float64
	VisibilityM float64
	Summary     string
}

// Weather timeline for one stop. Entries need not be sorted; lookups pick the
// entry closest to the queried instant.
type Forecast []ForecastEntry

// Interval during which arriving at a stop is blocked by adverse weather.
type WeatherWindow struct {
	Start   time.Time
	End     time.Time
	Reasons []string
}

// Everything known about the weather at one stop. Window takes precedence
// when both forms are present; the zero value means the stop is
// unconstrained.
type StopWeather struct {
	Window   *WeatherWindow
	Forecast Forecast
}

// Reports whether no weather knowledge is attached to the stop.
func (w StopWeather) Empty() bool {
	return w.Window == nil && len(w.Forecast) == 0
}
