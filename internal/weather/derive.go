package weather

import (
	"logistics-route-optimizer/domain"
	"sort"
	"time"
)

// Span of the forbidden interval opened by an adverse forecast entry.
const WindowSpan = 3 * time.Hour

// DeriveWindow scans a stop's timeline in chronological order and returns the
// forbidden window opened by the first adverse entry still relevant at trip
// start, or nil when the timeline stays safe throughout.
func DeriveWindow(f domain.Forecast, tripStart time.Time) *domain.WeatherWindow {
	entries := make([]domain.ForecastEntry, len(f))
	copy(entries, f)
	sort.Slice(entries, func(i, j int) bool { return entries[i].At.Before(entries[j].At) })

	for _, e := range entries {
		if e.At.Add(WindowSpan).Before(tripStart) {
			continue
		}
		reasons := AdverseReasons(e)
		if len(reasons) == 0 {
			continue
		}
		return &domain.WeatherWindow{
			Start:   e.At,
			End:     e.At.Add(WindowSpan),
			Reasons: reasons,
		}
	}
	return nil
}
