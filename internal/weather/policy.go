package weather

import (
	"logistics-route-optimizer/domain"
	"time"
)

// Conditions at or beyond these readings make a stop unsafe to reach.
const (
	RainThresholdMM      = 1.0
	WindThresholdMS      = 8.0
	VisibilityThresholdM = 3000.0
)

// Canonical reason labels attached to waits, alerts and violations.
const (
	ReasonHeavyRain     = "Heavy Rain"
	ReasonHighWind      = "High Wind"
	ReasonLowVisibility = "Low Visibility"
	ReasonAdverse       = "Adverse Weather"
)

// Return the reasons a forecast entry counts as adverse, nil when it is safe.
func AdverseReasons(e domain.ForecastEntry) []string {
	var reasons []string
	if e.RainMM > RainThresholdMM {
		reasons = append(reasons, ReasonHeavyRain)
	}
	if e.WindSpeedMS > WindThresholdMS {
		reasons = append(reasons, ReasonHighWind)
	}
	if e.VisibilityM > 0 && e.VisibilityM < VisibilityThresholdM {
		reasons = append(reasons, ReasonLowVisibility)
	}
	return reasons
}

// Policy decides when a simulated arrival must wait out the weather.
// The window form blocks arrivals inside a forbidden interval and waits until
// it ends; the forecast form matches the timeline entry nearest the arrival
// and, when adverse, applies the fixed wait.
type Policy struct {
	MatchTolerance time.Duration
	FixedWait      time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		MatchTolerance: 3 * time.Hour,
		FixedWait:      2 * time.Hour,
	}
}

// Verdict is the weather consequence of one provisional arrival.
type Verdict struct {
	Wait      time.Duration
	Reasons   []string
	WindowHit bool
}

// Check judges an arrival instant against everything known about the stop's
// weather. A zero Verdict means clear to arrive. The window takes precedence
// over the forecast when both are present.
func (p Policy) Check(w domain.StopWeather, arrival time.Time) Verdict {
	if win := w.Window; win != nil {
		if !arrival.Before(win.Start) && !arrival.After(win.End) {
			reasons := win.Reasons
			if len(reasons) == 0 {
				reasons = []string{ReasonAdverse}
			}
			return Verdict{Wait: win.End.Sub(arrival), Reasons: reasons, WindowHit: true}
		}
		return Verdict{}
	}
	entry, ok := nearest(w.Forecast, arrival, p.MatchTolerance)
	if !ok {
		return Verdict{}
	}
	reasons := AdverseReasons(entry)
	if len(reasons) == 0 {
		return Verdict{}
	}
	return Verdict{Wait: p.FixedWait, Reasons: reasons}
}

// Pick the forecast entry closest to t, rejecting matches further away than
// the tolerance.
func nearest(f domain.Forecast, t time.Time, tolerance time.Duration) (domain.ForecastEntry, bool) {
	var (
		best    domain.ForecastEntry
		bestGap time.Duration
		found   bool
	)
	for _, e := range f {
		gap := e.At.Sub(t)
		if gap < 0 {
			gap = -gap
		}
		if gap > tolerance {
			continue
		}
		if !found || gap < bestGap {
			best, bestGap, found = e, gap, true
		}
	}
	return best, found
}
