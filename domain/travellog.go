package domain

import "time"

// Kind of event recorded while simulating a route.
type EventKind int

const (
	EventDepart EventKind = iota
	EventArrive
	EventWeatherWait
)

func (k EventKind) String() string {
	switch k {
	case EventDepart:
		return "Depart"
	case EventArrive:
		return "Arrive"
	case EventWeatherWait:
		return "Weather-Wait"
	default:
		return "Unknown"
	}
}

// Represents a single entry in the simulated travel log.
// Depart and Arrive entries mark leaving and reaching a stop; a Weather-Wait
// entry is inserted before the Arrive it delays, with Wait holding the pause
// length and Note naming the conditions waited out. Timestamps never decrease
// along a log.
type LogEntry struct {
	Kind      EventKind
	StopIndex int
	StopName  string
	At        time.Time
	Wait      time.Duration
	Note      string
}
