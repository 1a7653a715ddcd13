package domain

// Represents a single location a route must visit.
// Stops are identified by their position in the request slice; index 0 is the
// departure point and keeps that position in every candidate route. VisitSeq
// expresses a preferred visiting order for the remaining stops: lower values
// should be reached earlier, and equal values carry no mutual ordering.
type Stop struct {
	Name     string
	Coord    Coordinates
	VisitSeq int
}
