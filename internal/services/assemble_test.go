package services

import (
	"logistics-route-optimizer/domain"
	"testing"
	"time"
)

func TestAssembleResultOrdersAndUnits(t *testing.T) {
	stops := []domain.Stop{
		{Name: "Depot", Coord: domain.Coordinates{Lat: 33.4, Lon: -112.0}},
		{Name: "East", Coord: domain.Coordinates{Lat: 33.5, Lon: -111.9}, VisitSeq: 2},
		{Name: "North", Coord: domain.Coordinates{Lat: 33.6, Lon: -112.1}, VisitSeq: 1},
	}
	it := itinerary{
		distanceMeters:  12345,
		durationSeconds: 754,
		log: []domain.LogEntry{
			{Kind: domain.EventDepart, StopIndex: 0, StopName: "Depot", At: testStart},
			{Kind: domain.EventArrive, StopIndex: 2, StopName: "North", At: testStart.Add(5 * time.Minute)},
			{Kind: domain.EventDepart, StopIndex: 2, StopName: "North", At: testStart.Add(5 * time.Minute)},
			{Kind: domain.EventArrive, StopIndex: 1, StopName: "East", At: testStart.Add(12 * time.Minute)},
		},
	}

	res := assembleResult("run-1", []int{0, 2, 1}, stops, it, searchResult{bestCost: 42.5, generations: 200})

	if res.RunID != "run-1" {
		t.Fatalf("RunID = %q, want run-1", res.RunID)
	}
	if len(res.Route) != 3 {
		t.Fatalf("expected 3 route stops, got %d", len(res.Route))
	}
	if res.Route[0].Order != 1 || res.Route[0].Name != "Depot" {
		t.Fatalf("Route[0] = %+v, want order 1 at Depot", res.Route[0])
	}
	if res.Route[1].Order != 2 || res.Route[1].Name != "North" || res.Route[1].VisitSeq != 1 {
		t.Fatalf("Route[1] = %+v, want order 2 at North", res.Route[1])
	}
	if res.Route[2].Lat != 33.5 || res.Route[2].Lon != -111.9 {
		t.Fatalf("Route[2] coordinates = (%v, %v)", res.Route[2].Lat, res.Route[2].Lon)
	}

	if res.TotalDistanceKm != 12.35 {
		t.Fatalf("TotalDistanceKm = %v, want 12.35", res.TotalDistanceKm)
	}
	if res.TotalDurationMinutes != 12.57 {
		t.Fatalf("TotalDurationMinutes = %v, want 12.57", res.TotalDurationMinutes)
	}
	if res.Generations != 200 || res.BestCost != 42.5 {
		t.Fatalf("outcome fields = (%d, %v), want (200, 42.5)", res.Generations, res.BestCost)
	}

	want := []string{"Depot", "North", "East"}
	if len(res.StopNames) != len(want) {
		t.Fatalf("StopNames = %v, want %v", res.StopNames, want)
	}
	for i := range want {
		if res.StopNames[i] != want[i] {
			t.Fatalf("StopNames = %v, want %v", res.StopNames, want)
		}
	}
}

func TestStopNamesSkipsWaitsAndPrependsOrigin(t *testing.T) {
	stops := []domain.Stop{{Name: "Depot"}, {Name: "East"}}
	log := []domain.LogEntry{
		{Kind: domain.EventWeatherWait, StopName: "East", At: testStart},
		{Kind: domain.EventArrive, StopName: "East", At: testStart.Add(time.Hour)},
	}

	names := stopNames(log, stops)
	if len(names) != 2 || names[0] != "Depot" || names[1] != "East" {
		t.Fatalf("names = %v, want [Depot East]", names)
	}
}

func TestStopNamesEmptyLog(t *testing.T) {
	names := stopNames(nil, []domain.Stop{{Name: "Depot"}})
	if len(names) != 1 || names[0] != "Depot" {
		t.Fatalf("names = %v, want [Depot]", names)
	}
}

func TestWeatherAlertWording(t *testing.T) {
	log := []domain.LogEntry{
		{Kind: domain.EventDepart, StopName: "Depot", At: testStart},
		{Kind: domain.EventWeatherWait, StopName: "East", At: testStart, Wait: 90 * time.Minute, Note: "High Wind"},
		{Kind: domain.EventArrive, StopName: "East", At: testStart},
	}

	alerts := weatherAlerts(log)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %v", alerts)
	}
	if alerts[0] != "High Wind at East: waiting 1h30m0s before arrival" {
		t.Fatalf("alert = %q", alerts[0])
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in, out float64
	}{
		{0, 0},
		{1.004, 1},
		{0.125, 0.13},
		{99.999, 100},
		{-3.456, -3.46},
		{12.345, 12.35},
	}
	for _, c := range cases {
		if got := round2(c.in); got != c.out {
			t.Fatalf("round2(%v) = %v, want %v", c.in, got, c.out)
		}
	}
}
