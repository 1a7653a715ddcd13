package distance

import (
	"context"
	"logistics-route-optimizer/domain"
	"math"
)

const (
	earthRadiusMeters = 6371000.0
	defaultSpeedKmh   = 50.0
)

// HaversineProvider derives a matrix from stop coordinates alone:
// great-circle distances plus durations at a constant assumed speed. It
// stands in when no road-network travel data is available.
type HaversineProvider struct {
	speedKmh float64
}

func NewHaversineProvider(speedKmh float64) *HaversineProvider {
	if speedKmh <= 0 {
		speedKmh = defaultSpeedKmh
	}
	return &HaversineProvider{speedKmh: speedKmh}
}

func (p *HaversineProvider) FetchMatrix(ctx context.Context, stops []domain.Stop) (domain.Matrix, error) {
	n := len(stops)
	dist := make([][]float64, n)
	dur := make([][]float64, n)

	metersPerSecond := p.speedKmh * 1000 / 3600
	for i := 0; i < n; i++ {
		dist[i] = make([]float64, n)
		dur[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d := haversineMeters(stops[i].Coord, stops[j].Coord)
			dist[i][j] = d
			dur[i][j] = d / metersPerSecond
		}
	}

	return domain.MatrixFromTables(dist, dur)
}

// Great-circle distance in meters between two coordinates.
func haversineMeters(a, b domain.Coordinates) float64 {
	const degToRad = math.Pi / 180

	lat1 := a.Lat * degToRad
	lat2 := b.Lat * degToRad
	dLat := (b.Lat - a.Lat) * degToRad
	dLon := (b.Lon - a.Lon) * degToRad

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
