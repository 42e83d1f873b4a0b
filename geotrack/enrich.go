package geotrack

import (
	"math"

	"github.com/nordicwalking/trailview/option"
)

const (
	earthRadiusKm = 6371.0

	elevationSeed = 42

	elevationBase      = 150.0
	elevationAmplitude = 20.0
	elevationFrequency = 5.0
	elevationNoise     = 5.0
)

// Enrich returns a copy of points with cumulative distance filled in and a
// synthesized elevation for every point that has none.
//
// Synthesized elevations follow a sine of the point's distance plus noise
// drawn from a generator seeded with a fixed value, so the same input always
// yields the same output. Points with an elevation do not consume noise.
func Enrich(points []TrackPoint) []TrackPoint {
	enriched := make([]TrackPoint, len(points))
	copy(enriched, points)

	random := newSubtractiveSource(elevationSeed)
	total := 0.0

	for i := range enriched {
		if i == 0 {
			enriched[i].Distance = 0
		} else {
			total += SegmentDistance(enriched[i-1], enriched[i])
			enriched[i].Distance = roundKm(total)
		}

		if enriched[i].Elevation.IsNone() {
			ele := elevationBase +
				math.Sin(enriched[i].Distance*elevationFrequency)*elevationAmplitude +
				random.Float64()*elevationNoise
			enriched[i].Elevation = option.Some(ele)
		}
	}

	return enriched
}

// SegmentDistance returns the great-circle distance between a and b in
// kilometers, on a sphere of radius 6371 km.
func SegmentDistance(a, b TrackPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// roundKm rounds to meters, half to even.
func roundKm(km float64) float64 {
	return math.RoundToEven(km*1000) / 1000
}
