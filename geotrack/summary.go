package geotrack

import (
	"fmt"
	"time"

	"github.com/tkrajina/gpxgo/gpx"
)

// Summary holds whole-track figures read from a GPX file.
type Summary struct {
	Name     string
	Distance float64 // km
	Duration time.Duration
	Start    time.Time
}

// Summarize reads name, length, duration and start time of a GPX document.
func Summarize(gpxBytes []byte) (Summary, error) {
	gpxData, err := gpx.ParseBytes(gpxBytes)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	name := gpxData.Name
	if name == "" {
		for _, track := range gpxData.Tracks {
			if track.Name != "" {
				name = track.Name
				break
			}
		}
	}

	bounds := gpxData.TimeBounds()

	return Summary{
		Name:     name,
		Distance: roundKm(gpxData.Length2D() / 1000),
		Duration: time.Duration(gpxData.Duration() * float64(time.Second)),
		Start:    bounds.StartTime,
	}, nil
}
