package geotrack

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/adrianmo/go-nmea"
)

// ParseNMEA reads NMEA 0183 sentences line by line and returns one point per
// active RMC fix. NMEA carries no elevation in RMC, so all points are left
// for Enrich to fill in.
func ParseNMEA(r io.Reader) ([]TrackPoint, error) {
	var points []TrackPoint

	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		sentence, err := nmea.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, line, err)
		}

		if sentence.DataType() != nmea.TypeRMC {
			continue
		}

		rmc := sentence.(nmea.RMC)
		// Only "ACTIVE" fixes carry a usable position.
		if rmc.FFAMode != "A" {
			continue
		}

		points = append(points, TrackPoint{
			Latitude:  rmc.Latitude,
			Longitude: rmc.Longitude,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return points, nil
}
