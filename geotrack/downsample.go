package geotrack

import "fmt"

// Downsample reduces points to about target entries by taking every
// len(points)/target-th point. The last point of the input is always kept,
// so the result may hold target+1 points. Inputs with at most target points
// are returned unchanged.
//
// A target below 1 is rejected with ErrInvalidArgument.
func Downsample(points []TrackPoint, target int) ([]TrackPoint, error) {
	if target <= 0 {
		return nil, fmt.Errorf("%w: downsample target %d, want at least 1", ErrInvalidArgument, target)
	}

	n := len(points)
	if n <= target {
		return points, nil
	}

	step := float64(n) / float64(target)
	result := make([]TrackPoint, 0, target+1)
	last := -1

	for i := 0; i < target; i++ {
		last = int(float64(i) * step)
		result = append(result, points[last])
	}

	if last != n-1 {
		result = append(result, points[n-1])
	}

	return result, nil
}
