package geotrack

import (
	"github.com/nordicwalking/trailview/option"
)

// TrackPoint is a single fix along a track.
//
// Distance is the cumulative path length in kilometers from the first point
// of the sequence the point belongs to. It is only meaningful after Enrich.
type TrackPoint struct {
	Latitude  float64                `json:"latitude" yaml:"latitude"`
	Longitude float64                `json:"longitude" yaml:"longitude"`
	Elevation option.Option[float64] `json:"elevation" yaml:"elevation"`
	Distance  float64                `json:"distance" yaml:"distance"`
}
