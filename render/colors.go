package render

import (
	"hash/fnv"

	"github.com/lucasb-eyer/go-colorful"
)

// TrackColor returns the hex color a track's polyline is drawn in. The hue
// is derived from key so a track keeps its color across restarts.
func TrackColor(key string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))

	hue := float64(h.Sum32() % 360)
	return colorful.Hsv(hue, 0.7, 0.85).Hex()
}
