package geotrack

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	gpxContent := `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
	<trk>
		<name>Kampinos Loop</name>
		<trkseg>
			<trkpt lat="0.0" lon="0.0"><time>2024-05-01T10:00:00Z</time></trkpt>
			<trkpt lat="0.0" lon="0.01"><time>2024-05-01T10:15:00Z</time></trkpt>
		</trkseg>
	</trk>
</gpx>`

	summary, err := Summarize([]byte(gpxContent))
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if summary.Name != "Kampinos Loop" {
		t.Errorf("expected track name, got %q", summary.Name)
	}
	if math.Abs(summary.Distance-1.112) > 0.01 {
		t.Errorf("expected ~1.112 km, got %f", summary.Distance)
	}
	if summary.Duration != 15*time.Minute {
		t.Errorf("expected 15m duration, got %v", summary.Duration)
	}
	if !summary.Start.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start %v", summary.Start)
	}
}

func TestSummarizeMalformed(t *testing.T) {
	if _, err := Summarize([]byte("<gpx")); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %v", err)
	}
}
