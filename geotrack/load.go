package geotrack

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var (
	GPXExtensions  = []string{".gpx"}
	NMEAExtensions = []string{".nmea", ".txt"}
)

// LoadTrack reads the raw points of a track file, choosing the format by
// file extension. Files larger than maxBytes are rejected; a maxBytes of 0
// disables the bound.
func LoadTrack(trackFilePath string, maxBytes int64) ([]TrackPoint, error) {
	ext := strings.ToLower(filepath.Ext(trackFilePath))

	var parse func(io.Reader) ([]TrackPoint, error)
	if slices.Contains(GPXExtensions, ext) {
		parse = Parse
	} else if slices.Contains(NMEAExtensions, ext) {
		parse = ParseNMEA
	} else {
		return nil, fmt.Errorf("unknown track extension '%s'", ext)
	}

	f, err := os.Open(trackFilePath)
	if err != nil {
		return nil, fmt.Errorf("open track: %w", err)
	}
	defer f.Close()

	return parse(limitReader(f, maxBytes))
}

// Convert loads a track file and runs it through Enrich and Downsample. The
// target is checked before the file is read.
func Convert(trackFilePath string, target int, maxBytes int64) ([]TrackPoint, error) {
	if target <= 0 {
		return nil, fmt.Errorf("%w: downsample target %d, want at least 1", ErrInvalidArgument, target)
	}

	points, err := LoadTrack(trackFilePath, maxBytes)
	if err != nil {
		return nil, err
	}

	return Downsample(Enrich(points), target)
}

type boundedReader struct {
	r         io.Reader
	remaining int64
	limit     int64
}

// limitReader fails with an error once more than limit bytes were read from
// r, instead of silently truncating like io.LimitReader.
func limitReader(r io.Reader, limit int64) io.Reader {
	if limit <= 0 {
		return r
	}
	return &boundedReader{r: r, remaining: limit, limit: limit}
}

func (b *boundedReader) Read(p []byte) (int, error) {
	if b.remaining < 0 {
		return 0, fmt.Errorf("track exceeds %d bytes", b.limit)
	}

	// Read one byte past the limit to tell "exactly limit" from "more".
	if int64(len(p)) > b.remaining+1 {
		p = p[:b.remaining+1]
	}

	n, err := b.r.Read(p)
	b.remaining -= int64(n)
	if b.remaining < 0 {
		return n + int(b.remaining), fmt.Errorf("track exceeds %d bytes", b.limit)
	}

	return n, err
}
