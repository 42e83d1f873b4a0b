package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/goodsign/monday"
	"github.com/nordicwalking/trailview/filesystem"
	"github.com/nordicwalking/trailview/geotrack"
	"github.com/nordicwalking/trailview/render"
)

// ErrNotFound is returned for slugs that do not name a track file.
var ErrNotFound = errors.New("track not found")

// Track describes one track file of the directory.
type Track struct {
	Slug     string  `json:"slug" yaml:"slug"`
	Name     string  `json:"name" yaml:"name"`
	Title    string  `json:"title,omitempty" yaml:"title,omitempty"`
	FileName string  `json:"fileName" yaml:"fileName"`
	Distance float64 `json:"distance" yaml:"distance"` // km
	Time     int64   `json:"time" yaml:"time"`         // seconds
	Date     string  `json:"date,omitempty" yaml:"date,omitempty"`
	Color    string  `json:"color" yaml:"color"`
}

type StoreOptions struct {
	// Locale of Track.Date.
	Locale monday.Locale
	// MaxBytes bounds the size of files that are summarized. Zero disables
	// the bound.
	MaxBytes int64
}

// Store lists the GPX files of a single directory. It is safe for
// concurrent use.
type Store struct {
	Directory string
	options   StoreOptions

	mu        sync.Mutex
	summaries map[string]cachedSummary
}

type cachedSummary struct {
	modified time.Time
	summary  geotrack.Summary
	err      error
}

func NewStore(directory string, options StoreOptions) *Store {
	if options.Locale == "" {
		options.Locale = monday.LocaleEnUS
	}

	return &Store{
		Directory: directory,
		options:   options,
		summaries: make(map[string]cachedSummary),
	}
}

// List returns the tracks of the directory ordered by file name. A missing
// directory holds no tracks.
func (s *Store) List() ([]Track, error) {
	paths, err := filesystem.GatherFiles(s.Directory, geotrack.GPXExtensions...)
	if errors.Is(err, fs.ErrNotExist) {
		return []Track{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}

	tracks := make([]Track, 0, len(paths))

	for _, p := range paths {
		fileName := filepath.Base(p)
		slug := strings.TrimSuffix(fileName, filepath.Ext(fileName))

		track := Track{
			Slug:     slug,
			Name:     DisplayName(slug),
			FileName: fileName,
			Color:    render.TrackColor(slug),
		}

		summary, err := s.summary(p)
		if err != nil {
			log.Printf("summarize %s: %v", fileName, err)
		} else {
			track.Title = summary.Name
			track.Distance = summary.Distance
			track.Time = int64(summary.Duration / time.Second)
			if !summary.Start.IsZero() {
				track.Date = monday.Format(summary.Start, "2 January 2006", s.options.Locale)
			}
		}

		tracks = append(tracks, track)
	}

	return tracks, nil
}

// Path returns the file of the track named slug.
func (s *Store) Path(slug string) (string, error) {
	if !validSlug(slug) {
		return "", fmt.Errorf("%w: %q", ErrNotFound, slug)
	}

	paths, err := filesystem.GatherFiles(s.Directory, geotrack.GPXExtensions...)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %q", ErrNotFound, slug)
	}
	if err != nil {
		return "", fmt.Errorf("list tracks: %w", err)
	}

	for _, p := range paths {
		fileName := filepath.Base(p)
		if strings.TrimSuffix(fileName, filepath.Ext(fileName)) == slug {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrNotFound, slug)
}

// summary reads the GPX summary of path, reusing the last result while the
// file's modification time is unchanged.
func (s *Store) summary(path string) (geotrack.Summary, error) {
	modified, err := filesystem.FileModifiedTime(path)
	if err != nil {
		return geotrack.Summary{}, err
	}

	s.mu.Lock()
	cached, ok := s.summaries[path]
	s.mu.Unlock()

	if ok && cached.modified.Equal(modified) {
		return cached.summary, cached.err
	}

	summary, err := s.readSummary(path)

	s.mu.Lock()
	s.summaries[path] = cachedSummary{modified: modified, summary: summary, err: err}
	s.mu.Unlock()

	return summary, err
}

func (s *Store) readSummary(path string) (geotrack.Summary, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return geotrack.Summary{}, err
	}

	if s.options.MaxBytes > 0 && fi.Size() > s.options.MaxBytes {
		return geotrack.Summary{}, fmt.Errorf("%w: track exceeds %d bytes", geotrack.ErrMalformedInput, s.options.MaxBytes)
	}

	gpxBytes, err := os.ReadFile(path)
	if err != nil {
		return geotrack.Summary{}, fmt.Errorf("read track: %w", err)
	}

	return geotrack.Summarize(gpxBytes)
}
