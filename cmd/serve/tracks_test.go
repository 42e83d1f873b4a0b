package serve

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nordicwalking/trailview/catalog"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type jsonPoint struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Elevation *float64 `json:"elevation"`
	Distance  float64  `json:"distance"`
}

func longTrack(n int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1"><trk><trkseg>`)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			fmt.Fprintf(&b, `<trkpt lat="52.%04d" lon="21.0"><ele>%d</ele></trkpt>`, i, 100+i)
		} else {
			fmt.Fprintf(&b, `<trkpt lat="52.%04d" lon="21.0"/>`, i)
		}
	}
	b.WriteString(`</trkseg></trk></gpx>`)
	return b.String()
}

func newTestRouter(t *testing.T, files map[string]string, origins ...string) *gin.Engine {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	api, err := newServeAPI(catalog.NewStore(dir, catalog.StoreOptions{}), 20, 1<<20)
	if err != nil {
		t.Fatalf("newServeAPI: %v", err)
	}

	return newRouter(api, origins)
}

func get(r http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthRoute(t *testing.T) {
	w := get(newTestRouter(t, nil), "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestServeTracks(t *testing.T) {
	r := newTestRouter(t, map[string]string{
		"mt-rainier-hike.gpx": longTrack(3),
		"notes.txt":           "not a track",
	})

	w := get(r, "/api/tracks")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var tracks []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &tracks); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(tracks))
	}
	if tracks[0]["slug"] != "mt-rainier-hike" || tracks[0]["name"] != "Mt Rainier Hike" || tracks[0]["fileName"] != "mt-rainier-hike.gpx" {
		t.Errorf("unexpected track %v", tracks[0])
	}
}

func TestServeTracksEmptyDirectory(t *testing.T) {
	w := get(newTestRouter(t, nil), "/api/tracks")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
	}
}

func TestServeTrack(t *testing.T) {
	r := newTestRouter(t, map[string]string{"kampinos.gpx": longTrack(100)})

	w := get(r, "/api/tracks/kampinos")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	for _, field := range []string{`"latitude"`, `"longitude"`, `"elevation"`, `"distance"`} {
		if !strings.Contains(w.Body.String(), field) {
			t.Errorf("expected lowercase field %s in %s", field, w.Body.String())
		}
	}

	var points []jsonPoint
	if err := json.Unmarshal(w.Body.Bytes(), &points); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// 100 points at stride 5 end on index 95, so the final point is appended.
	if len(points) != 21 {
		t.Fatalf("expected 21 points, got %d", len(points))
	}
	if points[0].Distance != 0 {
		t.Errorf("expected first distance 0, got %f", points[0].Distance)
	}
	if points[20].Latitude != 52.0099 {
		t.Errorf("expected final point, got %f", points[20].Latitude)
	}
	for i, p := range points {
		if p.Elevation == nil {
			t.Errorf("point %d: missing elevation", i)
		}
		if i > 0 && p.Distance < points[i-1].Distance {
			t.Errorf("point %d: distance decreased", i)
		}
	}
	if *points[0].Elevation != 100 {
		t.Errorf("expected supplied elevation 100, got %f", *points[0].Elevation)
	}
}

func TestServeTrackCount(t *testing.T) {
	r := newTestRouter(t, map[string]string{"kampinos.gpx": longTrack(100)})

	var points []jsonPoint
	w := get(r, "/api/tracks/kampinos?count=200")
	if err := json.Unmarshal(w.Body.Bytes(), &points); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(points) != 100 {
		t.Errorf("expected all 100 points, got %d", len(points))
	}

	for _, q := range []string{"0", "-3", "many"} {
		w := get(r, "/api/tracks/kampinos?count="+q)
		if w.Code != http.StatusBadRequest {
			t.Errorf("count=%s: expected 400, got %d", q, w.Code)
		}
	}
}

func TestServeTrackNotFound(t *testing.T) {
	r := newTestRouter(t, map[string]string{"kampinos.gpx": longTrack(3)})

	for _, target := range []string{"/api/tracks/missing", "/api/tracks/..%2Fkampinos"} {
		w := get(r, target)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", target, w.Code)
		}
	}

	w := get(r, "/api/tracks/missing")
	if !strings.Contains(w.Body.String(), "GPX file missing.gpx not found") {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestServeTrackParseError(t *testing.T) {
	r := newTestRouter(t, map[string]string{
		"broken.gpx": `<gpx xmlns="http://www.topografix.com/GPX/1/1"><trk><trkseg><trkpt lon="21.0"/></trkseg></trk></gpx>`,
	})

	w := get(r, "/api/tracks/broken")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var p problem
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Title != "Error parsing GPX" || !strings.Contains(p.Detail, "missing lat attribute") {
		t.Errorf("unexpected problem %+v", p)
	}
}

func TestRequestID(t *testing.T) {
	r := newTestRouter(t, nil)

	w := get(r, "/health")
	if w.Header().Get(requestIDHeader) == "" {
		t.Errorf("expected generated request id")
	}

	w = get(r, "/health", requestIDHeader, "abc-123")
	if got := w.Header().Get(requestIDHeader); got != "abc-123" {
		t.Errorf("expected echoed request id, got %q", got)
	}
}

func TestCORS(t *testing.T) {
	w := get(newTestRouter(t, nil, "*"), "/api/tracks", "Origin", "http://localhost:5173")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin, got %q", got)
	}

	r := newTestRouter(t, nil, "http://maps.example.com")
	w = get(r, "/api/tracks", "Origin", "http://maps.example.com")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://maps.example.com" {
		t.Errorf("expected configured origin, got %q", got)
	}

	w = get(r, "/api/tracks", "Origin", "http://evil.example.com")
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for unknown origin, got %d", w.Code)
	}
}

func TestNewServeAPIRejectsSampleCount(t *testing.T) {
	if _, err := newServeAPI(nil, 0, 0); err == nil {
		t.Errorf("expected error for zero sample count")
	}
}
