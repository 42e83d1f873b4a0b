package geotrack

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/nordicwalking/trailview/option"
	"golang.org/x/net/html/charset"
)

// GPXNamespace is the GPX 1.1 namespace. Only track points in this namespace
// are read.
const GPXNamespace = "http://www.topografix.com/GPX/1/1"

// openTrackPoint is a trkpt whose end tag has not been read yet.
type openTrackPoint struct {
	index  int
	depth  int
	hasEle bool
}

// elevationText collects the text of the ele element of points[index].
type elevationText struct {
	index int
	depth int
	text  strings.Builder
}

// Parse reads a GPX document and returns one point per trkpt element in
// document order, regardless of the track or segment containing it. A trkpt
// nested inside another trkpt is returned after its parent. Elevation is
// taken from the first ele child and left unset where there is none.
//
// The document must be well-formed: exactly one root element and no text
// outside it.
func Parse(r io.Reader) ([]TrackPoint, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		points []TrackPoint
		open   []openTrackPoint
		ele    *elevationText
		depth  int
		roots  int
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}

		switch tok := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
				if roots > 1 {
					return nil, fmt.Errorf("%w: second root element <%s>", ErrMalformedInput, tok.Name.Local)
				}
			}
			depth++

			if tok.Name.Space != GPXNamespace {
				continue
			}

			switch tok.Name.Local {
			case "trkpt":
				p, err := decodeTrackPoint(tok)
				if err != nil {
					return nil, fmt.Errorf("trkpt %d: %w", len(points), err)
				}
				open = append(open, openTrackPoint{index: len(points), depth: depth})
				points = append(points, p)
			case "ele":
				if ele != nil || len(open) == 0 {
					continue
				}
				parent := &open[len(open)-1]
				if parent.depth == depth-1 && !parent.hasEle {
					parent.hasEle = true
					ele = &elevationText{index: parent.index, depth: depth}
				}
			}

		case xml.EndElement:
			if ele != nil && ele.depth == depth {
				v, err := parseDecimal(ele.text.String())
				if err != nil {
					return nil, fmt.Errorf("trkpt %d: ele: %w", ele.index, err)
				}
				points[ele.index].Elevation = option.Some(v)
				ele = nil
			}
			if len(open) > 0 && open[len(open)-1].depth == depth {
				open = open[:len(open)-1]
			}
			depth--

		case xml.CharData:
			if ele != nil {
				ele.text.Write(tok)
			} else if depth == 0 && len(bytes.Trim(tok, " \t\r\n\ufeff")) > 0 {
				return nil, fmt.Errorf("%w: text outside the root element", ErrMalformedInput)
			}
		}
	}

	if roots == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedInput)
	}

	return points, nil
}

func decodeTrackPoint(start xml.StartElement) (TrackPoint, error) {
	lat, err := coordinateAttr(start, "lat")
	if err != nil {
		return TrackPoint{}, err
	}

	lon, err := coordinateAttr(start, "lon")
	if err != nil {
		return TrackPoint{}, err
	}

	return TrackPoint{Latitude: lat, Longitude: lon}, nil
}

func coordinateAttr(start xml.StartElement, name string) (float64, error) {
	for _, attr := range start.Attr {
		if attr.Name.Space == "" && attr.Name.Local == name {
			v, err := parseDecimal(attr.Value)
			if err != nil {
				return 0, fmt.Errorf("%s: %w", name, err)
			}
			return v, nil
		}
	}

	return 0, fmt.Errorf("%w: missing %s attribute", ErrMalformedInput, name)
}

// parseDecimal accepts plain decimal notation with an optional exponent.
// Hexadecimal, digit separators, NaN and infinities are rejected.
func parseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, fmt.Errorf("%w: invalid number %q", ErrMalformedInput, s)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: invalid number %q", ErrMalformedInput, s)
	}

	return v, nil
}
