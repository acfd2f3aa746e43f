package usecase

import (
	"regexp"
	"strconv"

	"github.com/kemana-app/kemana/internal/pkg/models"
)

// coordPairPattern matches two signed decimal numbers with 1-3 integer
// digits and an optional fraction, separated by a comma and/or whitespace.
var coordPairPattern = regexp.MustCompile(`(-?\d{1,3}(?:\.\d+)?)(?:\s*,\s*|\s+)(-?\d{1,3}(?:\.\d+)?)`)

// ParseCoordinateText extracts a latitude/longitude pair from plain text.
// It returns the first pair whose values are inside geographic range;
// well-formed pairs outside [-90,90]x[-180,180] are skipped, as are pairs
// glued to surrounding digits. Pure function, never panics.
func ParseCoordinateText(text string) (models.Coordinate, bool) {
	for _, match := range coordPairPattern.FindAllStringSubmatchIndex(text, -1) {
		if !standsAlone(text, match[0], match[1]) {
			continue
		}
		lat, latErr := strconv.ParseFloat(text[match[2]:match[3]], 64)
		lng, lngErr := strconv.ParseFloat(text[match[4]:match[5]], 64)
		if latErr != nil || lngErr != nil {
			continue
		}
		if !inRange(lat, lng) {
			continue
		}
		return models.Coordinate{Latitude: lat, Longitude: lng}, true
	}
	return models.Coordinate{}, false
}

// standsAlone rejects candidates embedded in a longer number: "1234,56"
// must not be read as the coordinate (234, 56). A leading dot means the
// match started inside someone else's fraction; a trailing digit means the
// longitude was truncated by the digit cap.
func standsAlone(text string, start, end int) bool {
	if start > 0 {
		prev := text[start-1]
		if (prev >= '0' && prev <= '9') || prev == '.' {
			return false
		}
	}
	if end < len(text) {
		next := text[end]
		if next >= '0' && next <= '9' {
			return false
		}
	}
	return true
}

func inRange(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
