package usecase

import (
	"testing"

	"github.com/kemana-app/kemana/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestExtractFromURL_QueryParam(t *testing.T) {
	tests := []struct {
		name string
		url  string
		lat  float64
		lng  float64
	}{
		{"q key", "https://maps.example.com/place?q=55.751244,37.618423", 55.751244, 37.618423},
		{"query key", "https://maps.example.com/search?query=-6.2088,106.8456", -6.2088, 106.8456},
		{"ll key", "https://maps.example.com/?ll=41.0082,28.9784&z=15", 41.0082, 28.9784},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coord, source, ok := ExtractFromURL(tt.url)

			assert.True(t, ok)
			assert.Equal(t, models.HeuristicQueryParam, source)
			assert.InDelta(t, tt.lat, coord.Latitude, 0.000001)
			assert.InDelta(t, tt.lng, coord.Longitude, 0.000001)
		})
	}
}

func TestExtractFromURL_QueryKeyPrecedence(t *testing.T) {
	// q is checked before ll; both are present and q must win.
	coord, source, ok := ExtractFromURL("https://maps.example.com/?ll=10.0,20.0&q=55.7,37.6")

	assert.True(t, ok)
	assert.Equal(t, models.HeuristicQueryParam, source)
	assert.InDelta(t, 55.7, coord.Latitude, 0.000001)
	assert.InDelta(t, 37.6, coord.Longitude, 0.000001)
}

func TestExtractFromURL_AtPathToken(t *testing.T) {
	coord, source, ok := ExtractFromURL("https://maps.example.com/place/Tower/@41.0082,28.9784,17z/data=abc")

	assert.True(t, ok)
	assert.Equal(t, models.HeuristicPathToken, source)
	assert.InDelta(t, 41.0082, coord.Latitude, 0.000001)
	assert.InDelta(t, 28.9784, coord.Longitude, 0.000001)
}

func TestExtractFromURL_EmbeddedPointToken(t *testing.T) {
	coord, source, ok := ExtractFromURL("https://maps.example.com/place/data=!4m5!3m4!3d-6.2088!4d106.8456")

	assert.True(t, ok)
	assert.Equal(t, models.HeuristicEmbeddedToken, source)
	assert.InDelta(t, -6.2088, coord.Latitude, 0.000001)
	assert.InDelta(t, 106.8456, coord.Longitude, 0.000001)
}

func TestExtractFromURL_EmbeddedTokenPreferredOverViewport(t *testing.T) {
	// The @ viewport token is tried before the !3d/!4d pair; the viewport
	// wins when both are present.
	coord, source, ok := ExtractFromURL("https://maps.example.com/place/@41.0,28.9,15z/data=!3d41.0082!4d28.9784")

	assert.True(t, ok)
	assert.Equal(t, models.HeuristicPathToken, source)
	assert.InDelta(t, 41.0, coord.Latitude, 0.000001)
	assert.InDelta(t, 28.9, coord.Longitude, 0.000001)
}

func TestExtractFromURL_FullScanFallback(t *testing.T) {
	coord, source, ok := ExtractFromURL("https://maps.example.com/route/55.751244,37.618423/summary")

	assert.True(t, ok)
	assert.Equal(t, models.HeuristicFullScan, source)
	assert.InDelta(t, 55.751244, coord.Latitude, 0.000001)
	assert.InDelta(t, 37.618423, coord.Longitude, 0.000001)
}

func TestExtractFromURL_MalformedURLFallsBackToRawScan(t *testing.T) {
	// A control character makes net/url reject the string; raw query
	// pattern matching must still find the pair.
	coord, source, ok := ExtractFromURL("https://maps.example.com/\x7f?q=55.7,37.6")

	assert.True(t, ok)
	assert.Equal(t, models.HeuristicQueryParam, source)
	assert.InDelta(t, 55.7, coord.Latitude, 0.000001)
	assert.InDelta(t, 37.6, coord.Longitude, 0.000001)
}

func TestExtractFromURL_NoCoordinates(t *testing.T) {
	_, _, ok := ExtractFromURL("https://maps.example.com/place/Central+Station")

	assert.False(t, ok)
}
