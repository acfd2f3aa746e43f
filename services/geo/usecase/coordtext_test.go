package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCoordinateText_CommaSeparated(t *testing.T) {
	coord, ok := ParseCoordinateText("55.751244, 37.618423")

	assert.True(t, ok)
	assert.InDelta(t, 55.751244, coord.Latitude, 0.000001)
	assert.InDelta(t, 37.618423, coord.Longitude, 0.000001)
}

func TestParseCoordinateText_WhitespaceSeparated(t *testing.T) {
	coord, ok := ParseCoordinateText("-6.2088 106.8456")

	assert.True(t, ok)
	assert.InDelta(t, -6.2088, coord.Latitude, 0.000001)
	assert.InDelta(t, 106.8456, coord.Longitude, 0.000001)
}

func TestParseCoordinateText_EmbeddedInSentence(t *testing.T) {
	coord, ok := ParseCoordinateText("meet me at 41.0082, 28.9784 near the tower")

	assert.True(t, ok)
	assert.InDelta(t, 41.0082, coord.Latitude, 0.000001)
	assert.InDelta(t, 28.9784, coord.Longitude, 0.000001)
}

func TestParseCoordinateText_IntegerDegrees(t *testing.T) {
	coord, ok := ParseCoordinateText("55, 37")

	assert.True(t, ok)
	assert.Equal(t, 55.0, coord.Latitude)
	assert.Equal(t, 37.0, coord.Longitude)
}

func TestParseCoordinateText_SkipsOutOfRangePair(t *testing.T) {
	// The first pair is out of range; the parser must keep scanning and
	// accept the second one.
	coord, ok := ParseCoordinateText("915.0, 37.6 but really 55.7, 37.6")

	assert.True(t, ok)
	assert.InDelta(t, 55.7, coord.Latitude, 0.000001)
	assert.InDelta(t, 37.6, coord.Longitude, 0.000001)
}

func TestParseCoordinateText_NoMatch(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"plain words", "central station"},
		{"single number", "55.751244"},
		{"latitude out of range", "95.0, 37.6"},
		{"longitude out of range", "55.7, 185.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseCoordinateText(tt.text)
			assert.False(t, ok)
		})
	}
}

func TestParseCoordinateText_RejectsPairInsideLongerNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"digits before the pair", "1234,56"},
		{"digits after the pair", "55,1234"},
		{"order number", "booking ref 8847512,33"},
		{"inside another fraction", "id x.55,37"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseCoordinateText(tt.text)
			assert.False(t, ok)
		})
	}
}

func TestParseCoordinateText_SkipsEmbeddedPairAndKeepsScanning(t *testing.T) {
	coord, ok := ParseCoordinateText("ref 9912345,11 at 10.5, 20.5")

	assert.True(t, ok)
	assert.InDelta(t, 10.5, coord.Latitude, 0.000001)
	assert.InDelta(t, 20.5, coord.Longitude, 0.000001)
}

func TestParseCoordinateText_FirstInRangePairWins(t *testing.T) {
	coord, ok := ParseCoordinateText("55.1, 37.1 and later 56.2, 38.2")

	assert.True(t, ok)
	assert.InDelta(t, 55.1, coord.Latitude, 0.000001)
	assert.InDelta(t, 37.1, coord.Longitude, 0.000001)
}
