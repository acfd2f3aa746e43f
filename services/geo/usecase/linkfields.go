package usecase

import (
	"net/url"
	"regexp"

	"github.com/kemana-app/kemana/internal/pkg/models"
)

var (
	// atPathPattern matches the "@lat,lng" point token used by map-provider
	// deep links, optionally followed by a zoom suffix.
	atPathPattern = regexp.MustCompile(`@(-?\d{1,3}(?:\.\d+)?),(-?\d{1,3}(?:\.\d+)?)`)

	// embeddedPointPattern matches two adjacent tagged numeric fields some
	// map providers use to embed a precise point separately from the
	// display viewport.
	embeddedPointPattern = regexp.MustCompile(`!3d(-?\d{1,3}(?:\.\d+)?)!4d(-?\d{1,3}(?:\.\d+)?)`)

	// rawQueryParamPattern extracts candidate query values when the URL is
	// too malformed for structured parsing.
	rawQueryParamPattern = regexp.MustCompile(`[?&](?:q|query|ll)=([^&#]+)`)
)

// coordQueryKeys are the query parameters checked, in order, for an
// embedded coordinate pair.
var coordQueryKeys = []string{"q", "query", "ll"}

// ExtractFromURL applies structural heuristics to an already-decoded URL
// string to find a coordinate pair. Heuristics are tried in order and the
// first hit wins. Malformed URLs degrade to pattern matching over the raw
// string rather than aborting.
func ExtractFromURL(decodedURL string) (models.Coordinate, models.SourceHeuristic, bool) {
	if coord, ok := extractFromQueryParams(decodedURL); ok {
		return coord, models.HeuristicQueryParam, true
	}

	if match := atPathPattern.FindStringSubmatch(decodedURL); match != nil {
		if coord, ok := ParseCoordinateText(match[1] + "," + match[2]); ok {
			return coord, models.HeuristicPathToken, true
		}
	}

	if match := embeddedPointPattern.FindStringSubmatch(decodedURL); match != nil {
		if coord, ok := ParseCoordinateText(match[1] + "," + match[2]); ok {
			return coord, models.HeuristicEmbeddedToken, true
		}
	}

	// Last resort: scan the entire URL text.
	if coord, ok := ParseCoordinateText(decodedURL); ok {
		return coord, models.HeuristicFullScan, true
	}

	return models.Coordinate{}, "", false
}

// extractFromQueryParams checks the known coordinate-carrying query keys.
// Structured parsing is preferred; a URL net/url rejects falls back to a
// raw pattern scan over the query portion.
func extractFromQueryParams(decodedURL string) (models.Coordinate, bool) {
	if parsed, err := url.Parse(decodedURL); err == nil {
		values := parsed.Query()
		for _, key := range coordQueryKeys {
			if v := values.Get(key); v != "" {
				if coord, ok := ParseCoordinateText(v); ok {
					return coord, true
				}
			}
		}
		return models.Coordinate{}, false
	}

	for _, match := range rawQueryParamPattern.FindAllStringSubmatch(decodedURL, -1) {
		if coord, ok := ParseCoordinateText(match[1]); ok {
			return coord, true
		}
	}
	return models.Coordinate{}, false
}
