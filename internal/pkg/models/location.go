package models

import "time"

// Coordinate represents a validated geographic point.
// It is only ever constructed from parses that passed range validation,
// so a Coordinate in hand is always within [-90,90]x[-180,180].
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SourceHeuristic identifies which extraction step produced a coordinate.
// Diagnostic only; callers must not branch on it.
type SourceHeuristic string

const (
	HeuristicPlainText     SourceHeuristic = "plain_text"
	HeuristicQueryParam    SourceHeuristic = "query_param"
	HeuristicPathToken     SourceHeuristic = "path_token"
	HeuristicEmbeddedToken SourceHeuristic = "embedded_token"
	HeuristicFullScan      SourceHeuristic = "full_scan"
	HeuristicRawFallback   SourceHeuristic = "raw_fallback"
)

// ResolvedLocation is the outcome of resolving free-form location input
type ResolvedLocation struct {
	Coordinate Coordinate      `json:"coordinate"`
	Source     SourceHeuristic `json:"source"`
}

// ResolveRequest is the payload for the location resolution endpoint
type ResolveRequest struct {
	Text string `json:"text"`
}

// LocationResolvedEvent is published after free-form input resolved to a
// coordinate
type LocationResolvedEvent struct {
	Coordinate Coordinate      `json:"coordinate"`
	Source     SourceHeuristic `json:"source"`
	ResolvedAt time.Time       `json:"resolved_at"`
}
