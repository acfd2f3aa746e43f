package constants

// NSQ topics
const (
	// TopicQuoteAggregated carries events published after a successful
	// ride-option aggregation
	TopicQuoteAggregated = "quote.aggregated"

	// TopicLocationResolved carries events published after a location
	// reference was resolved to a coordinate
	TopicLocationResolved = "location.resolved"
)
