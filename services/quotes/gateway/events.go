package gateway

import (
	"context"
	"fmt"

	"github.com/kemana-app/kemana/internal/pkg/constants"
	"github.com/kemana-app/kemana/internal/pkg/models"
	"github.com/kemana-app/kemana/services/quotes"
)

// publisher abstracts the NSQ producer for testing
type publisher interface {
	Publish(topic string, message interface{}) error
}

// eventsGW publishes quote lifecycle events to NSQ
type eventsGW struct {
	producer publisher
}

// NewEventsGW creates an events gateway over the given producer
func NewEventsGW(producer publisher) quotes.EventsGW {
	return &eventsGW{producer: producer}
}

// PublishQuoteAggregated announces a completed quote aggregation
func (g *eventsGW) PublishQuoteAggregated(_ context.Context, event models.QuoteAggregatedEvent) error {
	if err := g.producer.Publish(constants.TopicQuoteAggregated, event); err != nil {
		return fmt.Errorf("failed to publish quote aggregated event: %w", err)
	}
	return nil
}
