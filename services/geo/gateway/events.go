package gateway

import (
	"context"
	"fmt"

	"github.com/kemana-app/kemana/internal/pkg/constants"
	"github.com/kemana-app/kemana/internal/pkg/models"
	"github.com/kemana-app/kemana/services/geo"
)

// publisher abstracts the NSQ producer for testing
type publisher interface {
	Publish(topic string, message interface{}) error
}

// geoEventsGW publishes location lifecycle events to NSQ
type geoEventsGW struct {
	producer publisher
}

// NewGeoEventsGW creates an events gateway over the given producer
func NewGeoEventsGW(producer publisher) geo.GeoEventsGW {
	return &geoEventsGW{producer: producer}
}

// PublishLocationResolved announces a successful location resolution
func (g *geoEventsGW) PublishLocationResolved(_ context.Context, event models.LocationResolvedEvent) error {
	if err := g.producer.Publish(constants.TopicLocationResolved, event); err != nil {
		return fmt.Errorf("failed to publish location resolved event: %w", err)
	}
	return nil
}
