package providers

import (
	"context"

	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to analysis
// lifecycle events.
type EventBus interface {
	// Publish publishes an event to all subscribers of a channel
	Publish(ctx context.Context, channel string, event *entities.AnalysisEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.AnalysisEvent, error)

	// Unsubscribe tears down a channel subscription
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// Event channel constants.
const (
	// EventChannelAnalyses carries every completed analysis.
	EventChannelAnalyses = "analysis:completed"

	// EventChannelSessionPrefix is the prefix for per-session channels.
	EventChannelSessionPrefix = "session:"
)

// GetSessionChannel returns the channel name for a specific practice session.
func GetSessionChannel(sessionID string) string {
	return EventChannelSessionPrefix + sessionID
}
