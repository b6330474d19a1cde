package feed

import "github.com/lskolhar/complain-hub/internal/models"

// Client is the interface for any consumer of the complaint event feed
// (e.g., an admin WebSocket connection or the Telegram notifier). It
// abstracts the delivery mechanism so the manager can treat all consumers
// uniformly.
type Client interface {
	// GetID returns the unique identifier of this consumer.
	GetID() string

	// GetSendChannel returns the channel the manager delivers events on.
	// It is a send-only channel from the manager's perspective.
	GetSendChannel() chan<- models.ComplaintEvent

	// Run starts the consumer's delivery loop.
	Run()
	// Close shuts the consumer down and releases its channels.
	Close()
}
