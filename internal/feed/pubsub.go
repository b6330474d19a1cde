package feed

import (
	"context"
	"encoding/json"
	"log"

	"github.com/lskolhar/complain-hub/internal/config"
	"github.com/lskolhar/complain-hub/internal/models"
)

// StartPubSubListener starts a goroutine that subscribes to the complaint
// events channel in Redis and forwards every event to the manager's
// broadcast loop.
func (m *ManagerService) StartPubSubListener() {
	if m.Redis == nil {
		return
	}

	go func() {
		ctx := context.Background()

		pubsub := m.Redis.Subscribe(ctx, config.EventsChannel)
		defer pubsub.Close()

		ch := pubsub.Channel()

		for msg := range ch {
			var event models.ComplaintEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("Error unmarshalling feed event: %v", err)
				continue
			}
			m.broadcastCh <- event
		}
	}()
}
