// Package feed distributes complaint lifecycle events to subscribed
// consumers. Events travel through Redis Pub/Sub so that every instance of
// the backend sees writes made by any other instance.
package feed

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/lskolhar/complain-hub/internal/config"
	"github.com/lskolhar/complain-hub/internal/models"
)

// ManagerService owns the set of connected feed consumers and fans
// incoming events out to them.
type ManagerService struct {
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client

	Redis *redis.Client

	broadcastCh chan models.ComplaintEvent
}

// NewManagerService creates a feed manager. rdb may be nil in tests, in
// which case Publish delivers straight to the local broadcast loop.
func NewManagerService(rdb *redis.Client) *ManagerService {
	return &ManagerService{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		Redis:        rdb,
		broadcastCh:  make(chan models.ComplaintEvent, 64),
	}
}

// Publish sends an event into the feed. Best-effort: failures are logged
// and never propagate to the write path that produced the event.
func (m *ManagerService) Publish(event models.ComplaintEvent) {
	if m.Redis == nil {
		m.broadcastCh <- event
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error encoding feed event: %v", err)
		return
	}
	if err := m.Redis.Publish(context.Background(), config.EventsChannel, payload).Err(); err != nil {
		log.Printf("Error publishing feed event: %v", err)
	}
}

// Run is the main dispatcher loop. It registers and unregisters consumers
// and fans out events arriving from Redis.
func (m *ManagerService) Run() {
	m.StartPubSubListener()

	for {
		select {
		case client := <-m.RegisterCh:
			m.Clients[client.GetID()] = client
			client.Run()
			log.Printf("Feed consumer registered: %s", client.GetID())

		case client := <-m.UnregisterCh:
			if _, ok := m.Clients[client.GetID()]; ok {
				delete(m.Clients, client.GetID())
				client.Close()
			}

		case event := <-m.broadcastCh:
			for id, client := range m.Clients {
				select {
				case client.GetSendChannel() <- event:
				default:
					// Consumer is too slow, drop it.
					delete(m.Clients, id)
					client.Close()
				}
			}
		}
	}
}
