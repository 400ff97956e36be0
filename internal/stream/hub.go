package stream

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Hub fans newly logged runs out to websocket subscribers, keyed by track.
// With a redis client it also bridges feeds across instances via pub/sub.
type Hub struct {
	redis   *redis.Client
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	TrackID string
	Send    chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		redis:   redisClient,
		clients: map[string]map[*Client]struct{}{},
	}

	if redisClient != nil {
		go h.subscribeRedis()
	}
	return h
}

func (h *Hub) Register(trackID string) *Client {
	client := &Client{
		TrackID: trackID,
		Send:    make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[trackID] == nil {
		h.clients[trackID] = map[*Client]struct{}{}
	}
	h.clients[trackID][client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if trackClients, ok := h.clients[client.TrackID]; ok {
		delete(trackClients, client)
		if len(trackClients) == 0 {
			delete(h.clients, client.TrackID)
		}
	}
	close(client.Send)
}

// Broadcast delivers payload to local subscribers of the track and
// publishes it for other instances. Slow clients are skipped, not waited on.
func (h *Hub) Broadcast(trackID string, payload []byte) {
	h.mu.RLock()
	clients := h.clients[trackID]
	h.mu.RUnlock()

	for client := range clients {
		select {
		case client.Send <- payload:
		default:
		}
	}

	if h.redis != nil {
		err := h.redis.Publish(context.Background(), feedChannel(trackID), payload).Err()
		if err != nil {
			log.Printf("redis publish error: %v", err)
		}
	}
}

func (h *Hub) subscribeRedis() {
	ctx := context.Background()
	pubsub := h.redis.PSubscribe(ctx, "runs:*:feed")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		trackID := trackIDFromChannel(msg.Channel)
		h.mu.RLock()
		clients := h.clients[trackID]
		h.mu.RUnlock()
		for client := range clients {
			select {
			case client.Send <- []byte(msg.Payload):
			default:
			}
		}
	}
}

func feedChannel(trackID string) string {
	return "runs:" + trackID + ":feed"
}

func trackIDFromChannel(ch string) string {
	// runs:{track}:feed
	const prefix = "runs:"
	const suffix = ":feed"
	if len(ch) <= len(prefix)+len(suffix) {
		return ""
	}
	return ch[len(prefix) : len(ch)-len(suffix)]
}
