package notify

import (
	"sync"

	"github.com/fairshare-aid/backend/internal/models"
	"github.com/google/uuid"
)

// subscriberBuffer is the number of notifications a subscriber can lag
// behind before events are dropped for it.
const subscriberBuffer = 16

// Hub is an in-memory Publisher that fans notifications out to the
// subscribers of each user.
type Hub struct {
	mutex       sync.RWMutex
	subscribers map[uuid.UUID]map[chan models.Notification]struct{}
}

// DefaultHub is the hub used by the API.
var DefaultHub = NewHub()

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[uuid.UUID]map[chan models.Notification]struct{}),
	}
}

// Subscribe registers a new subscriber for the user. The returned function
// must be called to unsubscribe, it closes the channel.
func (h *Hub) Subscribe(userID uuid.UUID) (<-chan models.Notification, func()) {
	ch := make(chan models.Notification, subscriberBuffer)

	h.mutex.Lock()
	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[chan models.Notification]struct{})
	}
	h.subscribers[userID][ch] = struct{}{}
	h.mutex.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mutex.Lock()
			defer h.mutex.Unlock()

			delete(h.subscribers[userID], ch)
			if len(h.subscribers[userID]) == 0 {
				delete(h.subscribers, userID)
			}
			close(ch)
		})
	}
}

// Publish sends the notification to all subscribers of the user.
//
// It never blocks. Subscribers that are not ready miss the notification,
// it is still stored and can be listed.
func (h *Hub) Publish(userID uuid.UUID, notification models.Notification) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for ch := range h.subscribers[userID] {
		select {
		case ch <- notification:
		default:
			dropped.Inc()
		}
	}
}

// Subscribers returns the number of subscribers for the user.
func (h *Hub) Subscribers(userID uuid.UUID) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.subscribers[userID])
}
