package ws

import (
	"fmt"
	"sync"
	"time"
)

// Topics: TopicAvailable fans out the rider-visible order set;
// OrderTopic(id) streams status changes of a single order to its buyer.
const TopicAvailable = "available"

func OrderTopic(orderID uint) string { return fmt.Sprintf("order:%d", orderID) }

// OrderEvent is published after a lifecycle transition commits.
type OrderEvent struct {
	OrderID     uint      `json:"orderId"`
	StoreID     uint      `json:"storeId"`
	OrderStatus string    `json:"orderStatus"`
	RiderID     *uint     `json:"riderId"`
	DeliveryOTP *string   `json:"deliveryOTP,omitempty"`
	At          time.Time `json:"at"`
}

// OrderHub is the in-process notification fabric. Subscribe hands back
// a receive channel and a cancel func; callers must cancel on teardown
// or the subscription leaks.
type OrderHub struct {
	mu   sync.Mutex
	subs map[string]map[chan OrderEvent]struct{}
}

func NewOrderHub() *OrderHub {
	return &OrderHub{subs: make(map[string]map[chan OrderEvent]struct{})}
}

func (h *OrderHub) Subscribe(topic string) (<-chan OrderEvent, func()) {
	ch := make(chan OrderEvent, 16)

	h.mu.Lock()
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[chan OrderEvent]struct{})
	}
	h.subs[topic][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[topic], ch)
			if len(h.subs[topic]) == 0 {
				delete(h.subs, topic)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers ev to every subscriber of topic. A subscriber that
// has fallen 16 events behind is skipped rather than blocking the
// publisher.
func (h *OrderHub) Publish(topic string, ev OrderEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[topic] {
		select {
		case ch <- ev:
		default:
		}
	}
}

// SubscriberCount is used by tests to verify teardown.
func (h *OrderHub) SubscriberCount(topic string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[topic])
}
