package realtime

import "sync"

// Hub is an in-process Publisher. Subscribers receive payloads on buffered
// channels; when a subscriber's buffer is full the payload is dropped for
// that subscriber only (at-most-once semantics).
type Hub struct {
	mu     sync.RWMutex
	buffer int
	topics map[string]map[*Subscription]struct{}
}

// Subscription is one subscriber's attachment to a topic.
type Subscription struct {
	hub   *Hub
	topic string
	ch    chan any
	once  sync.Once
}

// C returns the channel payloads arrive on. The channel is closed when the
// subscription is cancelled.
func (s *Subscription) C() <-chan any { return s.ch }

// Cancel detaches the subscription and closes its channel. Safe to call
// multiple times.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.hub.remove(s)
		close(s.ch)
	})
}

// NewHub creates a Hub whose subscriber channels hold up to buffer payloads.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 1
	}
	return &Hub{
		buffer: buffer,
		topics: make(map[string]map[*Subscription]struct{}),
	}
}

// Subscribe attaches a new subscriber to topic.
func (h *Hub) Subscribe(topic string) *Subscription {
	sub := &Subscription{
		hub:   h,
		topic: topic,
		ch:    make(chan any, h.buffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.topics[topic]
	if !ok {
		subs = make(map[*Subscription]struct{})
		h.topics[topic] = subs
	}
	subs[sub] = struct{}{}

	return sub
}

// Publish delivers payload to every current subscriber of topic.
// Subscribers with full buffers are skipped; Publish never blocks.
func (h *Hub) Publish(topic string, payload any) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.topics[topic] {
		select {
		case sub.ch <- payload:
		default:
			// full buffer, drop for this subscriber
		}
	}
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs, ok := h.topics[sub.topic]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(h.topics, sub.topic)
		}
	}
}
