package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

// DefaultSubscriberBuffer is the number of messages a subscriber may lag
// behind before it starts losing messages.
const DefaultSubscriberBuffer = 32

type broadcaster struct {
	mu     sync.RWMutex
	subs   map[uint64]chan models.Message
	nextID uint64
	buffer int

	now    func() time.Time
	logger *logger.Logger
}

func NewBroadcaster(buffer int, logger *logger.Logger) Broadcaster {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}

	return &broadcaster{
		subs:   make(map[uint64]chan models.Message),
		buffer: buffer,
		now:    time.Now,
		logger: logger,
	}
}

// Subscribe returns a channel receiving every message published after the
// call and a cancel function that closes it. Cancel is idempotent.
func (b *broadcaster) Subscribe() (<-chan models.Message, func()) {
	ch := make(chan models.Message, b.buffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// Publish never blocks: a subscriber with a full buffer misses the message.
func (b *broadcaster) Publish(msg models.Message) {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = b.now().UTC()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subs {
		select {
		case ch <- msg:
		default:
			b.logger.Warn().
				Str("func", "broadcaster.Publish").
				Uint64("subscriber", id).
				Str("type", string(msg.Type)).
				Msg("subscriber is lagging, message dropped")
		}
	}
}

func (b *broadcaster) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
