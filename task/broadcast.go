package task

import (
	"cmp"
	"context"

	"github.com/guiguan/caster"
)

// Pair is the message a Broadcaster publishes for every visited entry.
type Pair[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// Broadcaster publishes every visited entry as a Pair to all of its subscribers.
// Subscribers receive pairs in visiting order.
//
// A traversal blocks while a subscriber's channel is full, so subscribers have
// to either read concurrently or subscribe with sufficient capacity.
type Broadcaster[K cmp.Ordered, V any] struct {
	cast *caster.Caster
}

// NewBroadcaster creates a broadcaster. The broadcaster is closed when ctx is
// done; ctx may be nil.
func NewBroadcaster[K cmp.Ordered, V any](ctx context.Context) *Broadcaster[K, V] {
	return &Broadcaster[K, V]{cast: caster.New(ctx)}
}

// Subscribe returns a channel on which published pairs arrive. The channel will
// be closed when the broadcaster is closed, ctx is done, or the channel is
// passed to Unsubscribe.
// If the broadcaster has already been closed, Subscribe returns nil and false.
func (b *Broadcaster[K, V]) Subscribe(ctx context.Context, capacity uint) (chan interface{}, bool) {
	select {
	case <-b.cast.Done():
		return nil, false
	default:
	}
	return b.cast.Sub(ctx, capacity)
}

// Unsubscribe removes and closes a channel obtained from Subscribe.
func (b *Broadcaster[K, V]) Unsubscribe(ch chan interface{}) {
	b.cast.Unsub(ch)
}

// PerformTask publishes key and value as a Pair.
func (b *Broadcaster[K, V]) PerformTask(key K, value V) {
	if ok := b.cast.Pub(Pair[K, V]{Key: key, Value: value}); !ok {
		tracer().Errorf("broadcast: cannot publish key %v, broadcaster closed", key)
	}
}

// Close closes the broadcaster and all subscriber channels.
func (b *Broadcaster[K, V]) Close() {
	b.cast.Close()
}
