package sqlstore

import (
	"context"
	"sync"

	"github.com/nremp/dashboard/pkg/store"
)

// subscription delivers snapshots of one collection from its own
// goroutine. Change signals are coalesced, every delivery reads the full
// collection.
type subscription struct {
	store      *Store
	collection string
	orderBy    string
	fn         store.SnapshotFunc

	ctx    context.Context
	cancel context.CancelFunc
	notify chan struct{}
	done   chan struct{}
	once   sync.Once
}

func newSubscription(ctx context.Context, s *Store, collection, orderBy string, fn store.SnapshotFunc) *subscription {
	subCtx, cancel := context.WithCancel(ctx)

	return &subscription{
		store:      s,
		collection: collection,
		orderBy:    orderBy,
		fn:         fn,
		ctx:        subCtx,
		cancel:     cancel,
		notify:     make(chan struct{}, 1),
		done:       make(chan struct{}),
	}
}

// run delivers snapshots until the subscription is closed or its context
// is cancelled. Either way the store forgets the subscription.
func (sub *subscription) run() {
	defer close(sub.done)
	defer sub.store.unregister(sub)

	sub.deliver()
	for {
		select {
		case <-sub.ctx.Done():
			return
		case <-sub.notify:
			sub.deliver()
		}
	}
}

func (sub *subscription) deliver() {
	snap, err := sub.store.snapshot(sub.ctx, sub.collection, sub.orderBy)

	// Detached while reading
	if sub.ctx.Err() != nil {
		return
	}

	if err != nil {
		snap = store.Snapshot{Path: sub.collection}
	}
	sub.fn(snap, err)
}

// signal marks the collection as changed without blocking the writer.
func (sub *subscription) signal() {
	select {
	case sub.notify <- struct{}{}:
	default:
	}
}

// Close implements store.Subscription.
func (sub *subscription) Close() {
	sub.once.Do(func() {
		sub.store.unregister(sub)
		sub.cancel()
	})
	<-sub.done
}
