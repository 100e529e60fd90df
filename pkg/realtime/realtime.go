// Package realtime keeps normalized note and user lists in sync with the
// document store.
//
// Every snapshot the store pushes is run through the sanitizer and delivered
// as a complete replacement list. Read errors degrade to an empty list.
package realtime

import (
	"context"
	"slices"
	"sync"

	"github.com/nremp/dashboard/pkg/models"
	"github.com/nremp/dashboard/pkg/sanitize"
	"github.com/nremp/dashboard/pkg/store"
	"github.com/rs/zerolog/log"
)

// NotesFunc receives the current notes, newest first.
type NotesFunc func(notes []models.Note)

// UsersFunc receives the current user accounts.
type UsersFunc func(users []models.UserAccount)

// Subscription is a detachable listener. The callback is never invoked
// after Close returned.
type Subscription interface {
	Close()
}

// Notes subscribes to the notes collection.
//
// The store delivers notes ascending by creation time, they are reversed
// before being handed to fn.
func Notes(ctx context.Context, st store.Store, fn NotesFunc) (Subscription, error) {
	return subscribe(ctx, st, store.CollectionNotes, store.OrderCreatedAt, func(snap store.Snapshot) {
		notes := make([]models.Note, 0, len(snap.Children))
		for _, child := range snap.Children {
			note, ok := sanitize.Note(child.Key, sanitize.RawJSON(child.Value))
			if !ok {
				rejectedDocuments.WithLabelValues(store.CollectionNotes).Inc()
				continue
			}
			notes = append(notes, note)
		}

		slices.Reverse(notes)
		fn(notes)
	})
}

// Users subscribes to the users collection.
func Users(ctx context.Context, st store.Store, fn UsersFunc) (Subscription, error) {
	return subscribe(ctx, st, store.CollectionUsers, "", func(snap store.Snapshot) {
		users := make([]models.UserAccount, 0, len(snap.Children))
		for _, child := range snap.Children {
			user, ok := sanitize.User(child.Key, sanitize.RawJSON(child.Value))
			if !ok {
				rejectedDocuments.WithLabelValues(store.CollectionUsers).Inc()
				continue
			}
			users = append(users, user)
		}

		fn(users)
	})
}

func subscribe(ctx context.Context, st store.Store, collection, orderBy string, deliver func(store.Snapshot)) (Subscription, error) {
	sub, err := st.Subscribe(ctx, collection, orderBy, func(snap store.Snapshot, err error) {
		if err != nil {
			log.Error().Err(err).Str("path", collection).Msg("Subscription")
			snapshotErrors.WithLabelValues(collection).Inc()

			// An empty snapshot yields an empty list
			snap = store.Snapshot{Path: collection}
		}

		snapshotsDelivered.WithLabelValues(collection).Inc()
		deliver(snap)
	})
	if err != nil {
		return nil, err
	}

	activeSubscriptions.WithLabelValues(collection).Inc()
	return &subscription{Subscription: sub, collection: collection}, nil
}

// subscription tracks the active subscription gauge.
type subscription struct {
	store.Subscription
	collection string
	once       sync.Once
}

func (s *subscription) Close() {
	s.Subscription.Close()
	s.once.Do(func() {
		activeSubscriptions.WithLabelValues(s.collection).Dec()
	})
}
