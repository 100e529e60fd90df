package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/nremp/dashboard/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionReadErrorDeliversEmptySnapshot(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), "users/u1", map[string]any{"role": "admin"}))

	type delivery struct {
		snap store.Snapshot
		err  error
	}
	deliveries := make(chan delivery, 8)

	sub, err := s.Subscribe(context.Background(), "users", "", func(snap store.Snapshot, err error) {
		deliveries <- delivery{snap, err}
	})
	require.NoError(t, err)
	defer sub.Close()

	first := <-deliveries
	require.NoError(t, first.err)
	require.Len(t, first.snap.Children, 1)

	// Break the database underneath the subscription
	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	s.notify("users")

	select {
	case d := <-deliveries:
		assert.Error(t, d.err)
		assert.Equal(t, "users", d.snap.Path)
		assert.Empty(t, d.snap.Children)
	case <-time.After(5 * time.Second):
		t.Fatal("no snapshot delivered after read error")
	}
}

func TestSubscriptionCancelledContextUnregisters(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := s.Subscribe(ctx, "notas_fiscais", "createdAt", func(store.Snapshot, error) {})
	require.NoError(t, err)

	subscribed := func() int {
		s.mu.Lock()
		defer s.mu.Unlock()
		return len(s.subscriptions["notas_fiscais"])
	}
	assert.Equal(t, 1, subscribed())

	cancel()
	<-sub.(*subscription).done

	assert.Equal(t, 0, subscribed())
	_, ok := s.subscriptions["notas_fiscais"]
	assert.False(t, ok, "empty collection entries are removed")

	// Closing after the context ended is still fine
	sub.Close()
}

func TestTimestampStrictlyIncreases(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := &Store{now: func() time.Time { return fixed }}

	first := s.timestamp()
	assert.Equal(t, fixed.UnixMilli(), first)
	assert.Equal(t, first+1, s.timestamp())
	assert.Equal(t, first+2, s.timestamp())
}

func TestSortDocuments(t *testing.T) {
	docs := []document{
		{Key: "b", Body: []byte(`{"n":2}`)},
		{Key: "a", Body: []byte(`{"n":2}`)},
		{Key: "c", Body: []byte(`{"n":true}`)},
		{Key: "d", Body: []byte(`{}`)},
		{Key: "e", Body: []byte(`{"n":{"x":1}}`)},
		{Key: "f", Body: []byte(`{"n":"z"}`)},
		{Key: "g", Body: []byte(`{"n":1.5}`)},
	}

	sortDocuments(docs, "n")

	var got []string
	for _, d := range docs {
		got = append(got, d.Key)
	}
	assert.Equal(t, []string{"d", "c", "g", "a", "b", "f", "e"}, got)
}
