package publisher

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "naturalize/pkg/platform/audit"
	"naturalize/pkg/platform/audit/store/memory"
)

func TestPublisher_SyncMode(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	err := pub.Emit(context.Background(), audit.Event{
		UserID: "42",
		Action: string(audit.EventLockoutSet),
	})
	require.NoError(t, err)

	events, err := pub.List(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, string(audit.EventLockoutSet), events[0].Action)
	assert.Equal(t, audit.CategoryCompliance, events[0].Category)
}

func TestPublisher_AsyncDrainsOnClose(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(100))

	for range 10 {
		err := pub.Emit(context.Background(), audit.Event{
			UserID: "42",
			Action: string(audit.EventAccessRedirected),
		})
		require.NoError(t, err)
	}

	// Close should drain all events
	pub.Close()

	events, err := store.ListByUser(context.Background(), "42")
	require.NoError(t, err)
	assert.Len(t, events, 10, "all events should be drained on close")
}

func TestPublisher_BufferFullDoesNotPanic(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(1))
	defer pub.Close()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := pub.Emit(context.Background(), audit.Event{UserID: "1", Action: string(audit.EventLockoutExpired)})
			if err != nil {
				assert.ErrorIs(t, err, ErrBufferFull)
			}
		}()
	}
	wg.Wait()
}

func TestPublisher_Timestamps(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("sets missing timestamp from clock", func(t *testing.T) {
		pub := NewPublisher(memory.NewInMemoryStore(), WithClock(func() time.Time { return fixed }))
		require.NoError(t, pub.Emit(context.Background(), audit.Event{UserID: "1", Action: "x"}))
		events, err := pub.List(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, fixed, events[0].Timestamp)
	})

	t.Run("preserves existing timestamp", func(t *testing.T) {
		custom := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		pub := NewPublisher(memory.NewInMemoryStore(), WithClock(func() time.Time { return fixed }))
		require.NoError(t, pub.Emit(context.Background(), audit.Event{UserID: "1", Action: "x", Timestamp: custom}))
		events, err := pub.List(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, custom, events[0].Timestamp)
	})
}

func TestPublisher_CancelledContextInAsyncMode(t *testing.T) {
	pub := NewPublisher(memory.NewInMemoryStore(), WithAsyncBuffer(4))
	defer pub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := pub.Emit(ctx, audit.Event{UserID: "1", Action: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFanout(t *testing.T) {
	a := memory.NewInMemoryStore()
	b := memory.NewInMemoryStore()
	fan := audit.Fanout{NewPublisher(a), nil, NewPublisher(b)}

	require.NoError(t, fan.Emit(context.Background(), audit.Event{UserID: "1", Action: "x"}))

	ea, _ := a.ListByUser(context.Background(), "1")
	eb, _ := b.ListByUser(context.Background(), "1")
	assert.Len(t, ea, 1)
	assert.Len(t, eb, 1)
}
