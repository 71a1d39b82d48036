package conversation

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"tripgenius/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(id string) *models.Session {
	return &models.Session{
		SessionID: id,
		State:     models.StateCreated,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newTestSession("s1")))

	err := store.WithSession(ctx, "s1", func(sess *models.Session) error {
		sess.State = models.StateAwaitingInput
		sess.Params.Destination = "CDG"
		return nil
	})
	require.NoError(t, err)

	err = store.WithSession(ctx, "s1", func(sess *models.Session) error {
		assert.Equal(t, models.StateAwaitingInput, sess.State)
		assert.Equal(t, "CDG", sess.Params.Destination)
		return nil
	})
	require.NoError(t, err)
}

func TestMemoryStoreUnknownSession(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	err := store.WithSession(context.Background(), "missing", func(*models.Session) error {
		t.Fatal("fn must not run for unknown session")
		return nil
	})
	var notFound *SessionNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.SessionID)
}

func TestMemoryStoreErrorDiscardsMutation(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, newTestSession("s1")))

	boom := fmt.Errorf("boom")
	err := store.WithSession(ctx, "s1", func(sess *models.Session) error {
		sess.Params.Destination = "DEL"
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = store.WithSession(ctx, "s1", func(sess *models.Session) error {
		assert.Empty(t, sess.Params.Destination)
		return nil
	})
	require.NoError(t, err)
}

func TestMemoryStoreTerminalSessionIsRemoved(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, newTestSession("s1")))

	err := store.WithSession(ctx, "s1", func(sess *models.Session) error {
		sess.State = models.StateTerminated
		sess.Terminal = true
		return nil
	})
	require.NoError(t, err)

	err = store.WithSession(ctx, "s1", func(*models.Session) error { return nil })
	var notFound *SessionNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestMemoryStoreExpiredSessionIsGone(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, newTestSession("s1")))

	time.Sleep(30 * time.Millisecond)

	err := store.WithSession(ctx, "s1", func(*models.Session) error { return nil })
	var notFound *SessionNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRedisStoreLockBookkeeping(t *testing.T) {
	store := &redisStore{
		ttl:   time.Minute,
		locks: make(map[string]*sync.Mutex),
	}

	first := store.lockFor("s1")
	assert.Same(t, first, store.lockFor("s1"))
	assert.Len(t, store.locks, 1)

	store.lockFor("s2")
	assert.Len(t, store.locks, 2)

	// Dropped IDs must not accumulate; a later lookup gets a fresh mutex.
	store.dropLock("s1")
	assert.Len(t, store.locks, 1)
	assert.NotSame(t, first, store.lockFor("s1"))
}

func TestMemoryStoreSerializesSameSession(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, newTestSession("s1")))

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = store.WithSession(ctx, "s1", func(sess *models.Session) error {
				// Read-modify-write: lost updates would shrink the count.
				sess.Results = append(sess.Results, "step")
				return nil
			})
		}()
	}
	wg.Wait()

	err := store.WithSession(ctx, "s1", func(sess *models.Session) error {
		assert.Len(t, sess.Results, workers)
		return nil
	})
	require.NoError(t, err)
}
