package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbit-suite/orbit/internal/authsync/domain"
	"github.com/orbit-suite/orbit/internal/authsync/infra/memory"
)

func newRecord(t *testing.T, userID uuid.UUID, ttl time.Duration) domain.SessionRecord {
	t.Helper()
	record, err := domain.NewSessionRecord(userID, "issuerCookie", time.Now(), ttl)
	require.NoError(t, err)
	return record
}

func TestSessionStore_PutGet(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore()

	record := newRecord(t, uuid.New(), time.Hour)
	require.NoError(t, store.Put(ctx, record))

	got, err := store.Get(ctx, record.Key)
	require.NoError(t, err)
	assert.Equal(t, record, got)

	_, err = store.Get(ctx, "unknownKey")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionStore_GetExpired(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore()

	record := newRecord(t, uuid.New(), time.Millisecond)
	require.NoError(t, store.Put(ctx, record))

	time.Sleep(5 * time.Millisecond)

	_, err := store.Get(ctx, record.Key)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore()

	record := newRecord(t, uuid.New(), time.Hour)
	require.NoError(t, store.Put(ctx, record))
	require.NoError(t, store.Delete(ctx, record.Key))

	_, err := store.Get(ctx, record.Key)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	assert.NoError(t, store.Delete(ctx, record.Key))
}

func TestSessionStore_DeleteByUser(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore()

	userID := uuid.New()
	first := newRecord(t, userID, time.Hour)
	second := newRecord(t, userID, time.Hour)
	other := newRecord(t, uuid.New(), time.Hour)
	for _, record := range []domain.SessionRecord{first, second, other} {
		require.NoError(t, store.Put(ctx, record))
	}

	deleted, err := store.DeleteByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, deleted, 2)

	_, err = store.Get(ctx, first.Key)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = store.Get(ctx, second.Key)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = store.Get(ctx, other.Key)
	assert.NoError(t, err)
}

func TestSessionStore_AppendOrigin(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore()

	userID := uuid.New()
	first := newRecord(t, userID, time.Hour)
	second := newRecord(t, userID, time.Hour)
	other := newRecord(t, uuid.New(), time.Hour)
	for _, record := range []domain.SessionRecord{first, second, other} {
		require.NoError(t, store.Put(ctx, record))
	}

	require.NoError(t, store.AppendOrigin(ctx, userID, "https://notes.example.com"))
	require.NoError(t, store.AppendOrigin(ctx, userID, "https://notes.example.com"))

	for _, key := range []domain.SessionKey{first.Key, second.Key} {
		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://notes.example.com"}, got.KnownOrigins)
	}

	got, err := store.Get(ctx, other.Key)
	require.NoError(t, err)
	assert.Empty(t, got.KnownOrigins)
}

func TestSessionStore_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore()

	live := newRecord(t, uuid.New(), time.Hour)
	expired := newRecord(t, uuid.New(), time.Millisecond)
	require.NoError(t, store.Put(ctx, live))
	require.NoError(t, store.Put(ctx, expired))

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, store.DeleteExpired(ctx))

	_, err := store.Get(ctx, live.Key)
	assert.NoError(t, err)
	_, err = store.Get(ctx, expired.Key)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionStore_RecordIsolation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore()

	record := newRecord(t, uuid.New(), time.Hour)
	record.KnownOrigins = []string{"https://notes.example.com"}
	require.NoError(t, store.Put(ctx, record))

	got, err := store.Get(ctx, record.Key)
	require.NoError(t, err)
	got.KnownOrigins[0] = "https://evil.example.com"

	reread, err := store.Get(ctx, record.Key)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://notes.example.com"}, reread.KnownOrigins)
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore()
	userID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				record, err := domain.NewSessionRecord(userID, "issuerCookie", time.Now(), time.Hour)
				if err != nil {
					t.Error(err)
					return
				}
				_ = store.Put(ctx, record)
				_, _ = store.Get(ctx, record.Key)
				_ = store.AppendOrigin(ctx, userID, "https://notes.example.com")
				_ = store.Delete(ctx, record.Key)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			_, _ = store.DeleteByUser(ctx, userID)
			_ = store.DeleteExpired(ctx)
		}
	}()
	wg.Wait()
}
